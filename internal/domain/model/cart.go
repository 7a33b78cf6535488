package model

// CartItem is a single billable line handed to the checkout
// collaborator.
//
// For Raw and Slabbed lines Quantity is an item count. For the Sealed
// line Quantity is the computed sealed price in cents: the payment
// provider bills quantity × unit price, and the sealed product is
// configured there with a one-cent unit price, so a volume-priced
// feature reuses the same billing primitive.
type CartItem struct {
	// Quantity is the number of billable units.
	Quantity int `json:"quantity"`
	// ProductRef is the payment provider's product identifier.
	ProductRef string `json:"price"`
}

// Cart is the normalized, one-shot list of line items sent to the
// checkout collaborator at submission time. It is never retained.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Empty reports whether the cart has no billable lines.
func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

// CheckoutSession is the handle returned by the checkout collaborator
// for a created session. The user is redirected to URL to pay.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
