// Package model defines the core domain entities for the coload pricing service.
package model

// Term is the billing cadence of a subscription.
type Term string

const (
	// TermMonthly bills the subscription every month.
	TermMonthly Term = "Monthly"
	// TermYearly bills the subscription once a year at a discounted rate.
	TermYearly Term = "Yearly"
)

// Valid reports whether the term is a known billing cadence.
func (t Term) Valid() bool {
	return t == TermMonthly || t == TermYearly
}

// Category is a storage product type with its own rate.
type Category string

const (
	// CategoryRaw is loose, ungraded card storage billed per card.
	CategoryRaw Category = "Raw"
	// CategorySlabbed is graded (slabbed) card storage billed per slab.
	CategorySlabbed Category = "Slabbed"
	// CategorySealed is sealed product storage billed by volume.
	CategorySealed Category = "Sealed"
)

// Categories lists all storage categories in cart order.
var Categories = []Category{CategoryRaw, CategorySlabbed, CategorySealed}

// Rate pairs a unit price with the payment provider's product reference.
//
// For Raw and Slabbed the unit price is per item per term; for Sealed it
// is per cubic centimeter per term.
type Rate struct {
	// ProductRef is the opaque identifier of the billable product at the
	// payment provider (e.g. a Stripe price id).
	ProductRef string `json:"product_ref"`
	// UnitPrice is the price per unit in dollars.
	UnitPrice float64 `json:"unit_price"`
}

// PriceMatrix is the fixed rate lookup keyed by [term][category].
// It is selected once at process start and never mutated at runtime.
type PriceMatrix map[Term]map[Category]Rate

// Rate returns the rate for the given term and category. The zero Rate
// is returned when the matrix has no entry, so a partially configured
// matrix prices the missing category at 0 rather than panicking.
func (m PriceMatrix) Rate(term Term, category Category) Rate {
	if categories, ok := m[term]; ok {
		return categories[category]
	}
	return Rate{}
}

// PricingLimits holds the validation and floor constants applied by the
// validator and the price calculator.
type PricingLimits struct {
	// MaxInput is the exclusive upper bound for quantity and dimension
	// inputs. Zero disables the check.
	MaxInput float64 `json:"max_input"`
	// MinSealedVolume is the minimum accepted sealed volume in cm³.
	MinSealedVolume float64 `json:"min_sealed_volume"`
	// MinSealedPrice is the per-term price floor for the sealed
	// contribution in dollars.
	MinSealedPrice map[Term]float64 `json:"min_sealed_price"`
}
