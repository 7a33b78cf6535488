package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CheckoutLogEntry is the audit record written after a quote or a
// checkout-session attempt. Entries expire via a TTL index on
// Timestamp.
type CheckoutLogEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	RequestID string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	// Action is the operation audited, e.g. "quote" or "checkout_session".
	Action string `bson:"action" json:"action"`
	// Term is the billing cadence the user had selected.
	Term string `bson:"term,omitempty" json:"term,omitempty"`
	// Total is the quoted total in dollars at the time of the action.
	Total float64 `bson:"total" json:"total"`
	// ItemCount is the number of cart lines (0 when no cart was built).
	ItemCount int `bson:"item_count" json:"item_count"`
	// SessionID is the checkout session identifier, when one was created.
	SessionID string `bson:"session_id,omitempty" json:"session_id,omitempty"`
	// Status records the outcome: "ok", "invalid", or "failed".
	Status string `bson:"status" json:"status"`
	// Error holds the collaborator error message on failure.
	Error string `bson:"error,omitempty" json:"error,omitempty"`
	IP    string `bson:"ip,omitempty" json:"ip,omitempty"`
}

// CheckoutLogQuery filters audit entries.
type CheckoutLogQuery struct {
	RequestID string
	Action    string
	Status    string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}
