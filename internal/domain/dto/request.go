// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing
// validation and serialization for API communication.
package dto

import (
	"github.com/kyhorne/coload/internal/domain/model"
)

// SizeRequest carries the raw sealed-product dimensions as entered.
//
// @Description Sealed product dimensions in centimeters, as raw text
type SizeRequest struct {
	Length string `json:"length" example:"10"`
	Width  string `json:"width" example:"10"`
	Height string `json:"height" example:"10"`
} // @name SizeRequest

// QuoteRequest mirrors the subscription form values. Quantity and
// dimension fields are raw text on purpose: validating them is the
// engine's job, and a quote for partially-typed input must return the
// field errors instead of rejecting the request.
//
// @Description Subscription form values to price
// @Example {"term": "Monthly", "raw": "20", "slabbed": "10", "has_sealed": false}
type QuoteRequest struct {
	// Term is the billing cadence, Monthly or Yearly.
	Term string `json:"term" binding:"required" example:"Monthly" enums:"Monthly,Yearly"`
	// Raw is the raw-card quantity as entered.
	Raw string `json:"raw" example:"20"`
	// Slabbed is the slabbed-card quantity as entered.
	Slabbed string `json:"slabbed" example:"10"`
	// HasSealed toggles sealed product storage.
	HasSealed bool `json:"has_sealed" example:"false"`
	// Size holds the sealed product dimensions; only read when HasSealed.
	Size SizeRequest `json:"size"`
} // @name QuoteRequest

// ValidationError represents a request-level validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ErrInvalidTerm is returned when the term is not a known billing cadence.
var ErrInvalidTerm = &ValidationError{
	Field:   "term",
	Message: "must be Monthly or Yearly",
}

// Validate performs custom validation on the request.
func (r *QuoteRequest) Validate() error {
	if !model.Term(r.Term).Valid() {
		return ErrInvalidTerm
	}
	return nil
}

// FormValues converts the request into domain form values.
func (r *QuoteRequest) FormValues() model.FormValues {
	return model.FormValues{
		Term:      model.Term(r.Term),
		Raw:       r.Raw,
		Slabbed:   r.Slabbed,
		HasSealed: r.HasSealed,
		Size: model.Size{
			Length: r.Size.Length,
			Width:  r.Size.Width,
			Height: r.Size.Height,
		},
	}
}

// CheckoutSessionRequest is the body for checkout-session creation. It
// carries the same form values as a quote; the server re-validates and
// builds the cart itself rather than trusting client-computed lines.
//
// @Description Subscription form values to start checkout for
type CheckoutSessionRequest struct {
	QuoteRequest
} // @name CheckoutSessionRequest
