// Package service contains the business logic for the coload pricing service.
package service

import (
	"strconv"

	"github.com/kyhorne/coload/internal/domain/model"
)

// Validation messages surfaced inline on the form. These strings are
// part of the engine contract and are rendered verbatim by the client.
const (
	MsgInvalidNumber     = "Enter a valid number"
	MsgWholeNumber       = "Enter a whole number"
	MsgNonNegative       = "Enter a number greater than or equal to 0"
	MsgMustContainNumber = "Must contain a number"
)

// MsgMaxInput builds the maximum-input message for the configured bound.
func MsgMaxInput(max float64) string {
	return "Enter a value less than " + strconv.FormatFloat(max, 'f', -1, 64)
}

// MsgMinVolume builds the cross-field volume message for the configured
// minimum. The wording says "greater than" but the boundary is
// inclusive: a volume exactly at the minimum passes.
func MsgMinVolume(min float64) string {
	return "Volume must be greater than " + strconv.FormatFloat(min, 'f', -1, 64) + " cm3"
}

// Validator checks raw form values against the configured limits. It is
// a pure function over its inputs: the same values always produce the
// same errors, and it never panics on unparsable input.
type Validator struct {
	limits model.PricingLimits
}

// NewValidator creates a Validator with the given limits.
func NewValidator(limits model.PricingLimits) *Validator {
	return &Validator{limits: limits}
}

// Validate produces a complete, freshly allocated error set for the
// given values. Fields are evaluated independently; there is no
// short-circuiting across fields.
func (v *Validator) Validate(values model.FormValues) model.FormErrors {
	errs := model.FormErrors{
		Raw:     v.checkQuantity(values.Raw),
		Slabbed: v.checkQuantity(values.Slabbed),
	}

	// Dimensions only matter when the sealed toggle is on.
	if !values.HasSealed {
		return errs
	}

	errs.Length = v.checkDimension(values.Size.Length)
	errs.Width = v.checkDimension(values.Size.Width)
	errs.Height = v.checkDimension(values.Size.Height)

	if errs.Length == "" && errs.Width == "" && errs.Height == "" {
		if volume := values.Size.Volume(); volume < v.limits.MinSealedVolume {
			errs.Volume = MsgMinVolume(v.limits.MinSealedVolume)
		}
	}

	return errs
}

// checkQuantity validates a whole-number quantity field. Empty input is
// not an error: zero items means "don't include this line".
func (v *Validator) checkQuantity(input string) string {
	if input == "" {
		return ""
	}
	if !model.IsNumber(input) {
		return MsgInvalidNumber
	}
	n, ok := model.ParseNumber(input)
	if !ok {
		// Matches the decimal grammar but is not a number, e.g. "." or "-".
		return MsgInvalidNumber
	}
	if !model.ContainsNumber(input) {
		return MsgWholeNumber
	}
	if n < 0 {
		return MsgNonNegative
	}
	if v.limits.MaxInput > 0 && n >= v.limits.MaxInput {
		return MsgMaxInput(v.limits.MaxInput)
	}
	return ""
}

// checkDimension validates a sealed dimension field. Dimensions are
// required and may carry decimals.
func (v *Validator) checkDimension(input string) string {
	if input == "" {
		return MsgMustContainNumber
	}
	if !model.IsNumber(input) {
		return MsgInvalidNumber
	}
	n, ok := model.ParseNumber(input)
	if !ok {
		return MsgInvalidNumber
	}
	if n < 0 {
		return MsgNonNegative
	}
	if v.limits.MaxInput > 0 && n >= v.limits.MaxInput {
		return MsgMaxInput(v.limits.MaxInput)
	}
	return ""
}
