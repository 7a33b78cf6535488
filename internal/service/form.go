package service

import (
	"context"
	"sync/atomic"

	"github.com/kyhorne/coload/internal/domain/model"
	"github.com/rs/zerolog/log"
)

// CheckoutStarter is the external checkout collaborator consumed on a
// successful submit. Implementations POST the cart to the payment
// provider and return the created session.
type CheckoutStarter interface {
	CreateSession(ctx context.Context, cart model.Cart) (*model.CheckoutSession, error)
}

// Field names a form input for change, blur, and visibility operations.
type Field string

const (
	FieldRaw     Field = "raw"
	FieldSlabbed Field = "slabbed"
	FieldLength  Field = "length"
	FieldWidth   Field = "width"
	FieldHeight  Field = "height"
)

// FormState is the atomic snapshot a form observer sees: values,
// errors, price, and savings always belong to the same revision.
type FormState struct {
	Values  model.FormValues
	Errors  model.FormErrors
	Price   float64
	Savings float64
}

// Form orchestrates the subscription form lifecycle: it holds the
// current field values and touched/submitted flags, recomputes errors,
// price, and savings on every change, and decides whether a submit
// reaches the checkout collaborator.
//
// Form methods are meant to be driven from a single event loop; the
// only concurrency guard is the in-flight submit flag.
type Form struct {
	initial model.FormValues

	state     FormState
	touched   model.TouchedInput
	didSubmit bool

	inFlight atomic.Bool
	lastErr  error

	validator *Validator
	pricer    PriceCalculator
	carts     *CartBuilder
	limits    model.PricingLimits
	checkout  CheckoutStarter
}

// NewForm creates a Form over the given engine components, starting
// from the initial values.
func NewForm(initial model.FormValues, validator *Validator, pricer PriceCalculator, carts *CartBuilder, limits model.PricingLimits, checkout CheckoutStarter) *Form {
	f := &Form{
		initial:   initial,
		validator: validator,
		pricer:    pricer,
		carts:     carts,
		limits:    limits,
		checkout:  checkout,
	}
	f.state.Values = initial
	f.recompute()
	return f
}

// Reset restores the form to fresh initial values, clearing errors,
// touched flags, and submit history.
func (f *Form) Reset(initial model.FormValues) {
	f.initial = initial
	f.state.Values = initial
	f.touched = model.TouchedInput{}
	f.didSubmit = false
	f.lastErr = nil
	f.recompute()
}

// State returns the current snapshot. Values, errors, and price were
// computed together in a single transition.
func (f *Form) State() FormState {
	return f.state
}

// LastError returns the most recent checkout collaborator failure, or
// nil. It is cleared by Reset and by a successful submit.
func (f *Form) LastError() error {
	return f.lastErr
}

// SetField updates a single input field and recomputes the snapshot.
func (f *Form) SetField(field Field, value string) {
	values := f.state.Values
	switch field {
	case FieldRaw:
		values.Raw = value
	case FieldSlabbed:
		values.Slabbed = value
	case FieldLength:
		values.Size.Length = value
	case FieldWidth:
		values.Size.Width = value
	case FieldHeight:
		values.Size.Height = value
	default:
		return
	}
	f.state.Values = values
	f.recompute()
}

// SetTerm switches the billing cadence and recomputes the snapshot.
func (f *Form) SetTerm(term model.Term) {
	f.state.Values.Term = term
	f.recompute()
}

// ToggleSealed flips the sealed-product switch, preserving any
// dimensions already entered.
func (f *Form) ToggleSealed() {
	f.state.Values.HasSealed = !f.state.Values.HasSealed
	f.recompute()
}

// Touch marks a field as blurred, enabling error display for it.
func (f *Form) Touch(field Field) {
	switch field {
	case FieldRaw:
		f.touched.Raw = true
	case FieldSlabbed:
		f.touched.Slabbed = true
	case FieldLength:
		f.touched.Length = true
	case FieldWidth:
		f.touched.Width = true
	case FieldHeight:
		f.touched.Height = true
	}
}

// ErrorVisible reports whether the field's error should be shown:
// only after the user left the field or attempted a submit.
func (f *Form) ErrorVisible(field Field) bool {
	if f.didSubmit {
		return true
	}
	switch field {
	case FieldRaw:
		return f.touched.Raw
	case FieldSlabbed:
		return f.touched.Slabbed
	case FieldLength:
		return f.touched.Length
	case FieldWidth:
		return f.touched.Width
	case FieldHeight:
		return f.touched.Height
	}
	return false
}

// Submit re-validates the current values and hands the cart to the
// checkout collaborator when the form changed from its initial values
// and carries no errors. A submit arriving while another is in flight
// is dropped silently. The in-flight flag is reset on every path so a
// failed submit can be retried.
func (f *Form) Submit(ctx context.Context) (*model.CheckoutSession, error) {
	if !f.inFlight.CompareAndSwap(false, true) {
		return nil, nil
	}
	defer f.inFlight.Store(false)

	f.didSubmit = true
	f.recompute()

	if f.state.Values == f.initial || !f.state.Errors.Empty() {
		return nil, nil
	}

	cart := f.carts.Build(f.state.Values, f.limits)
	if cart.Empty() {
		return nil, nil
	}

	session, err := f.checkout.CreateSession(ctx, cart)
	if err != nil {
		log.Error().Err(err).Int("items", len(cart.Items)).Msg("Checkout session creation failed")
		f.lastErr = err
		return nil, err
	}

	f.lastErr = nil
	log.Info().Str("session_id", session.ID).Int("items", len(cart.Items)).Msg("Checkout session created")
	return session, nil
}

// recompute rebuilds errors, price, and savings from the current
// values in one transition. Price is always derived from the fresh
// error set, never a stale one.
func (f *Form) recompute() {
	next := FormState{Values: f.state.Values}
	next.Errors = f.validator.Validate(next.Values)
	next.Price = f.pricer.Quote(next.Values, next.Errors)
	next.Savings = f.pricer.Savings(next.Values)
	f.state = next
}
