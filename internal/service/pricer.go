package service

import (
	"math"

	"github.com/kyhorne/coload/internal/domain/model"
)

// PriceCalculator defines the interface for quote computations.
type PriceCalculator interface {
	// Quote computes the total price for the values under their own
	// term. Fields with an active error contribute 0.
	Quote(values model.FormValues, errs model.FormErrors) float64
	// SealedPrice computes the sealed contribution (volume × rate,
	// clamped to the per-term floor) without consulting errors.
	SealedPrice(values model.FormValues) float64
	// Savings compares annualized monthly cost against yearly cost and
	// returns the percentage saved. NaN when the regular total is 0.
	Savings(values model.FormValues) float64
}

// PricingOption configures a PricingService.
type PricingOption func(*PricingService)

// PricingService implements PriceCalculator over an injected rate
// matrix. The matrix and limits are fixed at construction; the
// calculation functions read no ambient state, which keeps quotes
// deterministic and testable with fixtures.
type PricingService struct {
	matrix    model.PriceMatrix
	limits    model.PricingLimits
	validator *Validator
}

// NewPricingService creates a PricingService with the given options.
func NewPricingService(opts ...PricingOption) *PricingService {
	s := &PricingService{
		matrix: model.PriceMatrix{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.validator = NewValidator(s.limits)
	return s
}

// WithMatrix sets the rate table.
func WithMatrix(matrix model.PriceMatrix) PricingOption {
	return func(s *PricingService) {
		s.matrix = matrix
	}
}

// WithLimits sets the validation limits and sealed price floors.
func WithLimits(limits model.PricingLimits) PricingOption {
	return func(s *PricingService) {
		s.limits = limits
	}
}

// Quote computes the total price for the values under values.Term.
// A field with an active error contributes $0 so a transient invalid
// state never produces a misleading price.
func (s *PricingService) Quote(values model.FormValues, errs model.FormErrors) float64 {
	total := 0.0

	if errs.Raw == "" && values.Raw != "" {
		if qty, ok := model.ParseNumber(values.Raw); ok {
			total += qty * s.matrix.Rate(values.Term, model.CategoryRaw).UnitPrice
		}
	}

	if errs.Slabbed == "" && values.Slabbed != "" {
		if qty, ok := model.ParseNumber(values.Slabbed); ok {
			total += qty * s.matrix.Rate(values.Term, model.CategorySlabbed).UnitPrice
		}
	}

	if values.HasSealed && errs.SealedOK() {
		total += s.SealedPrice(values)
	}

	return math.Max(total, 0)
}

// SealedPrice returns volume × sealed rate for the term, clamped upward
// to the per-term minimum sealed price. Returns 0 when the volume is
// not computable.
func (s *PricingService) SealedPrice(values model.FormValues) float64 {
	volume := values.Size.Volume()
	if volume < 0 {
		return 0
	}

	price := volume * s.matrix.Rate(values.Term, model.CategorySealed).UnitPrice
	if floor, ok := s.limits.MinSealedPrice[values.Term]; ok && price < floor {
		price = floor
	}
	return price
}

// Savings evaluates the quote twice with the term forced to Yearly and
// Monthly respectively, then compares the yearly total against 12× the
// monthly total. Errors are recomputed for each forced term so the two
// quotes gate identically.
func (s *PricingService) Savings(values model.FormValues) float64 {
	yearly := values
	yearly.Term = model.TermYearly
	discounted := s.Quote(yearly, s.validator.Validate(yearly))

	monthly := values
	monthly.Term = model.TermMonthly
	regular := s.Quote(monthly, s.validator.Validate(monthly)) * 12

	return math.Abs(percentageChange(discounted, regular))
}

// percentageChange returns how much cheaper discounted is than regular,
// as a percentage of regular. NaN when regular is 0, even if discounted
// is not; callers must guard before display.
func percentageChange(discounted, regular float64) float64 {
	if regular == 0 {
		return math.NaN()
	}
	return (regular - discounted) / regular * 100
}
