package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kyhorne/coload/internal/domain/model"
)

// TestPricingServiceQuote tests price accumulation and error gating.
func TestPricingServiceQuote(t *testing.T) {
	pricer := testPricer()
	validator := NewValidator(testLimits())

	tests := []struct {
		name     string
		values   model.FormValues
		expected float64
	}{
		{
			name:     "empty form prices at zero",
			values:   model.EmptyFormValues(model.TermMonthly),
			expected: 0,
		},
		{
			name:     "raw cards monthly",
			values:   model.FormValues{Term: model.TermMonthly, Raw: "20"},
			expected: 14,
		},
		{
			name:     "slabbed cards monthly",
			values:   model.FormValues{Term: model.TermMonthly, Slabbed: "10"},
			expected: 10,
		},
		{
			name:     "raw and slabbed combined",
			values:   model.FormValues{Term: model.TermMonthly, Raw: "20", Slabbed: "10"},
			expected: 24,
		},
		{
			name:     "yearly term uses yearly rates",
			values:   model.FormValues{Term: model.TermYearly, Raw: "20", Slabbed: "10"},
			expected: 240,
		},
		{
			name: "invalid raw contributes zero",
			values: model.FormValues{
				Term: model.TermMonthly, Raw: "abc", Slabbed: "10",
			},
			expected: 10,
		},
		{
			name: "sealed volume priced per cubic centimeter",
			values: model.FormValues{
				Term:      model.TermMonthly,
				HasSealed: true,
				Size:      model.Size{Length: "20", Width: "10", Height: "10"},
			},
			expected: 5, // 2000 cm3 x 0.0025
		},
		{
			name: "sealed price clamped to monthly floor",
			values: model.FormValues{
				Term:      model.TermMonthly,
				HasSealed: true,
				Size:      model.Size{Length: "10", Width: "10", Height: "10"},
			},
			expected: 3, // 1000 cm3 x 0.0025 = 2.50, floored at 3
		},
		{
			name: "sealed price clamped to yearly floor",
			values: model.FormValues{
				Term:      model.TermYearly,
				HasSealed: true,
				Size:      model.Size{Length: "10", Width: "10", Height: "10"},
			},
			expected: 30, // 1000 cm3 x 0.025 = 25, floored at 30
		},
		{
			name: "sealed skipped below minimum volume",
			values: model.FormValues{
				Term:      model.TermMonthly,
				Raw:       "20",
				HasSealed: true,
				Size:      model.Size{Length: "5", Width: "5", Height: "5"},
			},
			expected: 14, // volume error gates the sealed contribution
		},
		{
			name: "sealed skipped with invalid dimension",
			values: model.FormValues{
				Term:      model.TermMonthly,
				Slabbed:   "10",
				HasSealed: true,
				Size:      model.Size{Length: "abc", Width: "10", Height: "10"},
			},
			expected: 10,
		},
		{
			name: "all three categories",
			values: model.FormValues{
				Term:      model.TermMonthly,
				Raw:       "20",
				Slabbed:   "10",
				HasSealed: true,
				Size:      model.Size{Length: "20", Width: "10", Height: "10"},
			},
			expected: 29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validator.Validate(tt.values)
			assert.InDelta(t, tt.expected, pricer.Quote(tt.values, errs), 1e-9)
		})
	}
}

// TestPricingServiceQuoteMonotonic tests that adding items never lowers
// the price.
func TestPricingServiceQuoteMonotonic(t *testing.T) {
	pricer := testPricer()
	validator := NewValidator(testLimits())

	small := model.FormValues{Term: model.TermMonthly, Raw: "10"}
	large := model.FormValues{Term: model.TermMonthly, Raw: "50"}

	smallPrice := pricer.Quote(small, validator.Validate(small))
	largePrice := pricer.Quote(large, validator.Validate(large))
	assert.Greater(t, largePrice, smallPrice)
}

// TestPricingServiceSealedPrice tests the sealed contribution in isolation.
func TestPricingServiceSealedPrice(t *testing.T) {
	pricer := testPricer()

	tests := []struct {
		name     string
		values   model.FormValues
		expected float64
	}{
		{
			name: "above floor",
			values: model.FormValues{
				Term: model.TermMonthly,
				Size: model.Size{Length: "20", Width: "10", Height: "10"},
			},
			expected: 5,
		},
		{
			name: "below floor is clamped up",
			values: model.FormValues{
				Term: model.TermMonthly,
				Size: model.Size{Length: "10", Width: "10", Height: "10"},
			},
			expected: 3,
		},
		{
			name: "undefined volume prices at zero",
			values: model.FormValues{
				Term: model.TermMonthly,
				Size: model.Size{Length: "", Width: "10", Height: "10"},
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, pricer.SealedPrice(tt.values), 1e-9)
		})
	}
}

// TestPricingServiceSavings tests the yearly-vs-monthly comparison.
func TestPricingServiceSavings(t *testing.T) {
	pricer := testPricer()

	t.Run("yearly discount on raw cards", func(t *testing.T) {
		values := model.FormValues{Term: model.TermMonthly, Raw: "20"}
		// monthly 14 x 12 = 168, yearly 140 -> 16.67% saved
		assert.InDelta(t, 16.6667, pricer.Savings(values), 0.001)
	})

	t.Run("savings independent of selected term", func(t *testing.T) {
		monthly := model.FormValues{Term: model.TermMonthly, Raw: "20", Slabbed: "10"}
		yearly := monthly
		yearly.Term = model.TermYearly
		assert.InDelta(t, pricer.Savings(monthly), pricer.Savings(yearly), 1e-9)
	})

	t.Run("empty form yields NaN", func(t *testing.T) {
		values := model.EmptyFormValues(model.TermMonthly)
		assert.True(t, math.IsNaN(pricer.Savings(values)))
	})

	t.Run("invalid-only form yields NaN", func(t *testing.T) {
		values := model.FormValues{Term: model.TermMonthly, Raw: "abc"}
		assert.True(t, math.IsNaN(pricer.Savings(values)))
	})

	t.Run("zero monthly rate yields NaN not infinity", func(t *testing.T) {
		// Regular total is 0 while the yearly total is not; the
		// comparison is undefined, never infinite.
		matrix := model.PriceMatrix{
			model.TermYearly: {
				model.CategoryRaw: {ProductRef: "price_raw_y", UnitPrice: 7},
			},
		}
		zeroMonthly := NewPricingService(WithMatrix(matrix), WithLimits(testLimits()))
		savings := zeroMonthly.Savings(model.FormValues{Term: model.TermMonthly, Raw: "20"})
		assert.True(t, math.IsNaN(savings))
		assert.False(t, math.IsInf(savings, 0))
	})

	t.Run("result is never negative", func(t *testing.T) {
		values := model.FormValues{Term: model.TermMonthly, Raw: "20"}
		assert.GreaterOrEqual(t, pricer.Savings(values), 0.0)
	})
}

// TestPercentageChange tests the underlying percentage helper.
func TestPercentageChange(t *testing.T) {
	assert.InDelta(t, 50, percentageChange(50, 100), 1e-9)
	assert.InDelta(t, 0, percentageChange(100, 100), 1e-9)
	assert.InDelta(t, -25, percentageChange(125, 100), 1e-9)
	assert.True(t, math.IsNaN(percentageChange(10, 0)))
	assert.False(t, math.IsInf(percentageChange(10, 0), 0))
	assert.True(t, math.IsNaN(percentageChange(0, 0)))
}

// TestPricingServiceEmptyMatrix tests that a missing matrix entry prices
// at zero instead of panicking.
func TestPricingServiceEmptyMatrix(t *testing.T) {
	pricer := NewPricingService(WithLimits(testLimits()))
	validator := NewValidator(testLimits())

	values := model.FormValues{Term: model.TermMonthly, Raw: "20"}
	assert.Zero(t, pricer.Quote(values, validator.Validate(values)))
}
