package service

import (
	"github.com/kyhorne/coload/internal/domain/model"
)

// testMatrix returns the rate table used across the service tests. The
// yearly rates carry the bulk discount (10x monthly).
func testMatrix() model.PriceMatrix {
	return model.PriceMatrix{
		model.TermMonthly: {
			model.CategoryRaw:     {ProductRef: "price_raw_m", UnitPrice: 0.7},
			model.CategorySlabbed: {ProductRef: "price_slab_m", UnitPrice: 1},
			model.CategorySealed:  {ProductRef: "price_seal_m", UnitPrice: 0.0025},
		},
		model.TermYearly: {
			model.CategoryRaw:     {ProductRef: "price_raw_y", UnitPrice: 7},
			model.CategorySlabbed: {ProductRef: "price_slab_y", UnitPrice: 10},
			model.CategorySealed:  {ProductRef: "price_seal_y", UnitPrice: 0.025},
		},
	}
}

// testLimits returns the validation limits used across the service tests.
func testLimits() model.PricingLimits {
	return model.PricingLimits{
		MaxInput:        10000,
		MinSealedVolume: 550,
		MinSealedPrice: map[model.Term]float64{
			model.TermMonthly: 3,
			model.TermYearly:  30,
		},
	}
}

// testPricer builds a PricingService over the shared fixtures.
func testPricer() *PricingService {
	return NewPricingService(
		WithMatrix(testMatrix()),
		WithLimits(testLimits()),
	)
}
