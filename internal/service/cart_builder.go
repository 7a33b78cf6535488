package service

import (
	"math"
	"strconv"

	"github.com/kyhorne/coload/internal/domain/model"
)

// CartBuilder converts validated form values into checkout line items.
// It assumes the caller already validated the values; it does not
// re-validate.
type CartBuilder struct {
	matrix model.PriceMatrix
	pricer PriceCalculator
}

// NewCartBuilder creates a CartBuilder over the given matrix and pricer.
func NewCartBuilder(matrix model.PriceMatrix, pricer PriceCalculator) *CartBuilder {
	return &CartBuilder{matrix: matrix, pricer: pricer}
}

// Build returns one line item per qualifying category, in Raw, Slabbed,
// Sealed order.
//
// Raw and Slabbed qualify when the field contains a whole number
// greater than zero; the line quantity is that count. Sealed qualifies
// when the toggle is on and the volume meets the minimum; its line
// quantity is the sealed price in cents (see model.CartItem).
func (b *CartBuilder) Build(values model.FormValues, limits model.PricingLimits) model.Cart {
	items := make([]model.CartItem, 0, len(model.Categories))

	if qty := wholeQuantity(values.Raw); qty > 0 {
		items = append(items, model.CartItem{
			Quantity:   qty,
			ProductRef: b.matrix.Rate(values.Term, model.CategoryRaw).ProductRef,
		})
	}

	if qty := wholeQuantity(values.Slabbed); qty > 0 {
		items = append(items, model.CartItem{
			Quantity:   qty,
			ProductRef: b.matrix.Rate(values.Term, model.CategorySlabbed).ProductRef,
		})
	}

	if values.HasSealed && values.Size.Volume() >= limits.MinSealedVolume {
		cents := int(math.Round(b.pricer.SealedPrice(values) * 100))
		if cents > 0 {
			items = append(items, model.CartItem{
				Quantity:   cents,
				ProductRef: b.matrix.Rate(values.Term, model.CategorySealed).ProductRef,
			})
		}
	}

	return model.Cart{Items: items}
}

// wholeQuantity parses a quantity field that contains a whole number,
// returning 0 for anything else.
func wholeQuantity(input string) int {
	if !model.ContainsNumber(input) {
		return 0
	}
	qty, err := strconv.Atoi(input)
	if err != nil {
		return 0
	}
	return qty
}
