package shipping

import (
	"math"

	"github.com/andesmarket/shipping-backend/pkg/db/models"
	"github.com/andesmarket/shipping-backend/pkg/enums"
)

const (
	gramsPerKilogram = 1000.0
	gramsPerPound    = 453.592
	gramsPerOunce    = 28.3495
)

// variantGrams converts a variant's declared weight to integer grams,
// rounding to the nearest gram.
func variantGrams(variant models.ProductVariant) int {
	value := variant.WeightValue
	switch variant.WeightUnit {
	case enums.WeightUnitKilograms:
		value *= gramsPerKilogram
	case enums.WeightUnitPounds:
		value *= gramsPerPound
	case enums.WeightUnitOunces:
		value *= gramsPerOunce
	}
	return int(math.Round(value))
}

// estimateWeight sums the cart's weight in grams. Lines whose variant is
// missing or carries no usable weight contribute defaultItemGrams per unit,
// so an unsynced catalog still produces a workable estimate.
func estimateWeight(items []CartItem, variants map[string]models.ProductVariant, defaultItemGrams int) int {
	total := 0
	for _, item := range items {
		qty := item.Quantity
		if qty <= 0 {
			continue
		}
		grams := defaultItemGrams
		if variant, ok := variants[item.VariantRef]; ok && variant.HasWeight() {
			grams = variantGrams(variant)
		}
		total += grams * qty
	}
	return total
}

// subtotalCents sums quantity times unit price across the lines.
func subtotalCents(items []CartItem) int {
	total := 0
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		total += item.UnitPriceCents * item.Quantity
	}
	return total
}

// itemCount sums line quantities.
func itemCount(items []CartItem) int {
	total := 0
	for _, item := range items {
		if item.Quantity > 0 {
			total += item.Quantity
		}
	}
	return total
}
