package shipping

import (
	"testing"

	"github.com/andesmarket/shipping-backend/pkg/db/models"
	"github.com/andesmarket/shipping-backend/pkg/enums"
)

func TestVariantGramsConvertsUnits(t *testing.T) {
	cases := []struct {
		name  string
		value float64
		unit  enums.WeightUnit
		want  int
	}{
		{"grams pass through", 250, enums.WeightUnitGrams, 250},
		{"kilograms", 1.5, enums.WeightUnitKilograms, 1500},
		{"pounds", 2, enums.WeightUnitPounds, 907},
		{"ounces", 10, enums.WeightUnitOunces, 283},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := variantGrams(models.ProductVariant{WeightValue: tc.value, WeightUnit: tc.unit})
			if got != tc.want {
				t.Fatalf("expected %d grams, got %d", tc.want, got)
			}
		})
	}
}

func TestEstimateWeightUsesDefaultForUnknownVariants(t *testing.T) {
	items := []CartItem{
		{VariantRef: "known", Quantity: 2},
		{VariantRef: "missing", Quantity: 3},
		{VariantRef: "zero-weight", Quantity: 1},
	}
	variants := map[string]models.ProductVariant{
		"known":       {WeightValue: 1, WeightUnit: enums.WeightUnitKilograms},
		"zero-weight": {WeightValue: 0, WeightUnit: enums.WeightUnitGrams},
	}

	got := estimateWeight(items, variants, 500)
	// 2x1000 declared + 3x500 missing + 1x500 unusable weight
	if got != 4000 {
		t.Fatalf("expected 4000 grams, got %d", got)
	}
}

func TestEstimateWeightSkipsNonPositiveQuantities(t *testing.T) {
	items := []CartItem{
		{VariantRef: "a", Quantity: 0},
		{VariantRef: "b", Quantity: -1},
	}
	if got := estimateWeight(items, nil, 500); got != 0 {
		t.Fatalf("expected 0 grams, got %d", got)
	}
}

func TestSubtotalAndItemCount(t *testing.T) {
	items := []CartItem{
		{Quantity: 2, UnitPriceCents: 1500},
		{Quantity: 1, UnitPriceCents: 990},
		{Quantity: 0, UnitPriceCents: 99999},
	}
	if got := subtotalCents(items); got != 3990 {
		t.Fatalf("expected subtotal 3990, got %d", got)
	}
	if got := itemCount(items); got != 3 {
		t.Fatalf("expected 3 items, got %d", got)
	}
}
