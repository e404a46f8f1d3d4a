package shipping

import (
	"testing"

	"github.com/andesmarket/shipping-backend/pkg/db/models"
)

func TestQualifiesFreeShippingSubtotalThreshold(t *testing.T) {
	rules := []models.FreeShippingRule{
		{Name: "big carts", MinSubtotalCents: intPtr(25000), IsActive: true},
	}

	qualified := &storeContext{subtotalCents: 30000, weightGrams: 1000, itemCount: 2}
	if !qualifiesFreeShipping(rules, "express", "RM", qualified) {
		t.Fatalf("expected 30000 subtotal to qualify")
	}

	short := &storeContext{subtotalCents: 24999, weightGrams: 1000, itemCount: 2}
	if qualifiesFreeShipping(rules, "express", "RM", short) {
		t.Fatalf("expected 24999 subtotal to miss the threshold")
	}
}

func TestQualifiesFreeShippingAllBoundsMustHold(t *testing.T) {
	rules := []models.FreeShippingRule{
		{
			Name:             "light big carts",
			MinSubtotalCents: intPtr(20000),
			MaxWeightGrams:   intPtr(3000),
			MinItemCount:     intPtr(2),
			IsActive:         true,
		},
	}

	ok := &storeContext{subtotalCents: 20000, weightGrams: 3000, itemCount: 2}
	if !qualifiesFreeShipping(rules, "std", "RM", ok) {
		t.Fatalf("expected inclusive bounds to qualify")
	}

	heavy := &storeContext{subtotalCents: 20000, weightGrams: 3001, itemCount: 2}
	if qualifiesFreeShipping(rules, "std", "RM", heavy) {
		t.Fatalf("expected overweight cart to fail the weight bound")
	}

	single := &storeContext{subtotalCents: 20000, weightGrams: 1000, itemCount: 1}
	if qualifiesFreeShipping(rules, "std", "RM", single) {
		t.Fatalf("expected single item to fail the item bound")
	}
}

func TestQualifiesFreeShippingScopeLists(t *testing.T) {
	rules := []models.FreeShippingRule{
		{
			Name:        "express only in RM",
			MethodCodes: []string{"express"},
			ZoneCodes:   []string{"RM"},
			IsActive:    true,
		},
	}
	sc := &storeContext{subtotalCents: 1000, weightGrams: 500, itemCount: 1}

	if !qualifiesFreeShipping(rules, "express", "RM", sc) {
		t.Fatalf("expected scoped rule to match express/RM")
	}
	if qualifiesFreeShipping(rules, "standard", "RM", sc) {
		t.Fatalf("expected other methods to be out of scope")
	}
	if qualifiesFreeShipping(rules, "express", "V", sc) {
		t.Fatalf("expected other zones to be out of scope")
	}
}

func TestQualifiesFreeShippingIgnoresInactiveRules(t *testing.T) {
	rules := []models.FreeShippingRule{
		{Name: "disabled", IsActive: false},
	}
	sc := &storeContext{subtotalCents: 999999, itemCount: 10}
	if qualifiesFreeShipping(rules, "std", "RM", sc) {
		t.Fatalf("expected inactive rule to never qualify")
	}
}
