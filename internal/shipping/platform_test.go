package shipping

import (
	"testing"

	"github.com/andesmarket/shipping-backend/pkg/shopify"
)

func TestPlatformRateOptionsFiltersBySubtotal(t *testing.T) {
	zones := []shopify.ShippingZone{
		{
			Name: "Chile",
			PriceBasedRates: []shopify.PriceBasedRate{
				{Name: "Standard", PriceCents: 3990, MaxOrderSubtotalCents: intPtr(50000)},
				{Name: "Bulk", PriceCents: 1990, MinOrderSubtotalCents: intPtr(60000)},
			},
		},
	}
	sc := &storeContext{subtotalCents: 20000, weightGrams: 1000}

	options := platformRateOptions(zones, sc)
	if len(options) != 1 {
		t.Fatalf("expected 1 option, got %d", len(options))
	}
	if options[0].Title != "Standard" || options[0].PriceCents != 3990 {
		t.Fatalf("unexpected option %+v", options[0])
	}
	if options[0].Code != "standard" {
		t.Fatalf("expected folded code, got %q", options[0].Code)
	}
}

func TestPlatformRateOptionsDeduplicatesByNameKeepingLowest(t *testing.T) {
	zones := []shopify.ShippingZone{
		{Name: "North", PriceBasedRates: []shopify.PriceBasedRate{{Name: "Standard", PriceCents: 4990}}},
		{Name: "South", PriceBasedRates: []shopify.PriceBasedRate{{Name: "Standard", PriceCents: 2990}}},
	}
	sc := &storeContext{subtotalCents: 1000}

	options := platformRateOptions(zones, sc)
	if len(options) != 1 {
		t.Fatalf("expected duplicate names collapsed, got %d options", len(options))
	}
	if options[0].PriceCents != 2990 {
		t.Fatalf("expected lowest price kept, got %d", options[0].PriceCents)
	}
}

func TestPlatformRateOptionsWeightFallback(t *testing.T) {
	zones := []shopify.ShippingZone{
		{
			Name: "Chile",
			WeightBasedRates: []shopify.WeightBasedRate{
				{Name: "Light", PriceCents: 2500, WeightLowGrams: 0, WeightHighGrams: intPtr(2000)},
				{Name: "Heavy", PriceCents: 6500, WeightLowGrams: 2001},
			},
		},
	}
	sc := &storeContext{subtotalCents: 5000, weightGrams: 3000}

	options := platformRateOptions(zones, sc)
	if len(options) != 1 || options[0].Title != "Heavy" {
		t.Fatalf("expected the heavy weight rule, got %+v", options)
	}
}

func TestPlatformRateOptionsWeightRulesIgnoredWhenPriceRulesExist(t *testing.T) {
	zones := []shopify.ShippingZone{
		{
			Name: "Chile",
			PriceBasedRates: []shopify.PriceBasedRate{
				{Name: "Only big carts", PriceCents: 990, MinOrderSubtotalCents: intPtr(999999)},
			},
			WeightBasedRates: []shopify.WeightBasedRate{
				{Name: "Light", PriceCents: 2500},
			},
		},
	}
	sc := &storeContext{subtotalCents: 1000, weightGrams: 500}

	if options := platformRateOptions(zones, sc); len(options) != 0 {
		t.Fatalf("expected no options when price rules exist but none match, got %+v", options)
	}
}
