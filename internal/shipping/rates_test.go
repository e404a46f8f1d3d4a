package shipping

import (
	"testing"

	"github.com/andesmarket/shipping-backend/pkg/db/models"
)

func intPtr(v int) *int { return &v }

func TestSelectRatePrefersHigherPriorityAmongMatches(t *testing.T) {
	rates := []models.ShippingRate{
		{Name: "A", MinWeightGrams: 0, MaxWeightGrams: intPtr(1000), BasePriceCents: 2500, Priority: 1, IsActive: true},
		{Name: "B", MinWeightGrams: 500, MaxWeightGrams: intPtr(2000), BasePriceCents: 3000, Priority: 5, IsActive: true},
	}

	got := selectRate(rates, 800, 10000)
	if got == nil || got.Name != "B" {
		t.Fatalf("expected tier B, got %+v", got)
	}
	if got.BasePriceCents != 3000 {
		t.Fatalf("expected 3000, got %d", got.BasePriceCents)
	}
}

func TestSelectRateMaxBoundsAreInclusive(t *testing.T) {
	rates := []models.ShippingRate{
		{Name: "small", MaxWeightGrams: intPtr(1000), BasePriceCents: 2000, Priority: 2, IsActive: true},
		{Name: "large", MinWeightGrams: 1001, BasePriceCents: 4000, Priority: 1, IsActive: true},
	}

	if got := selectRate(rates, 1000, 0); got == nil || got.Name != "small" {
		t.Fatalf("expected small at exactly 1000g, got %+v", got)
	}
	if got := selectRate(rates, 1001, 0); got == nil || got.Name != "large" {
		t.Fatalf("expected large at 1001g, got %+v", got)
	}
}

func TestSelectRateFallsBackToCatchAll(t *testing.T) {
	rates := []models.ShippingRate{
		{Name: "bounded", MinWeightGrams: 0, MaxWeightGrams: intPtr(100), BasePriceCents: 1000, Priority: 5, IsActive: true},
		{Name: "anything", BasePriceCents: 9000, Priority: 0, IsActive: true},
	}

	got := selectRate(rates, 50000, 0)
	if got == nil || got.Name != "anything" {
		t.Fatalf("expected the catch-all tier, got %+v", got)
	}
}

func TestSelectRateFallsBackToLowestPriority(t *testing.T) {
	rates := []models.ShippingRate{
		{Name: "high", MinWeightGrams: 10000, BasePriceCents: 8000, Priority: 9, IsActive: true},
		{Name: "low", MinSubtotalCents: 999999, BasePriceCents: 2000, Priority: 1, IsActive: true},
	}

	got := selectRate(rates, 100, 100)
	if got == nil || got.Name != "low" {
		t.Fatalf("expected lowest-priority tier, got %+v", got)
	}
}

func TestSelectRateIgnoresInactiveTiers(t *testing.T) {
	rates := []models.ShippingRate{
		{Name: "off", BasePriceCents: 1, Priority: 9, IsActive: false},
	}
	if got := selectRate(rates, 100, 100); got != nil {
		t.Fatalf("expected nil with only inactive tiers, got %+v", got)
	}
}

func TestExtraWeightSurchargeRoundsUpPerKilogram(t *testing.T) {
	rate := &models.ShippingRate{MaxWeightGrams: intPtr(5000), PricePerExtraKgCents: 500}

	if got := extraWeightSurcharge(rate, 5200); got != 500 {
		t.Fatalf("expected 500 for 200g excess, got %d", got)
	}
	if got := extraWeightSurcharge(rate, 7000); got != 1000 {
		t.Fatalf("expected 1000 for 2000g excess, got %d", got)
	}
	if got := extraWeightSurcharge(rate, 5000); got != 0 {
		t.Fatalf("expected 0 at the ceiling, got %d", got)
	}
}

func TestExtraWeightSurchargeNeedsCeilingAndRate(t *testing.T) {
	unbounded := &models.ShippingRate{PricePerExtraKgCents: 500}
	if got := extraWeightSurcharge(unbounded, 99000); got != 0 {
		t.Fatalf("expected 0 for unbounded tier, got %d", got)
	}
	free := &models.ShippingRate{MaxWeightGrams: intPtr(1000)}
	if got := extraWeightSurcharge(free, 5000); got != 0 {
		t.Fatalf("expected 0 without an extra rate, got %d", got)
	}
}
