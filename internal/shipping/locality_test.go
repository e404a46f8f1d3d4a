package shipping

import (
	"testing"

	"github.com/andesmarket/shipping-backend/pkg/db/models"
	"github.com/andesmarket/shipping-backend/pkg/types"
)

func TestApplyLocalityRateOverrideReplacesPrice(t *testing.T) {
	rows := []models.LocalityRate{
		{LocalityCode: "13101", LocalityName: "Providencia", OverridePriceCents: intPtr(1500), IsActive: true},
	}

	if got := applyLocalityRate(4000, rows, "Providencia"); got != 1500 {
		t.Fatalf("expected override 1500, got %d", got)
	}
}

func TestApplyLocalityRateAdjustmentAdds(t *testing.T) {
	rows := []models.LocalityRate{
		{LocalityCode: "13120", LocalityName: "Ñuñoa", AdjustmentCents: 800, IsActive: true},
	}

	if got := applyLocalityRate(4000, rows, "nunoa"); got != 4800 {
		t.Fatalf("expected 4800, got %d", got)
	}
}

func TestApplyLocalityRateNegativeClampsToZero(t *testing.T) {
	rows := []models.LocalityRate{
		{LocalityName: "Centro", AdjustmentCents: -5000, IsActive: true},
	}

	if got := applyLocalityRate(3000, rows, "Centro"); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
}

func TestApplyLocalityRateSkipsInactiveAndNonMatching(t *testing.T) {
	rows := []models.LocalityRate{
		{LocalityName: "Providencia", OverridePriceCents: intPtr(1), IsActive: false},
		{LocalityName: "Las Condes", AdjustmentCents: 999, IsActive: true},
	}

	if got := applyLocalityRate(4000, rows, "Maipú"); got != 4000 {
		t.Fatalf("expected unchanged price, got %d", got)
	}
}

func TestLegacyLocalityPriceMatchesByContainment(t *testing.T) {
	prices := types.LocalityPrices{
		"Providencia": 2500,
		"Las Condes":  3500,
	}

	got, ok := legacyLocalityPrice(prices, "providencia, santiago")
	if !ok || got != 2500 {
		t.Fatalf("expected 2500, got %d ok=%v", got, ok)
	}

	if _, ok := legacyLocalityPrice(prices, "Arica"); ok {
		t.Fatalf("expected no match for Arica")
	}
	if _, ok := legacyLocalityPrice(prices, ""); ok {
		t.Fatalf("expected no match for empty locality")
	}
}
