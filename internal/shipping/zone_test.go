package shipping

import (
	"testing"

	"github.com/andesmarket/shipping-backend/pkg/db/models"
)

func zoneFixture(code, name string) models.ShippingZone {
	return models.ShippingZone{RegionCode: code, Name: name, IsActive: true}
}

func TestResolveZoneMatchesByRegionCode(t *testing.T) {
	zones := []models.ShippingZone{
		zoneFixture("RM", "Santiago y alrededores"),
		zoneFixture("V", "Costa central"),
	}

	got := resolveZone(zones, "Región Metropolitana de Santiago")
	if got == nil || got.RegionCode != "RM" {
		t.Fatalf("expected RM zone, got %+v", got)
	}

	got = resolveZone(zones, "Valparaíso")
	if got == nil || got.RegionCode != "V" {
		t.Fatalf("expected V zone, got %+v", got)
	}
}

func TestResolveZoneMatchesCodeSpelledOut(t *testing.T) {
	zones := []models.ShippingZone{
		zoneFixture("VIII", "Sur"),
	}
	got := resolveZone(zones, "Región del Biobío")
	if got == nil || got.RegionCode != "VIII" {
		t.Fatalf("expected VIII zone, got %+v", got)
	}
}

func TestResolveZoneFallsBackToNameContainment(t *testing.T) {
	zones := []models.ShippingZone{
		zoneFixture("NORTE", "Zona norte"),
		zoneFixture("PATAGONIA", "Aysén y Magallanes"),
	}
	got := resolveZone(zones, "Aysén")
	if got == nil || got.RegionCode != "PATAGONIA" {
		t.Fatalf("expected PATAGONIA zone, got %+v", got)
	}
}

func TestResolveZoneDefaultsToFirstZone(t *testing.T) {
	zones := []models.ShippingZone{
		zoneFixture("RM", "Santiago"),
		zoneFixture("V", "Valparaíso"),
	}
	got := resolveZone(zones, "Isla de Pascua")
	if got == nil || got.RegionCode != "RM" {
		t.Fatalf("expected first zone as default, got %+v", got)
	}
}

func TestResolveZoneEmpty(t *testing.T) {
	if got := resolveZone(nil, "Santiago"); got != nil {
		t.Fatalf("expected nil for no zones, got %+v", got)
	}
}

func TestRegionCodeFromNameSubstring(t *testing.T) {
	if code := regionCodeFromName("Chile, Región de Los Lagos"); code != "X" {
		t.Fatalf("expected X, got %q", code)
	}
	if code := regionCodeFromName("unknown place"); code != "" {
		t.Fatalf("expected empty code, got %q", code)
	}
}

func TestRegionCodeFromNameStableWithTwoRegions(t *testing.T) {
	// The scan walks region names in sorted order, so an input mentioning
	// two regions always resolves to the same one.
	for i := 0; i < 50; i++ {
		if code := regionCodeFromName("límite entre Antofagasta y Atacama"); code != "II" {
			t.Fatalf("expected II, got %q", code)
		}
	}
}
