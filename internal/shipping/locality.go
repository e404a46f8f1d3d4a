package shipping

import (
	"sort"

	"github.com/andesmarket/shipping-backend/pkg/db/models"
	"github.com/andesmarket/shipping-backend/pkg/normalize"
	"github.com/andesmarket/shipping-backend/pkg/types"
)

// applyLocalityRate adjusts a method's tier price for the buyer's comuna.
// The first active row matching the comuna wins, stored order. An override
// replaces the price outright and discards any surcharge already applied;
// otherwise the adjustment is added. A negative result clamps to zero.
func applyLocalityRate(priceCents int, localities []models.LocalityRate, locality string) int {
	for i := range localities {
		row := &localities[i]
		if !row.IsActive {
			continue
		}
		if !localityRowMatches(row, locality) {
			continue
		}
		if row.OverridePriceCents != nil {
			priceCents = *row.OverridePriceCents
		} else {
			priceCents += row.AdjustmentCents
		}
		break
	}
	if priceCents < 0 {
		priceCents = 0
	}
	return priceCents
}

func localityRowMatches(row *models.LocalityRate, locality string) bool {
	if normalize.Equal(row.LocalityCode, locality) {
		return true
	}
	return normalize.EitherContains(row.LocalityName, locality)
}

// legacyLocalityPrice looks up a comuna price in the legacy flat-price map.
// Keys are matched by containment in either direction after folding; keys
// are scanned in sorted order so ambiguous maps resolve deterministically.
func legacyLocalityPrice(prices types.LocalityPrices, locality string) (int, bool) {
	if len(prices) == 0 || locality == "" {
		return 0, false
	}
	names := make([]string, 0, len(prices))
	for name := range prices {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if normalize.EitherContains(name, locality) {
			return prices[name], true
		}
	}
	return 0, false
}
