package shipping

import (
	"sort"

	"github.com/andesmarket/shipping-backend/pkg/db/models"
)

// rateMatches reports whether the cart falls inside the tier's bounds.
// Maximums are inclusive; nil maximums are unbounded.
func rateMatches(rate *models.ShippingRate, weightGrams, subtotalCents int) bool {
	if weightGrams < rate.MinWeightGrams {
		return false
	}
	if rate.MaxWeightGrams != nil && weightGrams > *rate.MaxWeightGrams {
		return false
	}
	if subtotalCents < rate.MinSubtotalCents {
		return false
	}
	if rate.MaxSubtotalCents != nil && subtotalCents > *rate.MaxSubtotalCents {
		return false
	}
	return true
}

// selectRate picks the tier that prices the cart for one method. Active
// tiers are tried in priority order, highest first, stable on storage order
// for ties. When no tier's bounds match, a catch-all tier wins; failing
// that the lowest-priority tier is used so a configured method always
// prices.
func selectRate(rates []models.ShippingRate, weightGrams, subtotalCents int) *models.ShippingRate {
	active := make([]*models.ShippingRate, 0, len(rates))
	for i := range rates {
		if rates[i].IsActive {
			active = append(active, &rates[i])
		}
	}
	if len(active) == 0 {
		return nil
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority > active[j].Priority
	})

	for _, rate := range active {
		if rateMatches(rate, weightGrams, subtotalCents) {
			return rate
		}
	}
	for _, rate := range active {
		if rate.IsCatchAll() {
			return rate
		}
	}
	return active[len(active)-1]
}

// extraWeightSurcharge prices the grams above the tier's weight ceiling at
// the per-kilogram extra rate, rounding the excess up to whole kilograms.
func extraWeightSurcharge(rate *models.ShippingRate, weightGrams int) int {
	if rate.PricePerExtraKgCents <= 0 || rate.MaxWeightGrams == nil {
		return 0
	}
	excess := weightGrams - *rate.MaxWeightGrams
	if excess <= 0 {
		return 0
	}
	extraKilos := (excess + 999) / 1000
	return extraKilos * rate.PricePerExtraKgCents
}
