package shipping

import (
	"sort"

	"github.com/andesmarket/shipping-backend/pkg/db/models"
	"github.com/andesmarket/shipping-backend/pkg/normalize"
)

// qualifiesFreeShipping reports whether any active rule zeroes the price for
// the given method and zone. Rules are evaluated highest priority first.
// Scope lists gate applicability (empty lists match everything); every bound
// the rule declares must then hold, with inclusive maximums.
func qualifiesFreeShipping(rules []models.FreeShippingRule, methodCode, zoneCode string, sc *storeContext) bool {
	ordered := make([]*models.FreeShippingRule, 0, len(rules))
	for i := range rules {
		if rules[i].IsActive {
			ordered = append(ordered, &rules[i])
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	for _, rule := range ordered {
		if !scopeAllows(rule.MethodCodes, methodCode) {
			continue
		}
		if !scopeAllows(rule.ZoneCodes, zoneCode) {
			continue
		}
		if ruleBoundsHold(rule, sc) {
			return true
		}
	}
	return false
}

func scopeAllows(codes []string, code string) bool {
	if len(codes) == 0 {
		return true
	}
	for _, candidate := range codes {
		if normalize.Equal(candidate, code) {
			return true
		}
	}
	return false
}

func ruleBoundsHold(rule *models.FreeShippingRule, sc *storeContext) bool {
	if rule.MinSubtotalCents != nil && sc.subtotalCents < *rule.MinSubtotalCents {
		return false
	}
	if rule.MaxSubtotalCents != nil && sc.subtotalCents > *rule.MaxSubtotalCents {
		return false
	}
	if rule.MinWeightGrams != nil && sc.weightGrams < *rule.MinWeightGrams {
		return false
	}
	if rule.MaxWeightGrams != nil && sc.weightGrams > *rule.MaxWeightGrams {
		return false
	}
	if rule.MinItemCount != nil && sc.itemCount < *rule.MinItemCount {
		return false
	}
	return true
}
