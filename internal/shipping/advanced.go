package shipping

import (
	"context"
	"sort"

	"github.com/andesmarket/shipping-backend/pkg/db/models"
	"github.com/andesmarket/shipping-backend/pkg/enums"
	pkgerrors "github.com/andesmarket/shipping-backend/pkg/errors"
	"github.com/andesmarket/shipping-backend/pkg/normalize"
)

// advancedOptions prices the cart from the store's zone/method/tier tables.
// An empty result (no zones configured, or no method serves the comuna)
// hands resolution to the next tier.
func (s *service) advancedOptions(ctx context.Context, sc *storeContext) ([]PricedOption, error) {
	zones, err := s.repo.FindActiveZones(ctx, sc.storeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shipping zones")
	}
	if len(zones) == 0 {
		return nil, nil
	}

	zone := resolveZone(zones, sc.address.Subdivision)
	if zone == nil || len(zone.Methods) == 0 {
		return nil, nil
	}

	rules, err := s.repo.FindFreeShippingRules(ctx, sc.storeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load free shipping rules")
	}

	methods := make([]*models.ShippingMethod, 0, len(zone.Methods))
	for i := range zone.Methods {
		if zone.Methods[i].IsActive {
			methods = append(methods, &zone.Methods[i])
		}
	}
	sort.SliceStable(methods, func(i, j int) bool {
		return methods[i].SortOrder < methods[j].SortOrder
	})

	options := make([]PricedOption, 0, len(methods))
	for _, method := range methods {
		if !methodServesLocality(method, sc.address.Locality) {
			continue
		}
		rate := selectRate(method.Rates, sc.weightGrams, sc.subtotalCents)
		if rate == nil {
			continue
		}

		price := rate.BasePriceCents + extraWeightSurcharge(rate, sc.weightGrams)
		price = applyLocalityRate(price, method.LocalityRates, sc.address.Locality)
		if qualifiesFreeShipping(rules, method.Code, zone.RegionCode, sc) {
			price = 0
		}

		options = append(options, buildOption(
			method.ID.String(),
			method.Name,
			method.Code,
			price,
			method.EstimatedDelivery,
			enums.ShippingSourceAdvanced,
		))
	}
	return options, nil
}

// methodServesLocality checks the method's optional comuna allow-list.
// An empty list serves the whole zone.
func methodServesLocality(method *models.ShippingMethod, locality string) bool {
	if len(method.LocalityCodes) == 0 {
		return true
	}
	for _, code := range method.LocalityCodes {
		if normalize.Equal(code, locality) || normalize.EitherContains(code, locality) {
			return true
		}
	}
	return false
}
