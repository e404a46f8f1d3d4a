package shipping

import (
	"context"

	"github.com/andesmarket/shipping-backend/pkg/enums"
	pkgerrors "github.com/andesmarket/shipping-backend/pkg/errors"
)

const legacyOptionCode = "standard"

// legacyOptions prices the cart from the single-record configuration kept
// for stores that never migrated to methods and tiers. flat_shopify stores
// yield nothing here so the platform tier can take over; manual_zones
// stores produce one flat-priced option from the resolved zone.
func (s *service) legacyOptions(ctx context.Context, sc *storeContext) ([]PricedOption, error) {
	cfg, err := s.repo.FindLegacyConfig(ctx, sc.storeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load legacy shipping config")
	}
	if cfg == nil || !cfg.IsActive {
		return nil, nil
	}
	if cfg.ShippingType == enums.ShippingTypeFlatShopify {
		return nil, nil
	}

	zones, err := s.repo.FindActiveZones(ctx, sc.storeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shipping zones")
	}
	zone := resolveZone(zones, sc.address.Subdivision)
	if zone == nil {
		return nil, nil
	}

	price := zone.FlatPriceCents
	if zone.HasLocalityBreakdown {
		if localityPrice, ok := legacyLocalityPrice(cfg.LocalityPrices, sc.address.Locality); ok {
			price = localityPrice
		}
	}
	if cfg.FreeShippingThresholdCents != nil && sc.subtotalCents >= *cfg.FreeShippingThresholdCents {
		price = 0
	}

	option := buildOption(
		cfg.ID.String(),
		s.defaults.DefaultOptionTitle,
		legacyOptionCode,
		price,
		nil,
		enums.ShippingSourceLegacy,
	)
	return []PricedOption{option}, nil
}
