package shipping

import (
	"context"
	"sort"

	"github.com/andesmarket/shipping-backend/pkg/enums"
)

const (
	freeTitleSuffix   = " - Gratis"
	defaultOptionID   = "default-standard"
	defaultOptionCode = "standard"
)

// resolveStore walks the fallback chain for one store. The first tier that
// yields at least one option wins; a tier error aborts the store. The
// hard-coded default closes the chain, so a store with items always quotes.
func (s *service) resolveStore(ctx context.Context, sc *storeContext) ([]PricedOption, enums.ShippingSource, error) {
	tiers := []struct {
		source enums.ShippingSource
		run    func(context.Context, *storeContext) ([]PricedOption, error)
	}{
		{enums.ShippingSourceAdvanced, s.advancedOptions},
		{enums.ShippingSourceLegacy, s.legacyOptions},
		{enums.ShippingSourcePlatform, s.platformOptions},
	}

	for _, tier := range tiers {
		options, err := tier.run(ctx, sc)
		if err != nil {
			return nil, tier.source, err
		}
		if len(options) > 0 {
			return options, tier.source, nil
		}
	}
	return []PricedOption{s.defaultOption()}, enums.ShippingSourceDefault, nil
}

// defaultOption is the guaranteed last resort so checkout never blocks on
// shipping configuration.
func (s *service) defaultOption() PricedOption {
	return buildOption(
		defaultOptionID,
		s.defaults.DefaultOptionTitle,
		defaultOptionCode,
		s.defaults.DefaultPriceCents,
		nil,
		enums.ShippingSourceDefault,
	)
}

// buildOption assembles one priced option, marking zero-priced options as
// free in the title.
func buildOption(id, title, code string, priceCents int, estimatedDelivery *string, source enums.ShippingSource) PricedOption {
	if priceCents < 0 {
		priceCents = 0
	}
	isFree := priceCents == 0
	if isFree {
		title += freeTitleSuffix
	}
	return PricedOption{
		ID:                id,
		Title:             title,
		Code:              code,
		PriceCents:        priceCents,
		IsFree:            isFree,
		EstimatedDelivery: estimatedDelivery,
		Source:            source,
	}
}

// sortOptions orders a store's options free first, then by ascending price,
// stable on the tier's own ordering for ties.
func sortOptions(options []PricedOption) {
	sort.SliceStable(options, func(i, j int) bool {
		if options[i].IsFree != options[j].IsFree {
			return options[i].IsFree
		}
		return options[i].PriceCents < options[j].PriceCents
	})
}
