package shipping

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/andesmarket/shipping-backend/pkg/db/models"
	"github.com/andesmarket/shipping-backend/pkg/enums"
	pkgerrors "github.com/andesmarket/shipping-backend/pkg/errors"
	"github.com/andesmarket/shipping-backend/pkg/normalize"
	pkgredis "github.com/andesmarket/shipping-backend/pkg/redis"
	"github.com/andesmarket/shipping-backend/pkg/shopify"
)

// platformOptions prices the cart from the external platform's native
// shipping zones. Stores missing from the catalog or without a credential
// skip the tier; an upstream
// failure is logged and skipped too, because the hard-coded default below
// must still answer.
func (s *service) platformOptions(ctx context.Context, sc *storeContext) ([]PricedOption, error) {
	if s.platform == nil {
		return nil, nil
	}

	store, err := s.repo.FindStore(ctx, sc.storeID)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store")
	}
	if !store.HasPlatformCredential() {
		return nil, nil
	}

	zones, err := s.fetchPlatformZones(ctx, store)
	if err != nil {
		s.logg.Error(ctx, "platform shipping zones unavailable, skipping tier", err)
		return nil, nil
	}
	return platformRateOptions(zones, sc), nil
}

// fetchPlatformZones returns the store's platform zones, served from the
// response cache when one is wired. Cache failures degrade to a live call.
func (s *service) fetchPlatformZones(ctx context.Context, store *models.Store) ([]shopify.ShippingZone, error) {
	var cacheKey string
	if s.cache != nil {
		cacheKey = s.cache.PlatformZonesKey(store.ID.String())
		raw, err := s.cache.Get(ctx, cacheKey)
		switch {
		case err == nil:
			var zones []shopify.ShippingZone
			if unmarshalErr := json.Unmarshal([]byte(raw), &zones); unmarshalErr == nil {
				return zones, nil
			}
		case !errors.Is(err, pkgredis.Nil):
			s.logg.Error(ctx, "platform zones cache read failed", err)
		}
	}

	creds := shopify.Credentials{Domain: *store.PlatformDomain, Token: *store.PlatformToken}
	zones, err := s.platform.ListShippingZones(ctx, creds)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, marshalErr := json.Marshal(zones); marshalErr == nil {
			if setErr := s.cache.Set(ctx, cacheKey, payload, s.zoneCacheTTL); setErr != nil {
				s.logg.Error(ctx, "platform zones cache write failed", setErr)
			}
		}
	}
	return zones, nil
}

// platformRateOptions flattens the platform's rate rules into priced
// options. Price-based rules filtered by the cart subtotal take precedence;
// weight-based rules are consulted only when the store defines no
// price-based rules at all. Duplicated rule names keep the lowest price.
func platformRateOptions(zones []shopify.ShippingZone, sc *storeContext) []PricedOption {
	type candidate struct {
		name  string
		price int
	}

	var order []string
	best := make(map[string]int)
	keep := func(c candidate) {
		current, seen := best[c.name]
		if !seen {
			order = append(order, c.name)
			best[c.name] = c.price
			return
		}
		if c.price < current {
			best[c.name] = c.price
		}
	}

	havePriceRules := false
	for _, zone := range zones {
		for _, rate := range zone.PriceBasedRates {
			havePriceRules = true
			if rate.MinOrderSubtotalCents != nil && sc.subtotalCents < *rate.MinOrderSubtotalCents {
				continue
			}
			if rate.MaxOrderSubtotalCents != nil && sc.subtotalCents > *rate.MaxOrderSubtotalCents {
				continue
			}
			keep(candidate{name: rate.Name, price: rate.PriceCents})
		}
	}

	if !havePriceRules {
		for _, zone := range zones {
			for _, rate := range zone.WeightBasedRates {
				if sc.weightGrams < rate.WeightLowGrams {
					continue
				}
				if rate.WeightHighGrams != nil && sc.weightGrams > *rate.WeightHighGrams {
					continue
				}
				keep(candidate{name: rate.Name, price: rate.PriceCents})
			}
		}
	}

	options := make([]PricedOption, 0, len(order))
	for _, name := range order {
		code := platformOptionCode(name)
		options = append(options, buildOption(
			"platform-"+code,
			name,
			code,
			best[name],
			nil,
			enums.ShippingSourcePlatform,
		))
	}
	return options
}

func platformOptionCode(name string) string {
	folded := normalize.Fold(name)
	return strings.ReplaceAll(folded, " ", "-")
}
