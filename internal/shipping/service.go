package shipping

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andesmarket/shipping-backend/pkg/config"
	"github.com/andesmarket/shipping-backend/pkg/db/models"
	"github.com/andesmarket/shipping-backend/pkg/enums"
	pkgerrors "github.com/andesmarket/shipping-backend/pkg/errors"
	"github.com/andesmarket/shipping-backend/pkg/logger"
	"github.com/andesmarket/shipping-backend/pkg/metrics"
)

// Service resolves shipping options for a multi-store cart.
type Service interface {
	QuoteShipping(ctx context.Context, input QuoteInput) (*QuoteResult, error)
}

// ServiceParams wires the service's collaborators. Platform, Cache and
// Metrics are optional; the engine degrades without them.
type ServiceParams struct {
	Repo         Repository
	Platform     PlatformClient
	Cache        ZoneCache
	Logger       *logger.Logger
	Metrics      *metrics.QuoteMetrics
	Defaults     config.ShippingConfig
	ZoneCacheTTL time.Duration
}

type service struct {
	repo         Repository
	platform     PlatformClient
	cache        ZoneCache
	logg         *logger.Logger
	metrics      *metrics.QuoteMetrics
	defaults     config.ShippingConfig
	zoneCacheTTL time.Duration
}

// NewService builds the quote service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "shipping repository is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "logger is required")
	}
	return &service{
		repo:         params.Repo,
		platform:     params.Platform,
		cache:        params.Cache,
		logg:         params.Logger,
		metrics:      params.Metrics,
		defaults:     params.Defaults,
		zoneCacheTTL: params.ZoneCacheTTL,
	}, nil
}

// QuoteShipping partitions the cart by store and resolves each store
// independently. One store failing never hides another store's options;
// only a cart where every store failed surfaces as an error.
func (s *service) QuoteShipping(ctx context.Context, input QuoteInput) (*QuoteResult, error) {
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart items are required")
	}
	if input.Address.Subdivision == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "destination region is required")
	}

	groups, order := groupByStore(input.Items)
	result := &QuoteResult{
		RatesByStore: make(map[uuid.UUID][]PricedOption, len(order)),
		Errors:       make(map[uuid.UUID]string),
	}

	for _, storeID := range order {
		storeCtx := s.logg.WithStoreID(ctx, storeID.String())
		started := time.Now()

		options, source, err := s.quoteStore(storeCtx, storeID, groups[storeID], input.Address)
		if err != nil {
			s.logg.Error(storeCtx, "store shipping quote failed", err)
			s.metrics.IncFailure(failureReason(err))
			result.Errors[storeID] = publicMessage(err)
			continue
		}

		sortOptions(options)
		result.RatesByStore[storeID] = options
		s.metrics.ObserveDuration(source.String(), time.Since(started))
		s.metrics.AddOptions(source.String(), len(options))
	}

	if len(result.RatesByStore) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "unable to quote shipping for any store")
	}
	result.Success = true
	return result, nil
}

func (s *service) quoteStore(ctx context.Context, storeID uuid.UUID, items []CartItem, address ShippingAddress) ([]PricedOption, enums.ShippingSource, error) {
	sc, err := s.buildStoreContext(ctx, storeID, items, address)
	if err != nil {
		return nil, "", err
	}
	return s.resolveStore(ctx, sc)
}

func (s *service) buildStoreContext(ctx context.Context, storeID uuid.UUID, items []CartItem, address ShippingAddress) (*storeContext, error) {
	refs := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.VariantRef == "" {
			continue
		}
		if _, ok := seen[item.VariantRef]; ok {
			continue
		}
		seen[item.VariantRef] = struct{}{}
		refs = append(refs, item.VariantRef)
	}

	variants := map[string]models.ProductVariant{}
	if len(refs) > 0 {
		found, err := s.repo.FindVariantsByRef(ctx, storeID, refs)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product variants")
		}
		variants = found
	}

	return &storeContext{
		storeID:       storeID,
		items:         items,
		address:       address,
		subtotalCents: subtotalCents(items),
		weightGrams:   estimateWeight(items, variants, s.defaults.DefaultItemGrams),
		itemCount:     itemCount(items),
	}, nil
}

// groupByStore partitions cart lines per store, preserving the order stores
// first appear in the cart so results stay deterministic.
func groupByStore(items []CartItem) (map[uuid.UUID][]CartItem, []uuid.UUID) {
	groups := make(map[uuid.UUID][]CartItem)
	var order []uuid.UUID
	for _, item := range items {
		if _, ok := groups[item.StoreID]; !ok {
			order = append(order, item.StoreID)
		}
		groups[item.StoreID] = append(groups[item.StoreID], item)
	}
	return groups, order
}

func publicMessage(err error) string {
	if typed := pkgerrors.As(err); typed != nil {
		return typed.Message()
	}
	return "shipping quote failed"
}

func failureReason(err error) string {
	if typed := pkgerrors.As(err); typed != nil {
		return string(typed.Code())
	}
	return "internal"
}
