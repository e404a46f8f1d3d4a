package shipping

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andesmarket/shipping-backend/pkg/db/models"
	"github.com/andesmarket/shipping-backend/pkg/shopify"
)

// Repository defines the reads the quote engine performs. Every method is
// scoped to a single store; the engine never writes.
type Repository interface {
	FindActiveZones(ctx context.Context, storeID uuid.UUID) ([]models.ShippingZone, error)
	FindFreeShippingRules(ctx context.Context, storeID uuid.UUID) ([]models.FreeShippingRule, error)
	FindLegacyConfig(ctx context.Context, storeID uuid.UUID) (*models.ShippingConfig, error)
	FindVariantsByRef(ctx context.Context, storeID uuid.UUID, refs []string) (map[string]models.ProductVariant, error)
	FindStore(ctx context.Context, storeID uuid.UUID) (*models.Store, error)
}

// PlatformClient lists the external platform's native shipping zones for a
// store, authenticated with that store's credential.
type PlatformClient interface {
	ListShippingZones(ctx context.Context, creds shopify.Credentials) ([]shopify.ShippingZone, error)
}

// ZoneCache is the optional response cache in front of the platform API.
// Implementations must tolerate being absent; the engine checks for nil.
type ZoneCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	PlatformZonesKey(storeID string) string
}
