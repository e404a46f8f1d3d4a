package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/andesmarket/shipping-backend/pkg/enums"
	"github.com/andesmarket/shipping-backend/pkg/types"
)

// ShippingConfig is the legacy single-record configuration kept for stores
// that predate the zone/method/tier tables. flat_shopify defers to the
// platform tier; manual_zones prices from the store's own zones with at most
// one flat price per comuna and a single free-shipping threshold.
type ShippingConfig struct {
	ID                         uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StoreID                    uuid.UUID            `gorm:"column:store_id;type:uuid;not null;uniqueIndex"`
	ShippingType               enums.ShippingType   `gorm:"column:shipping_type;not null;default:'flat_shopify'"`
	FlatPriceCents             int                  `gorm:"column:flat_price_cents;not null;default:0"`
	FreeShippingThresholdCents *int                 `gorm:"column:free_shipping_threshold_cents"`
	LocalityPrices             types.LocalityPrices `gorm:"column:locality_prices;type:jsonb"`
	IsActive                   bool                 `gorm:"column:is_active;not null;default:true"`
	CreatedAt                  time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt                  time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
