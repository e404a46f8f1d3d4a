package models

import (
	"time"

	"github.com/google/uuid"
)

// ShippingZone groups destinations a store ships to, keyed by region code.
// Position preserves the dashboard ordering; the first zone doubles as the
// default when no region matches.
type ShippingZone struct {
	ID                   uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StoreID              uuid.UUID        `gorm:"column:store_id;type:uuid;not null;index"`
	RegionCode           string           `gorm:"column:region_code;not null"`
	Name                 string           `gorm:"column:name;not null"`
	FlatPriceCents       int              `gorm:"column:flat_price_cents;not null;default:0"`
	HasLocalityBreakdown bool             `gorm:"column:has_locality_breakdown;not null;default:false"`
	Position             int              `gorm:"column:position;not null;default:0"`
	IsActive             bool             `gorm:"column:is_active;not null;default:true"`
	Methods              []ShippingMethod `gorm:"foreignKey:ZoneID;constraint:OnDelete:CASCADE"`
	CreatedAt            time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
