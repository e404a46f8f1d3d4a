package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ShippingMethod is a named service within a zone. A nil LocalityCodes list
// means the method serves every comuna in the zone.
type ShippingMethod struct {
	ID                uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ZoneID            uuid.UUID      `gorm:"column:zone_id;type:uuid;not null;index"`
	Name              string         `gorm:"column:name;not null"`
	Code              string         `gorm:"column:code;not null"`
	Description       *string        `gorm:"column:description"`
	EstimatedDelivery *string        `gorm:"column:estimated_delivery"`
	SortOrder         int            `gorm:"column:sort_order;not null;default:0"`
	IsActive          bool           `gorm:"column:is_active;not null;default:true"`
	LocalityCodes     pq.StringArray `gorm:"column:locality_codes;type:text[]"`
	Rates             []ShippingRate `gorm:"foreignKey:MethodID;constraint:OnDelete:CASCADE"`
	LocalityRates     []LocalityRate `gorm:"foreignKey:MethodID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
