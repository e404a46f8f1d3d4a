package models

import (
	"time"

	"github.com/google/uuid"
)

// ShippingRate is one priced tier within a method. Nil maximums mean
// unbounded; tiers may overlap and are resolved by Priority descending.
type ShippingRate struct {
	ID                   uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	MethodID             uuid.UUID `gorm:"column:method_id;type:uuid;not null;index"`
	Name                 string    `gorm:"column:name;not null"`
	MinWeightGrams       int       `gorm:"column:min_weight_grams;not null;default:0"`
	MaxWeightGrams       *int      `gorm:"column:max_weight_grams"`
	MinSubtotalCents     int       `gorm:"column:min_subtotal_cents;not null;default:0"`
	MaxSubtotalCents     *int      `gorm:"column:max_subtotal_cents"`
	BasePriceCents       int       `gorm:"column:base_price_cents;not null"`
	PricePerExtraKgCents int       `gorm:"column:price_per_extra_kg_cents;not null;default:0"`
	Priority             int       `gorm:"column:priority;not null;default:0"`
	IsActive             bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// IsCatchAll reports whether every bound is unconstrained.
func (r *ShippingRate) IsCatchAll() bool {
	return r != nil &&
		r.MinWeightGrams == 0 && r.MaxWeightGrams == nil &&
		r.MinSubtotalCents == 0 && r.MaxSubtotalCents == nil
}
