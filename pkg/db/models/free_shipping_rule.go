package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// FreeShippingRule zeroes a method's price when every present bound holds.
// Nil bounds impose no constraint; empty allow-lists match every method/zone.
type FreeShippingRule struct {
	ID               uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StoreID          uuid.UUID      `gorm:"column:store_id;type:uuid;not null;index"`
	Name             string         `gorm:"column:name;not null"`
	MinSubtotalCents *int           `gorm:"column:min_subtotal_cents"`
	MaxSubtotalCents *int           `gorm:"column:max_subtotal_cents"`
	MinWeightGrams   *int           `gorm:"column:min_weight_grams"`
	MaxWeightGrams   *int           `gorm:"column:max_weight_grams"`
	MinItemCount     *int           `gorm:"column:min_item_count"`
	MethodCodes      pq.StringArray `gorm:"column:method_codes;type:text[]"`
	ZoneCodes        pq.StringArray `gorm:"column:zone_codes;type:text[]"`
	Priority         int            `gorm:"column:priority;not null;default:0"`
	IsActive         bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
