package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/andesmarket/shipping-backend/pkg/enums"
)

// ProductVariant mirrors the variant rows imported by the catalog sync job.
// The quote engine only reads the declared weight; WeightValue may be zero
// when the platform never reported one.
type ProductVariant struct {
	ID          uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StoreID     uuid.UUID        `gorm:"column:store_id;type:uuid;not null;index"`
	ExternalRef string           `gorm:"column:external_ref;not null;index"`
	Title       string           `gorm:"column:title;not null"`
	WeightValue float64          `gorm:"column:weight_value;not null;default:0"`
	WeightUnit  enums.WeightUnit `gorm:"column:weight_unit;not null;default:'g'"`
	CreatedAt   time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// HasWeight reports whether a usable declared weight exists.
func (v *ProductVariant) HasWeight() bool {
	return v != nil && v.WeightValue > 0 && v.WeightUnit.IsValid()
}
