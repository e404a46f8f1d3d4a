package models

import (
	"time"

	"github.com/google/uuid"
)

// LocalityRate adjusts a method's tier price for one comuna. An override
// replaces the computed price outright; otherwise the adjustment is added.
type LocalityRate struct {
	ID                 uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	MethodID           uuid.UUID `gorm:"column:method_id;type:uuid;not null;index"`
	LocalityCode       string    `gorm:"column:locality_code;not null"`
	LocalityName       string    `gorm:"column:locality_name;not null"`
	OverridePriceCents *int      `gorm:"column:override_price_cents"`
	AdjustmentCents    int       `gorm:"column:adjustment_cents;not null;default:0"`
	IsActive           bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
