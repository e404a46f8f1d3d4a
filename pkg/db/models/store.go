package models

import (
	"time"

	"github.com/google/uuid"
)

// Store represents a merchant selling through the storefront. The platform
// columns hold the per-store credential used by the external shipping-zone
// fallback; stores without one simply skip that tier.
type Store struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name           string     `gorm:"column:name;not null"`
	PlatformDomain *string    `gorm:"column:platform_domain"`
	PlatformToken  *string    `gorm:"column:platform_token"`
	IsActive       bool       `gorm:"column:is_active;not null;default:true"`
	LastSyncedAt   *time.Time `gorm:"column:last_synced_at"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// HasPlatformCredential reports whether the external fallback can run.
func (s *Store) HasPlatformCredential() bool {
	return s != nil &&
		s.PlatformDomain != nil && *s.PlatformDomain != "" &&
		s.PlatformToken != nil && *s.PlatformToken != ""
}
