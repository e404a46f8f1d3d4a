package shipping

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andesmarket/shipping-backend/pkg/db/models"
	pkgerrors "github.com/andesmarket/shipping-backend/pkg/errors"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a shipping repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindActiveZones(ctx context.Context, storeID uuid.UUID) ([]models.ShippingZone, error) {
	var zones []models.ShippingZone
	err := r.db.WithContext(ctx).
		Preload("Methods", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("sort_order ASC")
		}).
		Preload("Methods.Rates", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("priority DESC")
		}).
		Preload("Methods.LocalityRates", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true)
		}).
		Where("store_id = ? AND is_active = ?", storeID, true).
		Order("position ASC").
		Find(&zones).Error
	if err != nil {
		return nil, err
	}
	return zones, nil
}

func (r *repository) FindFreeShippingRules(ctx context.Context, storeID uuid.UUID) ([]models.FreeShippingRule, error) {
	var rules []models.FreeShippingRule
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND is_active = ?", storeID, true).
		Order("priority DESC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// FindLegacyConfig returns nil when the store never had a legacy record.
func (r *repository) FindLegacyConfig(ctx context.Context, storeID uuid.UUID) (*models.ShippingConfig, error) {
	var cfg models.ShippingConfig
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *repository) FindVariantsByRef(ctx context.Context, storeID uuid.UUID, refs []string) (map[string]models.ProductVariant, error) {
	if len(refs) == 0 {
		return map[string]models.ProductVariant{}, nil
	}

	var variants []models.ProductVariant
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND external_ref IN ?", storeID, refs).
		Find(&variants).Error
	if err != nil {
		return nil, err
	}

	byRef := make(map[string]models.ProductVariant, len(variants))
	for _, variant := range variants {
		byRef[variant.ExternalRef] = variant
	}
	return byRef, nil
}

func (r *repository) FindStore(ctx context.Context, storeID uuid.UUID) (*models.Store, error) {
	var store models.Store
	err := r.db.WithContext(ctx).
		Where("id = ?", storeID).
		First(&store).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}
