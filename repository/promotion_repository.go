package repository

import (
	"context"
	"time"

	"storefront-service/models"

	"gorm.io/gorm"
)

// PromotionRepository defines read access to promotional campaigns.
type PromotionRepository interface {
	FindActive(ctx context.Context, now time.Time) ([]models.Promotion, error)
}

// GormPromotionRepository implements PromotionRepository using GORM.
type GormPromotionRepository struct {
	db *gorm.DB
}

// NewGormPromotionRepository creates a new GormPromotionRepository.
func NewGormPromotionRepository(db *gorm.DB) PromotionRepository {
	return &GormPromotionRepository{db: db}
}

// FindActive retrieves promotions whose status is active and whose date
// window contains now.
func (r *GormPromotionRepository) FindActive(ctx context.Context, now time.Time) ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := r.db.WithContext(ctx).
		Where("status = ? AND start_date <= ? AND end_date >= ?", "active", now, now).
		Order("end_date ASC").
		Find(&promotions).Error
	if err != nil {
		return nil, err
	}
	return promotions, nil
}
