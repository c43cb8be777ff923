package repository

import (
	"context"

	"storefront-service/models"

	"gorm.io/gorm"
)

// CategoryRepository defines data access for categories.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Category, error)
}

// GormCategoryRepository implements CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository.
func NewGormCategoryRepository(db *gorm.DB) CategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindAll retrieves all categories ordered by name.
func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Order("category_name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
