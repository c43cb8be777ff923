package repository

import (
	"context"
	"errors"

	"storefront-service/models"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product does not exist or is
// soft-deleted.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines data access for catalog products.
type ProductRepository interface {
	// FindActive returns every non-deleted product with category, inventory
	// and reviews preloaded. Filtering, ordering and pagination happen in
	// the catalog service.
	FindActive(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	// FindRelated returns up to limit non-deleted products sharing the
	// given category, excluding excludeID. A nil category yields no rows.
	FindRelated(ctx context.Context, categoryID *int64, excludeID int64, limit int) ([]models.Product, error)
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository.
func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

// FindActive retrieves all non-deleted products with their associations.
func (r *GormProductRepository) FindActive(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Inventory").
		Preload("Reviews").
		Where("is_deleted = ?", false).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID retrieves a single non-deleted product with its associations.
func (r *GormProductRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Inventory").
		Preload("Reviews").
		Where("product_id = ? AND is_deleted = ?", id, false).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindRelated retrieves non-deleted products in the same category.
func (r *GormProductRepository) FindRelated(ctx context.Context, categoryID *int64, excludeID int64, limit int) ([]models.Product, error) {
	if categoryID == nil {
		return nil, nil
	}

	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Inventory").
		Preload("Reviews").
		Where("category_id = ? AND product_id <> ? AND is_deleted = ?", *categoryID, excludeID, false).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
