package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"

	"storefront-service/models"
	"storefront-service/repository"

	"go.uber.org/zap"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
	relatedLimit    = 4
)

// ListProductsParams are the catalog filter parameters. Zero values mean
// "no filter": empty search, category id <= 0, nil price bounds, and a
// minimum rating <= 0 each leave their predicate out of the pipeline.
type ListProductsParams struct {
	Search     string
	CategoryID int64
	MinPrice   *int64
	MaxPrice   *int64
	MinRating  int
	Page       int
	PageSize   int
}

// CatalogService defines the catalog read operations.
type CatalogService interface {
	ListProducts(ctx context.Context, params ListProductsParams) (*models.ProductListView, *ServiceError)
	GetProductDetails(ctx context.Context, id int64) (*models.ProductDetailsView, *ServiceError)
	ListCategories(ctx context.Context) ([]models.Category, *ServiceError)
}

// catalogServiceImpl implements CatalogService.
type catalogServiceImpl struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	logger     *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	logger *zap.Logger,
) CatalogService {
	return &catalogServiceImpl{
		products:   products,
		categories: categories,
		logger:     logger,
	}
}

// productPredicate decides whether a product belongs to the result set.
type productPredicate func(p *models.Product) bool

// buildPredicates assembles the active filters as an ordered list of
// predicates combined with logical AND in a single pass.
func buildPredicates(params ListProductsParams) []productPredicate {
	var preds []productPredicate

	if search := strings.TrimSpace(params.Search); search != "" {
		preds = append(preds, func(p *models.Product) bool {
			return strings.Contains(p.Name, search)
		})
	}

	if params.CategoryID > 0 {
		preds = append(preds, func(p *models.Product) bool {
			return p.CategoryID != nil && *p.CategoryID == params.CategoryID
		})
	}

	if params.MinPrice != nil {
		min := *params.MinPrice
		preds = append(preds, func(p *models.Product) bool {
			return p.Price >= min
		})
	}

	if params.MaxPrice != nil {
		max := *params.MaxPrice
		preds = append(preds, func(p *models.Product) bool {
			return p.Price <= max
		})
	}

	// Products without a single visible review never qualify once a
	// minimum rating is requested. A minimum of 0 means no filter.
	if params.MinRating > 0 {
		min := float64(params.MinRating)
		preds = append(preds, func(p *models.Product) bool {
			summary := Summarize(p.Reviews)
			return summary.ReviewCount > 0 && summary.AverageRating >= min
		})
	}

	return preds
}

func matchesAll(p *models.Product, preds []productPredicate) bool {
	for _, pred := range preds {
		if !pred(p) {
			return false
		}
	}
	return true
}

// ListProducts filters, sorts and paginates the catalog. A retrieval fault
// is logged and degrades to an empty page with zero totals rather than an
// error to the caller.
func (s *catalogServiceImpl) ListProducts(ctx context.Context, params ListProductsParams) (*models.ProductListView, *ServiceError) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize <= 0 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}

	view := &models.ProductListView{
		Products:   []models.ProductView{},
		Categories: []models.Category{},
		Page:       params.Page,
		PageSize:   params.PageSize,
	}

	// Sidebar data is best-effort; a failure here must not empty the page.
	if categories, err := s.categories.FindAll(ctx); err != nil {
		s.logger.Warn("Failed to load categories", zap.Error(err))
	} else {
		view.Categories = categories
	}

	candidates, err := s.products.FindActive(ctx)
	if err != nil {
		s.logger.Error("Failed to load products", zap.Error(err))
		return view, nil
	}

	preds := buildPredicates(params)
	matched := make([]models.Product, 0, len(candidates))
	for i := range candidates {
		if matchesAll(&candidates[i], preds) {
			matched = append(matched, candidates[i])
		}
	}

	// Newest first. Rows created in the same instant order by product id
	// descending so the later insert still sorts first.
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	view.TotalProducts = len(matched)
	view.TotalPages = int(math.Ceil(float64(len(matched)) / float64(params.PageSize)))

	start := (params.Page - 1) * params.PageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	page := matched[start:end]
	for i := range page {
		view.Products = append(view.Products, newProductView(&page[i]))
	}

	return view, nil
}

// GetProductDetails returns the detail view model for one product.
func (s *catalogServiceImpl) GetProductDetails(ctx context.Context, id int64) (*models.ProductDetailsView, *ServiceError) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
		}
		s.logger.Error("Failed to load product", zap.Int64("product_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load product"}
	}

	related, err := s.products.FindRelated(ctx, product.CategoryID, product.ID, relatedLimit)
	if err != nil {
		// The strip is decorative; the detail page still renders.
		s.logger.Warn("Failed to load related products", zap.Int64("product_id", id), zap.Error(err))
		related = nil
	}

	view := &models.ProductDetailsView{
		Product:         newProductView(product),
		Reviews:         VisibleReviews(product.Reviews),
		RatingHistogram: Histogram(product.Reviews),
		RelatedProducts: make([]models.ProductView, 0, len(related)),
	}
	for i := range related {
		view.RelatedProducts = append(view.RelatedProducts, newProductView(&related[i]))
	}

	return view, nil
}

// ListCategories returns all categories.
func (s *catalogServiceImpl) ListCategories(ctx context.Context) ([]models.Category, *ServiceError) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list categories"}
	}
	return categories, nil
}

// newProductView decorates a product with its recomputed rating summary and
// current stock.
func newProductView(p *models.Product) models.ProductView {
	view := models.ProductView{
		Product: *p,
		Rating:  Summarize(p.Reviews),
	}
	if p.Inventory != nil {
		view.Stock = p.Inventory.Quantity
	}
	return view
}
