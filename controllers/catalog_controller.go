package controllers

import (
	"net/http"
	"strconv"

	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

// CatalogController handles HTTP requests for the product catalog.
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// ListProducts handles GET /products with filter and pagination params.
// Unparseable params fall back to their defaults rather than erroring.
func (cc *CatalogController) ListProducts(ctx *gin.Context) {
	params := services.ListProductsParams{
		Search: ctx.Query("search"),
	}

	if v, err := strconv.ParseInt(ctx.DefaultQuery("category", "0"), 10, 64); err == nil {
		params.CategoryID = v
	}
	if raw := ctx.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			params.MinPrice = &v
		}
	}
	if raw := ctx.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			params.MaxPrice = &v
		}
	}
	if v, err := strconv.Atoi(ctx.DefaultQuery("minRating", "0")); err == nil {
		params.MinRating = v
	}
	if v, err := strconv.Atoi(ctx.DefaultQuery("page", "1")); err == nil && v >= 1 {
		params.Page = v
	} else {
		params.Page = 1
	}
	if v, err := strconv.Atoi(ctx.DefaultQuery("pageSize", "12")); err == nil && v > 0 {
		params.PageSize = v
	} else {
		params.PageSize = 12
	}

	view, svcErr := cc.catalogService.ListProducts(ctx.Request.Context(), params)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// GetProduct handles GET /products/:id.
func (cc *CatalogController) GetProduct(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	view, svcErr := cc.catalogService.GetProductDetails(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// ListCategories handles GET /categories.
func (cc *CatalogController) ListCategories(ctx *gin.Context) {
	categories, svcErr := cc.catalogService.ListCategories(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}
