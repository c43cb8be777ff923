package controllers

import (
	"net/http"

	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

// PromotionController handles HTTP requests for promotional campaigns.
type PromotionController struct {
	promotionService services.PromotionService
}

// NewPromotionController creates a new PromotionController.
func NewPromotionController(promotionService services.PromotionService) *PromotionController {
	return &PromotionController{promotionService: promotionService}
}

// ListPromotions handles GET /promotions.
func (pc *PromotionController) ListPromotions(ctx *gin.Context) {
	promotions, svcErr := pc.promotionService.ListActivePromotions(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"promotions": promotions})
}
