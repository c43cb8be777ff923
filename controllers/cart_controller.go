package controllers

import (
	"net/http"
	"strconv"

	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionCookie carries the cart session id. Minted on first touch; the
// cart itself lives in the storage adapter under this id.
const (
	sessionCookie       = "cart_session"
	sessionCookieMaxAge = 30 * 24 * 60 * 60
)

// CartController handles HTTP requests for the session cart.
type CartController struct {
	cartService services.CartService
}

// NewCartController creates a new CartController.
func NewCartController(cartService services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

func (cc *CartController) sessionID(ctx *gin.Context) string {
	if sid, err := ctx.Cookie(sessionCookie); err == nil && sid != "" {
		return sid
	}
	sid := uuid.NewString()
	ctx.SetCookie(sessionCookie, sid, sessionCookieMaxAge, "/", "", false, true)
	return sid
}

// GetCart handles GET /cart.
func (cc *CartController) GetCart(ctx *gin.Context) {
	view, svcErr := cc.cartService.GetCart(ctx.Request.Context(), cc.sessionID(ctx))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// AddItem handles POST /cart/items.
func (cc *CartController) AddItem(ctx *gin.Context) {
	var req models.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	view, svcErr := cc.cartService.AddItem(ctx.Request.Context(), cc.sessionID(ctx), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// RemoveItem handles DELETE /cart/items/:id.
func (cc *CartController) RemoveItem(ctx *gin.Context) {
	productID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	view, svcErr := cc.cartService.RemoveItem(ctx.Request.Context(), cc.sessionID(ctx), productID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// UpdateQuantity handles PATCH /cart/items/:id with either an absolute
// quantity or a delta.
func (cc *CartController) UpdateQuantity(ctx *gin.Context) {
	productID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var req models.UpdateQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if req.Quantity == nil && req.Delta == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Either quantity or delta is required"})
		return
	}

	view, svcErr := cc.cartService.UpdateQuantity(ctx.Request.Context(), cc.sessionID(ctx), productID, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// ApplyPromo handles POST /cart/promo.
func (cc *CartController) ApplyPromo(ctx *gin.Context) {
	var req models.ApplyPromoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	result, svcErr := cc.cartService.ApplyPromoCode(ctx.Request.Context(), cc.sessionID(ctx), req.Code)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ClearCart handles DELETE /cart.
func (cc *CartController) ClearCart(ctx *gin.Context) {
	if svcErr := cc.cartService.ClearCart(ctx.Request.Context(), cc.sessionID(ctx)); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
