package routes

import (
	"storefront-service/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterStorefrontRoutes sets up all storefront routes.
func RegisterStorefrontRoutes(
	r *gin.Engine,
	catalog *controllers.CatalogController,
	cart *controllers.CartController,
	checkout *controllers.CheckoutController,
	promotions *controllers.PromotionController,
) {
	r.GET("/products", catalog.ListProducts)
	r.GET("/products/:id", catalog.GetProduct)
	r.GET("/categories", catalog.ListCategories)
	r.GET("/promotions", promotions.ListPromotions)

	cartRoutes := r.Group("/cart")
	cartRoutes.GET("", cart.GetCart)
	cartRoutes.DELETE("", cart.ClearCart)
	cartRoutes.POST("/items", cart.AddItem)
	cartRoutes.PATCH("/items/:id", cart.UpdateQuantity)
	cartRoutes.DELETE("/items/:id", cart.RemoveItem)
	cartRoutes.POST("/promo", cart.ApplyPromo)

	r.POST("/checkout", checkout.PlaceOrder)
}
