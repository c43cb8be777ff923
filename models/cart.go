package models

import "time"

// CartItem is a cart line persisted as JSON through the cart storage
// adapter, never as a database row. Quantity is kept >= 1; a quantity that
// would drop below 1 removes the line instead.
type CartItem struct {
	ProductID int64  `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Cart is the stored shape for one session's cart.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AddItemRequest is the payload for adding a product to the cart. Display
// fields are snapshotted by the caller at add time.
type AddItemRequest struct {
	ProductID int64  `json:"product_id" binding:"required,gt=0"`
	Name      string `json:"name" binding:"required"`
	Price     int64  `json:"price" binding:"gte=0"`
	Image     string `json:"image"`
}

// UpdateQuantityRequest changes an item's quantity. When Quantity is set it
// replaces the stored value (clamped to 1); otherwise Delta is added.
type UpdateQuantityRequest struct {
	Delta    int  `json:"delta"`
	Quantity *int `json:"quantity"`
}

// ApplyPromoRequest is the payload for applying a promo code.
type ApplyPromoRequest struct {
	Code string `json:"code" binding:"required"`
}

// PromoResult reports the outcome of a promo-code application.
type PromoResult struct {
	Applied  bool    `json:"applied"`
	Code     string  `json:"code"`
	Discount float64 `json:"discount"`
	Message  string  `json:"message"`
}

// CartView is the rendered cart: stored items plus totals derived on read.
type CartView struct {
	Items            []CartItem `json:"items"`
	Subtotal         int64      `json:"subtotal"`
	DiscountFraction float64    `json:"discount_fraction"`
	DiscountAmount   int64      `json:"discount_amount"`
	Total            int64      `json:"total"`
}
