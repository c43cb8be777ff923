package models

// CheckoutItem is a price/quantity snapshot of one cart line at submission
// time.
type CheckoutItem struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Price    int64  `json:"price" binding:"gte=0"`
	Quantity int    `json:"quantity" binding:"required,gte=1"`
}

// CheckoutRequest is the order payload posted by the storefront. It lives
// for one request/response cycle; nothing is persisted from it.
type CheckoutRequest struct {
	CustomerName  string         `json:"customerName" binding:"required"`
	PhoneNumber   string         `json:"phoneNumber" binding:"required"`
	Email         string         `json:"email" binding:"omitempty,email"`
	Address       string         `json:"address" binding:"required"`
	PaymentMethod string         `json:"paymentMethod" binding:"required,oneof=cod online"`
	Note          string         `json:"note"`
	Items         []CheckoutItem `json:"items" binding:"required,min=1,dive"`
	PromoDiscount float64        `json:"promoDiscount" binding:"gte=0,lte=1"`
	CreatedAt     string         `json:"createdAt"`
}

// CheckoutResponse acknowledges an order. The order id is the only artifact
// besides the log line.
type CheckoutResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}
