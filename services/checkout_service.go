package services

import (
	"context"
	"strconv"
	"time"

	"storefront-service/models"

	"go.uber.org/zap"
)

// orderIDPrefix is concatenated with a truncated epoch-millisecond
// timestamp to form the order identifier.
const orderIDPrefix = "SH"

// CheckoutService accepts an order payload, recomputes its totals and
// acknowledges it. No order row is created anywhere; the order exists only
// as a structured log entry plus the generated id.
type CheckoutService interface {
	PlaceOrder(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, *ServiceError)
}

// checkoutServiceImpl implements CheckoutService.
type checkoutServiceImpl struct {
	logger *zap.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(logger *zap.Logger) CheckoutService {
	return &checkoutServiceImpl{logger: logger}
}

// PlaceOrder recomputes subtotal, discount and final total from the
// submitted item list. Client-computed totals are never trusted; tampering
// is defused by recomputation, not rejection.
func (s *checkoutServiceImpl) PlaceOrder(_ context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, *ServiceError) {
	if len(req.Items) == 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "Cart is empty"}
	}
	if req.PromoDiscount < 0 || req.PromoDiscount > 1 {
		return nil, &ServiceError{StatusCode: 400, Message: "Promo discount must be between 0 and 1"}
	}

	var subtotal int64
	for _, item := range req.Items {
		lineTotal := item.Price * int64(item.Quantity)
		subtotal += lineTotal
		s.logger.Info("Order item",
			zap.String("product_id", item.ID),
			zap.String("name", item.Name),
			zap.Int64("unit_price", item.Price),
			zap.Int("quantity", item.Quantity),
			zap.Int64("line_total", lineTotal),
		)
	}

	discountAmount, finalTotal := computeTotals(subtotal, req.PromoDiscount)
	orderID := generateOrderID(time.Now())

	s.logger.Info("New order received",
		zap.String("order_id", orderID),
		zap.String("customer_name", req.CustomerName),
		zap.String("phone_number", req.PhoneNumber),
		zap.String("email", req.Email),
		zap.String("address", req.Address),
		zap.String("payment_method", req.PaymentMethod),
		zap.String("note", req.Note),
		zap.Float64("promo_discount_pct", req.PromoDiscount*100),
		zap.String("created_at", req.CreatedAt),
		zap.Int("item_count", len(req.Items)),
		zap.Int64("subtotal", subtotal),
		zap.Int64("discount_amount", discountAmount),
		zap.Int64("final_total", finalTotal),
	)

	return &models.CheckoutResponse{
		Success: true,
		OrderID: orderID,
		Message: "Order placed successfully!",
	}, nil
}

// generateOrderID builds "SH" plus the epoch-millisecond string with its
// first five characters dropped.
func generateOrderID(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > 5 {
		millis = millis[5:]
	}
	return orderIDPrefix + millis
}
