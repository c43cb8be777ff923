package services_test

import (
	"context"
	"strings"
	"testing"

	"storefront-service/models"
	"storefront-service/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func checkoutReq(items []models.CheckoutItem, promoDiscount float64) *models.CheckoutRequest {
	return &models.CheckoutRequest{
		CustomerName:  "Jane Doe",
		PhoneNumber:   "0123456789",
		Address:       "1 Main St",
		PaymentMethod: "cod",
		Items:         items,
		PromoDiscount: promoDiscount,
	}
}

func TestCheckout_PlaceOrderRecomputesTotals(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	svc := services.NewCheckoutService(zap.New(core))

	// 2 x 50000 + 1 x 100000 = 200000; 10% off drops 20000.
	req := checkoutReq([]models.CheckoutItem{
		{ID: "1", Name: "Mug", Price: 50000, Quantity: 2},
		{ID: "2", Name: "Kettle", Price: 100000, Quantity: 1},
	}, 0.1)

	resp, svcErr := svc.PlaceOrder(context.Background(), req)
	assert.Nil(t, svcErr)
	assert.True(t, resp.Success)
	assert.Equal(t, "Order placed successfully!", resp.Message)

	entries := logs.FilterMessage("New order received").All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(200000), fields["subtotal"])
	assert.Equal(t, int64(20000), fields["discount_amount"])
	assert.Equal(t, int64(180000), fields["final_total"])
	assert.Equal(t, int64(2), fields["item_count"])
}

func TestCheckout_OrderIDShape(t *testing.T) {
	core, _ := observer.New(zap.InfoLevel)
	svc := services.NewCheckoutService(zap.New(core))

	resp, svcErr := svc.PlaceOrder(context.Background(), checkoutReq([]models.CheckoutItem{
		{ID: "1", Name: "Mug", Price: 50000, Quantity: 1},
	}, 0))
	assert.Nil(t, svcErr)

	assert.True(t, strings.HasPrefix(resp.OrderID, "SH"))
	// "SH" plus the epoch-millisecond string minus its first five digits.
	assert.Len(t, resp.OrderID, 10)
	for _, ch := range resp.OrderID[2:] {
		assert.True(t, ch >= '0' && ch <= '9')
	}
}

func TestCheckout_EmptyItemsRejected(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	svc := services.NewCheckoutService(zap.New(core))

	resp, svcErr := svc.PlaceOrder(context.Background(), checkoutReq(nil, 0))
	assert.Nil(t, resp)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Equal(t, "Cart is empty", svcErr.Message)
	assert.Zero(t, logs.FilterMessage("New order received").Len())
}

func TestCheckout_PromoDiscountOutOfRangeRejected(t *testing.T) {
	core, _ := observer.New(zap.InfoLevel)
	svc := services.NewCheckoutService(zap.New(core))

	items := []models.CheckoutItem{{ID: "1", Name: "Mug", Price: 50000, Quantity: 1}}

	_, svcErr := svc.PlaceOrder(context.Background(), checkoutReq(items, 1.5))
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)

	_, svcErr = svc.PlaceOrder(context.Background(), checkoutReq(items, -0.1))
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestCheckout_ZeroDiscountKeepsSubtotal(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	svc := services.NewCheckoutService(zap.New(core))

	_, svcErr := svc.PlaceOrder(context.Background(), checkoutReq([]models.CheckoutItem{
		{ID: "1", Name: "Mug", Price: 75000, Quantity: 3},
	}, 0))
	assert.Nil(t, svcErr)

	fields := logs.FilterMessage("New order received").All()[0].ContextMap()
	assert.Equal(t, int64(225000), fields["subtotal"])
	assert.Equal(t, int64(0), fields["discount_amount"])
	assert.Equal(t, int64(225000), fields["final_total"])
}
