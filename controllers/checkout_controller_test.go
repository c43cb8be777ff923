package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront-service/controllers"
	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockCheckoutService struct {
	calls int
	resp  *models.CheckoutResponse
	err   *services.ServiceError
}

func (m *mockCheckoutService) PlaceOrder(_ context.Context, _ *models.CheckoutRequest) (*models.CheckoutResponse, *services.ServiceError) {
	m.calls++
	return m.resp, m.err
}

func newCheckoutRouter(svc services.CheckoutService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/checkout", controllers.NewCheckoutController(svc).PlaceOrder)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validCheckoutBody = `{
	"customerName": "Jane Doe",
	"phoneNumber": "0123456789",
	"address": "1 Main St",
	"paymentMethod": "cod",
	"items": [{"id": "1", "name": "Mug", "price": 50000, "quantity": 2}],
	"promoDiscount": 0.1
}`

func TestCheckoutController_ValidOrder(t *testing.T) {
	svc := &mockCheckoutService{resp: &models.CheckoutResponse{
		Success: true,
		OrderID: "SH12345678",
		Message: "Order placed successfully!",
	}}
	r := newCheckoutRouter(svc)

	w := postJSON(r, "/checkout", validCheckoutBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.calls)
	assert.Contains(t, w.Body.String(), `"orderId":"SH12345678"`)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestCheckoutController_EmptyItemsFailBinding(t *testing.T) {
	svc := &mockCheckoutService{}
	r := newCheckoutRouter(svc)

	body := `{
		"customerName": "Jane Doe",
		"phoneNumber": "0123456789",
		"address": "1 Main St",
		"paymentMethod": "cod",
		"items": []
	}`
	w := postJSON(r, "/checkout", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
	assert.Contains(t, w.Body.String(), "Invalid request")
}

func TestCheckoutController_MissingRequiredFields(t *testing.T) {
	svc := &mockCheckoutService{}
	r := newCheckoutRouter(svc)

	w := postJSON(r, "/checkout", `{"customerName": "Jane Doe"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestCheckoutController_MalformedJSON(t *testing.T) {
	svc := &mockCheckoutService{}
	r := newCheckoutRouter(svc)

	w := postJSON(r, "/checkout", `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestCheckoutController_PromoDiscountAboveOneFailsBinding(t *testing.T) {
	svc := &mockCheckoutService{}
	r := newCheckoutRouter(svc)

	body := strings.Replace(validCheckoutBody, `"promoDiscount": 0.1`, `"promoDiscount": 1.5`, 1)
	w := postJSON(r, "/checkout", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestCheckoutController_InvalidPaymentMethod(t *testing.T) {
	svc := &mockCheckoutService{}
	r := newCheckoutRouter(svc)

	body := strings.Replace(validCheckoutBody, `"paymentMethod": "cod"`, `"paymentMethod": "bitcoin"`, 1)
	w := postJSON(r, "/checkout", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.calls)
}

func TestCheckoutController_ServiceErrorPassthrough(t *testing.T) {
	svc := &mockCheckoutService{err: &services.ServiceError{StatusCode: 400, Message: "Cart is empty"}}
	r := newCheckoutRouter(svc)

	w := postJSON(r, "/checkout", validCheckoutBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cart is empty")
}
