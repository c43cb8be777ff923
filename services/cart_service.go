package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"storefront-service/database"
	"storefront-service/models"

	"go.uber.org/zap"
)

// promoCodes is the fixed promo-code table. Lookup compares the upper-cased
// submitted code; values are discount fractions applied to the subtotal.
var promoCodes = map[string]float64{
	"SAVE10":  0.10,
	"SAVE20":  0.20,
	"SAVE50":  0.50,
	"WELCOME": 0.15,
}

// CartService maintains one cart per session behind a storage adapter. All
// mutations are synchronous read-modify-write with no undo; concurrent
// writers to the same session race last-write-wins at the storage layer.
type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*models.CartView, *ServiceError)
	AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.CartView, *ServiceError)
	RemoveItem(ctx context.Context, sessionID string, productID int64) (*models.CartView, *ServiceError)
	UpdateQuantity(ctx context.Context, sessionID string, productID int64, req *models.UpdateQuantityRequest) (*models.CartView, *ServiceError)
	ApplyPromoCode(ctx context.Context, sessionID, code string) (*models.PromoResult, *ServiceError)
	ClearCart(ctx context.Context, sessionID string) *ServiceError
}

// cartServiceImpl implements CartService.
type cartServiceImpl struct {
	storage database.CartStorage
	logger  *zap.Logger
}

// NewCartService creates a new CartService.
func NewCartService(storage database.CartStorage, logger *zap.Logger) CartService {
	return &cartServiceImpl{storage: storage, logger: logger}
}

func cartKey(sessionID string) string {
	return "cart:session:" + sessionID
}

// The discount fraction lives under its own key, separate from the item
// list, and survives the cart being emptied item by item.
func promoKey(sessionID string) string {
	return "promo:session:" + sessionID
}

func (s *cartServiceImpl) loadCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	data, err := s.storage.Get(ctx, cartKey(sessionID))
	if err != nil {
		return nil, err
	}
	cart := &models.Cart{SessionID: sessionID, Items: []models.CartItem{}}
	if len(data) == 0 {
		return cart, nil
	}
	if err := json.Unmarshal(data, cart); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

func (s *cartServiceImpl) saveCart(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.storage.Set(ctx, cartKey(cart.SessionID), data)
}

func (s *cartServiceImpl) loadDiscount(ctx context.Context, sessionID string) float64 {
	data, err := s.storage.Get(ctx, promoKey(sessionID))
	if err != nil || len(data) == 0 {
		return 0
	}
	fraction, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return 0
	}
	return fraction
}

// view renders the stored cart plus totals derived on read; totals are
// never persisted.
func (s *cartServiceImpl) view(ctx context.Context, cart *models.Cart) *models.CartView {
	var subtotal int64
	for _, item := range cart.Items {
		subtotal += item.Price * int64(item.Quantity)
	}

	fraction := s.loadDiscount(ctx, cart.SessionID)
	discount, total := computeTotals(subtotal, fraction)

	return &models.CartView{
		Items:            cart.Items,
		Subtotal:         subtotal,
		DiscountFraction: fraction,
		DiscountAmount:   discount,
		Total:            total,
	}
}

// GetCart returns the session's cart with derived totals.
func (s *cartServiceImpl) GetCart(ctx context.Context, sessionID string) (*models.CartView, *ServiceError) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load cart"}
	}
	return s.view(ctx, cart), nil
}

// AddItem increments the quantity when the product is already in the cart,
// otherwise inserts a new line with quantity 1.
func (s *cartServiceImpl) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.CartView, *ServiceError) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load cart"}
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == req.ProductID {
			cart.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: req.ProductID,
			Name:      req.Name,
			Image:     req.Image,
			Price:     req.Price,
			Quantity:  1,
		})
	}

	if err := s.saveCart(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update cart"}
	}
	return s.view(ctx, cart), nil
}

// RemoveItem deletes the line entirely.
func (s *cartServiceImpl) RemoveItem(ctx context.Context, sessionID string, productID int64) (*models.CartView, *ServiceError) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load cart"}
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	if err := s.saveCart(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update cart"}
	}
	return s.view(ctx, cart), nil
}

// UpdateQuantity applies an absolute quantity (clamped to a minimum of 1)
// when req.Quantity is set, otherwise adds req.Delta. A delta that drops
// the quantity below 1 removes the line. Unknown product ids are a no-op.
func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, sessionID string, productID int64, req *models.UpdateQuantityRequest) (*models.CartView, *ServiceError) {
	cart, err := s.loadCart(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load cart"}
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID != productID {
			continue
		}

		if req.Quantity != nil {
			qty := *req.Quantity
			if qty < 1 {
				qty = 1
			}
			cart.Items[i].Quantity = qty
		} else {
			cart.Items[i].Quantity += req.Delta
			if cart.Items[i].Quantity < 1 {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			}
		}
		break
	}

	if err := s.saveCart(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update cart"}
	}
	return s.view(ctx, cart), nil
}

// ApplyPromoCode looks the code up in the fixed table (case-insensitive).
// A miss reports failure without touching stored state.
func (s *cartServiceImpl) ApplyPromoCode(ctx context.Context, sessionID, code string) (*models.PromoResult, *ServiceError) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, &ServiceError{StatusCode: 400, Message: "Promo code is required"}
	}

	fraction, ok := promoCodes[normalized]
	if !ok {
		return &models.PromoResult{
			Applied: false,
			Code:    normalized,
			Message: "Invalid promo code",
		}, nil
	}

	value := strconv.FormatFloat(fraction, 'f', -1, 64)
	if err := s.storage.Set(ctx, promoKey(sessionID), []byte(value)); err != nil {
		s.logger.Error("Failed to store promo discount", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to apply promo code"}
	}

	s.logger.Info("Promo code applied",
		zap.String("session_id", sessionID),
		zap.String("code", normalized),
		zap.Float64("discount", fraction),
	)
	return &models.PromoResult{
		Applied:  true,
		Code:     normalized,
		Discount: fraction,
		Message:  fmt.Sprintf("Promo code applied! %.0f%% off", fraction*100),
	}, nil
}

// ClearCart drops the item list and the stored discount.
func (s *cartServiceImpl) ClearCart(ctx context.Context, sessionID string) *ServiceError {
	if err := s.storage.Clear(ctx, cartKey(sessionID)); err != nil {
		s.logger.Error("Failed to clear cart", zap.String("session_id", sessionID), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to clear cart"}
	}
	if err := s.storage.Clear(ctx, promoKey(sessionID)); err != nil {
		s.logger.Error("Failed to clear promo discount", zap.String("session_id", sessionID), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to clear cart"}
	}
	return nil
}
