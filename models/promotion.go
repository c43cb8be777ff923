package models

import "time"

// Promotion is a promotional campaign row, listed read-only on the
// storefront. Discount application in the cart goes through the fixed
// promo-code table in the cart service.
type Promotion struct {
	ID             int64     `gorm:"column:promo_id;primaryKey" json:"promo_id"`
	Code           string    `gorm:"column:promo_code;size:50;uniqueIndex;not null" json:"promo_code"`
	Description    string    `gorm:"column:description;size:255" json:"description,omitempty"`
	DiscountType   string    `gorm:"column:discount_type;size:10;default:percent" json:"discount_type"`
	DiscountValue  float64   `gorm:"column:discount_value" json:"discount_value"`
	StartDate      time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate        time.Time `gorm:"column:end_date" json:"end_date"`
	MinOrderAmount int64     `gorm:"column:min_order_amount;default:0" json:"min_order_amount"`
	UsageLimit     int       `gorm:"column:usage_limit;default:0" json:"usage_limit"`
	UsedCount      int       `gorm:"column:used_count;default:0" json:"used_count"`
	Status         string    `gorm:"column:status;size:10;default:active" json:"status"`
}

func (Promotion) TableName() string {
	return "promotions"
}
