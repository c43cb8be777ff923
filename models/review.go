package models

import "time"

// Review is a customer review. Aggregate ratings are always computed over
// non-deleted reviews only.
type Review struct {
	ID         int64     `gorm:"column:review_id;primaryKey" json:"review_id"`
	ProductID  int64     `gorm:"column:product_id;not null;index" json:"product_id"`
	CustomerID *int64    `gorm:"column:customer_id" json:"customer_id,omitempty"`
	Rating     int       `gorm:"column:rating;not null" json:"rating"`
	Comment    string    `gorm:"column:comment" json:"comment"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	IsDeleted  bool      `gorm:"column:is_deleted;not null;default:false" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}
