package models

// Category groups products. A product may be uncategorized (nullable FK).
type Category struct {
	ID   int64  `gorm:"column:category_id;primaryKey" json:"category_id"`
	Name string `gorm:"column:category_name;size:100;not null" json:"category_name"`
}

func (Category) TableName() string {
	return "categories"
}
