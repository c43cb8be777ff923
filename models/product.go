package models

import "time"

// Product is a catalog product row. Soft-deleted products never appear in
// listings, detail lookups, or related-product strips.
type Product struct {
	ID         int64      `gorm:"column:product_id;primaryKey" json:"product_id"`
	CategoryID *int64     `gorm:"column:category_id;index" json:"category_id"`
	SupplierID *int64     `gorm:"column:supplier_id" json:"supplier_id,omitempty"`
	Name       string     `gorm:"column:product_name;size:100;not null" json:"product_name"`
	Barcode    string     `gorm:"column:barcode;size:50" json:"barcode,omitempty"`
	Price      int64      `gorm:"column:price;not null" json:"price"`
	Unit       string     `gorm:"column:unit;size:20;default:pcs" json:"unit"`
	ImageURL   string     `gorm:"column:image_url;size:255" json:"image_url"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	IsDeleted  bool       `gorm:"column:is_deleted;not null;default:false" json:"-"`
	Category   *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Inventory  *Inventory `gorm:"foreignKey:ProductID" json:"inventory,omitempty"`
	Reviews    []Review   `gorm:"foreignKey:ProductID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// Inventory tracks on-hand stock for a product.
type Inventory struct {
	ID        int64     `gorm:"column:inventory_id;primaryKey" json:"inventory_id"`
	ProductID int64     `gorm:"column:product_id;uniqueIndex;not null" json:"product_id"`
	Quantity  int       `gorm:"column:quantity;not null;default:0" json:"quantity"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Inventory) TableName() string {
	return "inventory"
}
