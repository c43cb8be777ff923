package models

// RatingSummary is the per-request aggregate over a product's non-deleted
// reviews. Average is 0 when there are no reviews.
type RatingSummary struct {
	ReviewCount   int     `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
}

// ProductView decorates a product with its recomputed rating summary and
// current stock for rendering.
type ProductView struct {
	Product
	Rating RatingSummary `json:"rating"`
	Stock  int           `json:"stock"`
}

// ProductListView is the catalog page view model.
type ProductListView struct {
	Products      []ProductView `json:"products"`
	Categories    []Category    `json:"categories"`
	Page          int           `json:"page"`
	PageSize      int           `json:"pageSize"`
	TotalProducts int           `json:"totalProducts"`
	TotalPages    int           `json:"totalPages"`
}

// ProductDetailsView is the detail page view model: the product, its
// visible reviews, a 1..5 star histogram, and up to four related products
// from the same category.
type ProductDetailsView struct {
	Product         ProductView   `json:"product"`
	Reviews         []Review      `json:"reviews"`
	RatingHistogram map[int]int   `json:"rating_histogram"`
	RelatedProducts []ProductView `json:"related_products"`
}
