package services

import "storefront-service/models"

// Rating aggregates are recomputed from the live review set on every
// request; no cached aggregate column exists anywhere.

// VisibleReviews filters out soft-deleted reviews.
func VisibleReviews(reviews []models.Review) []models.Review {
	visible := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		if !r.IsDeleted {
			visible = append(visible, r)
		}
	}
	return visible
}

// Summarize returns the review count and arithmetic mean rating over
// non-deleted reviews. The mean is 0 when no reviews remain.
func Summarize(reviews []models.Review) models.RatingSummary {
	var count int
	var sum int
	for _, r := range reviews {
		if r.IsDeleted {
			continue
		}
		count++
		sum += r.Rating
	}

	summary := models.RatingSummary{ReviewCount: count}
	if count > 0 {
		summary.AverageRating = float64(sum) / float64(count)
	}
	return summary
}

// Histogram counts non-deleted reviews at each star value 1 through 5.
// Out-of-range ratings are ignored.
func Histogram(reviews []models.Review) map[int]int {
	hist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, r := range reviews {
		if r.IsDeleted {
			continue
		}
		if r.Rating >= 1 && r.Rating <= 5 {
			hist[r.Rating]++
		}
	}
	return hist
}
