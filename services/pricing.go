package services

import "github.com/shopspring/decimal"

// computeTotals derives the discount amount and the payable total from an
// integer subtotal and a discount fraction in [0,1]. The total is rounded
// to the nearest whole currency unit; prices carry no sub-unit precision.
func computeTotals(subtotal int64, fraction float64) (discountAmount, total int64) {
	sub := decimal.NewFromInt(subtotal)
	discount := sub.Mul(decimal.NewFromFloat(fraction))

	discountAmount = discount.Round(0).IntPart()
	total = sub.Sub(discount).Round(0).IntPart()
	return discountAmount, total
}
