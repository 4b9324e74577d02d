package report

import (
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// TotalAssetValue sums quantity x effective price over all assets.
// The effective price is the current sell price when set, else the
// purchase price (see models.Asset).
func TotalAssetValue(assets []models.Asset) decimal.Decimal {
	total := decimal.Zero
	for i := range assets {
		total = total.Add(assets[i].TotalValue())
	}
	return total
}
