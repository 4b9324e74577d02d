package report

import (
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one rollup bucket keyed by effective category.
type CategoryTotal struct {
	CategoryID   uint            `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Total        decimal.Decimal `json:"total"`
	Count        int             `json:"count"`
}

// RollupByCategory groups transactions by effective category: the
// category's parent when it has one, else the category itself. Buckets
// keep first-seen order. A ParentID that is missing from the user's
// category set (data inconsistency) falls back to the transaction's own
// category instead of failing.
func RollupByCategory(txs []models.Transaction, cats map[uint]models.Category) []CategoryTotal {
	buckets := make(map[uint]*CategoryTotal, len(cats))
	order := make([]uint, 0, len(cats))

	for i := range txs {
		cat := &txs[i].Category
		effID, effName := cat.ID, cat.Name
		if cat.ParentID != nil {
			if parent, ok := cats[*cat.ParentID]; ok {
				effID, effName = parent.ID, parent.Name
			}
		}

		b, ok := buckets[effID]
		if !ok {
			b = &CategoryTotal{CategoryID: effID, CategoryName: effName}
			buckets[effID] = b
			order = append(order, effID)
		}
		b.Total = b.Total.Add(txs[i].Amount)
		b.Count++
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, id := range order {
		out = append(out, *buckets[id])
	}
	return out
}
