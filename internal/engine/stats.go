package engine

import (
	"walletbook/internal/models"
)

// CategoryTotal is one slice of a per-category aggregation, carrying the
// category's display color for charting.
type CategoryTotal struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Color      string  `json:"color"`
}

// CategoryTotals aggregates the given transactions of one type by
// category, in first-seen order. Transactions whose category no longer
// resolves are skipped.
func (e *Engine) CategoryTotals(txs []models.Transaction, txType models.TransactionType) []CategoryTotal {
	var out []CategoryTotal
	index := make(map[string]int)

	for _, tx := range txs {
		if tx.Type != txType {
			continue
		}
		cat := e.Category(tx.CategoryID)
		if cat == nil {
			continue
		}
		if i, ok := index[cat.ID]; ok {
			out[i].Amount += tx.Amount
			continue
		}
		index[cat.ID] = len(out)
		out = append(out, CategoryTotal{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Amount:     tx.Amount,
			Color:      cat.Color,
		})
	}
	return out
}
