package report

import (
	"github.com/shopspring/decimal"

	"github.com/moneytrack-dev/moneytrack/internal/model"
)

// CategorySlice is one wedge of the expense breakdown.
type CategorySlice struct {
	Name   string
	Color  string
	Amount decimal.Decimal
}

// Breakdown sums expense transactions grouped by category name, in
// first-seen order. Categories sharing a name are merged. Categories with
// no expense activity are omitted. Transactions with a dangling category
// reference land in an "Unknown" slice.
func Breakdown(snap model.Snapshot) []CategorySlice {
	byID := categoriesByID(snap)

	totals := make(map[string]*CategorySlice)
	var order []string
	for _, tx := range snap.Transactions {
		if tx.Type != model.TxExpense {
			continue
		}

		name := model.UnknownCategoryName
		color := model.UnknownCategoryColor
		if c, ok := byID[tx.CategoryID]; ok {
			name = c.Name
			color = c.Color
		}

		slice, seen := totals[name]
		if !seen {
			slice = &CategorySlice{Name: name, Color: color}
			totals[name] = slice
			order = append(order, name)
		}
		slice.Amount = slice.Amount.Add(tx.Amount)
	}

	out := make([]CategorySlice, 0, len(order))
	for _, name := range order {
		out = append(out, *totals[name])
	}
	return out
}
