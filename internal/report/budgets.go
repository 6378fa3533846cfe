package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneytrack-dev/moneytrack/internal/model"
)

// CategorySpent sums expense transactions for one category within the
// calendar month containing now.
func CategorySpent(snap model.Snapshot, categoryID int64, now time.Time) decimal.Decimal {
	spent := decimal.Zero
	for _, tx := range snap.Transactions {
		if tx.Type == model.TxExpense && tx.CategoryID == categoryID && tx.Date.SameMonth(now) {
			spent = spent.Add(tx.Amount)
		}
	}
	return spent
}

// BudgetStatus is one budget's progress against the current month.
type BudgetStatus struct {
	Budget        model.Budget
	CategoryName  string
	CategoryColor string
	Spent         decimal.Decimal
	Percentage    decimal.Decimal // unclamped; may exceed 100
	BarPercent    float64         // clamped at 100 for progress-bar width
	OverBudget    bool
}

// Statuses computes progress for every budget, in collection order.
// Budgets whose category reference is dangling report "Unknown".
func Statuses(snap model.Snapshot, now time.Time) []BudgetStatus {
	byID := categoriesByID(snap)

	statuses := make([]BudgetStatus, 0, len(snap.Budgets))
	for _, b := range snap.Budgets {
		name := model.UnknownCategoryName
		color := model.UnknownCategoryColor
		if c, ok := byID[b.CategoryID]; ok {
			name = c.Name
			color = c.Color
		}

		spent := CategorySpent(snap, b.CategoryID, now)
		pct := decimal.Zero
		if b.Amount.IsPositive() {
			pct = spent.Div(b.Amount).Mul(hundred)
		}
		bar, _ := pct.Float64()
		if bar > 100 {
			bar = 100
		}

		statuses = append(statuses, BudgetStatus{
			Budget:        b,
			CategoryName:  name,
			CategoryColor: color,
			Spent:         spent,
			Percentage:    pct,
			BarPercent:    bar,
			OverBudget:    spent.GreaterThan(b.Amount),
		})
	}
	return statuses
}
