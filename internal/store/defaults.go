package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneytrack-dev/moneytrack/internal/model"
)

// DefaultCategories returns the ten seeded categories a fresh tracker
// starts with.
func DefaultCategories() []model.Category {
	return []model.Category{
		{ID: 1, Name: "Salary", Type: model.TxIncome, Color: "#10b981"},
		{ID: 2, Name: "Freelance", Type: model.TxIncome, Color: "#3b82f6"},
		{ID: 3, Name: "Investment", Type: model.TxIncome, Color: "#8b5cf6"},
		{ID: 4, Name: "Food & Dining", Type: model.TxExpense, Color: "#f59e0b"},
		{ID: 5, Name: "Transportation", Type: model.TxExpense, Color: "#ef4444"},
		{ID: 6, Name: "Shopping", Type: model.TxExpense, Color: "#ec4899"},
		{ID: 7, Name: "Entertainment", Type: model.TxExpense, Color: "#06b6d4"},
		{ID: 8, Name: "Bills & Utilities", Type: model.TxExpense, Color: "#84cc16"},
		{ID: 9, Name: "Healthcare", Type: model.TxExpense, Color: "#f97316"},
		{ID: 10, Name: "Education", Type: model.TxExpense, Color: "#6366f1"},
	}
}

// DefaultPalette is the fixed set of display colors new categories draw
// from.
var DefaultPalette = []string{
	"#ef4444", "#f97316", "#f59e0b", "#eab308", "#84cc16", "#22c55e",
	"#10b981", "#14b8a6", "#06b6d4", "#0ea5e9", "#3b82f6", "#6366f1",
	"#8b5cf6", "#a855f7", "#d946ef", "#ec4899", "#f43f5e",
}

// SampleTransactions returns demonstration transactions dated today,
// referencing the seeded categories.
func SampleTransactions(now time.Time) []model.Transaction {
	today := model.NewDate(now.Year(), int(now.Month()), now.Day())
	return []model.Transaction{
		{ID: 1, Type: model.TxIncome, Amount: decimal.NewFromInt(5000), Description: "Monthly Salary", CategoryID: 1, Date: today, CreatedAt: now},
		{ID: 2, Type: model.TxExpense, Amount: decimal.NewFromInt(1200), Description: "Rent Payment", CategoryID: 8, Date: today, CreatedAt: now},
		{ID: 3, Type: model.TxExpense, Amount: decimal.NewFromInt(300), Description: "Grocery Shopping", CategoryID: 4, Date: today, CreatedAt: now},
		{ID: 4, Type: model.TxExpense, Amount: decimal.NewFromInt(150), Description: "Gas Station", CategoryID: 5, Date: today, CreatedAt: now},
		{ID: 5, Type: model.TxIncome, Amount: decimal.NewFromInt(800), Description: "Freelance Project", CategoryID: 2, Date: today, CreatedAt: now},
	}
}

// SampleBudgets returns demonstration monthly budgets for three expense
// categories.
func SampleBudgets(now time.Time) []model.Budget {
	return []model.Budget{
		{ID: 1, CategoryID: 4, Amount: decimal.NewFromInt(500), Period: model.PeriodMonthly, CreatedAt: now},
		{ID: 2, CategoryID: 5, Amount: decimal.NewFromInt(200), Period: model.PeriodMonthly, CreatedAt: now},
		{ID: 3, CategoryID: 6, Amount: decimal.NewFromInt(300), Period: model.PeriodMonthly, CreatedAt: now},
	}
}

// SampleGoals returns demonstration savings goals with deadlines relative
// to now.
func SampleGoals(now time.Time) []model.Goal {
	inDays := func(d int) model.Date {
		t := now.AddDate(0, 0, d)
		return model.NewDate(t.Year(), int(t.Month()), t.Day())
	}
	return []model.Goal{
		{
			ID:            1,
			Title:         "Emergency Fund",
			TargetAmount:  decimal.NewFromInt(10000),
			CurrentAmount: decimal.NewFromInt(2500),
			TargetDate:    inDays(365),
			Description:   "Build an emergency fund for unexpected expenses",
			CreatedAt:     now,
		},
		{
			ID:            2,
			Title:         "Vacation Fund",
			TargetAmount:  decimal.NewFromInt(3000),
			CurrentAmount: decimal.NewFromInt(800),
			TargetDate:    inDays(180),
			Description:   "Save for a dream vacation",
			CreatedAt:     now,
		},
	}
}
