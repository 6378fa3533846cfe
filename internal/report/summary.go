package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneytrack-dev/moneytrack/internal/model"
)

var hundred = decimal.NewFromInt(100)

// MonthlySummary holds the dashboard summary cards for one calendar month.
type MonthlySummary struct {
	Income      decimal.Decimal
	Expenses    decimal.Decimal
	Balance     decimal.Decimal
	SavingsRate decimal.Decimal // percent, one decimal place; 0 when income is 0
}

// Summary computes income, expenses, balance and savings rate for the
// calendar month containing now.
func Summary(snap model.Snapshot, now time.Time) MonthlySummary {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, tx := range snap.Transactions {
		if !tx.Date.SameMonth(now) {
			continue
		}
		switch tx.Type {
		case model.TxIncome:
			income = income.Add(tx.Amount)
		case model.TxExpense:
			expenses = expenses.Add(tx.Amount)
		}
	}

	balance := income.Sub(expenses)
	rate := decimal.Zero
	if income.IsPositive() {
		rate = balance.Div(income).Mul(hundred).Round(1)
	}

	return MonthlySummary{
		Income:      income,
		Expenses:    expenses,
		Balance:     balance,
		SavingsRate: rate,
	}
}

// BudgetOverview summarizes total budgeted amounts against the current
// month's spending.
type BudgetOverview struct {
	TotalBudget  decimal.Decimal
	MonthlySpent decimal.Decimal
	Remaining    decimal.Decimal // negative when overspent
}

// Overview sums every budget amount regardless of period and subtracts the
// current month's expense total.
func Overview(snap model.Snapshot, now time.Time) BudgetOverview {
	total := decimal.Zero
	for _, b := range snap.Budgets {
		total = total.Add(b.Amount)
	}

	spent := decimal.Zero
	for _, tx := range snap.Transactions {
		if tx.Type == model.TxExpense && tx.Date.SameMonth(now) {
			spent = spent.Add(tx.Amount)
		}
	}

	return BudgetOverview{
		TotalBudget:  total,
		MonthlySpent: spent,
		Remaining:    total.Sub(spent),
	}
}
