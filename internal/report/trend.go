package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneytrack-dev/moneytrack/internal/model"
)

// DefaultTrendMonths is the default span of the trend series.
const DefaultTrendMonths = 6

// TrendSeries is a month-bucketed income/expense series, oldest to newest.
// All three slices have equal length; months with no activity are
// zero-filled, never omitted.
type TrendSeries struct {
	Labels   []string
	Income   []decimal.Decimal
	Expenses []decimal.Decimal
}

// Trend buckets transactions into the last months calendar months, counting
// backward from the month containing now inclusive.
func Trend(snap model.Snapshot, now time.Time, months int) TrendSeries {
	if months <= 0 {
		months = DefaultTrendMonths
	}

	series := TrendSeries{
		Labels:   make([]string, 0, months),
		Income:   make([]decimal.Decimal, 0, months),
		Expenses: make([]decimal.Decimal, 0, months),
	}

	for i := months - 1; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)

		income := decimal.Zero
		expenses := decimal.Zero
		for _, tx := range snap.Transactions {
			if !tx.Date.SameMonth(monthStart) {
				continue
			}
			switch tx.Type {
			case model.TxIncome:
				income = income.Add(tx.Amount)
			case model.TxExpense:
				expenses = expenses.Add(tx.Amount)
			}
		}

		series.Labels = append(series.Labels, monthStart.Format("Jan 2006"))
		series.Income = append(series.Income, income)
		series.Expenses = append(series.Expenses, expenses)
	}
	return series
}
