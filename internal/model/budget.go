package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodMonthly is the only budget period the derivations compute against.
const PeriodMonthly = "monthly"

// Budget is a spending ceiling for one category over a period. At most one
// budget exists per (CategoryID, Period) pair; setting a second one
// overwrites the amount in place.
type Budget struct {
	ID         int64           `json:"id"`
	CategoryID int64           `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
	Period     string          `json:"period"`
	CreatedAt  time.Time       `json:"createdAt"`
}
