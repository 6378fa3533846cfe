package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target with a deadline and a running current amount.
// Progress updates clamp CurrentAmount at TargetAmount; creation does not,
// so a goal may start already achieved.
type Goal struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    Date            `json:"targetDate"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
}
