package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType classifies a transaction or category as money in or money out.
type TxType string

const (
	TxIncome  TxType = "income"
	TxExpense TxType = "expense"
)

// Valid reports whether the type is one of the two known kinds.
func (t TxType) Valid() bool {
	return t == TxIncome || t == TxExpense
}

// Transaction is a single dated income or expense entry. Transactions are
// immutable after creation; the only mutation is deletion.
type Transaction struct {
	ID          int64           `json:"id"`
	Type        TxType          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CategoryID  int64           `json:"categoryId"`
	Date        Date            `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}
