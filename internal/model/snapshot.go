// Package model defines the record types persisted in a MoneyTrack snapshot.
package model

import "github.com/shopspring/decimal"

func init() {
	// Snapshots and exports store amounts as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Snapshot is the full persisted state: all four collections plus Settings,
// serialized as one JSON unit.
type Snapshot struct {
	Transactions []Transaction `json:"transactions"`
	Budgets      []Budget      `json:"budgets"`
	Goals        []Goal        `json:"goals"`
	Categories   []Category    `json:"categories"`
	Settings     Settings      `json:"settings"`
}
