package tracker

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/moneytrack-dev/moneytrack/internal/log"
	"github.com/moneytrack-dev/moneytrack/internal/model"
)

// AddTransactionParams holds the raw field values for a new transaction.
type AddTransactionParams struct {
	Type        string
	Amount      string
	Description string
	CategoryID  string
	Date        string
}

// AddTransaction validates, appends, persists and refreshes. An amount of
// exactly zero is treated as missing, matching the rest of the tracker's
// amount handling.
func (s *Service) AddTransaction(p AddTransactionParams) error {
	const userMsg = "Please fill in all fields"

	typ := model.TxType(p.Type)
	if !typ.Valid() {
		return s.reject(userMsg, "type must be income or expense")
	}
	amount, err := decimal.NewFromString(p.Amount)
	if err != nil || !amount.IsPositive() {
		return s.reject(userMsg, "amount must be a positive number")
	}
	if p.Description == "" {
		return s.reject(userMsg, "description is required")
	}
	categoryID, err := strconv.ParseInt(p.CategoryID, 10, 64)
	if err != nil || categoryID == 0 {
		return s.reject(userMsg, "category is required")
	}
	date, err := model.ParseDate(p.Date)
	if err != nil {
		return s.reject(userMsg, "date is required")
	}

	tx := model.Transaction{
		ID:          s.nextID(),
		Type:        typ,
		Amount:      amount,
		Description: p.Description,
		CategoryID:  categoryID,
		Date:        date,
		CreatedAt:   s.now(),
	}
	s.store.SetTransactions(append(s.store.Transactions(), tx))

	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info("transaction added",
		log.FieldID, tx.ID,
		log.FieldAmount, tx.Amount.String(),
		log.FieldCategoryID, tx.CategoryID,
		"type", tx.Type)
	s.success("Transaction added successfully!", ViewDashboard, ViewTransactions)
	return nil
}

// DeleteTransaction removes a transaction by ID after confirmation. A
// declined confirmation is a no-op.
func (s *Service) DeleteTransaction(txID int64) error {
	if !s.confirm("Are you sure you want to delete this transaction?") {
		return nil
	}

	kept := s.store.Transactions()[:0:0]
	for _, tx := range s.store.Transactions() {
		if tx.ID != txID {
			kept = append(kept, tx)
		}
	}
	s.store.SetTransactions(kept)

	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info("transaction deleted", log.FieldID, txID)
	s.success("Transaction deleted successfully!", ViewDashboard, ViewTransactions)
	return nil
}
