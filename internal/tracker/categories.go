package tracker

import (
	"math/rand"

	"github.com/moneytrack-dev/moneytrack/internal/log"
	"github.com/moneytrack-dev/moneytrack/internal/model"
	"github.com/moneytrack-dev/moneytrack/internal/store"
)

// AddCategory creates a category with a display color drawn from the fixed
// palette.
func (s *Service) AddCategory(name, typ string) error {
	const userMsg = "Please fill in all fields"

	if name == "" {
		return s.reject(userMsg, "name is required")
	}
	txType := model.TxType(typ)
	if !txType.Valid() {
		return s.reject(userMsg, "type must be income or expense")
	}

	category := model.Category{
		ID:    s.nextID(),
		Name:  name,
		Type:  txType,
		Color: store.DefaultPalette[rand.Intn(len(store.DefaultPalette))],
	}
	s.store.SetCategories(append(s.store.Categories(), category))

	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info("category added", log.FieldID, category.ID, "name", name, "type", typ)
	s.success("Category added successfully!", ViewSettings)
	return nil
}

// DeleteCategory removes a category after confirmation and cascades: every
// transaction and budget referencing it is removed as well, leaving no
// orphaned references.
func (s *Service) DeleteCategory(categoryID int64) error {
	if !s.confirm("Are you sure you want to delete this category? This will affect all related transactions.") {
		return nil
	}

	categories := s.store.Categories()[:0:0]
	for _, c := range s.store.Categories() {
		if c.ID != categoryID {
			categories = append(categories, c)
		}
	}
	s.store.SetCategories(categories)

	txs := s.store.Transactions()[:0:0]
	for _, tx := range s.store.Transactions() {
		if tx.CategoryID != categoryID {
			txs = append(txs, tx)
		}
	}
	s.store.SetTransactions(txs)

	budgets := s.store.Budgets()[:0:0]
	for _, b := range s.store.Budgets() {
		if b.CategoryID != categoryID {
			budgets = append(budgets, b)
		}
	}
	s.store.SetBudgets(budgets)

	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info("category deleted", log.FieldID, categoryID)
	s.success("Category deleted successfully!", ViewSettings, ViewDashboard)
	return nil
}
