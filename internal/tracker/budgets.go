package tracker

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/moneytrack-dev/moneytrack/internal/log"
	"github.com/moneytrack-dev/moneytrack/internal/model"
)

// SetBudgetParams holds the raw field values for a budget.
type SetBudgetParams struct {
	CategoryID string
	Amount     string
	Period     string
}

// SetBudget creates a budget, or overwrites the amount in place when one
// already exists for the same (category, period) pair. At most one budget
// per pair ever exists.
func (s *Service) SetBudget(p SetBudgetParams) error {
	const userMsg = "Please fill in all fields"

	categoryID, err := strconv.ParseInt(p.CategoryID, 10, 64)
	if err != nil || categoryID == 0 {
		return s.reject(userMsg, "category is required")
	}
	amount, err := decimal.NewFromString(p.Amount)
	if err != nil || !amount.IsPositive() {
		return s.reject(userMsg, "amount must be a positive number")
	}
	if p.Period == "" {
		return s.reject(userMsg, "period is required")
	}

	budgets := s.store.Budgets()
	updated := false
	for i := range budgets {
		if budgets[i].CategoryID == categoryID && budgets[i].Period == p.Period {
			budgets[i].Amount = amount
			updated = true
			break
		}
	}

	if !updated {
		budgets = append(budgets, model.Budget{
			ID:         s.nextID(),
			CategoryID: categoryID,
			Amount:     amount,
			Period:     p.Period,
			CreatedAt:  s.now(),
		})
	}
	s.store.SetBudgets(budgets)

	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info("budget set",
		log.FieldCategoryID, categoryID,
		log.FieldAmount, amount.String(),
		"period", p.Period,
		"updated", updated)
	if updated {
		s.success("Budget updated successfully!", ViewBudgets)
	} else {
		s.success("Budget created successfully!", ViewBudgets)
	}
	return nil
}

// DeleteBudget removes a budget by ID after confirmation.
func (s *Service) DeleteBudget(budgetID int64) error {
	if !s.confirm("Are you sure you want to delete this budget?") {
		return nil
	}

	kept := s.store.Budgets()[:0:0]
	for _, b := range s.store.Budgets() {
		if b.ID != budgetID {
			kept = append(kept, b)
		}
	}
	s.store.SetBudgets(kept)

	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info("budget deleted", log.FieldID, budgetID)
	s.success("Budget deleted successfully!", ViewBudgets)
	return nil
}
