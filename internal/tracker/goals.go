package tracker

import (
	"github.com/shopspring/decimal"

	"github.com/moneytrack-dev/moneytrack/internal/log"
	"github.com/moneytrack-dev/moneytrack/internal/model"
)

// AddGoalParams holds the raw field values for a new savings goal.
// CurrentAmount and Description are optional.
type AddGoalParams struct {
	Title         string
	TargetAmount  string
	CurrentAmount string
	TargetDate    string
	Description   string
}

// AddGoal validates and creates a goal. An unparseable current amount
// defaults to zero; a current amount above the target is stored as-is and
// the goal counts as already achieved.
func (s *Service) AddGoal(p AddGoalParams) error {
	const userMsg = "Please fill in all required fields"

	if p.Title == "" {
		return s.reject(userMsg, "title is required")
	}
	target, err := decimal.NewFromString(p.TargetAmount)
	if err != nil || !target.IsPositive() {
		return s.reject(userMsg, "target amount must be a positive number")
	}
	targetDate, err := model.ParseDate(p.TargetDate)
	if err != nil {
		return s.reject(userMsg, "target date is required")
	}

	current, err := decimal.NewFromString(p.CurrentAmount)
	if err != nil {
		current = decimal.Zero
	}

	goal := model.Goal{
		ID:            s.nextID(),
		Title:         p.Title,
		TargetAmount:  target,
		CurrentAmount: current,
		TargetDate:    targetDate,
		Description:   p.Description,
		CreatedAt:     s.now(),
	}
	s.store.SetGoals(append(s.store.Goals(), goal))

	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info("goal added", log.FieldID, goal.ID, "title", goal.Title, "target", target.String())
	s.success("Goal created successfully!", ViewGoals)
	return nil
}

// UpdateGoalProgress adds delta to a goal's current amount, clamped at the
// target amount. Unknown goal IDs are a silent no-op.
func (s *Service) UpdateGoalProgress(goalID int64, delta decimal.Decimal) error {
	goals := s.store.Goals()
	for i := range goals {
		if goals[i].ID != goalID {
			continue
		}

		next := goals[i].CurrentAmount.Add(delta)
		if next.GreaterThan(goals[i].TargetAmount) {
			next = goals[i].TargetAmount
		}
		goals[i].CurrentAmount = next
		s.store.SetGoals(goals)

		if err := s.persist(); err != nil {
			return err
		}
		s.log.Info("goal progress updated", log.FieldID, goalID, "current", next.String())
		s.refresher.Refresh(ViewGoals)
		return nil
	}
	return nil
}

// DeleteGoal removes a goal by ID after confirmation.
func (s *Service) DeleteGoal(goalID int64) error {
	if !s.confirm("Are you sure you want to delete this goal?") {
		return nil
	}

	kept := s.store.Goals()[:0:0]
	for _, g := range s.store.Goals() {
		if g.ID != goalID {
			kept = append(kept, g)
		}
	}
	s.store.SetGoals(kept)

	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info("goal deleted", log.FieldID, goalID)
	s.success("Goal deleted successfully!", ViewGoals)
	return nil
}
