package report

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneytrack-dev/moneytrack/internal/model"
)

// GoalProgress is one goal's progress toward its target.
type GoalProgress struct {
	Goal       model.Goal
	Percentage decimal.Decimal
	Remaining  decimal.Decimal
	DaysLeft   int // floored at 0
	Completed  bool
}

// Progress computes progress for a single goal against now.
func Progress(goal model.Goal, now time.Time) GoalProgress {
	pct := decimal.Zero
	if goal.TargetAmount.IsPositive() {
		pct = goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred)
	}

	daysLeft := int(math.Ceil(goal.TargetDate.Sub(now).Hours() / 24))
	if daysLeft < 0 {
		daysLeft = 0
	}

	return GoalProgress{
		Goal:       goal,
		Percentage: pct,
		Remaining:  goal.TargetAmount.Sub(goal.CurrentAmount),
		DaysLeft:   daysLeft,
		Completed:  goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount),
	}
}

// Progresses computes progress for every goal, in collection order.
func Progresses(snap model.Snapshot, now time.Time) []GoalProgress {
	out := make([]GoalProgress, 0, len(snap.Goals))
	for _, g := range snap.Goals {
		out = append(out, Progress(g, now))
	}
	return out
}
