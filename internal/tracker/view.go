package tracker

// View names one refreshable region of the presentation layer. Mutations
// report which views their changes invalidate; the presentation layer
// re-renders with an exhaustive switch over the variants.
type View int

const (
	ViewDashboard View = iota
	ViewTransactions
	ViewBudgets
	ViewGoals
	ViewSettings
	ViewAnalytics
)

// String returns the view's display name.
func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewTransactions:
		return "transactions"
	case ViewBudgets:
		return "budgets"
	case ViewGoals:
		return "goals"
	case ViewSettings:
		return "settings"
	case ViewAnalytics:
		return "analytics"
	}
	return "unknown"
}

// AllViews lists every view, for whole-state changes like import and clear.
func AllViews() []View {
	return []View{ViewDashboard, ViewTransactions, ViewBudgets, ViewGoals, ViewSettings, ViewAnalytics}
}

// Refresher re-renders views after a mutation.
type Refresher interface {
	Refresh(views ...View)
}

// NopRefresher ignores refresh requests.
type NopRefresher struct{}

// Refresh implements Refresher.
func (NopRefresher) Refresh(...View) {}
