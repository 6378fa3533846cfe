package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/moneytrack-dev/moneytrack/internal/format"
	"github.com/moneytrack-dev/moneytrack/internal/model"
	"github.com/moneytrack-dev/moneytrack/internal/report"
	"github.com/moneytrack-dev/moneytrack/internal/store"
	"github.com/moneytrack-dev/moneytrack/internal/tracker"
)

// Renderer draws derived views to the terminal. It implements
// tracker.Refresher: after a mutation, only views marked active are
// redrawn, the way the web original only redraws the section on screen.
type Renderer struct {
	store  *store.Store
	out    io.Writer
	active map[tracker.View]bool
	now    func() time.Time
}

// NewRenderer creates a Renderer with no active views.
func NewRenderer(st *store.Store, out io.Writer) *Renderer {
	return &Renderer{
		store:  st,
		out:    out,
		active: make(map[tracker.View]bool),
		now:    time.Now,
	}
}

// SetActive marks the views a command is displaying.
func (r *Renderer) SetActive(views ...tracker.View) {
	r.active = make(map[tracker.View]bool, len(views))
	for _, v := range views {
		r.active[v] = true
	}
}

// Refresh implements tracker.Refresher with one render function per view
// variant.
func (r *Renderer) Refresh(views ...tracker.View) {
	for _, v := range views {
		if !r.active[v] {
			continue
		}
		switch v {
		case tracker.ViewDashboard:
			r.Dashboard()
		case tracker.ViewTransactions:
			r.Transactions(report.FilterOptions{})
		case tracker.ViewBudgets:
			r.Budgets()
		case tracker.ViewGoals:
			r.Goals()
		case tracker.ViewSettings:
			r.Settings()
		case tracker.ViewAnalytics:
			r.Analytics(report.DefaultTrendMonths)
		}
	}
}

// Dashboard renders the summary cards, budget overview, and the five most
// recent transactions.
func (r *Renderer) Dashboard() {
	snap := r.store.Snapshot()
	now := r.now()
	settings := snap.Settings

	summary := report.Summary(snap, now)
	fmt.Fprintf(r.out, "This month (%s)\n", now.Format("Jan 2006"))
	fmt.Fprintf(r.out, "  Income:       %s\n", format.Amount(settings, summary.Income))
	fmt.Fprintf(r.out, "  Expenses:     %s\n", format.Amount(settings, summary.Expenses))
	fmt.Fprintf(r.out, "  Balance:      %s\n", format.Amount(settings, summary.Balance))
	fmt.Fprintf(r.out, "  Savings rate: %s%%\n", summary.SavingsRate.StringFixed(1))

	overview := report.Overview(snap, now)
	remaining := format.Amount(settings, overview.Remaining)
	if overview.Remaining.IsNegative() {
		remaining = "-" + remaining
	}
	fmt.Fprintf(r.out, "\nBudget\n")
	fmt.Fprintf(r.out, "  Total:     %s\n", format.Amount(settings, overview.TotalBudget))
	fmt.Fprintf(r.out, "  Spent:     %s\n", format.Amount(settings, overview.MonthlySpent))
	fmt.Fprintf(r.out, "  Remaining: %s\n", remaining)

	recent := report.Recent(snap, report.RecentCount)
	fmt.Fprintf(r.out, "\nRecent transactions\n")
	if len(recent) == 0 {
		fmt.Fprintln(r.out, "  No transactions yet")
		return
	}
	r.transactionTable(snap, recent)
}

// Transactions renders the filtered transaction table.
func (r *Renderer) Transactions(opts report.FilterOptions) {
	snap := r.store.Snapshot()
	filtered := report.Filter(snap, opts)
	if len(filtered) == 0 {
		fmt.Fprintln(r.out, "No transactions found")
		return
	}
	r.transactionTable(snap, filtered)
}

// Budgets renders each budget's progress against the current month.
func (r *Renderer) Budgets() {
	snap := r.store.Snapshot()
	statuses := report.Statuses(snap, r.now())
	if len(statuses) == 0 {
		fmt.Fprintln(r.out, "No budgets set")
		return
	}

	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tPERIOD\tBUDGET\tSPENT\tUSED")
	for _, st := range statuses {
		used := st.Percentage.StringFixed(1) + "%"
		if st.OverBudget {
			used += " OVER"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s %s\n",
			st.Budget.ID,
			st.CategoryName,
			st.Budget.Period,
			format.Amount(snap.Settings, st.Budget.Amount),
			format.Amount(snap.Settings, st.Spent),
			bar(st.BarPercent),
			used)
	}
	w.Flush()
}

// Goals renders each goal's progress.
func (r *Renderer) Goals() {
	snap := r.store.Snapshot()
	progresses := report.Progresses(snap, r.now())
	if len(progresses) == 0 {
		fmt.Fprintln(r.out, "No goals set")
		return
	}

	for _, p := range progresses {
		fmt.Fprintf(r.out, "%s (id %d)\n", p.Goal.Title, p.Goal.ID)
		fmt.Fprintf(r.out, "  %s / %s (%s%%)\n",
			format.Amount(snap.Settings, p.Goal.CurrentAmount),
			format.Amount(snap.Settings, p.Goal.TargetAmount),
			p.Percentage.StringFixed(0))
		fmt.Fprintf(r.out, "  Target date: %s  Days left: %d  Remaining: %s\n",
			format.Date(snap.Settings, p.Goal.TargetDate),
			p.DaysLeft,
			format.Amount(snap.Settings, p.Remaining))
		if p.Completed {
			fmt.Fprintln(r.out, "  Achieved!")
		}
		if p.Goal.Description != "" {
			fmt.Fprintf(r.out, "  %s\n", p.Goal.Description)
		}
	}
}

// Settings renders preferences and the category list.
func (r *Renderer) Settings() {
	snap := r.store.Snapshot()
	fmt.Fprintf(r.out, "Currency:    %s\n", snap.Settings.Currency)
	fmt.Fprintf(r.out, "Date format: %s\n", snap.Settings.DateFormat)
	fmt.Fprintf(r.out, "Theme:       %s\n", snap.Settings.Theme)

	fmt.Fprintf(r.out, "\nCategories\n")
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tCOLOR")
	for _, c := range snap.Categories {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Name, c.Type, c.Color)
	}
	w.Flush()
}

// Analytics renders the month-over-month trend and the expense breakdown.
func (r *Renderer) Analytics(months int) {
	snap := r.store.Snapshot()
	trend := report.Trend(snap, r.now(), months)

	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSES")
	for i, label := range trend.Labels {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			label,
			format.Amount(snap.Settings, trend.Income[i]),
			format.Amount(snap.Settings, trend.Expenses[i]))
	}
	w.Flush()

	breakdown := report.Breakdown(snap)
	if len(breakdown) == 0 {
		return
	}
	fmt.Fprintf(r.out, "\nExpenses by category\n")
	bw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	for _, slice := range breakdown {
		fmt.Fprintf(bw, "%s\t%s\n", slice.Name, format.Amount(snap.Settings, slice.Amount))
	}
	bw.Flush()
}

func (r *Renderer) transactionTable(snap model.Snapshot, txs []model.Transaction) {
	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tDESCRIPTION\tCATEGORY\tTYPE\tAMOUNT")
	for _, tx := range txs {
		prefix := "-"
		if tx.Type == model.TxIncome {
			prefix = "+"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s%s\n",
			tx.ID,
			format.Date(snap.Settings, tx.Date),
			tx.Description,
			report.CategoryName(snap, tx.CategoryID),
			tx.Type,
			prefix,
			format.Amount(snap.Settings, tx.Amount))
	}
	w.Flush()
}

// bar renders a 20-cell progress bar from a width percentage already
// clamped at 100.
func bar(percent float64) string {
	filled := int(percent / 5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", 20-filled) + "]"
}
