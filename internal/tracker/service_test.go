package tracker

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneytrack-dev/moneytrack/internal/model"
	"github.com/moneytrack-dev/moneytrack/internal/notify"
	"github.com/moneytrack-dev/moneytrack/internal/store"
)

type memKV struct {
	data    map[string][]byte
	failPut bool
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Put(key string, value []byte) error {
	if m.failPut {
		return errors.New("put failed")
	}
	m.data[key] = value
	return nil
}

type viewRecorder struct {
	views []View
}

func (r *viewRecorder) Refresh(views ...View) {
	r.views = append(r.views, views...)
}

type fixture struct {
	svc   *Service
	store *store.Store
	kv    *memKV
	rec   *notify.Recorder
	views *viewRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	kv := newMemKV()
	st := store.New(kv, nil)
	require.NoError(t, st.Load())

	rec := &notify.Recorder{}
	views := &viewRecorder{}
	next := int64(0)
	svc := New(Options{
		Store:     st,
		Notifier:  rec,
		Refresher: views,
		Now:       func() time.Time { return time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC) },
		NextID:    func() int64 { next++; return 1000 + next },
	})
	return &fixture{svc: svc, store: st, kv: kv, rec: rec, views: views}
}

func validTx() AddTransactionParams {
	return AddTransactionParams{
		Type:        "expense",
		Amount:      "45.50",
		Description: "Groceries",
		CategoryID:  "4",
		Date:        "2025-03-10",
	}
}

func TestAddTransaction(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.AddTransaction(validTx()))

	txs := f.store.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, int64(1001), txs[0].ID)
	assert.Equal(t, "45.5", txs[0].Amount.String())
	assert.Equal(t, int64(4), txs[0].CategoryID)

	assert.Equal(t, notify.Success, f.rec.Last().Level)
	assert.Equal(t, "Transaction added successfully!", f.rec.Last().Message)
	assert.Contains(t, f.views.views, ViewDashboard)
	assert.Contains(t, f.views.views, ViewTransactions)

	// Persisted to the collaborator, not just held in memory.
	raw, ok, err := f.kv.Get(store.SnapshotKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), "Groceries")
}

func TestAddTransactionValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*AddTransactionParams)
	}{
		{"bad type", func(p *AddTransactionParams) { p.Type = "transfer" }},
		{"zero amount", func(p *AddTransactionParams) { p.Amount = "0" }},
		{"negative amount", func(p *AddTransactionParams) { p.Amount = "-5" }},
		{"unparseable amount", func(p *AddTransactionParams) { p.Amount = "abc" }},
		{"empty description", func(p *AddTransactionParams) { p.Description = "" }},
		{"empty category", func(p *AddTransactionParams) { p.CategoryID = "" }},
		{"bad date", func(p *AddTransactionParams) { p.Date = "10/03/2025" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			p := validTx()
			tc.mutate(&p)

			err := f.svc.AddTransaction(p)
			require.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, f.store.Transactions(), "rejected mutation must not apply")
			assert.Equal(t, notify.Error, f.rec.Last().Level)
			assert.Equal(t, "Please fill in all fields", f.rec.Last().Message)
			assert.Empty(t, f.views.views, "no refresh on rejection")
		})
	}
}

func TestDeleteTransaction(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.AddTransaction(validTx()))
	txID := f.store.Transactions()[0].ID

	require.NoError(t, f.svc.DeleteTransaction(txID))
	assert.Empty(t, f.store.Transactions())
	assert.Equal(t, "Transaction deleted successfully!", f.rec.Last().Message)
}

func TestDeleteTransactionDeclined(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.AddTransaction(validTx()))
	f.svc.confirm = func(string) bool { return false }
	before := len(f.rec.Notifications)

	require.NoError(t, f.svc.DeleteTransaction(f.store.Transactions()[0].ID))
	assert.Len(t, f.store.Transactions(), 1, "declined confirmation is a no-op")
	assert.Len(t, f.rec.Notifications, before)
}

func TestSetBudgetUpsert(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.SetBudget(SetBudgetParams{CategoryID: "4", Amount: "500", Period: "monthly"}))
	assert.Equal(t, "Budget created successfully!", f.rec.Last().Message)

	require.NoError(t, f.svc.SetBudget(SetBudgetParams{CategoryID: "4", Amount: "750", Period: "monthly"}))
	assert.Equal(t, "Budget updated successfully!", f.rec.Last().Message)

	budgets := f.store.Budgets()
	require.Len(t, budgets, 1, "same (category, period) pair overwrites in place")
	assert.Equal(t, "750", budgets[0].Amount.String())

	// A different period for the same category is a distinct budget.
	require.NoError(t, f.svc.SetBudget(SetBudgetParams{CategoryID: "4", Amount: "9000", Period: "yearly"}))
	assert.Len(t, f.store.Budgets(), 2)
}

func TestSetBudgetValidation(t *testing.T) {
	f := newFixture(t)

	err := f.svc.SetBudget(SetBudgetParams{CategoryID: "4", Amount: "0", Period: "monthly"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, f.store.Budgets())
}

func TestAddGoal(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.AddGoal(AddGoalParams{
		Title:        "Emergency Fund",
		TargetAmount: "10000",
		TargetDate:   "2025-12-31",
	}))

	goals := f.store.Goals()
	require.Len(t, goals, 1)
	assert.True(t, goals[0].CurrentAmount.IsZero(), "blank current amount defaults to zero")
	assert.Equal(t, "Goal created successfully!", f.rec.Last().Message)
}

func TestAddGoalValidation(t *testing.T) {
	f := newFixture(t)

	err := f.svc.AddGoal(AddGoalParams{Title: "", TargetAmount: "10000", TargetDate: "2025-12-31"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Please fill in all required fields", f.rec.Last().Message)
	assert.Empty(t, f.store.Goals())
}

func TestUpdateGoalProgressClamps(t *testing.T) {
	f := newFixture(t)
	f.store.SetGoals([]model.Goal{
		{ID: 1, Title: "Fund", TargetAmount: decimal.NewFromInt(10000), CurrentAmount: decimal.NewFromInt(2500)},
		{ID: 2, Title: "Trip", TargetAmount: decimal.NewFromInt(10000), CurrentAmount: decimal.NewFromInt(9950)},
	})

	require.NoError(t, f.svc.UpdateGoalProgress(1, decimal.NewFromInt(100)))
	assert.Equal(t, "2600", f.store.Goals()[0].CurrentAmount.String())

	require.NoError(t, f.svc.UpdateGoalProgress(2, decimal.NewFromInt(100)))
	assert.Equal(t, "10000", f.store.Goals()[1].CurrentAmount.String(), "clamped at target")

	assert.Contains(t, f.views.views, ViewGoals)
}

func TestUpdateGoalProgressUnknownIDIsNoop(t *testing.T) {
	f := newFixture(t)
	before := len(f.rec.Notifications)

	require.NoError(t, f.svc.UpdateGoalProgress(999, decimal.NewFromInt(100)))
	assert.Len(t, f.rec.Notifications, before)
	assert.Empty(t, f.views.views)
}

func TestAddCategoryColorFromPalette(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.AddCategory("Books", "expense"))

	cats := f.store.Categories()
	added := cats[len(cats)-1]
	assert.Equal(t, "Books", added.Name)
	assert.Contains(t, store.DefaultPalette, added.Color)
}

func TestDeleteCategoryCascades(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.AddTransaction(validTx()))
	require.NoError(t, f.svc.AddTransaction(AddTransactionParams{
		Type: "expense", Amount: "12", Description: "Bus", CategoryID: "5", Date: "2025-03-11",
	}))
	require.NoError(t, f.svc.SetBudget(SetBudgetParams{CategoryID: "4", Amount: "500", Period: "monthly"}))
	require.NoError(t, f.svc.SetBudget(SetBudgetParams{CategoryID: "5", Amount: "100", Period: "monthly"}))

	require.NoError(t, f.svc.DeleteCategory(4))

	for _, c := range f.store.Categories() {
		assert.NotEqual(t, int64(4), c.ID)
	}
	require.Len(t, f.store.Transactions(), 1, "cascade removes referencing transactions")
	assert.Equal(t, int64(5), f.store.Transactions()[0].CategoryID)
	require.Len(t, f.store.Budgets(), 1, "cascade removes referencing budgets")
	assert.Equal(t, int64(5), f.store.Budgets()[0].CategoryID)
}

func TestClearAllData(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.AddTransaction(validTx()))
	require.NoError(t, f.svc.UpdateSettings("USD", "YYYY-MM-DD", "dark"))

	require.NoError(t, f.svc.ClearAllData())

	assert.Empty(t, f.store.Transactions())
	assert.Empty(t, f.store.Budgets())
	assert.Empty(t, f.store.Goals())
	assert.Empty(t, f.store.Categories(), "clearing does not reseed categories")
	assert.Equal(t, model.DefaultSettings(), f.store.Settings())
	assert.Equal(t, "All data cleared successfully!", f.rec.Last().Message)
}

func TestUpdateSettings(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.UpdateSettings("USD", "", ""))
	settings := f.store.Settings()
	assert.Equal(t, "USD", settings.Currency)
	assert.Equal(t, model.DateFormatDMY, settings.DateFormat, "blank fields keep their current value")

	err := f.svc.UpdateSettings("CHF", "", "")
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Invalid currency", f.rec.Last().Message)
	assert.Equal(t, "USD", f.store.Settings().Currency)
}

func TestExportImportRoundTrip(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.AddTransaction(validTx()))
	require.NoError(t, f.svc.UpdateSettings("EUR", "", ""))

	var buf bytes.Buffer
	require.NoError(t, f.svc.Export(&buf))
	assert.Contains(t, buf.String(), "exportDate")

	other := newFixture(t)
	require.NoError(t, other.svc.Import(&buf))

	require.Len(t, other.store.Transactions(), 1)
	assert.Equal(t, "Groceries", other.store.Transactions()[0].Description)
	assert.Equal(t, "EUR", other.store.Settings().Currency)
	assert.Equal(t, "Data imported successfully!", other.rec.Last().Message)
}

func TestImportInvalidFormatLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.AddTransaction(validTx()))

	err := f.svc.Import(strings.NewReader("not json at all"))
	require.Error(t, err)
	assert.Equal(t, "Invalid file format", f.rec.Last().Message)
	assert.Len(t, f.store.Transactions(), 1)
}

func TestImportMissingCollectionsBecomeEmpty(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.AddTransaction(validTx()))

	require.NoError(t, f.svc.Import(strings.NewReader(`{"settings":{"currency":"GBP"}}`)))
	assert.Empty(t, f.store.Transactions(), "import replaces collections wholesale")
	assert.Equal(t, "GBP", f.store.Settings().Currency)
	assert.Equal(t, model.DateFormatDMY, f.store.Settings().DateFormat, "missing settings fields merge from current")
}

func TestExportFilename(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, "money-track-export-2025-03-15.json", f.svc.ExportFilename())
}

func TestPersistFailureSurfaces(t *testing.T) {
	f := newFixture(t)
	f.kv.failPut = true

	err := f.svc.AddTransaction(validTx())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Failed to save data", f.rec.Last().Message)
}
