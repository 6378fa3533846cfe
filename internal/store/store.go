// Package store holds the in-memory record collections and moves them to
// and from the persistence collaborator as one snapshot.
package store

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/moneytrack-dev/moneytrack/internal/log"
	"github.com/moneytrack-dev/moneytrack/internal/model"
)

// SnapshotKey is the single fixed key the snapshot lives under.
const SnapshotKey = "moneyTrackData"

// KV is the persistence collaborator: a key-value store holding one
// JSON-serializable snapshot. A failed Put leaves the stored value
// unchanged; this layer does not retry.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
}

// Store owns the four record collections plus Settings. It has no behavior
// beyond storage; validation and derivation live elsewhere.
type Store struct {
	kv  KV
	log *log.Logger

	transactions []model.Transaction
	budgets      []model.Budget
	goals        []model.Goal
	categories   []model.Category
	settings     model.Settings
}

// New creates a Store in its factory-default state, not yet loaded.
func New(kv KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(log.Config{Output: io.Discard})
	}
	s := &Store{kv: kv, log: logger.WithComponent(log.ComponentStore)}
	s.applyDefaults()
	return s
}

// Load reads the snapshot from the collaborator. A missing snapshot, a read
// failure, or malformed JSON all fall back to built-in defaults (ten seeded
// categories) rather than an empty or error state; the underlying error is
// returned so the caller can surface a warning.
func (s *Store) Load() error {
	s.applyDefaults()

	data, ok, err := s.kv.Get(SnapshotKey)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}
	if !ok {
		s.log.Debug("no snapshot found, seeding defaults")
		return s.Save()
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parsing snapshot: %w", err)
	}

	s.transactions = snap.Transactions
	s.budgets = snap.Budgets
	s.goals = snap.Goals
	s.categories = snap.Categories
	s.settings = model.DefaultSettings().Merge(snap.Settings)

	if len(s.categories) == 0 {
		s.categories = DefaultCategories()
		return s.Save()
	}
	return nil
}

// Save writes the full snapshot under the fixed key.
func (s *Store) Save() error {
	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := s.kv.Put(SnapshotKey, data); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	s.log.Debug("snapshot saved",
		"transactions", len(s.transactions),
		"budgets", len(s.budgets),
		"goals", len(s.goals),
		"categories", len(s.categories))
	return nil
}

// Snapshot returns a copy of the current state for derivation and export.
func (s *Store) Snapshot() model.Snapshot {
	return model.Snapshot{
		Transactions: slices.Clone(s.transactions),
		Budgets:      slices.Clone(s.budgets),
		Goals:        slices.Clone(s.goals),
		Categories:   slices.Clone(s.categories),
		Settings:     s.settings,
	}
}

// Transactions returns the transaction collection.
func (s *Store) Transactions() []model.Transaction { return s.transactions }

// Budgets returns the budget collection.
func (s *Store) Budgets() []model.Budget { return s.budgets }

// Goals returns the goal collection.
func (s *Store) Goals() []model.Goal { return s.goals }

// Categories returns the category collection.
func (s *Store) Categories() []model.Category { return s.categories }

// Settings returns the settings record.
func (s *Store) Settings() model.Settings { return s.settings }

// SetTransactions replaces the transaction collection wholesale.
func (s *Store) SetTransactions(txs []model.Transaction) { s.transactions = txs }

// SetBudgets replaces the budget collection wholesale.
func (s *Store) SetBudgets(budgets []model.Budget) { s.budgets = budgets }

// SetGoals replaces the goal collection wholesale.
func (s *Store) SetGoals(goals []model.Goal) { s.goals = goals }

// SetCategories replaces the category collection wholesale.
func (s *Store) SetCategories(categories []model.Category) { s.categories = categories }

// SetSettings replaces the settings record.
func (s *Store) SetSettings(settings model.Settings) { s.settings = settings }

// Reset wipes all four collections and restores default settings. Unlike
// Load, it does not reseed categories; a cleared tracker starts truly empty.
func (s *Store) Reset() {
	s.transactions = nil
	s.budgets = nil
	s.goals = nil
	s.categories = nil
	s.settings = model.DefaultSettings()
}

func (s *Store) applyDefaults() {
	s.transactions = nil
	s.budgets = nil
	s.goals = nil
	s.categories = DefaultCategories()
	s.settings = model.DefaultSettings()
}
