package tracker

import (
	"io"

	"github.com/moneytrack-dev/moneytrack/internal/log"
	"github.com/moneytrack-dev/moneytrack/internal/model"
	"github.com/moneytrack-dev/moneytrack/internal/notify"
	"github.com/moneytrack-dev/moneytrack/internal/transfer"
)

// ClearAllData wipes every collection and restores default settings after
// confirmation.
func (s *Service) ClearAllData() error {
	if !s.confirm("Are you sure you want to clear all data? This action cannot be undone.") {
		return nil
	}

	s.store.Reset()
	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info("all data cleared")
	s.success("All data cleared successfully!", AllViews()...)
	return nil
}

// UpdateSettings merges non-empty values into the settings record,
// validating currency and date format against their allowed sets.
func (s *Service) UpdateSettings(currency, dateFormat, theme string) error {
	if currency != "" && !model.ValidCurrency(currency) {
		return s.reject("Invalid currency", "currency must be one of INR, EUR, GBP, USD")
	}
	if dateFormat != "" && !model.ValidDateFormat(dateFormat) {
		return s.reject("Invalid date format", "date format must be MM/DD/YYYY, DD/MM/YYYY or YYYY-MM-DD")
	}

	settings := s.store.Settings().Merge(model.Settings{
		Currency:   currency,
		DateFormat: dateFormat,
		Theme:      theme,
	})
	s.store.SetSettings(settings)

	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info("settings updated", "currency", settings.Currency, "date_format", settings.DateFormat)
	s.refresher.Refresh(ViewSettings, ViewDashboard)
	return nil
}

// Export writes the current snapshot, pretty-printed with an export
// timestamp.
func (s *Service) Export(w io.Writer) error {
	if err := transfer.Export(w, s.store.Snapshot(), s.now()); err != nil {
		s.notifier.Notify(notify.Error, "Export failed")
		return err
	}
	s.log.Info("data exported")
	s.notifier.Notify(notify.Success, "Data exported successfully!")
	return nil
}

// ExportFilename returns the canonical export file name for today.
func (s *Service) ExportFilename() string {
	return transfer.Filename(s.now())
}

// Import parses a snapshot file and, on success, replaces all four
// collections wholesale and merges settings field by field. On a parse
// failure existing state is untouched and "Invalid file format" is
// surfaced.
func (s *Service) Import(r io.Reader) error {
	snap, err := transfer.Import(r)
	if err != nil {
		s.notifier.Notify(notify.Error, "Invalid file format")
		s.log.Warn("import rejected", log.FieldError, err)
		return err
	}

	s.store.SetTransactions(snap.Transactions)
	s.store.SetBudgets(snap.Budgets)
	s.store.SetGoals(snap.Goals)
	s.store.SetCategories(snap.Categories)
	s.store.SetSettings(s.store.Settings().Merge(snap.Settings))

	if err := s.persist(); err != nil {
		return err
	}
	s.log.Info("data imported",
		"transactions", len(snap.Transactions),
		"budgets", len(snap.Budgets),
		"goals", len(snap.Goals),
		"categories", len(snap.Categories))
	s.success("Data imported successfully!", AllViews()...)
	return nil
}
