// Package report is the derivation engine: pure functions that turn a
// snapshot and a reference time into display-ready aggregates. Nothing here
// mutates state or touches persistence, and empty collections always
// produce zero-valued results rather than errors.
package report

import (
	"github.com/moneytrack-dev/moneytrack/internal/model"
)

// categoriesByID indexes a snapshot's categories for reference lookups.
func categoriesByID(snap model.Snapshot) map[int64]model.Category {
	byID := make(map[int64]model.Category, len(snap.Categories))
	for _, c := range snap.Categories {
		byID[c.ID] = c
	}
	return byID
}

// CategoryName resolves a category reference for display. Dangling
// references resolve to "Unknown" rather than failing.
func CategoryName(snap model.Snapshot, categoryID int64) string {
	for _, c := range snap.Categories {
		if c.ID == categoryID {
			return c.Name
		}
	}
	return model.UnknownCategoryName
}
