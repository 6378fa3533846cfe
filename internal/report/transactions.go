package report

import (
	"slices"
	"sort"
	"strings"

	"github.com/moneytrack-dev/moneytrack/internal/model"
)

// RecentCount is the number of transactions the dashboard shows.
const RecentCount = 5

// Recent returns the n most recent transactions by date, descending. Ties
// keep their original relative order.
func Recent(snap model.Snapshot, n int) []model.Transaction {
	if n <= 0 {
		n = RecentCount
	}
	sorted := sortByDateDesc(snap.Transactions)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// FilterOptions narrows the transaction view. Zero values disable the
// corresponding filter.
type FilterOptions struct {
	Search     string       // case-insensitive substring on description or category name
	CategoryID int64        // exact match
	Type       model.TxType // exact match
}

// Filter applies search, category and type filters in order, then sorts
// descending by date.
func Filter(snap model.Snapshot, opts FilterOptions) []model.Transaction {
	byID := categoriesByID(snap)
	search := strings.ToLower(opts.Search)

	var filtered []model.Transaction
	for _, tx := range snap.Transactions {
		if search != "" && !matchesSearch(tx, byID, search) {
			continue
		}
		if opts.CategoryID != 0 && tx.CategoryID != opts.CategoryID {
			continue
		}
		if opts.Type != "" && tx.Type != opts.Type {
			continue
		}
		filtered = append(filtered, tx)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date.Time)
	})
	return filtered
}

func matchesSearch(tx model.Transaction, byID map[int64]model.Category, search string) bool {
	if strings.Contains(strings.ToLower(tx.Description), search) {
		return true
	}
	if c, ok := byID[tx.CategoryID]; ok {
		return strings.Contains(strings.ToLower(c.Name), search)
	}
	return false
}

func sortByDateDesc(txs []model.Transaction) []model.Transaction {
	sorted := slices.Clone(txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date.Time)
	})
	return sorted
}
