// Package transfer moves full snapshots in and out of the tracker as JSON
// files.
package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/moneytrack-dev/moneytrack/internal/model"
)

// ErrInvalidFormat reports a file that is not a parseable snapshot export.
// Existing state is never mutated on an import that fails with it.
var ErrInvalidFormat = errors.New("invalid file format")

// exportFile is the on-disk export shape: the snapshot plus an export
// timestamp.
type exportFile struct {
	model.Snapshot
	ExportDate time.Time `json:"exportDate"`
}

// Filename returns the canonical export file name for a given day,
// "money-track-export-<ISO-date>.json".
func Filename(now time.Time) string {
	return fmt.Sprintf("money-track-export-%s.json", now.Format(model.DateLayout))
}

// Export writes the snapshot as pretty-printed JSON with an exportDate
// stamp.
func Export(w io.Writer, snap model.Snapshot, now time.Time) error {
	data, err := json.MarshalIndent(exportFile{Snapshot: snap, ExportDate: now}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// Import reads and parses a snapshot file. Missing collections come back
// empty; a parse failure returns ErrInvalidFormat.
func Import(r io.Reader) (model.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("reading import: %w", err)
	}

	var in exportFile
	if err := json.Unmarshal(data, &in); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return in.Snapshot, nil
}
