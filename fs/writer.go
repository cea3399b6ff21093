// Package fs provides file-based output for extracted records.
package fs

import (
	"context"
	"encoding/json"
	"os"

	"github.com/companionsite/snarf"
)

// Ensure Writer implements snarf.RecordWriter at compile time.
var _ snarf.RecordWriter = (*Writer)(nil)

// Writer writes records as an indented JSON array to a single file.
type Writer struct {
	path string
}

// NewWriter creates a new Writer that writes to the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteRecords serializes records in order as a JSON array indented with
// two spaces and writes it to disk in one shot. Nil records stand in for
// inputs with no derivable legacy ID and serialize as empty objects, so
// the array always has one entry per input file.
func (w *Writer) WriteRecords(ctx context.Context, records []*snarf.Record) error {
	items := make([]any, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			items = append(items, struct{}{})
			continue
		}
		if err := rec.Validate(); err != nil {
			return err
		}
		items = append(items, rec)
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return snarf.Errorf(snarf.EINTERNAL, "failed to encode records: %v", err)
	}

	return os.WriteFile(w.path, data, 0644)
}
