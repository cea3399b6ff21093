package mock

import (
	"context"

	"github.com/companionsite/snarf"
)

var _ snarf.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of snarf.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, records []*snarf.Record) error
}

func (w *RecordWriter) WriteRecords(ctx context.Context, records []*snarf.Record) error {
	return w.WriteRecordsFn(ctx, records)
}
