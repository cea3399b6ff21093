package mock

import (
	"context"

	"github.com/companionsite/snarf"
)

var (
	_ snarf.Extractor  = (*Extractor)(nil)
	_ snarf.NameLister = (*Extractor)(nil)
)

// Extractor is a mock implementation of snarf.Extractor and snarf.NameLister.
type Extractor struct {
	ExtractFileFn func(ctx context.Context, path string) (*snarf.Record, error)
	AuthorNamesFn func(ctx context.Context, path string) ([]string, error)
}

func (e *Extractor) ExtractFile(ctx context.Context, path string) (*snarf.Record, error) {
	return e.ExtractFileFn(ctx, path)
}

func (e *Extractor) AuthorNames(ctx context.Context, path string) ([]string, error) {
	return e.AuthorNamesFn(ctx, path)
}
