// Package slog provides logging decorators for domain interfaces using the
// standard library's structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/companionsite/snarf"
)

// Ensure LoggingExtractor implements snarf.Extractor.
var _ snarf.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-file logging.
type LoggingExtractor struct {
	next   snarf.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next snarf.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractFile delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) ExtractFile(ctx context.Context, path string) (*snarf.Record, error) {
	begin := time.Now()
	rec, err := e.next.ExtractFile(ctx, path)
	if err != nil {
		e.logger.Error("extract failed",
			"file", path,
			"error", err,
		)
		return nil, err
	}
	if rec == nil {
		e.logger.Info("no legacy id in file name, emitting empty record",
			"file", path,
		)
		return nil, nil
	}
	e.logger.Info("extracted record",
		"file", path,
		"legacy_id", rec.LegacyID,
		"names", len(rec.Names),
		"coders", len(rec.Coders),
		"duration", time.Since(begin),
	)
	return rec, nil
}
