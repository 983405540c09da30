package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/NorthernWidget/guidedoc"
)

// Ensure LoggingGuideWriter implements guidedoc.GuideWriter.
var _ guidedoc.GuideWriter = (*LoggingGuideWriter)(nil)

// LoggingGuideWriter wraps a GuideWriter with logging.
type LoggingGuideWriter struct {
	next   guidedoc.GuideWriter
	logger *slog.Logger
}

// NewLoggingGuideWriter creates a new LoggingGuideWriter.
func NewLoggingGuideWriter(next guidedoc.GuideWriter, logger *slog.Logger) *LoggingGuideWriter {
	return &LoggingGuideWriter{next: next, logger: logger}
}

// WriteGuide delegates to the wrapped writer and logs the result.
func (w *LoggingGuideWriter) WriteGuide(ctx context.Context, guide *guidedoc.Guide) (result *guidedoc.WriteResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"source", guide.SourceURL,
			"lines", len(guide.Lines),
			"duration", time.Since(begin),
		}
		if result != nil {
			attrs = append(attrs,
				"path", result.Path,
				"bytes", result.Bytes,
				"hash", result.Hash,
				"changed", result.Changed,
			)
		}
		attrs = append(attrs, "err", err)
		w.logger.Info("write guide", attrs...)
	}(time.Now())
	return w.next.WriteGuide(ctx, guide)
}
