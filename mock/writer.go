package mock

import (
	"context"

	"github.com/NorthernWidget/guidedoc"
)

var _ guidedoc.GuideWriter = (*GuideWriter)(nil)

// GuideWriter is a mock implementation of guidedoc.GuideWriter.
type GuideWriter struct {
	WriteGuideFn func(ctx context.Context, guide *guidedoc.Guide) (*guidedoc.WriteResult, error)
}

func (w *GuideWriter) WriteGuide(ctx context.Context, guide *guidedoc.Guide) (*guidedoc.WriteResult, error) {
	return w.WriteGuideFn(ctx, guide)
}
