// Package generate runs the guide pipeline: fetch the page, clean its
// lines, cut out the post body and write it to disk.
package generate

import (
	"context"
	"fmt"

	"github.com/NorthernWidget/guidedoc"
)

// Generator produces the guide from a single page.
type Generator struct {
	Fetcher guidedoc.Fetcher
	Writer  guidedoc.GuideWriter

	// Markers delimit the extracted region. Zero value uses DefaultMarkers.
	Markers guidedoc.Markers
}

// Build fetches url and returns the cleaned, extracted guide without
// writing it.
func (g *Generator) Build(ctx context.Context, url string) (*guidedoc.Guide, error) {
	if g.Fetcher == nil {
		return nil, guidedoc.Errorf(guidedoc.EINVALID, "generator requires a fetcher")
	}
	if url == "" {
		return nil, guidedoc.Errorf(guidedoc.EINVALID, "source URL required")
	}

	body, err := g.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch guide page: %w", err)
	}

	lines := guidedoc.CleanLines(guidedoc.SplitLines(body))

	markers := g.Markers
	if markers.IsZero() {
		markers = guidedoc.DefaultMarkers
	}

	extracted, err := guidedoc.Extract(lines, markers)
	if err != nil {
		return nil, fmt.Errorf("extract guide from %s: %w", url, err)
	}

	return &guidedoc.Guide{SourceURL: url, Lines: extracted}, nil
}

// Run builds the guide from url and writes it.
func (g *Generator) Run(ctx context.Context, url string) (*guidedoc.WriteResult, error) {
	if g.Writer == nil {
		return nil, guidedoc.Errorf(guidedoc.EINVALID, "generator requires a writer")
	}

	guide, err := g.Build(ctx, url)
	if err != nil {
		return nil, err
	}

	result, err := g.Writer.WriteGuide(ctx, guide)
	if err != nil {
		return nil, fmt.Errorf("write guide: %w", err)
	}
	return result, nil
}
