package guidedoc

import (
	"context"
	"strings"
)

// DefaultOutputPath is where the guide is written, relative to the
// repository root.
const DefaultOutputPath = "doc/construct_html/new_users_guide.html"

// Trailer closes the Doxygen comment the guide is embedded in.
const Trailer = "\n */"

// Guide is the extracted fragment of the page.
type Guide struct {
	SourceURL string
	Lines     []string
}

// Validate returns an error if the guide contains invalid fields.
func (g *Guide) Validate() error {
	if g.SourceURL == "" {
		return Errorf(EINVALID, "guide source URL required")
	}
	return nil
}

// Content returns the lines concatenated verbatim, followed by Trailer.
func (g *Guide) Content() string {
	var b strings.Builder
	for _, line := range g.Lines {
		b.WriteString(line)
	}
	b.WriteString(Trailer)
	return b.String()
}

// WriteResult describes a completed write.
type WriteResult struct {
	Path    string
	Bytes   int
	Hash    string
	Changed bool
}

// GuideWriter persists a guide.
type GuideWriter interface {
	// WriteGuide writes the guide content, replacing any previous version.
	// Returns ENOTFOUND if the destination directory does not exist.
	WriteGuide(ctx context.Context, guide *Guide) (*WriteResult, error)
}
