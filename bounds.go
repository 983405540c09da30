package guidedoc

import "strings"

// Markers delimit the region of interest within the page.
type Markers struct {
	Start string
	End   string
}

// DefaultMarkers wrap the post body of a WordPress page.
var DefaultMarkers = Markers{
	Start: `<div class="entry-content">`,
	End:   `</div><!-- .entry-content -->`,
}

// IsZero reports whether neither marker is set.
func (m Markers) IsZero() bool {
	return m.Start == "" && m.End == ""
}

// Bounds is a half-open range [Start, End) of line indices.
type Bounds struct {
	Start int
	End   int
}

// Len returns the number of lines in the range.
func (b Bounds) Len() int {
	return b.End - b.Start
}

// FindBounds scans every line for the markers. Start is the index after the
// last line containing the start marker; End is the index of the last line
// containing the end marker. A marker that never appears is reported as
// ENOTFOUND, and an end marker before the start as EINVALID.
func FindBounds(lines []string, markers Markers) (Bounds, error) {
	if markers.Start == "" || markers.End == "" {
		return Bounds{}, Errorf(EINVALID, "start and end markers required")
	}

	start, end := -1, -1
	for i, line := range lines {
		if strings.Contains(line, markers.Start) {
			start = i + 1
		}
		if strings.Contains(line, markers.End) {
			end = i
		}
	}

	if start < 0 {
		return Bounds{}, Errorf(ENOTFOUND, "start marker %q not found", markers.Start)
	}
	if end < 0 {
		return Bounds{}, Errorf(ENOTFOUND, "end marker %q not found", markers.End)
	}
	if start > end {
		return Bounds{}, Errorf(EINVALID, "end marker on line %d precedes content starting on line %d", end+1, start+1)
	}
	return Bounds{Start: start, End: end}, nil
}

// Extract returns the lines between the markers.
func Extract(lines []string, markers Markers) ([]string, error) {
	b, err := FindBounds(lines, markers)
	if err != nil {
		return nil, err
	}
	return lines[b.Start:b.End], nil
}
