package guidedoc

import (
	"regexp"
	"strings"
)

// Substitution replaces every match of Pattern in a line with Replacement.
type Substitution struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// Apply returns line with the substitution applied once.
func (s Substitution) Apply(line string) string {
	return s.Pattern.ReplaceAllLiteralString(line, s.Replacement)
}

// DefaultSubstitutions are applied in order to every line of the page.
// Runs of non-ASCII bytes collapse to a single space before the typographic
// entities WordPress emits are mapped back to plain ASCII.
var DefaultSubstitutions = []Substitution{
	{Pattern: regexp.MustCompile(`[^\x00-\x7F]+`), Replacement: " "},
	{Pattern: regexp.MustCompile("`"), Replacement: "'"},
	{Pattern: regexp.MustCompile(`&#8217;`), Replacement: "'"},
	{Pattern: regexp.MustCompile(`&#8212;`), Replacement: "--"},
	{Pattern: regexp.MustCompile(`&#8220;`), Replacement: `"`},
	{Pattern: regexp.MustCompile(`&#8221;`), Replacement: `"`},
}

// CleanLine applies DefaultSubstitutions to a single line.
func CleanLine(line string) string {
	for _, s := range DefaultSubstitutions {
		line = s.Apply(line)
	}
	return line
}

// CleanLines returns a cleaned copy of lines. The input is not modified.
func CleanLines(lines []string) []string {
	cleaned := make([]string, len(lines))
	for i, line := range lines {
		cleaned[i] = CleanLine(line)
	}
	return cleaned
}

// SplitLines splits body after each newline, keeping the terminators so that
// joining the result reproduces body. A trailing fragment without a newline
// is kept as the last line.
func SplitLines(body string) []string {
	if body == "" {
		return nil
	}
	lines := strings.SplitAfter(body, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
