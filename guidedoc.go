// Package guidedoc generates the ALog new users guide from its published
// web page. It downloads the page, cleans each line down to plain ASCII,
// cuts out the post body between two marker strings, and writes it as the
// tail of a Doxygen documentation comment.
//
// This package contains domain types, interfaces and the pure line
// transforms. Implementations live in subdirectories named after their
// primary dependency (e.g., http/, fs/, slog/).
package guidedoc
