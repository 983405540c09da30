package guidedoc

import "context"

// DefaultURL is the published page the guide is generated from.
const DefaultURL = "http://northernwidget.com/alog/new-to-arduino-start-here/"

// Fetcher retrieves the raw page body from a URL.
type Fetcher interface {
	// Fetch issues a single request for the URL and returns the body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
