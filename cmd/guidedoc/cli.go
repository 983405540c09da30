package main

import (
	"context"
	"io"
	"time"

	"github.com/NorthernWidget/guidedoc/generate"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Generator *generate.Generator
}

// CLI defines the command-line interface structure for Kong.
// Every flag defaults to the published guide so a bare invocation
// regenerates doc/construct_html/new_users_guide.html.
type CLI struct {
	URL     string        `short:"u" env:"GUIDEDOC_URL" default:"${default_url}" help:"Page to generate the guide from"`
	Output  string        `short:"o" env:"GUIDEDOC_OUTPUT" default:"${default_output}" help:"Guide file to write (parent directory must exist)"`
	Timeout time.Duration `short:"t" env:"GUIDEDOC_TIMEOUT" default:"10s" help:"Fetch timeout"`
	Preview bool          `short:"p" help:"Print the extracted guide instead of writing it"`
	Verbose bool          `short:"v" help:"Log fetch and write details to stderr"`
}

// GenerateCmd handles the guide generation.
type GenerateCmd struct {
	URL     string
	Preview bool
}
