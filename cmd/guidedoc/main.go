package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/NorthernWidget/guidedoc"
	"github.com/NorthernWidget/guidedoc/fs"
	"github.com/NorthernWidget/guidedoc/generate"
	guidehttp "github.com/NorthernWidget/guidedoc/http"
	guideslog "github.com/NorthernWidget/guidedoc/slog"
	"github.com/alecthomas/kong"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("guidedoc"),
		kong.Description("Generate the ALog new users guide from its web page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"default_url":    guidedoc.DefaultURL,
			"default_output": guidedoc.DefaultOutputPath,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	for _, arg := range args {
		if arg == "--help" || arg == "-h" || arg == "help" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	fetcher := guideslog.NewLoggingFetcher(guidehttp.NewFetcher(guidehttp.WithTimeout(cli.Timeout)), logger)
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Generator: &generate.Generator{
			Fetcher: fetcher,
			Writer:  guideslog.NewLoggingGuideWriter(fs.NewWriter(cli.Output), logger),
		},
	}

	cmd := &GenerateCmd{
		URL:     cli.URL,
		Preview: cli.Preview,
	}

	return cmd.Run(deps)
}
