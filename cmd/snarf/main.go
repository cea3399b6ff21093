package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/companionsite/snarf"
	"github.com/companionsite/snarf/fs"
	"github.com/companionsite/snarf/goquery"
	snarfslog "github.com/companionsite/snarf/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. When nil, Run wires the real
	// implementations.
	Extractor snarf.Extractor
	Names     snarf.NameLister
	Writer    snarf.RecordWriter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("snarf"),
		kong.Description("Extract CompanionSite metadata from saved legacy pages into a JSON fixture"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'snarf --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire services into dependencies. Logging goes to stderr so the
	// summary on stdout stays clean for shell pipelines.
	logLevel := slog.LevelWarn
	if cli.Extract.Verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	extractor := goquery.NewExtractor()

	deps.Extractor = m.Extractor
	if deps.Extractor == nil {
		deps.Extractor = snarfslog.NewLoggingExtractor(extractor, logger)
	}

	deps.Names = m.Names
	if deps.Names == nil {
		deps.Names = extractor
	}

	deps.Writer = m.Writer
	if deps.Writer == nil {
		deps.Writer = fs.NewWriter(cli.Extract.Out)
	}

	return kongCtx.Run(deps)
}
