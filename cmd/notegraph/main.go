package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
	"github.com/notegraph/notegraph"
	"github.com/notegraph/notegraph/logseq"
	notegraphslog "github.com/notegraph/notegraph/slog"
	"github.com/notegraph/notegraph/sqlite"
)

// Version is the CLI and MCP server version.
const Version = "0.2.0"

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
	// API token and base URL. Set before calling Run().
	Token   string
	BaseURL string

	// Sync state database path. Set before calling Run().
	DBPath string

	// Input stream for commands that read markdown from stdin.
	Stdin io.Reader

	// SQLite database, opened only for commands that need it.
	DB *sqlite.DB

	// PageService override for end-to-end testing. When nil, an API
	// client is built from Token and BaseURL.
	PageService notegraph.PageService
}

// NewMain returns a new instance of Main configured from the environment.
func NewMain() *Main {
	return &Main{
		Token:   os.Getenv("LOGSEQ_API_TOKEN"),
		BaseURL: os.Getenv("LOGSEQ_API_URL"),
		DBPath:  defaultDBPath(),
		Stdin:   os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := newLogger(stderr)

	deps := &Dependencies{
		Ctx:     ctx,
		Stdin:   m.Stdin,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		Version: Version,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("notegraph"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'notegraph --help' to see available commands")
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

	// The parse command works entirely offline.
	if cmd != "parse" {
		deps.Pages, err = m.pageService(logger)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set LOGSEQ_API_TOKEN to the token configured in Logseq's HTTP API settings")
			return err
		}
	}

	if cmd == "sync" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set NOTEGRAPH_STATE_DB to use a different state database path")
			return fmt.Errorf("failed to open state database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		deps.DB = m.DB
		deps.State = sqlite.NewSyncStateService(m.DB)
	}

	return kongCtx.Run(deps)
}

// pageService builds the page service, wrapped with logging.
func (m *Main) pageService(logger *slog.Logger) (notegraph.PageService, error) {
	if m.PageService != nil {
		return m.PageService, nil
	}
	if m.Token == "" {
		return nil, notegraph.Errorf(notegraph.EINVALID, "LOGSEQ_API_TOKEN not set")
	}
	client := logseq.NewClient(m.BaseURL, m.Token)
	return notegraphslog.NewLoggingPageService(client, logger), nil
}

// newLogger builds the stderr logger. NOTEGRAPH_LOG selects the level;
// the default only surfaces warnings so command output stays clean.
func newLogger(stderr io.Writer) *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(os.Getenv("NOTEGRAPH_LOG")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("NOTEGRAPH_STATE_DB"); path != "" {
		return path
	}
	path, err := xdg.DataFile("notegraph/state.db")
	if err != nil {
		return "notegraph-state.db"
	}
	return path
}

// readContent reads markdown from a file, or from stdin when no file is
// given.
func readContent(deps *Dependencies, file string) (string, error) {
	if file == "" {
		raw, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(raw), nil
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", file, err)
	}
	return string(raw), nil
}
