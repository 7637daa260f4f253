package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/tokcount"
	"github.com/fwojciec/tokcount/fs"
	"github.com/fwojciec/tokcount/gemini"
	tokslog "github.com/fwojciec/tokcount/slog"
	"github.com/fwojciec/tokcount/sqlite"
	"github.com/fwojciec/tokcount/tiktoken"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorText(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database holding the count history.
	DB *sqlite.DB

	CountService tokcount.CountService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tokcount"),
		kong.Description("Count the tokens a language model sees in a file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"model":  tokcount.DefaultModel,
			"prompt": tokcount.DefaultPromptFile,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// With no arguments the default command counts prompt.txt.
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	var cmd string
	if fields := strings.Fields(kongCtx.Command()); len(fields) > 0 {
		cmd = fields[0]
	}
	deps.Model = cli.Model

	if cmd == "models" {
		return kongCtx.Run(deps)
	}

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	if !cli.NoHistory || cmd == "history" {
		db := sqlite.NewDB(m.DBPath)
		if err := db.Open(); err != nil {
			if cmd == "history" {
				fmt.Fprintf(stderr, "Hint: Set TOKCOUNT_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			fmt.Fprintf(stderr, "warning: history disabled, failed to open database at %q: %v\n", m.DBPath, err)
		} else {
			m.DB = db
			defer m.Close()
			m.CountService = sqlite.NewCountService(m.DB)
			deps.Counts = m.CountService
		}
	}

	if cmd == "history" {
		return kongCtx.Run(deps)
	}

	// The tokenizer is resolved on the first count, after the input has
	// been read, and not at all when history already has the answer.
	deps.Counter = &lazyCounter{model: cli.Model}
	if logger != nil {
		deps.Counter = tokslog.NewLoggingTokenCounter(deps.Counter, cli.Model, logger)
	}
	deps.Files = fs.NewTextReader()

	if cmd == "prompt" {
		var mu sync.Mutex
		dirs := &fs.DirReader{
			Concurrency: cli.Prompt.Concurrency,
			Exclude:     []string{cli.Prompt.OutputPath()},
			OnSkip: func(path string, err error) {
				mu.Lock()
				defer mu.Unlock()
				fmt.Fprintf(stderr, "  skip %s: %v\n", path, err)
			},
		}
		deps.Dirs = dirs
		if logger != nil {
			deps.Dirs = tokslog.NewLoggingDirectoryReader(dirs, logger)
		}
		deps.Writer = fs.NewWriter()
	}

	return kongCtx.Run(deps)
}

// lazyCounter builds the tokenizer for model on first use. Loading an
// encoding may download its tables.
type lazyCounter struct {
	model string

	once sync.Once
	next tokcount.TokenCounter
	err  error
}

func (c *lazyCounter) CountTokens(ctx context.Context, text string) (int, error) {
	c.once.Do(func() {
		c.next, c.err = newTokenCounter(c.model)
	})
	if c.err != nil {
		return 0, c.err
	}
	return c.next.CountTokens(ctx, text)
}

// newTokenCounter resolves model to a tokenizer. Gemini models use the
// Gemini local tokenizer, everything else a tiktoken encoding.
func newTokenCounter(model string) (tokcount.TokenCounter, error) {
	if gemini.IsModel(model) {
		tc, err := gemini.NewTokenCounter(model)
		if err != nil {
			return nil, err
		}
		return tc, nil
	}

	tc, err := tiktoken.NewTokenCounter(model)
	if err != nil {
		return nil, err
	}
	return tc, nil
}

func defaultDBPath() string {
	if path := os.Getenv("TOKCOUNT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "tokcount.db"
	}
	dir := filepath.Join(home, ".tokcount")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "tokcount.db")
}

// errorText returns the message printed for a failed run. Application
// errors carry their own message; anything else prints as is.
func errorText(err error) string {
	if tokcount.ErrorCode(err) == tokcount.EINTERNAL {
		return err.Error()
	}
	return tokcount.ErrorMessage(err)
}
