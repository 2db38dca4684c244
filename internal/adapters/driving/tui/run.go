package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/custodia-labs/runepick/internal/core/domain"
	"github.com/custodia-labs/runepick/internal/logger"
)

// Options configures a picker session.
type Options struct {
	// Query seeds the first result set.
	Query string

	// DefaultAlias pre-fills the save prompt.
	DefaultAlias string

	// Inline keeps the picker in the normal screen buffer.
	Inline bool

	// LogFile receives log output while the picker owns the terminal.
	// When empty, logs are discarded.
	LogFile string
}

// Run starts the picker on the controlling terminal and blocks until the
// user saves or quits. The terminal is restored on every exit path.
func Run(ctx context.Context, ports *Ports, opts Options) (Result, error) {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return Result{}, &domain.TerminalInitError{Err: errNotATerminal}
	}

	restore, err := logger.RedirectToFile(opts.LogFile)
	if err != nil {
		return Result{}, err
	}
	defer restore()

	app, err := NewApp(ctx, ports, opts.Query, opts.DefaultAlias)
	if err != nil {
		return Result{}, err
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !opts.Inline {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(app, progOpts...).Run()
	if err != nil {
		return Result{}, fmt.Errorf("interactive session: %w", err)
	}
	return final.(*App).Result(), nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
