// Package session implements the interactive picker as a pure state
// machine. Every input is an Event; Machine.HandleEvent returns the next
// State synchronously, running the search and the alias save inline, so
// results and cursor always change together. The package knows nothing
// about terminals and is driven by the bubbletea host in package tui.
package session

import (
	"fmt"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

// Mode is the screen the session is showing.
type Mode int

// Session modes.
const (
	Browsing Mode = iota
	SavePrompt
	ErrorNotice
)

func (m Mode) String() string {
	switch m {
	case Browsing:
		return "browsing"
	case SavePrompt:
		return "save-prompt"
	case ErrorNotice:
		return "error-notice"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Outcome reports whether and how the session ended.
type Outcome int

// Session outcomes.
const (
	OutcomeRunning Outcome = iota
	OutcomeSaved
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeSaved:
		return "saved"
	case OutcomeQuit:
		return "quit"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// State is a snapshot of the session. It is a value: HandleEvent never
// mutates the State it is given, though the Results slice is shared
// between snapshots and must be treated as read-only.
type State struct {
	// Query is the current query text.
	Query string
	// QueryFocused is true while keystrokes edit the query.
	QueryFocused bool
	// Results is the result set for Query, in index order.
	Results []domain.Association
	// Cursor indexes Results; it is 0 when Results is empty.
	Cursor int
	// QueryErr is set when Query failed to compile.
	QueryErr error

	Mode Mode

	// Pending is the character chosen for saving.
	Pending     rune
	PendingName string
	// AliasText is the alias being typed in the save prompt.
	AliasText string
	// DefaultAlias pre-fills AliasText each time the prompt opens.
	DefaultAlias string

	// Notice is the message shown in ErrorNotice mode.
	Notice string
	// NoticeReturn is the mode restored when the notice is acknowledged.
	NoticeReturn Mode

	Outcome Outcome
	// SavedAlias is the alias written when Outcome is OutcomeSaved.
	SavedAlias string
}

// Selected returns the association under the cursor.
func (s State) Selected() (domain.Association, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Results) {
		return domain.Association{}, false
	}
	return s.Results[s.Cursor], true
}

// Done reports whether the session has ended.
func (s State) Done() bool {
	return s.Outcome != OutcomeRunning
}
