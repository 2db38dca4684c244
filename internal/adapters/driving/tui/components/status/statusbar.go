// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/runepick/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/runepick/internal/adapters/driving/tui/styles"
)

// State selects which key hints the bar shows.
type State string

const (
	StateBrowsing State = "browsing"
	StateQuery    State = "query"
	StatePrompt   State = "prompt"
	StateNotice   State = "notice"
)

// Bar displays the result count or query error and keybinding hints.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	state       State
	queryErr    error
	resultCount int
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateBrowsing,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()
	// Hints give way to a long error. Two columns go to the bar padding.
	if lipgloss.Width(left)+lipgloss.Width(right)+3 > s.width {
		right = ""
	}

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	if s.queryErr != nil {
		return s.styles.Error.Render(fmt.Sprintf("Invalid query: %v", s.queryErr))
	}
	switch s.resultCount {
	case 0:
		return s.styles.Muted.Render("No results")
	case 1:
		return s.styles.Normal.Render("1 result")
	default:
		return s.styles.Normal.Render(fmt.Sprintf("%d results", s.resultCount))
	}
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.state {
	case StateQuery:
		bindings = s.keymap.QueryHelp()
	case StatePrompt:
		bindings = s.keymap.PromptHelp()
	case StateNotice:
		bindings = s.keymap.NoticeHelp()
	default:
		bindings = s.keymap.BrowseHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetQueryErr sets the error shown in place of the result count.
func (s *Bar) SetQueryErr(err error) {
	s.queryErr = err
}

// SetResultCount sets the result count.
func (s *Bar) SetResultCount(count int) {
	s.resultCount = count
}

// ResultCount returns the current result count.
func (s *Bar) ResultCount() int {
	return s.resultCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
