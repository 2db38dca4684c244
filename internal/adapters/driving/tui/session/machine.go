package session

import (
	"fmt"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

// SearchFunc runs a query and returns its result set in index order.
type SearchFunc func(query string) ([]domain.Association, error)

// SaveFunc persists ch under alias.
type SaveFunc func(alias string, ch rune) error

// emptyAliasNotice is shown when the save prompt is submitted blank.
const emptyAliasNotice = "Alias must not be empty."

// Machine holds the collaborators the transitions call into.
type Machine struct {
	search SearchFunc
	save   SaveFunc
}

// NewMachine creates a state machine using search and save.
func NewMachine(search SearchFunc, save SaveFunc) *Machine {
	return &Machine{search: search, save: save}
}

// Start returns the initial Browsing state seeded with the results for
// query. defaultAlias pre-fills the save prompt.
func (m *Machine) Start(query, defaultAlias string) State {
	s := State{DefaultAlias: defaultAlias}
	return m.runQuery(s, query)
}

// HandleEvent returns the state that follows s after ev.
// Once the session is done every event is ignored.
func (m *Machine) HandleEvent(s State, ev Event) State {
	if s.Done() {
		return s
	}
	if _, ok := ev.(Quit); ok {
		s.Outcome = OutcomeQuit
		return s
	}

	switch s.Mode {
	case Browsing:
		return m.browsing(s, ev)
	case SavePrompt:
		return m.savePrompt(s, ev)
	case ErrorNotice:
		return errorNotice(s, ev)
	default:
		return s
	}
}

func (m *Machine) browsing(s State, ev Event) State {
	switch ev := ev.(type) {
	case Move:
		s.Cursor = clamp(s.Cursor+ev.Delta, len(s.Results))
	case MoveToStart:
		s.Cursor = 0
	case MoveToEnd:
		s.Cursor = clamp(len(s.Results)-1, len(s.Results))
	case FocusQuery:
		s.QueryFocused = true
	case BlurQuery:
		s.QueryFocused = false
	case Cancel:
		s.QueryFocused = false
	case EditQuery:
		return m.runQuery(s, ev.Text)
	case Select, Submit:
		return selectEntry(s)
	}
	return s
}

func (m *Machine) runQuery(s State, query string) State {
	s.Query = query
	s.Cursor = 0

	results, err := m.search(query)
	if err != nil {
		s.Results = nil
		s.QueryErr = err
		return s
	}
	s.Results = results
	s.QueryErr = nil
	return s
}

func selectEntry(s State) State {
	entry, ok := s.Selected()
	if !ok {
		return s
	}

	r, err := entry.Rune()
	if err != nil {
		return notice(s, fmt.Sprintf("Cannot select %s: %v", entry.Name, err), Browsing)
	}

	s.Mode = SavePrompt
	s.QueryFocused = false
	s.Pending = r
	s.PendingName = entry.Name
	s.AliasText = s.DefaultAlias
	return s
}

func (m *Machine) savePrompt(s State, ev Event) State {
	switch ev := ev.(type) {
	case EditAlias:
		s.AliasText = ev.Text
	case Cancel:
		s.Mode = Browsing
	case Submit:
		alias := domain.NormaliseAlias(s.AliasText)
		if alias == "" {
			return notice(s, emptyAliasNotice, SavePrompt)
		}
		if err := m.save(alias, s.Pending); err != nil {
			return notice(s, fmt.Sprintf("Could not save %q: %v", alias, err), SavePrompt)
		}
		s.SavedAlias = alias
		s.Outcome = OutcomeSaved
	}
	return s
}

func errorNotice(s State, ev Event) State {
	switch ev.(type) {
	case Acknowledge, Submit, Cancel:
		s.Mode = s.NoticeReturn
		s.Notice = ""
	}
	return s
}

func notice(s State, msg string, back Mode) State {
	s.Mode = ErrorNotice
	s.Notice = msg
	s.NoticeReturn = back
	return s
}

// clamp bounds i to [0, n), or returns 0 when n is 0.
func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
