package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/runepick/internal/adapters/driving/tui/components/dialog"
	"github.com/custodia-labs/runepick/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/runepick/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/runepick/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/runepick/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/runepick/internal/adapters/driving/tui/session"
	"github.com/custodia-labs/runepick/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/runepick/internal/core/domain"
)

// chromeHeight is the number of lines outside the result list:
// title, blank, bordered query field and status bar.
const chromeHeight = 7

// Result reports how a picker session ended.
type Result struct {
	Outcome session.Outcome

	// Alias and Char are set when Outcome is session.OutcomeSaved.
	Alias string
	Char  rune
}

// App is the picker model following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	machine *session.Machine
	state   session.State

	keymap *keymap.KeyMap
	styles *styles.Styles

	list   *list.CharList
	query  *input.Field
	alias  *input.Field
	status *status.Bar
	dialog *dialog.Dialog

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates a window size has been received.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a picker whose first result set is the one for query.
// defaultAlias pre-fills the save prompt.
func NewApp(ctx context.Context, ports *Ports, query, defaultAlias string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	search := func(q string) ([]domain.Association, error) {
		return ports.Search.Search(ctx, q, domain.SearchOptions{})
	}
	save := func(alias string, ch rune) error {
		return ports.Aliases.Set(ctx, alias, ch)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	a := &App{
		machine: session.NewMachine(search, save),
		keymap:  km,
		styles:  s,
		list:    list.NewCharList(s),
		query:   input.NewField(s, "Search: ", "character name or pattern"),
		alias:   input.NewField(s, "Alias: ", "name to save under"),
		status:  status.NewBar(s, km),
		dialog:  dialog.New(s),
	}

	a.state = a.machine.Start(query, defaultAlias)
	if query == "" {
		a.state = a.machine.HandleEvent(a.state, session.FocusQuery{})
	}
	_ = a.sync()
	return a, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.query.Init(),
		tea.SetWindowTitle("runepick"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if a.state.Done() {
			return a, tea.Quit
		}
		return a, cmd
	}

	// Cursor blink and other ticks go to whichever field is focused.
	var cmd tea.Cmd
	switch {
	case a.alias.Focused():
		cmd, _ = a.alias.Update(msg)
	case a.query.Focused():
		cmd, _ = a.query.Update(msg)
	}
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	if keymap.Matches(k, a.keymap.ForceQuit) {
		return a.apply(session.Quit{})
	}

	switch a.state.Mode {
	case session.SavePrompt:
		return a.promptKey(msg)
	case session.ErrorNotice:
		switch {
		case keymap.Matches(k, a.keymap.Select):
			return a.apply(session.Acknowledge{})
		case keymap.Matches(k, a.keymap.Cancel):
			return a.apply(session.Cancel{})
		}
		return nil
	}

	if a.state.QueryFocused {
		return a.queryKey(msg)
	}
	return a.browseKey(k)
}

// browseKey handles keys while the result list has focus.
func (a *App) browseKey(k string) tea.Cmd {
	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a.apply(session.Quit{})
	case keymap.Matches(k, a.keymap.Up):
		return a.apply(session.Move{Delta: -1})
	case keymap.Matches(k, a.keymap.Down):
		return a.apply(session.Move{Delta: 1})
	case keymap.Matches(k, a.keymap.PageUp):
		return a.apply(session.Move{Delta: -a.list.PageSize()})
	case keymap.Matches(k, a.keymap.PageDown):
		return a.apply(session.Move{Delta: a.list.PageSize()})
	case keymap.Matches(k, a.keymap.Top):
		return a.apply(session.MoveToStart{})
	case keymap.Matches(k, a.keymap.Bottom):
		return a.apply(session.MoveToEnd{})
	case keymap.Matches(k, a.keymap.Filter):
		return a.apply(session.FocusQuery{})
	case keymap.Matches(k, a.keymap.Select):
		return a.apply(session.Select{})
	}
	return nil
}

// queryKey handles keys while typing a query. Arrow keys still move the
// cursor; letters go to the field.
func (a *App) queryKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type { //nolint:exhaustive // other keys are typed into the field
	case tea.KeyUp:
		return a.apply(session.Move{Delta: -1})
	case tea.KeyDown:
		return a.apply(session.Move{Delta: 1})
	case tea.KeyEsc:
		return a.apply(session.Cancel{})
	case tea.KeyEnter:
		return a.apply(session.Submit{})
	}

	cmd, changed := a.query.Update(msg)
	if changed {
		return tea.Batch(cmd, a.apply(session.EditQuery{Text: a.query.Value()}))
	}
	return cmd
}

// promptKey handles keys in the save prompt.
func (a *App) promptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type { //nolint:exhaustive // other keys are typed into the field
	case tea.KeyEnter:
		return a.apply(session.Submit{})
	case tea.KeyEsc:
		return a.apply(session.Cancel{})
	}

	cmd, changed := a.alias.Update(msg)
	if changed {
		return tea.Batch(cmd, a.apply(session.EditAlias{Text: a.alias.Value()}))
	}
	return cmd
}

// apply feeds ev to the machine and mirrors the new state into the
// components.
func (a *App) apply(ev session.Event) tea.Cmd {
	prev := a.state.Mode
	a.state = a.machine.HandleEvent(a.state, ev)
	if prev != session.SavePrompt && a.state.Mode == session.SavePrompt {
		// The prompt opens pre-filled on every entry.
		a.alias.SetValue(a.state.AliasText)
	}
	return a.sync()
}

// sync copies the session state into the components. It returns the
// cursor blink command of a field that just gained focus.
func (a *App) sync() tea.Cmd {
	a.list.SetEntries(a.state.Results, a.state.Cursor)

	if a.query.Value() != a.state.Query {
		a.query.SetValue(a.state.Query)
	}
	cmd := tea.Batch(
		focus(a.query, a.state.Mode == session.Browsing && a.state.QueryFocused),
		focus(a.alias, a.state.Mode == session.SavePrompt),
	)

	a.status.SetResultCount(len(a.state.Results))
	a.status.SetQueryErr(a.state.QueryErr)
	switch {
	case a.state.Mode == session.SavePrompt:
		a.status.SetState(status.StatePrompt)
	case a.state.Mode == session.ErrorNotice:
		a.status.SetState(status.StateNotice)
	case a.state.QueryFocused:
		a.status.SetState(status.StateQuery)
	default:
		a.status.SetState(status.StateBrowsing)
	}
	return cmd
}

func focus(f *input.Field, on bool) tea.Cmd {
	switch {
	case on && !f.Focused():
		return f.Focus()
	case !on && f.Focused():
		f.Blur()
	}
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	if a.state.Done() {
		return ""
	}

	var body string
	switch a.state.Mode {
	case session.SavePrompt:
		title := fmt.Sprintf("Save %s  %s, %s",
			list.Glyph(uint32(a.state.Pending)), domain.FormatCode(a.state.Pending), a.state.PendingName)
		body = a.dialog.Render(dialog.Info, title, a.alias.View())
	case session.ErrorNotice:
		body = a.dialog.Render(dialog.Error, "Error", a.state.Notice)
	default:
		body = a.list.View()
	}

	return a.styles.Title.Render("runepick") + "\n\n" +
		a.query.View() + "\n" +
		body + "\n" +
		a.status.View()
}

// SetDimensions sets the terminal dimensions and lays out the components.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	bodyHeight := max(height-chromeHeight, 1)
	a.list.SetDimensions(width, bodyHeight)
	a.dialog.SetDimensions(width, bodyHeight)
	a.query.SetWidth(width)
	a.alias.SetWidth(width / 2)
	a.status.SetWidth(width)
}

// State returns the current session state.
func (a *App) State() session.State {
	return a.state
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// Result returns how the session ended so far.
func (a *App) Result() Result {
	r := Result{Outcome: a.state.Outcome}
	if a.state.Outcome == session.OutcomeSaved {
		r.Alias = a.state.SavedAlias
		r.Char = a.state.Pending
	}
	return r
}
