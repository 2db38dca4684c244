package session

// Event is an input to the state machine.
type Event interface {
	event()
}

type (
	// Move shifts the cursor by Delta, clamped to the result set.
	Move struct{ Delta int }
	// MoveToStart puts the cursor on the first result.
	MoveToStart struct{}
	// MoveToEnd puts the cursor on the last result.
	MoveToEnd struct{}
	// FocusQuery routes typing to the query field.
	FocusQuery struct{}
	// BlurQuery routes keys back to the result list.
	BlurQuery struct{}
	// EditQuery replaces the query text and re-runs the search.
	EditQuery struct{ Text string }
	// Select opens the save prompt for the entry under the cursor.
	Select struct{}
	// EditAlias replaces the alias text in the save prompt.
	EditAlias struct{ Text string }
	// Submit confirms the current prompt or notice.
	Submit struct{}
	// Cancel backs out of the current prompt or notice.
	Cancel struct{}
	// Acknowledge dismisses an error notice.
	Acknowledge struct{}
	// Quit ends the session without saving.
	Quit struct{}
)

func (Move) event()        {}
func (MoveToStart) event() {}
func (MoveToEnd) event()   {}
func (FocusQuery) event()  {}
func (BlurQuery) event()   {}
func (EditQuery) event()   {}
func (Select) event()      {}
func (EditAlias) event()   {}
func (Submit) event()      {}
func (Cancel) event()      {}
func (Acknowledge) event() {}
func (Quit) event()        {}
