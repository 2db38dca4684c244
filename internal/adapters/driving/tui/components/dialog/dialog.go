// Package dialog renders modal boxes drawn over the result list.
package dialog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/runepick/internal/adapters/driving/tui/styles"
)

// Kind selects the frame of a dialog.
type Kind int

const (
	// Info is used for prompts.
	Info Kind = iota
	// Error is used for notices that must be acknowledged.
	Error
)

// Dialog is a titled box centred in the available space.
type Dialog struct {
	styles *styles.Styles
	width  int
	height int
}

// New creates a dialog renderer.
func New(s *styles.Styles) *Dialog {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Dialog{styles: s, width: 80, height: 24}
}

// SetDimensions sets the area the dialog is centred in.
func (d *Dialog) SetDimensions(width, height int) {
	d.width = width
	d.height = height
}

// Render draws a box with title and body lines, centred in the area.
func (d *Dialog) Render(kind Kind, title string, body ...string) string {
	frame := d.styles.Dialog
	heading := d.styles.Title
	if kind == Error {
		frame = d.styles.ErrorDialog
		heading = d.styles.Error.Bold(true)
	}

	lines := make([]string, 0, len(body)+2)
	lines = append(lines, heading.Render(title), "")
	lines = append(lines, body...)

	box := frame.MaxWidth(max(d.width, 20)).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, box)
}
