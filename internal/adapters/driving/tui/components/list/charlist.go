// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/custodia-labs/runepick/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/runepick/internal/core/domain"
)

const (
	// glyphCells is the column width reserved for the rendered character.
	glyphCells = 3

	// dottedCircle carries combining marks so they have something to sit on.
	dottedCircle = '◌'

	// placeholder stands in for characters with no visible form.
	placeholder = "·"
)

// CharList displays associations as "<char> = <HEX>, <NAME>" rows.
// It does not own the cursor; the session does, and the host copies it in.
type CharList struct {
	entries []domain.Association
	cursor  int
	offset  int
	styles  *styles.Styles
	width   int
	height  int
}

// NewCharList creates a new character list component.
func NewCharList(s *styles.Styles) *CharList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &CharList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// SetEntries replaces the rows and moves the cursor.
func (c *CharList) SetEntries(entries []domain.Association, cursor int) {
	c.entries = entries
	c.cursor = cursor
	c.scroll()
}

// Entries returns the current rows.
func (c *CharList) Entries() []domain.Association {
	return c.entries
}

// Cursor returns the highlighted row.
func (c *CharList) Cursor() int {
	return c.cursor
}

// Offset returns the index of the first visible row.
func (c *CharList) Offset() int {
	return c.offset
}

// Count returns the number of rows.
func (c *CharList) Count() int {
	return len(c.entries)
}

// IsEmpty returns whether the list has no rows.
func (c *CharList) IsEmpty() bool {
	return len(c.entries) == 0
}

// SetDimensions sets the component dimensions.
func (c *CharList) SetDimensions(width, height int) {
	c.width = width
	c.height = height
	c.scroll()
}

// Width returns the current width.
func (c *CharList) Width() int {
	return c.width
}

// Height returns the current height.
func (c *CharList) Height() int {
	return c.height
}

// PageSize returns how many rows fit on screen.
func (c *CharList) PageSize() int {
	// Header and blank line.
	if n := c.height - 2; n > 0 {
		return n
	}
	return 1
}

// scroll keeps the cursor inside the visible window.
func (c *CharList) scroll() {
	page := c.PageSize()
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+page {
		c.offset = c.cursor - page + 1
	}
	if maxOffset := len(c.entries) - page; c.offset > maxOffset {
		c.offset = maxOffset
	}
	if c.offset < 0 {
		c.offset = 0
	}
}

// View renders the visible rows.
func (c *CharList) View() string {
	if len(c.entries) == 0 {
		return c.styles.Muted.Render("No results")
	}

	end := c.offset + c.PageSize()
	if end > len(c.entries) {
		end = len(c.entries)
	}

	lines := make([]string, 0, end-c.offset+2)
	lines = append(lines, c.styles.Title.Render(fmt.Sprintf("Results (%d)", len(c.entries))), "")
	for i := c.offset; i < end; i++ {
		lines = append(lines, c.renderRow(i, c.entries[i]))
	}
	return strings.Join(lines, "\n")
}

func (c *CharList) renderRow(index int, a domain.Association) string {
	indicator := "  "
	if index == c.cursor {
		indicator = "> "
	}

	glyph := Glyph(a.CodePoint)
	glyph += strings.Repeat(" ", max(glyphCells-runewidth.StringWidth(glyph), 1))
	code := fmt.Sprintf("%04X", a.CodePoint)

	// indicator + glyph + "= " + code + ", "
	used := 2 + glyphCells + 2 + len(code) + 2
	name := runewidth.Truncate(a.Name, max(c.width-used, 10), "...")

	if index == c.cursor {
		return c.styles.Selected.Render(fmt.Sprintf("%s%s= %s, %s", indicator, glyph, code, name))
	}
	return c.styles.Normal.Render(indicator) +
		c.styles.Glyph.Render(glyph) +
		c.styles.Muted.Render("= ") +
		c.styles.Code.Render(code) +
		c.styles.Muted.Render(", ") +
		c.styles.Normal.Render(name)
}

// Glyph returns a printable form of the character at cp. Combining marks
// are drawn on a dotted circle, invisible characters and invalid code
// points as a placeholder.
func Glyph(cp uint32) string {
	r, err := domain.Decode(uint64(cp))
	if err != nil {
		return placeholder
	}
	switch {
	case unicode.In(r, unicode.Mn, unicode.Me):
		return string([]rune{dottedCircle, r})
	case !unicode.IsGraphic(r) || unicode.IsSpace(r):
		return placeholder
	case runewidth.RuneWidth(r) == 0:
		return placeholder
	}
	return string(r)
}
