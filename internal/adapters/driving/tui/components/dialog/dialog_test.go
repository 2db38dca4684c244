package dialog

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NilStyles(t *testing.T) {
	d := New(nil)

	require.NotNil(t, d)
	assert.NotNil(t, d.styles)
}

func TestDialog_Render(t *testing.T) {
	d := New(nil)
	d.SetDimensions(60, 12)

	out := d.Render(Info, "Save character", "Alias: smile")

	assert.Contains(t, out, "Save character")
	assert.Contains(t, out, "Alias: smile")
	assert.Equal(t, 12, lipgloss.Height(out))
	assert.Equal(t, 60, lipgloss.Width(out))
}

func TestDialog_Render_Error(t *testing.T) {
	d := New(nil)
	d.SetDimensions(60, 10)

	out := d.Render(Error, "Error", "Alias must not be empty.")

	assert.Contains(t, out, "Alias must not be empty.")
	assert.True(t, strings.Contains(out, "╭"))
}
