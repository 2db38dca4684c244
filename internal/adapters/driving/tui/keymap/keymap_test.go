package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Keys(t *testing.T) {
	km := DefaultKeyMap()
	require.NotNil(t, km)

	tests := []struct {
		name    string
		keyStr  string
		binding func(*KeyMap) bool
	}{
		{"q quits", "q", func(k *KeyMap) bool { return Matches("q", k.Quit) }},
		{"ctrl+c force quits", "ctrl+c", func(k *KeyMap) bool { return Matches("ctrl+c", k.ForceQuit) }},
		{"k is up", "k", func(k *KeyMap) bool { return Matches("k", k.Up) }},
		{"down arrow", "down", func(k *KeyMap) bool { return Matches("down", k.Down) }},
		{"home is top", "home", func(k *KeyMap) bool { return Matches("home", k.Top) }},
		{"G is bottom", "G", func(k *KeyMap) bool { return Matches("G", k.Bottom) }},
		{"slash filters", "/", func(k *KeyMap) bool { return Matches("/", k.Filter) }},
		{"enter selects", "enter", func(k *KeyMap) bool { return Matches("enter", k.Select) }},
		{"esc cancels", "esc", func(k *KeyMap) bool { return Matches("esc", k.Cancel) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.binding(km))
		})
	}
}

func TestMatches_NoMatch(t *testing.T) {
	km := DefaultKeyMap()

	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("q", km.ForceQuit))
}

func TestHelpSets(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.BrowseHelp(), 5)
	assert.Len(t, km.QueryHelp(), 3)
	assert.Equal(t, "save", km.PromptHelp()[0].Help().Desc)
	assert.Equal(t, "ok", km.NoticeHelp()[0].Help().Desc)
}
