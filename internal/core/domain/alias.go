package domain

import (
	"slices"
	"strings"
)

// Alias is a user-chosen short name mapped to one saved character.
type Alias struct {
	Name string
	Char rune
}

// AliasSet maps alias names to saved characters.
// Names are unique; Insert overwrites silently.
type AliasSet struct {
	entries map[string]rune
}

// NewAliasSet creates an empty alias set.
func NewAliasSet() *AliasSet {
	return &AliasSet{entries: make(map[string]rune)}
}

// NormaliseAlias trims surrounding whitespace from an alias name.
func NormaliseAlias(name string) string {
	return strings.TrimSpace(name)
}

// Get returns the character saved under name.
func (s *AliasSet) Get(name string) (rune, bool) {
	if s == nil {
		return 0, false
	}
	r, ok := s.entries[name]
	return r, ok
}

// Insert saves r under name, replacing any previous value.
func (s *AliasSet) Insert(name string, r rune) {
	if s.entries == nil {
		s.entries = make(map[string]rune)
	}
	s.entries[name] = r
}

// Remove deletes name and reports whether it was present.
func (s *AliasSet) Remove(name string) bool {
	if _, ok := s.entries[name]; !ok {
		return false
	}
	delete(s.entries, name)
	return true
}

// Len returns the number of saved aliases.
func (s *AliasSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Names returns the alias names in ascending order.
func (s *AliasSet) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Aliases returns every alias sorted by name.
func (s *AliasSet) Aliases() []Alias {
	names := s.Names()
	out := make([]Alias, 0, len(names))
	for _, name := range names {
		out = append(out, Alias{Name: name, Char: s.entries[name]})
	}
	return out
}
