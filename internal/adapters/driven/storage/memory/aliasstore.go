package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/runepick/internal/core/domain"
	"github.com/custodia-labs/runepick/internal/core/ports/driven"
)

// Ensure AliasStore implements the interface.
var _ driven.AliasStore = (*AliasStore)(nil)

// AliasStore keeps saved aliases in memory. Load and Save copy the set,
// so callers never share state with the store, matching the file store.
type AliasStore struct {
	mu      sync.Mutex
	entries map[string]rune

	// SaveErr, when set, is returned by Save without storing anything.
	SaveErr error
}

// NewAliasStore creates an empty in-memory alias store.
func NewAliasStore() *AliasStore {
	return &AliasStore{entries: make(map[string]rune)}
}

// Load returns a copy of the stored set.
func (s *AliasStore) Load(ctx context.Context) (*domain.AliasSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	set := domain.NewAliasSet()
	for name, r := range s.entries {
		set.Insert(name, r)
	}
	return set, nil
}

// Save replaces the stored set with a copy of set.
func (s *AliasStore) Save(ctx context.Context, set *domain.AliasSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return &domain.StoreError{Op: "save", Path: s.Path(), Err: s.SaveErr}
	}

	entries := make(map[string]rune, set.Len())
	for _, a := range set.Aliases() {
		entries[a.Name] = a.Char
	}
	s.entries = entries
	return nil
}

// Path returns a pseudo path for messages.
func (s *AliasStore) Path() string {
	return ":memory:"
}
