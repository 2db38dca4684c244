package services

import (
	"context"

	"github.com/custodia-labs/runepick/internal/core/domain"
	"github.com/custodia-labs/runepick/internal/core/ports/driven"
)

// mockIndex implements driven.NameIndex for testing.
type mockIndex struct {
	entries  []domain.Association
	queryErr error
	queries  []string
}

var _ driven.NameIndex = (*mockIndex)(nil)

func (m *mockIndex) Len() int {
	return len(m.entries)
}

func (m *mockIndex) Query(_ context.Context, pattern string, yield func(domain.Association) bool) error {
	m.queries = append(m.queries, pattern)
	if m.queryErr != nil {
		return m.queryErr
	}
	for _, e := range m.entries {
		if !yield(e) {
			return nil
		}
	}
	return nil
}

// mockAliasStore implements driven.AliasStore with function fields.
type mockAliasStore struct {
	loadFn func(ctx context.Context) (*domain.AliasSet, error)
	saveFn func(ctx context.Context, set *domain.AliasSet) error
}

var _ driven.AliasStore = (*mockAliasStore)(nil)

func (m *mockAliasStore) Load(ctx context.Context) (*domain.AliasSet, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx)
	}
	return domain.NewAliasSet(), nil
}

func (m *mockAliasStore) Save(ctx context.Context, set *domain.AliasSet) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, set)
	}
	return nil
}

func (m *mockAliasStore) Path() string {
	return "mock://store"
}
