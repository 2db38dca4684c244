package tui

import (
	"context"
	"strings"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

// MockSearchService implements driving.SearchService for testing.
type MockSearchService struct {
	SearchFunc func(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.Association, error)
	Queries    []string
}

func (m *MockSearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.Association, error) {
	m.Queries = append(m.Queries, query)
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, opts)
	}
	return nil, nil
}

// MockAliasService implements driving.AliasService for testing.
type MockAliasService struct {
	SetFunc func(ctx context.Context, alias string, ch rune) error
	Saved   map[string]rune
}

func (m *MockAliasService) Get(_ context.Context, alias string) (rune, error) {
	ch, ok := m.Saved[alias]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return ch, nil
}

func (m *MockAliasService) Set(ctx context.Context, alias string, ch rune) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, alias, ch)
	}
	if m.Saved == nil {
		m.Saved = make(map[string]rune)
	}
	m.Saved[alias] = ch
	return nil
}

func (m *MockAliasService) List(_ context.Context) ([]domain.Alias, error) {
	out := make([]domain.Alias, 0, len(m.Saved))
	for name, ch := range m.Saved {
		out = append(out, domain.Alias{Name: name, Char: ch})
	}
	return out, nil
}

func (m *MockAliasService) Remove(_ context.Context, alias string) error {
	if _, ok := m.Saved[alias]; !ok {
		return domain.ErrNotFound
	}
	delete(m.Saved, alias)
	return nil
}

var testTable = []domain.Association{
	{Name: "GRINNING FACE", CodePoint: 0x1F600},
	{Name: "LATIN CAPITAL LETTER A", CodePoint: 0x41},
	{Name: "LATIN SMALL LETTER A", CodePoint: 0x61},
	{Name: "SMILING FACE", CodePoint: 0x263A},
}

// substringSearch filters testTable case-insensitively. A query of "("
// fails the way an unbalanced group does.
func substringSearch(_ context.Context, query string, _ domain.SearchOptions) ([]domain.Association, error) {
	if strings.Contains(query, "(") {
		return nil, &domain.QueryCompileError{Pattern: "(?i).*" + query + ".*", Err: domain.ErrInvalidInput}
	}
	out := []domain.Association{}
	for _, a := range testTable {
		if strings.Contains(a.Name, strings.ToUpper(query)) {
			out = append(out, a)
		}
	}
	return out, nil
}
