package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/runepick/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/runepick/internal/core/domain"
	"github.com/custodia-labs/runepick/internal/core/services"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.Association
	err     error
	opts    domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	opts domain.SearchOptions,
) ([]domain.Association, error) {
	m.opts = opts
	return m.results, m.err
}

// mockAliasService is a mock implementation of driving.AliasService.
type mockAliasService struct {
	err error
}

func (m *mockAliasService) Get(context.Context, string) (rune, error) { return 0, m.err }
func (m *mockAliasService) Set(context.Context, string, rune) error   { return m.err }
func (m *mockAliasService) List(context.Context) ([]domain.Alias, error) {
	return nil, m.err
}
func (m *mockAliasService) Remove(context.Context, string) error { return m.err }

// newTestServer builds a server over a memory alias store seeded with
// aliases.
func newTestServer(t *testing.T, search *mockSearchService, aliases map[string]rune) *Server {
	t.Helper()
	aliasService := services.NewAliasService(memory.NewAliasStore())
	for name, ch := range aliases {
		require.NoError(t, aliasService.Set(context.Background(), name, ch))
	}

	server, err := NewServer(&Ports{
		Search:    search,
		Codepoint: services.NewCodepointService(),
		Aliases:   aliasService,
	})
	require.NoError(t, err)
	return server
}
