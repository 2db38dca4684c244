package driving

import (
	"context"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

// AliasService manages saved aliases.
type AliasService interface {
	// Get returns the character saved under alias.
	// Returns domain.ErrNotFound if the alias is not saved.
	Get(ctx context.Context, alias string) (rune, error)

	// Set saves ch under alias, replacing any previous value.
	Set(ctx context.Context, alias string, ch rune) error

	// List returns every saved alias sorted by name.
	List(ctx context.Context) ([]domain.Alias, error)

	// Remove deletes a saved alias.
	// Returns domain.ErrNotFound if the alias is not saved.
	Remove(ctx context.Context, alias string) error
}
