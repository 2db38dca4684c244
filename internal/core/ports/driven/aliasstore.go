package driven

import (
	"context"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

// AliasStore persists the user's saved aliases.
type AliasStore interface {
	// Load reads the persisted set. A store that does not exist yet
	// yields an empty set, not an error.
	Load(ctx context.Context) (*domain.AliasSet, error)

	// Save replaces the persisted set. A failed save must leave the
	// previously persisted set intact.
	Save(ctx context.Context, set *domain.AliasSet) error

	// Path describes where the set is persisted.
	Path() string
}
