package driving

import (
	"context"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

// SearchService finds characters by name.
type SearchService interface {
	// Search returns every association whose name contains query
	// (case-insensitive, regular expression syntax), in name order.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.Association, error)
}
