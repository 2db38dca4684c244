package driven

import (
	"context"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

// NameIndex is the immutable, sorted name → code point index.
// Implementations must be safe for concurrent readers.
type NameIndex interface {
	// Len returns the number of associations in the index.
	Len() int

	// Query compiles pattern as a case-insensitive "contains" match and
	// calls yield for each matching association in ascending name order.
	// Returning false from yield stops the traversal without error.
	// An invalid pattern returns a *domain.QueryCompileError.
	Query(ctx context.Context, pattern string, yield func(domain.Association) bool) error
}
