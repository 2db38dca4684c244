package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/runepick/internal/core/domain"
	"github.com/custodia-labs/runepick/internal/core/ports/driven"
	"github.com/custodia-labs/runepick/internal/core/ports/driving"
	"github.com/custodia-labs/runepick/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService finds characters by name in the embedded index.
type SearchService struct {
	index driven.NameIndex
}

// NewSearchService creates a new search service over index.
func NewSearchService(index driven.NameIndex) *SearchService {
	return &SearchService{index: index}
}

// Search returns the associations whose names contain query, in name order.
// The query is not escaped: regular expression syntax keeps its meaning.
// Entries whose code point cannot be decoded are logged and skipped.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.Association, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q, limit: %d", query, opts.Limit)

	if s.index == nil {
		return nil, errors.New("search index not configured")
	}

	results := []domain.Association{}
	skipped := 0
	err := s.index.Query(ctx, query, func(a domain.Association) bool {
		if _, err := a.Rune(); err != nil {
			skipped++
			logger.Warn("skipping %q: %v", a.Name, err)
			return true
		}
		results = append(results, a)
		return opts.Limit <= 0 || len(results) < opts.Limit
	})
	if err != nil {
		var qErr *domain.QueryCompileError
		if errors.As(err, &qErr) {
			return nil, err
		}
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	logger.Debug("Matched %d entries (%d skipped)", len(results), skipped)
	return results, nil
}
