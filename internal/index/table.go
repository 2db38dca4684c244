package index

import (
	"slices"
	"strings"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

// SortDedup returns a copy of table sorted by name with duplicate names
// removed. The sort is stable, so for each run of equal names the entry
// that appeared first in table is kept.
func SortDedup(table []domain.Association) []domain.Association {
	sorted := slices.Clone(table)
	if sorted == nil {
		sorted = []domain.Association{}
	}
	slices.SortStableFunc(sorted, func(a, b domain.Association) int {
		return strings.Compare(a.Name, b.Name)
	})
	return slices.CompactFunc(sorted, func(a, b domain.Association) bool {
		return a.Name == b.Name
	})
}
