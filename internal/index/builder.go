package index

import (
	"bytes"
	"fmt"
	"io"

	"github.com/blevesearch/vellum"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

// Build writes the serialized index for table to w.
//
// table must be sorted by name with no duplicates, as produced by
// SortDedup. A name that is empty or not strictly greater than its
// predecessor aborts the build with a *domain.BuildError.
func Build(w io.Writer, table []domain.Association) error {
	b, err := vellum.New(w, nil)
	if err != nil {
		return fmt.Errorf("create index builder: %w", err)
	}

	var prev string
	for i, a := range table {
		if a.Name == "" || (i > 0 && a.Name <= prev) {
			_ = b.Close()
			return &domain.BuildError{Key: a.Name, Previous: prev}
		}
		if err := b.Insert([]byte(a.Name), uint64(a.CodePoint)); err != nil {
			_ = b.Close()
			return fmt.Errorf("insert %q: %w", a.Name, err)
		}
		prev = a.Name
	}

	if err := b.Close(); err != nil {
		return fmt.Errorf("finish index: %w", err)
	}
	return nil
}

// BuildBytes returns the serialized index for table.
func BuildBytes(table []domain.Association) ([]byte, error) {
	var buf bytes.Buffer
	if err := Build(&buf, table); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildFrom sorts and deduplicates an unordered table, then builds it.
func BuildFrom(table []domain.Association) ([]byte, error) {
	return BuildBytes(SortDedup(table))
}
