package index

import (
	"context"
	"errors"
	"fmt"

	"github.com/blevesearch/vellum"

	"github.com/custodia-labs/runepick/internal/core/domain"
	"github.com/custodia-labs/runepick/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.NameIndex = (*Index)(nil)

// cancelCheckInterval is how many entries are visited between context checks.
const cancelCheckInterval = 256

// Index is a read-only handle over a serialized name index.
type Index struct {
	fst *vellum.FST
}

// Load returns an Index backed by data. The bytes are used in place and
// must not be modified while the Index is in use. Loading the same bytes
// more than once is allowed.
func Load(data []byte) (*Index, error) {
	fst, err := vellum.Load(data)
	if err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}
	return &Index{fst: fst}, nil
}

// Len returns the number of associations in the index.
func (ix *Index) Len() int {
	return ix.fst.Len()
}

// Get returns the code point stored for an exact name.
func (ix *Index) Get(name string) (uint32, bool, error) {
	v, ok, err := ix.fst.Get([]byte(name))
	if err != nil || !ok {
		return 0, false, err
	}
	return uint32(v), true, nil
}

// Walk calls fn for every association in name order until fn returns false.
func (ix *Index) Walk(fn func(domain.Association) bool) error {
	it, err := ix.fst.Iterator(nil, nil)
	return drain(context.Background(), it, err, fn)
}

// Search calls fn for every association whose name is accepted by q,
// in name order, until fn returns false. Only the branches of the index
// the automaton can still accept are visited.
func (ix *Index) Search(ctx context.Context, q *Query, fn func(domain.Association) bool) error {
	it, err := ix.fst.Search(q.automaton, nil, nil)
	return drain(ctx, it, err, fn)
}

// Query compiles pattern and runs Search with it.
func (ix *Index) Query(ctx context.Context, pattern string, yield func(domain.Association) bool) error {
	q, err := Compile(pattern)
	if err != nil {
		return err
	}
	return ix.Search(ctx, q, yield)
}

// Close releases the handle. The backing bytes are not touched.
func (ix *Index) Close() error {
	return ix.fst.Close()
}

func drain(ctx context.Context, it *vellum.FSTIterator, err error, fn func(domain.Association) bool) error {
	for n := 0; err == nil; n++ {
		if n%cancelCheckInterval == 0 {
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}
		}
		key, val := it.Current()
		if !fn(domain.Association{Name: string(key), CodePoint: uint32(val)}) {
			return nil
		}
		err = it.Next()
	}
	if errors.Is(err, vellum.ErrIteratorDone) {
		return nil
	}
	return fmt.Errorf("traverse index: %w", err)
}
