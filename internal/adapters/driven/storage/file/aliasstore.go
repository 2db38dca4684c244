package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/runepick/internal/core/domain"
	"github.com/custodia-labs/runepick/internal/core/ports/driven"
	"github.com/custodia-labs/runepick/internal/fsutil"
	"github.com/custodia-labs/runepick/internal/logger"
)

// Ensure AliasStore implements the interface.
var _ driven.AliasStore = (*AliasStore)(nil)

// document is the on-disk layout.
type document struct {
	Saved map[string]string `toml:"saved"`
}

// AliasStore is a TOML file implementation of driven.AliasStore.
type AliasStore struct {
	path string
}

// NewAliasStore creates a store backed by the file at path.
// The file and its directory are created on first save.
func NewAliasStore(path string) *AliasStore {
	return &AliasStore{path: path}
}

// Load reads the saved aliases. A missing file yields an empty set.
func (s *AliasStore) Load(ctx context.Context) (*domain.AliasSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("No alias store at %s, starting empty", s.path)
		return domain.NewAliasSet(), nil
	}
	if err != nil {
		return nil, &domain.StoreError{Op: "load", Path: s.path, Err: err}
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, &domain.StoreError{Op: "load", Path: s.path, Err: err}
	}

	set := domain.NewAliasSet()
	for name, value := range doc.Saved {
		r, size := utf8.DecodeRuneInString(value)
		if value == "" || size != len(value) || (r == utf8.RuneError && size == 1) {
			err := fmt.Errorf("alias %q: value %q is not a single character", name, value)
			return nil, &domain.StoreError{Op: "load", Path: s.path, Err: err}
		}
		set.Insert(name, r)
	}

	logger.Debug("Loaded %d aliases from %s", set.Len(), s.path)
	return set, nil
}

// Save atomically replaces the file with set.
func (s *AliasStore) Save(ctx context.Context, set *domain.AliasSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := document{Saved: make(map[string]string, set.Len())}
	for _, a := range set.Aliases() {
		doc.Saved[a.Name] = string(a.Char)
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return &domain.StoreError{Op: "save", Path: s.path, Err: err}
	}

	err = fsutil.WriteAtomic(s.path, 0600, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return &domain.StoreError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// Path returns the store file path.
func (s *AliasStore) Path() string {
	return s.path
}
