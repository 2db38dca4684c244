package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/runepick/internal/core/domain"
	"github.com/custodia-labs/runepick/internal/core/ports/driven"
	"github.com/custodia-labs/runepick/internal/core/ports/driving"
	"github.com/custodia-labs/runepick/internal/logger"
)

// Ensure AliasService implements the interface.
var _ driving.AliasService = (*AliasService)(nil)

// AliasService manages saved aliases. Every operation loads the store
// fresh; mutations write it back before returning.
type AliasService struct {
	store driven.AliasStore
}

// NewAliasService creates a new alias service backed by store.
func NewAliasService(store driven.AliasStore) *AliasService {
	return &AliasService{store: store}
}

// Get returns the character saved under alias.
func (s *AliasService) Get(ctx context.Context, alias string) (rune, error) {
	set, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}

	r, ok := set.Get(domain.NormaliseAlias(alias))
	if !ok {
		return 0, fmt.Errorf("alias %q: %w", alias, domain.ErrNotFound)
	}
	return r, nil
}

// Set saves ch under alias, replacing any previous value.
func (s *AliasService) Set(ctx context.Context, alias string, ch rune) error {
	name := domain.NormaliseAlias(alias)
	if name == "" {
		return fmt.Errorf("alias name is empty: %w", domain.ErrInvalidInput)
	}
	if _, err := domain.Decode(uint64(ch)); err != nil {
		return err
	}

	set, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	set.Insert(name, ch)

	if err := s.store.Save(ctx, set); err != nil {
		return err
	}
	logger.Info("Saved %q as U+%s in %s", name, domain.FormatCode(ch), s.store.Path())
	return nil
}

// List returns every saved alias sorted by name.
func (s *AliasService) List(ctx context.Context) ([]domain.Alias, error) {
	set, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return set.Aliases(), nil
}

// Remove deletes a saved alias.
func (s *AliasService) Remove(ctx context.Context, alias string) error {
	set, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	name := domain.NormaliseAlias(alias)
	if !set.Remove(name) {
		return fmt.Errorf("alias %q: %w", alias, domain.ErrNotFound)
	}
	return s.store.Save(ctx, set)
}
