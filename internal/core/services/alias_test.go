package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/runepick/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/runepick/internal/core/domain"
)

func TestAliasService_SetThenGet(t *testing.T) {
	ctx := context.Background()
	svc := NewAliasService(memory.NewAliasStore())

	require.NoError(t, svc.Set(ctx, "smile", '😀'))

	r, err := svc.Get(ctx, "smile")
	require.NoError(t, err)
	assert.Equal(t, '😀', r)
}

func TestAliasService_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	svc := NewAliasService(memory.NewAliasStore())

	require.NoError(t, svc.Set(ctx, "x", 'a'))
	require.NoError(t, svc.Set(ctx, "x", 'b'))

	r, err := svc.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 'b', r)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Alias{{Name: "x", Char: 'b'}}, list)
}

func TestAliasService_TrimsAlias(t *testing.T) {
	ctx := context.Background()
	svc := NewAliasService(memory.NewAliasStore())

	require.NoError(t, svc.Set(ctx, "  pi ", 'π'))

	r, err := svc.Get(ctx, "pi")
	require.NoError(t, err)
	assert.Equal(t, 'π', r)
}

func TestAliasService_GetMissing(t *testing.T) {
	_, err := NewAliasService(memory.NewAliasStore()).Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAliasService_SetRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	svc := NewAliasService(memory.NewAliasStore())

	assert.ErrorIs(t, svc.Set(ctx, "   ", 'a'), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Set(ctx, "s", 0xD800), domain.ErrDecode)
}

func TestAliasService_List(t *testing.T) {
	ctx := context.Background()
	svc := NewAliasService(memory.NewAliasStore())
	require.NoError(t, svc.Set(ctx, "b", 'β'))
	require.NoError(t, svc.Set(ctx, "a", 'α'))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Alias{{Name: "a", Char: 'α'}, {Name: "b", Char: 'β'}}, list)
}

func TestAliasService_Remove(t *testing.T) {
	ctx := context.Background()
	svc := NewAliasService(memory.NewAliasStore())
	require.NoError(t, svc.Set(ctx, "x", 'a'))

	require.NoError(t, svc.Remove(ctx, "x"))
	assert.ErrorIs(t, svc.Remove(ctx, "x"), domain.ErrNotFound)

	_, err := svc.Get(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAliasService_LoadError(t *testing.T) {
	loadErr := &domain.StoreError{Op: "load", Path: "x", Err: errors.New("corrupt")}
	store := &mockAliasStore{loadFn: func(context.Context) (*domain.AliasSet, error) {
		return nil, loadErr
	}}
	svc := NewAliasService(store)
	ctx := context.Background()

	_, err := svc.Get(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrStore)
	assert.ErrorIs(t, svc.Set(ctx, "x", 'a'), domain.ErrStore)
	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, domain.ErrStore)
	assert.ErrorIs(t, svc.Remove(ctx, "x"), domain.ErrStore)
}

func TestAliasService_SaveError(t *testing.T) {
	saved := false
	store := &mockAliasStore{saveFn: func(context.Context, *domain.AliasSet) error {
		saved = true
		return &domain.StoreError{Op: "save", Path: "x", Err: errors.New("read-only")}
	}}

	err := NewAliasService(store).Set(context.Background(), "x", 'a')

	assert.True(t, saved)
	assert.ErrorIs(t, err, domain.ErrStore)
}
