package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

func TestAliasStore_LoadEmpty(t *testing.T) {
	set, err := NewAliasStore().Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestAliasStore_SaveCopies(t *testing.T) {
	ctx := context.Background()
	store := NewAliasStore()

	set := domain.NewAliasSet()
	set.Insert("x", 'a')
	require.NoError(t, store.Save(ctx, set))

	set.Insert("y", 'b')

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, loaded.Names())
}

func TestAliasStore_SaveErr(t *testing.T) {
	ctx := context.Background()
	store := NewAliasStore()
	store.SaveErr = errors.New("disk full")

	err := store.Save(ctx, domain.NewAliasSet())
	assert.ErrorIs(t, err, domain.ErrStore)
}

func TestAliasStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAliasStore().Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
