package secretstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)

	require.NoError(t, store.Set(ctx, "first"))
	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", token)

	// A new credential overwrites the prior one.
	require.NoError(t, store.Set(ctx, "second"))
	token, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", token)

	require.NoError(t, store.Delete(ctx))
	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)

	// Deleting again stays silent.
	require.NoError(t, store.Delete(ctx))
}

func TestFileStore_Lifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credential.json")
	store := NewFileStore(path)
	ctx := context.Background()

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)

	require.NoError(t, store.Set(ctx, "tok-1"))
	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	// A fresh store over the same path sees the persisted value.
	reopened := NewFileStore(path)
	token, err = reopened.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	require.NoError(t, store.Delete(ctx))
	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)

	require.NoError(t, store.Delete(ctx), "delete on an empty slot is a no-op")
}

func TestFileStore_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credential.json")
	store := NewFileStore(path)

	require.NoError(t, store.Set(context.Background(), "tok"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
