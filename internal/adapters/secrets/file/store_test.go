package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/stitchutils/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userKey = "stitchutils/apps/myapp-abc/user"

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "token key is empty"},
		{name: "whitespace", key: "   ", wantErr: "token key is empty"},
		{name: "absolute", key: "/etc/passwd", wantErr: "invalid token key"},
		{name: "traversal", key: "../escape", wantErr: "invalid token key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Set(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStoreSetGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Set(context.Background(), userKey, `{"user_id":"u-1"}`))

	got, err := store.Get(context.Background(), userKey)
	require.NoError(t, err)
	assert.Equal(t, `{"user_id":"u-1"}`, got)

	info, err := os.Stat(filepath.Join(root, userKey))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(tokenFileMode), info.Mode().Perm())
}

func TestStoreGetMissingKeyReportsKeyNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Get(context.Background(), userKey)
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreRemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	require.NoError(t, store.Set(context.Background(), userKey, "v"))

	require.NoError(t, store.Remove(context.Background(), userKey))
	require.NoError(t, store.Remove(context.Background(), userKey))

	_, err := store.Get(context.Background(), userKey)
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreRemovePrunesEmptyAppDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	otherKey := "stitchutils/apps/other-app/user"

	require.NoError(t, store.Set(context.Background(), userKey, "v"))
	require.NoError(t, store.Set(context.Background(), otherKey, "w"))
	require.NoError(t, store.Remove(context.Background(), userKey))

	_, err := os.Stat(filepath.Join(root, "stitchutils", "apps", "myapp-abc"))
	assert.True(t, os.IsNotExist(err))

	got, err := store.Get(context.Background(), otherKey)
	require.NoError(t, err)
	assert.Equal(t, "w", got)

	require.NoError(t, store.Remove(context.Background(), otherKey))
	_, err = os.Stat(filepath.Join(root, "stitchutils"))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(root)
	require.NoError(t, err)
}

func TestStoreSetReplacesValueWithoutLeavingTempFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Set(context.Background(), userKey, `{"access_token":"old"}`))
	require.NoError(t, store.Set(context.Background(), userKey, `{"access_token":"new"}`))

	got, err := store.Get(context.Background(), userKey)
	require.NoError(t, err)
	assert.Equal(t, `{"access_token":"new"}`, got)

	entries, err := os.ReadDir(filepath.Dir(filepath.Join(root, userKey)))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "user", entries[0].Name())
}
