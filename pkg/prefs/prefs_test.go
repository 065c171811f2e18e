package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingKey(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	var out []string
	assert.ErrorIs(t, s.Get(KeyTableColumns, &out), ErrNotFound)
}

func TestSetGetRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	columns := []string{"display_name", "email", "status"}
	require.NoError(t, s.Set(KeyTableColumns, columns))

	var got []string
	require.NoError(t, s.Get(KeyTableColumns, &got))
	assert.Equal(t, columns, got)
}

func TestKeysAreIndependent(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set(KeyTableColumns, []string{"email"}))
	require.NoError(t, s.Set(KeyTableSort, map[string]any{"key": "email", "descending": true}))

	var columns []string
	require.NoError(t, s.Get(KeyTableColumns, &columns))
	assert.Equal(t, []string{"email"}, columns)

	var sort struct {
		Key        string `json:"key"`
		Descending bool   `json:"descending"`
	}
	require.NoError(t, s.Get(KeyTableSort, &sort))
	assert.Equal(t, "email", sort.Key)
	assert.True(t, sort.Descending)
}

func TestPersistsAcrossStores(t *testing.T) {
	dir := t.TempDir()

	first, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(KeyTableColumns, []string{"status"}))

	second, err := New(dir)
	require.NoError(t, err)

	var got []string
	require.NoError(t, second.Get(KeyTableColumns, &got))
	assert.Equal(t, []string{"status"}, got)
}

func TestDelete(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set(KeyTableSort, "anything"))
	require.NoError(t, s.Delete(KeyTableSort))

	var out string
	assert.ErrorIs(t, s.Get(KeyTableSort, &out), ErrNotFound)

	assert.NoError(t, s.Delete("never-set"), "deleting an absent key is a no-op")
}

func TestCorruptFileStartsOver(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("{not json"), 0o644))

	s, err := New(dir)
	require.NoError(t, err)

	var out []string
	assert.ErrorIs(t, s.Get(KeyTableColumns, &out), ErrNotFound)

	require.NoError(t, s.Set(KeyTableColumns, []string{"email"}))
	require.NoError(t, s.Get(KeyTableColumns, &out))
	assert.Equal(t, []string{"email"}, out)
}
