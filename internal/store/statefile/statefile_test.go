package statefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingIsEmpty(t *testing.T) {
	f, err := Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	assert.True(t, f.Empty())
	_, ok := f.Get("sport_data_key")
	assert.False(t, ok)
}

func TestSaveOpenRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	f, err := Open(path)
	require.NoError(t, err)

	f.Put("b", []byte(`{"n":2}`))
	f.Put("a", []byte(`[1,2,3]`))
	require.NoError(t, f.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	g, err := Open(path)
	require.NoError(t, err)
	v, ok := g.Get("a")
	require.True(t, ok)
	assert.Equal(t, `[1,2,3]`, string(v))
	v, ok = g.Get("b")
	require.True(t, ok)
	assert.Equal(t, `{"n":2}`, string(v))
}

func TestNonJSONValueRoundtrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	f, err := Open(path)
	require.NoError(t, err)

	f.Put("k", []byte("not json \x00\xff"))
	require.NoError(t, f.Save())

	g, err := Open(path)
	require.NoError(t, err)
	v, ok := g.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("not json \x00\xff"), v)
}

func TestRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	require.NoError(t, Remove(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, Remove(path), "missing file is fine")
}

func TestSaveEmptyRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"k":"MQ=="}`), 0o600))

	f, err := Open(path)
	require.NoError(t, err)
	f.Delete("k")
	require.NoError(t, f.Save())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestOpenCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json unmarshal")
}

func TestOpenNullDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0o600))

	f, err := Open(path)
	require.NoError(t, err)
	assert.True(t, f.Empty())
	f.Put("k", []byte("1"))
	assert.False(t, f.Empty())
}
