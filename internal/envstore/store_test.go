package envstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variables.env")

	store, err := OpenFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Set("osEdition", "proedu"))
	require.NoError(t, store.Set("isAutoEdition", "true"))

	// A fresh store over the same file sees the persisted values.
	reopened, err := OpenFileStore(path)
	require.NoError(t, err)

	v, ok := reopened.Get("osEdition")
	require.True(t, ok)
	assert.Equal(t, "proedu", v)

	v, ok = reopened.Get("isAutoEdition")
	require.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestFileStorePreservesExistingVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variables.env")
	require.NoError(t, godotenv.Write(map[string]string{"deployID": "42"}, path))

	store, err := OpenFileStore(path)
	require.NoError(t, err)

	v, ok := store.Get("deployID")
	require.True(t, ok)
	assert.Equal(t, "42", v)

	require.NoError(t, store.Set("osEdition", "ent"))

	vals, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"deployID": "42", "osEdition": "ent"}, vals)
}

func TestOpenFileStoreCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variables.env")

	_, err := OpenFileStore(path)
	require.NoError(t, err)

	// The file is written at open time so permission problems surface at
	// startup.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpenFileStoreUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "nested", "variables.env")

	_, err := OpenFileStore(path)
	assert.Error(t, err)
}

func TestProcessStore(t *testing.T) {
	t.Setenv("WINEDITION_TEST_VAR", "before")

	store := ProcessStore{}

	v, ok := store.Get("WINEDITION_TEST_VAR")
	require.True(t, ok)
	assert.Equal(t, "before", v)

	require.NoError(t, store.Set("WINEDITION_TEST_VAR", "after"))
	assert.Equal(t, "after", os.Getenv("WINEDITION_TEST_VAR"))

	_, ok = store.Get("WINEDITION_TEST_VAR_MISSING")
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Get("osEdition")
	assert.False(t, ok)

	require.NoError(t, store.Set("osEdition", "home"))
	require.NoError(t, store.Set("isAutoEdition", "false"))

	v, ok := store.Get("osEdition")
	require.True(t, ok)
	assert.Equal(t, "home", v)

	assert.Equal(t, []string{"isAutoEdition", "osEdition"}, store.Names())
}
