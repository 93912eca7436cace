package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storePath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "config.json")
}

func TestLoadMissingFile(t *testing.T) {
	s := Load(storePath(t))
	assert.Equal(t, 0, s.Len())
}

func TestAddGetRemove(t *testing.T) {
	path := storePath(t)
	s := Load(path)

	require.NoError(t, s.Add("work", "tok-work"))
	require.NoError(t, s.Add("personal", "tok-personal"))

	token, ok := s.Get("work")
	assert.True(t, ok)
	assert.Equal(t, "tok-work", token)

	assert.Equal(t, []string{"personal", "work"}, s.Names())

	removed, err := s.Remove("work")
	require.NoError(t, err)
	assert.True(t, removed)

	_, ok = s.Get("work")
	assert.False(t, ok)

	removed, err = s.Remove("ghost")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestAddOverwritesSilently(t *testing.T) {
	path := storePath(t)
	s := Load(path)

	require.NoError(t, s.Add("work", "old"))
	require.NoError(t, s.Add("work", "new"))

	token, _ := s.Get("work")
	assert.Equal(t, "new", token)
	assert.Equal(t, 1, s.Len())
}

func TestPersistsAcrossLoads(t *testing.T) {
	path := storePath(t)
	require.NoError(t, Load(path).Add("work", "tok"))

	s := Load(path)
	token, ok := s.Get("work")
	assert.True(t, ok)
	assert.Equal(t, "tok", token)
}

func TestCorruptFileYieldsEmptyStore(t *testing.T) {
	path := storePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	s := Load(path)
	assert.Equal(t, 0, s.Len())

	// The next save must replace the corrupt document.
	require.NoError(t, s.Add("work", "tok"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc struct {
		Accounts map[string]string `json:"accounts"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, map[string]string{"work": "tok"}, doc.Accounts)
}

func TestStoreFileMode(t *testing.T) {
	path := storePath(t)
	require.NoError(t, Load(path).Add("work", "tok"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
