package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfigStore(t *testing.T) *ConfigStore {
	t.Helper()
	s, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestNewConfigStore(t *testing.T) {
	t.Run("creates config directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "config")

		s, err := NewConfigStore(dir)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "config.toml"), s.Path())
		_, err = os.Stat(dir)
		assert.NoError(t, err)
	})

	t.Run("starts empty without a config file", func(t *testing.T) {
		s := newTestConfigStore(t)

		_, ok := s.Get("anything")
		assert.False(t, ok)
	})
}

func TestConfigStore_SetAndGet(t *testing.T) {
	s := newTestConfigStore(t)

	require.NoError(t, s.Set("outline.csv_path", "plans/course.csv"))
	require.NoError(t, s.Set("pipeline.token_ceiling", 250000))
	require.NoError(t, s.Set("taxonomy.path", "taxonomy.toml"))

	assert.Equal(t, "plans/course.csv", s.GetString("outline.csv_path"))
	assert.Equal(t, 250000, s.GetInt("pipeline.token_ceiling"))
	assert.Equal(t, "taxonomy.toml", s.GetString("taxonomy.path"))
}

func TestConfigStore_TypeMismatches(t *testing.T) {
	s := newTestConfigStore(t)
	require.NoError(t, s.Set("key", "a string"))

	assert.Equal(t, 0, s.GetInt("key"))
	assert.Empty(t, s.GetString("missing"))
}

func TestConfigStore_PersistsAcrossLoads(t *testing.T) {
	dir := t.TempDir()

	s, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("outline.csv_path", "plans/course.csv"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "plans/course.csv", reopened.GetString("outline.csv_path"))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "[storage]\ndatabase = \"data/projects.db\"\n\n[storage.limits]\nmax_projects = 50\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	s, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "data/projects.db", s.GetString("storage.database"))
	assert.Equal(t, 50, s.GetInt("storage.limits.max_projects"))
}
