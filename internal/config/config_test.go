package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anagram.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dictionary_path: words.txt\nseed: 7\ntrain_per_level: 3\nsolver: scan\n"), 0o644))
	t.Setenv("ANAGRAM_SEED", "11")
	t.Setenv("ANAGRAM_ADDR", ":9999")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "words.txt", cfg.DictionaryPath)
	assert.Equal(t, int64(11), cfg.Seed)
	assert.Equal(t, 3, cfg.TrainPerLevel)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "scan", cfg.Solver)
	assert.Equal(t, 50, cfg.TestPerLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anagram.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_attempts: 0\nsolver: dlx\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_attempts")
	assert.Contains(t, err.Error(), "solver")
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anagram.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: [unterminated"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anagram.yaml")
	cfg := Default()
	cfg.Seed = 5
	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
