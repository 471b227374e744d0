package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvHistoryDB, "")
	t.Setenv(EnvDepth, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("depth: 25\nworkers: 4\nhistory:\n  record: true\nlogging:\n  level: debug\n"), 0o644))

	t.Setenv(EnvDepth, "")
	t.Setenv(EnvHistoryDB, "/tmp/keypad-test.db")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Depth)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.History.Record)
	assert.Equal(t, "/tmp/keypad-test.db", cfg.History.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)

	t.Setenv(EnvDepth, "3")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Depth)

	t.Setenv(EnvDepth, "deep")
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("depth: [\n"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(EnvHistoryDB, "")
	t.Setenv(EnvDepth, "")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Depth = 25
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"NegativeDepth": func(c *Config) { c.Depth = -1 },
		"NoWorkers":     func(c *Config) { c.Workers = 0 },
		"BadLevel":      func(c *Config) { c.Logging.Level = "loud" },
		"RecordNoPath":  func(c *Config) { c.History.Record = true; c.History.Path = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
