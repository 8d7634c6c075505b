package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "db_path: /tmp/js.db\nbar_width: 60\nrefresh_interval: 5s\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/js.db", cfg.DBPath)
	assert.Equal(t, 60, cfg.BarWidth)
	assert.Equal(t, 20, cfg.InlineWidth)
	assert.Equal(t, 5*time.Second, cfg.RefreshInterval)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bar_width: 0\n"), 0o600))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "bar_width")

	require.NoError(t, os.WriteFile(path, []byte("bar_width: [\n"), 0o600))
	_, err = LoadConfig(path)
	assert.ErrorContains(t, err, "parsing config file")
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := DefaultConfig()
	cfg.InlineWidth = 12
	cfg.LogFile = "/tmp/js.log"

	require.NoError(t, SaveConfig(path, cfg))
	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	assert.Error(t, SaveConfig(path, nil))
}
