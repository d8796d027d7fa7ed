package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig("")
	assert.Equal(t, "America/Lima", cfg.System.Location)
	assert.Equal(t, 1899, cfg.Web.Port)
	assert.Equal(t, filepath.Join(cfg.System.Workdir, "cafeadmin.db"), cfg.Storage.Path)
}

func TestLoadConfigFromFile(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "cafeadmin.yml")
	content := `
system:
  workdir: /tmp/cafe
  location: UTC
web:
  host: 127.0.0.1
  port: 2899
storage:
  path: /tmp/cafe/store.db
logger:
  mode: production
`
	require.NoError(t, os.WriteFile(cfile, []byte(content), 0644))

	cfg := LoadConfig(cfile)
	assert.Equal(t, "UTC", cfg.System.Location)
	assert.Equal(t, 2899, cfg.Web.Port)
	assert.Equal(t, "/tmp/cafe/store.db", cfg.Storage.Path)
	assert.Equal(t, "production", cfg.Logger.Mode)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("CAFEADMIN_WEB_PORT", "3899")
	t.Setenv("CAFEADMIN_SYSTEM_DEBUG", "off")
	t.Setenv("CAFEADMIN_STORAGE_PATH", "/tmp/override.db")

	cfg := LoadConfig("")
	assert.Equal(t, 3899, cfg.Web.Port)
	assert.False(t, cfg.System.Debug)
	assert.Equal(t, "/tmp/override.db", cfg.Storage.Path)
}
