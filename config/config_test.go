package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadConfigMissingFileIsNotAnError(t *testing.T) {
	cfg, err := ReadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Empty(t, cfg.Database.Host)
}

func TestReadConfigAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutrivize.yaml")
	data := []byte("server:\n  port: \"9090\"\ndatabase:\n  host: db.internal\n  dbname: nutrivize\njwt:\n  secret: file-secret\n")
	assert.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := ReadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)

	// Env vars win over file values.
	t.Setenv("DB_HOST", "env.internal")
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	cfg.Apply()

	assert.Equal(t, "env.internal", GetEnv("DB_HOST", ""))
	assert.Equal(t, "9090", GetEnv("PORT", ""))
	assert.Equal(t, "file-secret", GetEnv("JWT_SECRET", ""))
}

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("SOME_UNSET_KEY", "")
	assert.Equal(t, "fallback", GetEnv("SOME_UNSET_KEY", "fallback"))
}
