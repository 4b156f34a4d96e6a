package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"accountkeeper"}, args...)
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "accounts.db", cfg.DatabaseDSN)
	assert.Equal(t, "plain", cfg.PasswordScheme)
	assert.Equal(t, "development", cfg.Env)
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	setArgs(t)

	cfg := LoadConfig()

	assert.Equal(t, "accounts.db", cfg.DatabaseDSN)
	assert.Equal(t, "plain", cfg.PasswordScheme)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	setArgs(t, "-d", "/tmp/alt.db", "-s", "bcrypt", "-e", "production")

	cfg := LoadConfig()

	assert.Equal(t, "/tmp/alt.db", cfg.DatabaseDSN)
	assert.Equal(t, "bcrypt", cfg.PasswordScheme)
	assert.Equal(t, "production", cfg.Env)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_dsn": "/tmp/from-json.db", "env": "production"}`), 0o600))

	setArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, "/tmp/from-json.db", cfg.DatabaseDSN)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "plain", cfg.PasswordScheme, "fields absent from the file keep defaults")
}

func TestLoadConfig_FlagsBeatJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_dsn": "/tmp/from-json.db"}`), 0o600))

	setArgs(t, "-c", path, "-d", "/tmp/from-flag.db")

	cfg := LoadConfig()

	assert.Equal(t, "/tmp/from-flag.db", cfg.DatabaseDSN)
}
