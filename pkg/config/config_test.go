package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")

	cfg, err := load(v)
	require.NoError(t, err)
	assert.Equal(t, ":5000", cfg.Server.Address)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.NotEmpty(t, cfg.Session.Secret)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  address: \":8080\"\ndb:\n  name: \"testdb\"\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	v := viper.New()
	v.SetConfigFile(path)

	cfg, err := load(v)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "testdb", cfg.DB.Name)
	// 沒有指定的鍵保留預設值
	assert.Equal(t, "localhost", cfg.DB.Host)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LOGIN_DB_PASSWORD", "from-env")
	t.Setenv("LOGIN_SESSION_SECRET", "env-secret")

	v := viper.New()
	v.SetConfigType("yaml")

	cfg, err := load(v)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.DB.Password)
	assert.Equal(t, "env-secret", cfg.Session.Secret)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0o600))

	v := viper.New()
	v.SetConfigFile(path)

	_, err := load(v)
	assert.Error(t, err)
}
