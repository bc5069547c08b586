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
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, filepath.Join(".", "usuarios.json"), cfg.UsersPath())
	assert.Equal(t, filepath.Join(".", "gastos_export.csv"), cfg.ExportPath())
	assert.True(t, cfg.IsLocal())
}

func TestLoadFromEnvironment(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("DATA_DIR", filepath.Join(dir, "dados"))
	t.Setenv("USERS_FILE", "contas.json")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, EnvProd, cfg.Env)
	assert.False(t, cfg.IsLocal())
	assert.Equal(t, filepath.Join(dir, "dados", "contas.json"), cfg.UsersPath())

	// The data directory is created on load.
	info, statErr := os.Stat(cfg.DataDir)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}

func TestLoadFromDotEnv(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(".env", []byte("APP_ENV=dev\nEXPORT_FILE=saida.csv\n"), 0o644))

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, EnvDev, cfg.Env)
	assert.Equal(t, filepath.Join(".", "saida.csv"), cfg.ExportPath())
}

func TestLoadRejectsUnknownEnv(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "staging")

	_, err := Load()

	assert.ErrorContains(t, err, "unknown app_env")
}
