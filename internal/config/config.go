package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultEnv        = EnvLocal
	defaultDataDir    = "."
	defaultUsersFile  = "usuarios.json"
	defaultExportFile = "gastos_export.csv"
	defaultLogLevel   = "info"
)

// Config carries every path and knob the application needs. The stores take
// it at construction; nothing reads path constants from package state.
type Config struct {
	Env        string
	DataDir    string
	UsersFile  string
	ExportFile string
	LogLevel   string
}

// Load reads the configuration from an optional .env file and the process
// environment, applying defaults for anything unset. The data directory is
// created when missing.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("DATA_DIR", defaultDataDir)
	viper.SetDefault("USERS_FILE", defaultUsersFile)
	viper.SetDefault("EXPORT_FILE", defaultExportFile)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)

	cfg := &Config{
		Env:        viper.GetString("APP_ENV"),
		DataDir:    viper.GetString("DATA_DIR"),
		UsersFile:  viper.GetString("USERS_FILE"),
		ExportFile: viper.GetString("EXPORT_FILE"),
		LogLevel:   viper.GetString("LOG_LEVEL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}
	if c.UsersFile == "" {
		return fmt.Errorf("users_file cannot be empty")
	}
	if c.ExportFile == "" {
		return fmt.Errorf("export_file cannot be empty")
	}
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown app_env %q", c.Env)
	}
	return nil
}

// UsersPath is the location of the shared user directory file.
func (c *Config) UsersPath() string {
	return filepath.Join(c.DataDir, c.UsersFile)
}

// ExportPath is the default target of a full export.
func (c *Config) ExportPath() string {
	return filepath.Join(c.DataDir, c.ExportFile)
}

// IsLocal reports whether this is a local (developer) environment.
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
