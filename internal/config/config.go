// Package config loads the pipeloop YAML configuration file and applies
// environment overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pipeloop/internal/logger"
	"github.com/katalvlaran/pipeloop/internal/store"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "pipeloop.yaml"

// Config is the full configuration file.
type Config struct {
	Logging logger.Config `yaml:"logging"`
	Store   StoreConfig   `yaml:"store"`
	Input   InputConfig   `yaml:"input"`
}

// StoreConfig controls the optional solution store.
type StoreConfig struct {
	Enabled    bool           `yaml:"enabled"`
	Driver     string         `yaml:"driver"`
	SQLitePath string         `yaml:"sqlite_path"`
	Postgres   PostgresConfig `yaml:"postgres"`
}

// PostgresConfig mirrors store.PostgresConfig with YAML tags.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// InputConfig names the default puzzle input.
type InputConfig struct {
	// Path is used when a command gets no -i flag; "-" means stdin.
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	pg := store.DefaultPostgresConfig()
	return Config{
		Logging: logger.DefaultConfig(),
		Store: StoreConfig{
			Enabled:    false,
			Driver:     string(store.DialectSQLite),
			SQLitePath: "data/pipeloop.db",
			Postgres: PostgresConfig{
				Host:     pg.Host,
				Port:     pg.Port,
				User:     "pipeloop",
				Database: "pipeloop",
				SSLMode:  pg.SSLMode,
			},
		},
		Input: InputConfig{Path: "input.txt"},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		default:
			// decoding into the defaults keeps every key the file omits
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PIPELOOP_INPUT"); v != "" {
		cfg.Input.Path = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FILE_PATH"); v != "" {
		cfg.Logging.FilePath = v
	}
	if v := os.Getenv("PIPELOOP_STORE_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: PIPELOOP_STORE_ENABLED: %w", err)
		}
		cfg.Store.Enabled = enabled
	}
	if v := os.Getenv("PIPELOOP_STORE_DRIVER"); v != "" {
		cfg.Store.Driver = v
	}
	if v := os.Getenv("PIPELOOP_SQLITE_PATH"); v != "" {
		cfg.Store.SQLitePath = v
	}
	if v := os.Getenv("PIPELOOP_PG_HOST"); v != "" {
		cfg.Store.Postgres.Host = v
	}
	if v := os.Getenv("PIPELOOP_PG_PASSWORD"); v != "" {
		cfg.Store.Postgres.Password = v
	}
	return nil
}

// Validate rejects settings no command can run with.
func (c Config) Validate() error {
	switch store.DialectType(c.Store.Driver) {
	case store.DialectSQLite:
		if c.Store.Enabled && c.Store.SQLitePath == "" {
			return errors.New("config: store.sqlite_path is empty")
		}
	case store.DialectPostgres:
	default:
		return fmt.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
	return nil
}

// DatabaseConfig converts the store section into the store package's form.
func (c Config) DatabaseConfig() store.Config {
	pg := store.DefaultPostgresConfig()
	pg.Host = c.Store.Postgres.Host
	pg.Port = c.Store.Postgres.Port
	pg.User = c.Store.Postgres.User
	pg.Password = c.Store.Postgres.Password
	pg.Database = c.Store.Postgres.Database
	pg.SSLMode = c.Store.Postgres.SSLMode
	return store.Config{
		Driver:     c.Store.Driver,
		SQLitePath: c.Store.SQLitePath,
		Postgres:   pg,
	}
}
