package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Environment variables consulted by LoadConfig.
const (
	EnvHome       = "GROGETTER_HOME"
	EnvBackend    = "GROGETTER_BACKEND"
	EnvPassphrase = "GROGETTER_PASSPHRASE"
	EnvLog        = "GROGETTER_LOG"
)

// ConfigFile is read from the home directory when present.
const ConfigFile = "config.yaml"

var ErrUnknownBackend = errors.New("grogetter: unknown storage backend")

// Config holds runtime wiring options for building the app.
type Config struct {
	Home            string `yaml:"-"`                 // data directory, e.g. $HOME/.grogetter
	Backend         string `yaml:"backend"`           // file, sqlite or memory
	Passphrase      string `yaml:"passphrase"`        // encrypts file backend values when set
	LogMode         string `yaml:"log"`               // dev or prod
	SeedDefaultList bool   `yaml:"seed_default_list"` // create "My Grocery List" on an empty store
}

// DefaultConfig returns the built-in defaults rooted at home.
func DefaultConfig(home string) Config {
	return Config{
		Home:            home,
		Backend:         BackendFile,
		LogMode:         "prod",
		SeedDefaultList: true,
	}
}

// DefaultHome returns ~/.grogetter.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".grogetter"), nil
}

// LoadConfig resolves the configuration. Non-empty fields of flags win, then
// the environment (read through getenv, os.Getenv when nil), then
// config.yaml in the home directory, then defaults.
func LoadConfig(flags Config, getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	home := firstNonEmpty(flags.Home, getenv(EnvHome))
	if home == "" {
		h, err := DefaultHome()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home: %w", err)
		}
		home = h
	}

	cfg := DefaultConfig(home)
	data, err := os.ReadFile(filepath.Join(home, ConfigFile))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", ConfigFile, err)
		}
	case !os.IsNotExist(err):
		return Config{}, fmt.Errorf("read %s: %w", ConfigFile, err)
	}

	cfg.Backend = firstNonEmpty(flags.Backend, getenv(EnvBackend), cfg.Backend)
	cfg.Passphrase = firstNonEmpty(flags.Passphrase, getenv(EnvPassphrase), cfg.Passphrase)
	cfg.LogMode = firstNonEmpty(flags.LogMode, getenv(EnvLog), cfg.LogMode)
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields that have a closed set of values.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.Home == "" && c.Backend != BackendMemory {
		return errors.New("grogetter: home directory required")
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
