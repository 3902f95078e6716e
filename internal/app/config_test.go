package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := LoadConfig(Config{Home: home}, env(nil))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := DefaultConfig(home)
	if cfg != want {
		t.Fatalf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	home := t.TempDir()
	yml := "backend: sqlite\nlog: dev\npassphrase: from-file\nseed_default_list: false\n"
	if err := os.WriteFile(filepath.Join(home, ConfigFile), []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}

	// File only.
	cfg, err := LoadConfig(Config{}, env(map[string]string{EnvHome: home}))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Home != home || cfg.Backend != BackendSQLite || cfg.LogMode != "dev" ||
		cfg.Passphrase != "from-file" || cfg.SeedDefaultList {
		t.Fatalf("file config not applied: %+v", cfg)
	}

	// Environment beats the file.
	e := env(map[string]string{EnvHome: home, EnvBackend: "memory", EnvPassphrase: "from-env"})
	cfg, err = LoadConfig(Config{}, e)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Backend != BackendMemory || cfg.Passphrase != "from-env" || cfg.LogMode != "dev" {
		t.Fatalf("env not applied: %+v", cfg)
	}

	// Flags beat the environment.
	cfg, err = LoadConfig(Config{Backend: "FILE", Passphrase: "from-flag"}, e)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Backend != BackendFile || cfg.Passphrase != "from-flag" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestLoadConfig_FlagHomeBeatsEnv(t *testing.T) {
	flagHome, envHome := t.TempDir(), t.TempDir()
	cfg, err := LoadConfig(Config{Home: flagHome}, env(map[string]string{EnvHome: envHome}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Home != flagHome {
		t.Fatalf("home = %q, want %q", cfg.Home, flagHome)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	home := t.TempDir()
	if _, err := LoadConfig(Config{Home: home, Backend: "postgres"}, env(nil)); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("unknown backend err = %v", err)
	}

	if err := os.WriteFile(filepath.Join(home, ConfigFile), []byte("backend: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(Config{Home: home}, env(nil)); err == nil {
		t.Fatal("malformed config.yaml accepted")
	}
}
