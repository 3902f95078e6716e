package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"grogetter/internal/domain"
	"grogetter/internal/platform/logger"
	"grogetter/internal/services/grocery"
	"grogetter/internal/store"
)

// On-disk locations under Config.Home.
const (
	dataDir    = "data"
	sqliteFile = "grogetter.db"
)

// Wire bundles the storage backend, logger and services for the CLI.
type Wire struct {
	Config  Config
	Log     *logger.Logger
	KV      domain.KVStore
	Grocery *grocery.Service

	closers []func() error
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	w := &Wire{Config: cfg, Log: log}

	kv, err := w.openKV()
	if err != nil {
		log.Sync()
		return nil, err
	}
	w.KV = kv

	// An unreadable store (wrong passphrase, I/O error) must not be mistaken
	// for an empty one, or the first save would replace it.
	if _, _, err := kv.Get(grocery.ListsKey); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("open %s: %w", cfg.Home, err)
	}

	w.Grocery = grocery.New(kv,
		grocery.WithLogger(log),
		grocery.WithSeedDefaultList(cfg.SeedDefaultList),
	)
	log.Debug("wired", "backend", cfg.Backend, "home", cfg.Home, "encrypted", cfg.Passphrase != "")
	return w, nil
}

func (w *Wire) openKV() (domain.KVStore, error) {
	cfg := w.Config
	if cfg.Backend == BackendMemory {
		return store.NewMemoryStore(), nil
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case BackendFile:
		fs, err := store.NewFileStore(filepath.Join(cfg.Home, dataDir), store.WithPassphrase(cfg.Passphrase))
		if err != nil {
			return nil, fmt.Errorf("open file store: %w", err)
		}
		return fs, nil
	case BackendSQLite:
		if cfg.Passphrase != "" {
			w.Log.Warn("passphrase is ignored by the sqlite backend")
		}
		db, err := store.NewSQLiteStore(filepath.Join(cfg.Home, sqliteFile))
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		w.closers = append(w.closers, db.Close)
		return db, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}

// Close releases the backend and flushes the logger.
func (w *Wire) Close() error {
	var errs []error
	for _, c := range w.closers {
		errs = append(errs, c())
	}
	w.closers = nil
	w.Log.Sync()
	return errors.Join(errs...)
}
