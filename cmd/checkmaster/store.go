package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rpggio/checkmaster/internal/badger"
	"github.com/rpggio/checkmaster/internal/config"
	"github.com/rpggio/checkmaster/internal/domain/session"
	"github.com/rpggio/checkmaster/internal/persistence"
	"github.com/rpggio/checkmaster/internal/repository"
	"github.com/rpggio/checkmaster/internal/sqlite"
)

// openKV opens the configured backend and registers its Close with the app.
func (a *App) openKV() (repository.KVStore, error) {
	switch a.cfg.Store.Backend {
	case config.BackendBadger:
		cfg := badger.DefaultConfig(a.cfg.Store.Path)
		cfg.Logger = a.logger
		db, err := badger.Open(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open badger store: %w", err)
		}
		a.closer = append(a.closer, db.Close)
		return badger.NewKVRepository(db), nil
	default:
		if err := ensureDBDir(a.cfg.Store.Path); err != nil {
			return nil, fmt.Errorf("failed to prepare database path: %w", err)
		}
		db, err := sqlite.New(a.cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		a.closer = append(a.closer, db.Close)
		if err := db.RunMigrations(); err != nil {
			return nil, err
		}
		return sqlite.NewKVRepository(db), nil
	}
}

// openController loads the stored checklist and returns its session.
func (a *App) openController(ctx context.Context) (*session.Controller, error) {
	kv, err := a.openKV()
	if err != nil {
		return nil, err
	}
	store := persistence.New(kv, a.cfg.Store.Key, a.logger)
	a.logger.Debug("store opened", "backend", a.cfg.Store.Backend, "path", a.cfg.Store.Path, "key", store.Key())
	return session.NewController(ctx, store, session.WithLogger(a.logger)), nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
