package main

import (
	"fmt"
	"os"

	"github.com/jmorales/pizarra/internal/config"
	"github.com/jmorales/pizarra/internal/kv"
	"github.com/jmorales/pizarra/internal/paths"
	"github.com/jmorales/pizarra/kanban"
)

// StateDirEnvVar overrides the board state directory.
const StateDirEnvVar = "PIZARRA_STATE_DIR"

// loadConfig loads merged configuration relative to the working directory.
func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return config.Load(cwd)
}

// resolveStateDir picks the board state directory: the environment variable
// wins, then the config override, then the default under $HOME.
func resolveStateDir(cfg *config.Config) (string, error) {
	if dir := os.Getenv(StateDirEnvVar); dir != "" {
		return dir, nil
	}
	if cfg.Storage.Dir != "" {
		return cfg.Storage.Dir, nil
	}
	return paths.DefaultStateDir()
}

// openKV opens the file-backed key-value store holding the board record.
func openKV() (kv.Store, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	dir, err := resolveStateDir(cfg)
	if err != nil {
		return nil, nil, err
	}

	return kv.NewFileStore(dir), cfg, nil
}

// openStoreWithConfig opens the board over the file-backed store. Persistence
// failures inside the board engine are reported on stderr and swallowed.
func openStoreWithConfig() (*kanban.Store, *config.Config, error) {
	store, cfg, err := openKV()
	if err != nil {
		return nil, nil, err
	}

	board := kanban.Open(store, kanban.Options{
		Key:         cfg.Storage.Key,
		Diagnostics: os.Stderr,
	})
	return board, cfg, nil
}

// openStore opens the board without needing the config afterward.
func openStore() (*kanban.Store, error) {
	board, _, err := openStoreWithConfig()
	return board, err
}

// defaultPriority returns the configured creation-time priority fallback.
func defaultPriority(cfg *config.Config) kanban.Priority {
	if cfg != nil && cfg.Board.DefaultPriority != "" {
		return kanban.Priority(cfg.Board.DefaultPriority)
	}
	return kanban.PriorityNormal
}
