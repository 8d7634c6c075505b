package main

import (
	"fmt"

	"github.com/fentz26/jobsummary/internal/config"
	"github.com/fentz26/jobsummary/internal/store"
	"github.com/fentz26/jobsummary/internal/summary"
)

// env bundles what every subcommand needs.
type env struct {
	cfg   *config.Config
	store *store.Store
	prefs summary.PrefStore
}

func openEnv() (*env, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	s, err := store.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	var prefs summary.PrefStore = s
	if ephemeral {
		prefs = summary.NewMemoryStore()
	}
	return &env{cfg: cfg, store: s, prefs: prefs}, nil
}

func (e *env) Close() error {
	return e.store.Close()
}
