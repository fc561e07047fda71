package app

import (
	"path/filepath"
	"strings"

	"chrono/internal/store"
)

// Wire bundles the zone-data source and registry for the CLI.
type Wire struct {
	Registry *store.Registry
	Source   store.Source
}

// NewWire constructs the dependency graph from cfg. The zone source is
// chosen by the data path: a .db or .sqlite suffix opens a sqlite
// database, anything else is read as a compiled archive. Loading is
// lazy, so pointing at a missing file only fails on first lookup.
func NewWire(cfg Config) (*Wire, error) {
	path := cfg.TZDB
	if path == "" {
		path = filepath.Join(cfg.Home, "zones.tzdb")
	}

	var src store.Source
	if strings.HasSuffix(path, ".db") || strings.HasSuffix(path, ".sqlite") {
		sqliteSrc, err := store.OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		src = sqliteSrc
	} else {
		src = store.NewFileSource(path)
	}

	registry := store.NewRegistry()
	if err := registry.Init(src); err != nil {
		return nil, err
	}
	return &Wire{Registry: registry, Source: src}, nil
}

// Close releases any resources the source holds.
func (w *Wire) Close() error {
	if closer, ok := w.Source.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
