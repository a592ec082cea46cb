package cmd

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"localsearch/internal/config"
	"localsearch/internal/index"
	"localsearch/internal/logging"
	"localsearch/internal/search"
	"localsearch/internal/telemetry"
)

// app wires config, the index store, the query engine, and telemetry
// together for the CLI commands and the TUI.
//
// The engine is swapped wholesale on reindex: queries always run against a
// complete, immutable Index snapshot, never a partially rebuilt one.
type app struct {
	paths config.Paths
	cfg   *config.Config
	store *index.Store
	tel   *telemetry.Store // nil when the telemetry db cannot be opened

	mu     sync.Mutex
	engine *search.Engine
}

// newApp loads configuration, sets up logging, and opens the stores.
// The returned cleanup closes the log file and the telemetry db.
func newApp(debug bool) (*app, func(), error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(paths)
	if err != nil {
		return nil, nil, err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	if debug {
		logCfg.Level = "debug"
	}
	logCleanup, err := logging.SetupDefault(logCfg)
	if err != nil {
		return nil, nil, err
	}

	a := &app{
		paths: paths,
		cfg:   cfg,
		store: index.NewStore(paths.IndexFile),
	}

	// Telemetry is optional; a broken db never blocks searching.
	if tel, err := telemetry.Open(paths.TelemetryFile); err != nil {
		slog.Warn("telemetry disabled", slog.String("error", err.Error()))
	} else {
		a.tel = tel
	}

	cleanup := func() {
		if a.tel != nil {
			_ = a.tel.Close()
		}
		logCleanup()
	}
	return a, cleanup, nil
}

// loadIndex loads the persisted index or builds one, and installs the
// query engine over it.
func (a *app) loadIndex() error {
	ix, err := index.BuildOrLoad(a.cfg.Roots(a.paths), a.store)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.engine = search.New(ix)
	a.mu.Unlock()
	return nil
}

// Reindex rebuilds the index from the configured roots, persists it, and
// swaps in a fresh engine. A save failure is logged; the rebuilt index
// stays live in memory.
func (a *app) Reindex() (int, error) {
	ix := index.Build(a.cfg.Roots(a.paths))
	if err := a.store.Save(ix); err != nil {
		slog.Warn("reindexed but not persisted", slog.String("error", err.Error()))
	}
	a.mu.Lock()
	a.engine = search.New(ix)
	a.mu.Unlock()
	return ix.Len(), nil
}

// Search runs a query against the current engine and records telemetry.
func (a *app) Search(terms []string) []string {
	a.mu.Lock()
	engine := a.engine
	a.mu.Unlock()
	if engine == nil {
		return nil
	}

	start := time.Now()
	results := engine.Query(terms)

	if a.tel != nil {
		query := strings.Join(terms, " ")
		if err := a.tel.RecordQuery(query, len(terms), len(results), time.Since(start)); err != nil {
			slog.Debug("telemetry write failed", slog.String("error", err.Error()))
		}
	}
	return results
}

// DocumentCount reports the size of the current index.
func (a *app) DocumentCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.engine == nil {
		return 0
	}
	return a.engine.Index().Len()
}
