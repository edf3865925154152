// Package bootstrap wires all dependencies into a ready scaffold
// service. Configuration comes from an optional YAML file plus
// environment overrides; a missing file falls back to defaults so the
// CLI works out of the box.
package bootstrap

import (
	"fmt"
	"os"
	"time"

	"github.com/cortexscaffold/cortexscaffold/adapters/clock"
	"github.com/cortexscaffold/cortexscaffold/adapters/extract"
	"github.com/cortexscaffold/cortexscaffold/adapters/idgen"
	"github.com/cortexscaffold/cortexscaffold/adapters/memory"
	"github.com/cortexscaffold/cortexscaffold/adapters/repohost"
	"github.com/cortexscaffold/cortexscaffold/adapters/sqlite"
	"github.com/cortexscaffold/cortexscaffold/adapters/tree"
	"github.com/cortexscaffold/cortexscaffold/adapters/vcs"
	"github.com/cortexscaffold/cortexscaffold/adapters/venv"
	"github.com/cortexscaffold/cortexscaffold/app"
	"github.com/cortexscaffold/cortexscaffold/config"
	"github.com/cortexscaffold/cortexscaffold/ports"
	"github.com/rs/zerolog"
)

// App represents the wired application.
type App struct {
	Logger  zerolog.Logger
	Config  *config.Config
	Service *app.ScaffoldService

	// Held for cleanup; nil when the ledger is disabled or degraded.
	db *sqlite.DB
}

// New creates and initializes the application from the config file at
// path. A missing file is not an error: defaults plus environment
// overrides apply.
func New(path string) (*App, error) {
	cfg, err := config.LoadWithFallback(path)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates and initializes the application from an
// already-loaded configuration.
func NewWithConfig(cfg *config.Config) (*App, error) {
	logger := setupLogger(cfg.Logging)

	a := &App{
		Logger: logger,
		Config: cfg,
	}

	extractor, err := extract.New(cfg.Extract)
	if err != nil {
		return nil, fmt.Errorf("init extractor: %w", err)
	}

	repoHost, err := repohost.New(cfg.RepoHost)
	if err != nil {
		return nil, fmt.Errorf("init repository host: %w", err)
	}

	var versionControl ports.VCS
	if cfg.VCS.Enabled {
		versionControl = vcs.NewGit(cfg.VCS.Binary)
	}

	var provisioner ports.Provisioner
	if cfg.Python.Venv {
		provisioner = venv.NewPython(cfg.Python.Interpreter)
	}

	a.Service = app.NewScaffoldService(app.ScaffoldDeps{
		Builder:   tree.NewBuilder(),
		Verifier:  tree.NewVerifier(),
		Extractor: extractor,
		RepoHost:  repoHost,
		VCS:       versionControl,
		Venv:      provisioner,
		Runs:      a.initLedger(cfg.Ledger),
		Clock:     clock.Real{},
		IDGen:     idgen.UUID{},
		Logger:    logger,
	}, app.ScaffoldConfig{
		CommitMessage: cfg.VCS.CommitMessage,
	})

	return a, nil
}

// initLedger opens the run history database. Any failure degrades to an
// in-memory ledger so a broken history file never blocks scaffolding.
func (a *App) initLedger(cfg config.LedgerConfig) ports.RunStore {
	if !cfg.Enabled {
		return nil
	}

	path := cfg.Path
	if path == "" {
		p, err := sqlite.DefaultPath()
		if err != nil {
			a.Logger.Warn().Err(err).Msg("cannot resolve history database path, run history will not persist")
			return memory.NewRunStore()
		}
		path = p
	}

	db, err := sqlite.Open(path)
	if err != nil {
		a.Logger.Warn().Err(err).Str("path", path).Msg("cannot open history database, run history will not persist")
		return memory.NewRunStore()
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		a.Logger.Warn().Err(err).Str("path", path).Msg("cannot migrate history database, run history will not persist")
		return memory.NewRunStore()
	}

	a.db = db
	a.Logger.Debug().Str("path", path).Msg("run history database opened")
	return sqlite.NewRunStore(db)
}

// Close releases held resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// setupLogger builds the process logger from configuration. Logs go to
// stderr so stdout stays clean for command output.
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).With().Timestamp().Logger()
}
