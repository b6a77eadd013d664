package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/ledger"
	"github.com/vovakirdan/snake-arcade/internal/record"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

// env holds what every command shares: config, logger and persistence.
type env struct {
	cfg      config.SnakeConfig
	logger   *log.Logger
	recorder *record.Recorder
	logFile  *os.File
}

// newEnv loads the config and builds the logger. Full-screen commands log
// to the --log file so output does not tear the game screen.
func newEnv(fullscreen bool, prefix string) (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg}

	var w io.Writer = os.Stderr
	if fullscreen && flagLogPath != "" {
		path := config.ExpandHome(flagLogPath)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		e.logFile = f
		w = f
	}

	e.logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		e.logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(e.logger)

	return e, nil
}

// scoresPath returns the top-ten file from the flag or config.
func (e *env) scoresPath() string {
	if flagScoresPath != "" {
		return config.ExpandHome(flagScoresPath)
	}
	return config.ExpandHome(e.cfg.Player.ScoresPath)
}

// dbPath returns the history database from the flag or config.
func (e *env) dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return e.cfg.Player.DBPath
}

// openStore opens the history database.
func (e *env) openStore() (*storage.Store, error) {
	return storage.Open(e.dbPath())
}

// openRecorder opens the ledger and, best effort, the history database.
func (e *env) openRecorder() *record.Recorder {
	rec := &record.Recorder{
		Ledger: ledger.Open(e.scoresPath(), e.logger),
		Logger: e.logger,
	}

	store, err := e.openStore()
	if err != nil {
		// Continue without history - the game still works
		e.logger.Warn("could not open match history", "err", err)
	} else {
		rec.Store = store
	}

	e.recorder = rec
	return rec
}

// playerName returns the ledger name from the flag or config.
func (e *env) playerName(flagName string) string {
	if flagName != "" {
		return flagName
	}
	return e.cfg.Player.Name
}

// Close releases the database and log file.
func (e *env) Close() {
	if e.recorder != nil && e.recorder.Store != nil {
		if err := e.recorder.Store.Close(); err != nil {
			e.logger.Warn("cannot close match history", "err", err)
		}
	}
	if e.logFile != nil {
		e.logFile.Close()
	}
}
