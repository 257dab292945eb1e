package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/datatable/internal/config"
	"github.com/alexisbeaulieu97/datatable/internal/logger"
	"github.com/alexisbeaulieu97/datatable/internal/table"
	seederrors "github.com/alexisbeaulieu97/datatable/pkg/errors"
)

// openLogger builds the run's logger. Without --log-file nothing is written,
// since the terminal belongs to the table.
func openLogger(flags *rootFlags) (*logger.Logger, func(), error) {
	if strings.TrimSpace(flags.logFile) == "" {
		return logger.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level := flags.logLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, Writer: f})
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}

	return log.With("session_id", uuid.NewString()), func() { _ = f.Close() }, nil
}

// loadStore builds the table from --seed (or the built-in rows) and applies
// the page size and theme flags on top.
func loadStore(flags *rootFlags, log *logger.Logger) (*table.Store, error) {
	seed := config.DefaultSeed()
	if path := strings.TrimSpace(flags.seedPath); path != "" {
		loaded, err := config.LoadSeed(path)
		if err != nil {
			switch {
			case seederrors.IsValidation(err):
				log.Warn("seed rejected", "path", path, "reason", err.Error())
			case seederrors.IsParse(err):
				log.Error(err, "seed unreadable", "path", path)
			}
			return nil, fmt.Errorf("load seed: %w", err)
		}
		seed = loaded
		log.Debug("seed loaded", "path", path, "rows", len(seed.Rows))
	}

	store := seed.NewStore()
	if err := applyPageSize(store, flags.pageSize); err != nil {
		return nil, err
	}
	if flags.dark {
		store.SetDark(true)
	}
	return store, nil
}
