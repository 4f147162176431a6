/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package badgerstore

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
)

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// Options configures Open.
type Options struct {
	// Path is the database directory, created when missing. Ignored in memory.
	Path string
	// InMemory keeps everything in memory.
	InMemory bool
	// Logger receives badger's own logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Open opens a BadgerDB database.
func Open(o Options) (*badger.DB, error) {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var opts badger.Options
	if o.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(o.Path, 0o755); err != nil {
			return nil, fmt.Errorf("create badger directory: %w", err)
		}
		info, err := os.Stat(o.Path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", o.Path)
		}
		opts = badger.DefaultOptions(o.Path)
	}

	opts.Logger = &badgerLoggerAdapter{logger: logger}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return db, nil
}
