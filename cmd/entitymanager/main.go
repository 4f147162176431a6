/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/suparena/entitymanager/config"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// session carries what the Before hook resolves for the commands.
type session struct {
	cfg    config.Config
	logger *slog.Logger
	errOut io.Writer
}

func newApp(out, errOut io.Writer) *cli.App {
	s := &session{errOut: errOut}

	return &cli.App{
		Name:      "entitymanager",
		Usage:     "Manage trains over a pluggable storage backend",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "backend",
				Aliases: []string{"b"},
				Usage:   "Storage backend (memory, badger, ddb, mysql); overrides the configuration",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error); overrides the configuration",
			},
		},
		Before:   s.setup,
		Commands: s.commands(),
	}
}

// setup loads the configuration, applies the global flags and installs the
// process logger.
func (s *session) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("backend") {
		cfg.Backend = c.String("backend")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	s.cfg = cfg
	s.logger = slog.New(slog.NewTextHandler(s.errOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(s.logger)
	return nil
}
