/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/suparena/entitymanager"
	"github.com/suparena/entitymanager/internal/catalog"
	"github.com/suparena/entitymanager/paging"
)

func (s *session) commands() []*cli.Command {
	idFlag := &cli.StringFlag{
		Name:     "id",
		Usage:    "Train ID",
		Required: true,
	}

	return []*cli.Command{
		{
			Name:   "create",
			Usage:  "Create a train",
			Action: s.withTrains(createCommand),
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "reference",
					Aliases:  []string{"r"},
					Usage:    "Train reference, e.g. IC-501",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "name",
					Usage: "Train name",
				},
			},
		},
		{
			Name:   "read",
			Usage:  "Read a train by ID",
			Action: s.withTrains(readCommand),
			Flags:  []cli.Flag{idFlag},
		},
		{
			Name:   "update",
			Usage:  "Change the reference or name of a train",
			Action: s.withTrains(updateCommand),
			Flags: []cli.Flag{
				idFlag,
				&cli.StringFlag{
					Name:    "reference",
					Aliases: []string{"r"},
					Usage:   "New train reference",
				},
				&cli.StringFlag{
					Name:  "name",
					Usage: "New train name",
				},
			},
		},
		{
			Name:   "delete",
			Usage:  "Delete a train by ID",
			Action: s.withTrains(deleteCommand),
			Flags:  []cli.Flag{idFlag},
		},
		{
			Name:   "page",
			Usage:  "List one page of trains",
			Action: s.withTrains(pageCommand),
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "offset",
					Usage: "Number of trains to skip",
				},
				&cli.IntFlag{
					Name:  "limit",
					Usage: "Maximum number of trains to return",
					Value: 20,
				},
				&cli.StringFlag{
					Name:    "search",
					Aliases: []string{"s"},
					Usage:   "Match trains whose reference contains this text",
				},
				&cli.StringFlag{
					Name:  "order-by",
					Usage: "Sort field (id, name, reference)",
				},
				&cli.StringFlag{
					Name:  "sort-as",
					Usage: "Sort direction (ASC or DESC)",
					Value: paging.SortDescending,
				},
			},
		},
		{
			Name:   "version",
			Usage:  "Show version information",
			Action: versionCommand,
		},
	}
}

// withTrains opens the configured backend around a command action.
func (s *session) withTrains(action func(c *cli.Context, trains trainManager) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		trains, closeFn, err := openTrains(c.Context, s.cfg, s.logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeFn(); err != nil {
				s.logger.Warn("failed to close backend", "backend", s.cfg.Backend, "error", err)
			}
		}()
		return action(c, trains)
	}
}

type succeeder interface {
	IsSucceeded() bool
	ErrorMessage() string
}

// printResult writes res as JSON. A failed result is also returned as an
// error so the process exits non-zero.
func printResult(c *cli.Context, res succeeder) error {
	if err := printJSON(c, res); err != nil {
		return err
	}
	if !res.IsSucceeded() {
		return errors.New(res.ErrorMessage())
	}
	return nil
}

func printJSON(c *cli.Context, v any) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(c *cli.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.String("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid train ID %q: %w", c.String("id"), err)
	}
	return id, nil
}

func createCommand(c *cli.Context, trains trainManager) error {
	res, err := trains.Create(c.Context, catalog.NewTrain(c.String("reference"), c.String("name")))
	if err != nil {
		return err
	}
	return printResult(c, res)
}

func readCommand(c *cli.Context, trains trainManager) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	res, err := trains.Read(c.Context, &catalog.Train{ID: id})
	if err != nil {
		return err
	}
	return printResult(c, res)
}

func updateCommand(c *cli.Context, trains trainManager) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	current, err := trains.Read(c.Context, &catalog.Train{ID: id})
	if err != nil {
		return err
	}
	train, ok := current.Payload()
	if !ok {
		return printResult(c, current)
	}

	if c.IsSet("reference") {
		train.Reference = c.String("reference")
	}
	if c.IsSet("name") {
		train.Name = c.String("name")
	}
	train.Touch()

	res, err := trains.Update(c.Context, train)
	if err != nil {
		return err
	}
	return printResult(c, res)
}

func deleteCommand(c *cli.Context, trains trainManager) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	res, err := trains.Delete(c.Context, &catalog.Train{ID: id})
	if err != nil {
		return err
	}
	return printResult(c, res)
}

func pageCommand(c *cli.Context, trains trainManager) error {
	res, err := trains.GetPage(c.Context, &paging.Filter{
		Offset:         c.Int("offset"),
		Limit:          c.Int("limit"),
		SearchCriteria: c.String("search"),
		OrderBy:        c.String("order-by"),
		SortAs:         c.String("sort-as"),
	})
	if err != nil {
		return err
	}
	return printJSON(c, res)
}

func versionCommand(c *cli.Context) error {
	return printJSON(c, entitymanager.GetVersionInfo())
}
