/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/entitymanager"
)

type trainJSON struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	Name      string `json:"name"`
}

type resultJSON struct {
	IsSucceeded  bool      `json:"isSucceeded"`
	Payload      trainJSON `json:"payload"`
	ErrorMessage string    `json:"errorMessage"`
}

type pageJSON struct {
	Items   []trainJSON `json:"items"`
	Count   int64       `json:"count"`
	Matched int64       `json:"matched"`
	Offset  int         `json:"offset"`
	Limit   int         `json:"limit"`
}

// run executes the app against a badger database in a temporary directory.
func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	t.Setenv("ENTITYMANAGER_BADGER_PATH", dbPath)
	err := newApp(&out, &errOut).Run(append([]string{"entitymanager", "--backend", "badger", "--log-level", "error"}, args...))
	return out.String(), err
}

func decode[V any](t *testing.T, s string) V {
	t.Helper()
	var v V
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestTrainLifecycle(t *testing.T) {
	t.Chdir(t.TempDir())
	db := t.TempDir()

	out, err := run(t, db, "create", "--reference", "IC-501", "--name", "Zephyr")
	require.NoError(t, err)
	created := decode[resultJSON](t, out)
	require.True(t, created.IsSucceeded)
	id := created.Payload.ID
	require.NotEmpty(t, id)

	_, err = run(t, db, "create", "-r", "RE-12")
	require.NoError(t, err)

	out, err = run(t, db, "read", "--id", id)
	require.NoError(t, err)
	assert.Equal(t, "Zephyr", decode[resultJSON](t, out).Payload.Name)

	out, err = run(t, db, "update", "--id", id, "--name", "Zephyr Express")
	require.NoError(t, err)
	assert.True(t, decode[resultJSON](t, out).IsSucceeded)

	out, err = run(t, db, "page", "--search", "IC", "--limit", "5", "--sort-as", "asc")
	require.NoError(t, err)
	page := decode[pageJSON](t, out)
	assert.Equal(t, int64(2), page.Count)
	assert.Equal(t, int64(1), page.Matched)
	assert.Equal(t, 5, page.Limit)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Zephyr Express", page.Items[0].Name)

	out, err = run(t, db, "delete", "--id", id)
	require.NoError(t, err)
	assert.True(t, decode[resultJSON](t, out).IsSucceeded)

	out, err = run(t, db, "read", "--id", id)
	require.Error(t, err)
	assert.Equal(t, entitymanager.NotFoundMessage, err.Error())
	read := decode[resultJSON](t, out)
	assert.False(t, read.IsSucceeded)
	assert.Equal(t, entitymanager.NotFoundMessage, read.ErrorMessage)
}

func TestCommandErrors(t *testing.T) {
	t.Chdir(t.TempDir())
	db := t.TempDir()

	_, err := run(t, db, "read", "--id", "not-a-uuid")
	assert.ErrorContains(t, err, "invalid train ID")

	_, err = run(t, db, "create")
	assert.ErrorContains(t, err, "reference")

	_, err = run(t, db, "page", "--limit", "1000")
	assert.Error(t, err, "limit above the configured maximum")

	var out bytes.Buffer
	err = newApp(&out, &out).Run([]string{"entitymanager", "--backend", "cassandra", "version"})
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	info := decode[entitymanager.VersionInfo](t, out)
	assert.Equal(t, entitymanager.Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}
