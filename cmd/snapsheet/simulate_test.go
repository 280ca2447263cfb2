package main

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/snapsheet/internal/drawer"
	"github.com/alexisbeaulieu97/snapsheet/internal/scenario"
	snaperrors "github.com/alexisbeaulieu97/snapsheet/pkg/errors"
)

const flingScenario = `
name: fling-up
description: fling from the smallest point
viewport_height: 800
steps:
  - action: open
  - action: settle
  - action: drag
    source: handle
    moves: [-20, -40]
    velocity: -1.0
  - action: settle
  - action: close
  - action: settle
`

func TestSimulateCommand_Table(t *testing.T) {
	path := writeFile(t, "fling.yaml", flingScenario)

	stdout, _, err := executeCommand(t, "simulate", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "scenario: fling-up")
	assert.Contains(t, stdout, "fling from the smallest point")
	assert.Contains(t, stdout, "STEP  ACTION")
	assert.Contains(t, stdout, "released -> 1")
	assert.Contains(t, stdout, "step 0: open changed to true")
	assert.Contains(t, stdout, "snapped to 1")
	assert.Contains(t, stdout, "step 5: open changed to false")
}

func TestSimulateCommand_JSON(t *testing.T) {
	path := writeFile(t, "fling.yaml", flingScenario)

	stdout, _, err := executeCommand(t, "simulate", path, "--json")
	require.NoError(t, err)

	var res scenario.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, "fling-up", res.Name)
	assert.Equal(t, "drawer-1", res.DrawerID)
	require.Len(t, res.Records, 6)
	require.NotNil(t, res.Records[2].Target)
	assert.Equal(t, 1, *res.Records[2].Target)
	assert.Equal(t, drawer.PhaseClosed, res.Final.Phase)
	assert.Contains(t, stdout, `"phase": "closed"`)
}

func TestSimulateCommand_InvalidScenario(t *testing.T) {
	path := writeFile(t, "bad.yaml", "name: bad\nviewport_height: 800\nsteps:\n  - action: teleport\n")

	_, _, err := executeCommand(t, "simulate", path)
	var vErr *snaperrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, 2, exitCode(err))
}

func TestSimulateCommand_RequiresFile(t *testing.T) {
	_, _, err := executeCommand(t, "simulate")
	require.Error(t, err)
}
