package scenario

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/snapsheet/internal/drawer"
	"github.com/alexisbeaulieu97/snapsheet/internal/drawer/snap"
	"github.com/alexisbeaulieu97/snapsheet/internal/logger"
	snaperrors "github.com/alexisbeaulieu97/snapsheet/pkg/errors"
)

func mustRun(t *testing.T, doc string) *Result {
	t.Helper()
	sc, err := ParseBytes("test.yaml", []byte(doc))
	require.NoError(t, err)

	res, err := NewRunner(logger.Nop(), nil).Run(context.Background(), sc)
	require.NoError(t, err)
	return res
}

func openEvents(res *Result) []bool {
	var out []bool
	for _, ev := range res.EventsOf("open_change") {
		out = append(out, *ev.Open)
	}
	return out
}

func snapEvents(res *Result) []int {
	var out []int
	for _, ev := range res.EventsOf("snap_change") {
		out = append(out, *ev.Index)
	}
	return out
}

func TestRunScenarios(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		verify func(t *testing.T, res *Result)
	}{
		{
			name: "fling up from smallest advances one step",
			doc: `
name: fling-up
viewport_height: 800
steps:
  - action: open
  - action: settle
  - action: drag
    source: handle
    moves: [-20, -40]
    velocity: -1.0
  - action: settle
`,
			verify: func(t *testing.T, res *Result) {
				require.NotNil(t, res.Records[2].Target)
				assert.Equal(t, 1, *res.Records[2].Target)
				assert.Equal(t, 1, res.Final.ActiveIndex)
				assert.Equal(t, 320.0, res.Final.Position)
				assert.Equal(t, []int{0, 1}, snapEvents(res))
			},
		},
		{
			name: "slow drag past close distance dismisses",
			doc: `
name: drag-dismiss
viewport_height: 800
steps:
  - action: open
  - action: settle
  - action: drag
    source: handle
    moves: [80, 150]
    velocity: 0.1
  - action: settle
`,
			verify: func(t *testing.T, res *Result) {
				assert.Equal(t, snap.Dismiss, *res.Records[2].Target)
				assert.Equal(t, drawer.PhaseClosed, res.Final.Phase)
				assert.Equal(t, []bool{true, false}, openEvents(res))
			},
		},
		{
			name: "fast downward fling dismisses",
			doc: `
name: fling-dismiss
viewport_height: 800
steps:
  - action: open
  - action: settle
  - action: drag
    source: handle
    moves: [20]
    velocity: 1.5
  - action: settle
`,
			verify: func(t *testing.T, res *Result) {
				assert.Equal(t, snap.Dismiss, *res.Records[2].Target)
				assert.Equal(t, []bool{true, false}, openEvents(res))
			},
		},
		{
			name: "scrolled content keeps the gesture",
			doc: `
name: scrolled-content
viewport_height: 800
steps:
  - action: open
  - action: settle
  - action: scroll
    offset: 50
  - action: drag
    source: content
    moves: [30, 60]
    velocity: 0.3
`,
			verify: func(t *testing.T, res *Result) {
				assert.Equal(t, "refused", res.Records[3].Outcome)
				assert.Nil(t, res.Records[3].Target)
				assert.Equal(t, 560.0, res.Final.Position)
			},
		},
		{
			name: "resize repositions open drawer",
			doc: `
name: rotate
viewport_height: 800
drawer:
  snap_points: [0.3, 0.6, 0.9]
  initial_snap_index: 1
steps:
  - action: open
  - action: settle
  - action: resize
    height: 1000
`,
			verify: func(t *testing.T, res *Result) {
				assert.Equal(t, 320.0, res.Records[1].State.Position)
				assert.Equal(t, 400.0, res.Final.Position)
				assert.Equal(t, 1, res.Final.ActiveIndex)
			},
		},
		{
			name: "double close reports once",
			doc: `
name: double-close
viewport_height: 800
steps:
  - action: open
  - action: settle
  - action: close
  - action: close
  - action: settle
`,
			verify: func(t *testing.T, res *Result) {
				assert.Equal(t, []bool{true, false}, openEvents(res))
				assert.Equal(t, 4, res.EventsOf("open_change")[1].Step)
			},
		},
		{
			name: "cancelled drag settles at nearest",
			doc: `
name: cancel
viewport_height: 800
steps:
  - action: open
  - action: settle
  - action: drag
    source: handle
    moves: [-250]
    cancel: true
  - action: settle
`,
			verify: func(t *testing.T, res *Result) {
				assert.Equal(t, "released", res.Records[2].Outcome)
				assert.Equal(t, 1, res.Final.ActiveIndex)
			},
		},
		{
			name: "step errors are recorded",
			doc: `
name: errors
viewport_height: 800
frame_rate: 50
steps:
  - action: snap
    index: 1
  - action: open
  - action: resize
    height: 0
  - action: advance
    duration: 100ms
`,
			verify: func(t *testing.T, res *Result) {
				assert.Contains(t, res.Records[0].Error, "drawer is closed")
				assert.Contains(t, res.Records[2].Error, "geometry error")
				assert.Equal(t, 5, res.Records[3].Frames)
				assert.Equal(t, drawer.PhaseOpening, res.Final.Phase)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.verify(t, mustRun(t, tt.doc))
		})
	}
}

func TestRunnerNumbersDrawers(t *testing.T) {
	sc, err := ParseBytes("ids.yaml", []byte("name: ids\nviewport_height: 600\nsteps:\n  - action: open\n"))
	require.NoError(t, err)

	r := NewRunner(nil, nil)
	first, err := r.Run(context.Background(), sc)
	require.NoError(t, err)
	second, err := r.Run(context.Background(), sc)
	require.NoError(t, err)

	assert.Equal(t, "drawer-1", first.DrawerID)
	assert.Equal(t, "drawer-2", second.DrawerID)
}

func TestRunHonoursCancellation(t *testing.T) {
	sc, err := ParseBytes("ctx.yaml", []byte("name: ctx\nviewport_height: 600\nsteps:\n  - action: open\n"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewRunner(nil, nil).Run(ctx, sc)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseRejectsInvalidScenarios(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"missing name", "viewport_height: 800\nsteps:\n  - action: open\n", "name"},
		{"bad height", "name: x\nviewport_height: 0\nsteps:\n  - action: open\n", "viewport_height"},
		{"no steps", "name: x\nviewport_height: 800\n", "steps"},
		{"unknown action", "name: x\nviewport_height: 800\nsteps:\n  - action: jump\n", "steps[0].action"},
		{"snap without index", "name: x\nviewport_height: 800\nsteps:\n  - action: snap\n", "steps[0].index"},
		{"drag without source", "name: x\nviewport_height: 800\nsteps:\n  - action: drag\n", "steps[0].source"},
		{"advance without duration", "name: x\nviewport_height: 800\nsteps:\n  - action: advance\n", "steps[0].duration"},
		{"bad drawer", "name: x\nviewport_height: 800\ndrawer:\n  snap_points: []\nsteps:\n  - action: open\n", "snap_points"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseBytes("bad.yaml", []byte(tt.doc))
			require.Error(t, err)

			var vErr *snaperrors.ValidationError
			require.True(t, errors.As(err, &vErr), "got %T: %v", err, err)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestParseReportsYAMLErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\nviewport_height: 800\nbogus: 1\n"), 0o600))

	_, err := Parse(path)
	var pErr *snaperrors.ParseError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, path, pErr.Path)
	assert.Equal(t, 3, pErr.Line)

	_, err = Parse(filepath.Join(dir, "missing.yaml"))
	require.True(t, errors.As(err, &pErr))
}

func TestExampleScenariosRun(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			sc, err := Parse(path)
			require.NoError(t, err)

			res, err := NewRunner(logger.Nop(), nil).Run(context.Background(), sc)
			require.NoError(t, err)
			for _, rec := range res.Records {
				assert.Empty(t, rec.Error, "step %d", rec.Step)
			}
		})
	}
}

func TestSettleWaitsForBackdropFade(t *testing.T) {
	res := mustRun(t, `
name: backdrop
viewport_height: 800
drawer:
  snap_points: [0.3, 0.6, 0.9]
  animation:
    backdrop:
      open_duration: 2s
steps:
  - action: open
  - action: settle
`)

	settled := res.Records[1].State
	assert.False(t, settled.Animating)
	assert.Equal(t, 560.0, settled.Position)
	assert.Equal(t, 1.0, settled.Backdrop, "the fade outlasts the open spring")
	assert.GreaterOrEqual(t, res.Records[1].Frames, 120)
}
