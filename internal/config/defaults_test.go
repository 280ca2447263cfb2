package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	snaperrors "github.com/alexisbeaulieu97/snapsheet/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, Validate(&cfg))
	require.True(t, cfg.CanDismiss())
	require.True(t, cfg.CanResize())
}

func TestWithDefaultsKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	resizable := false
	cfg := Drawer{
		SnapPoints: []float64{200, 0.8},
		Resizable:  &resizable,
		Drag:       Drag{Resistance: 0.2},
		Animation:  Animation{Snap: Spring{Tension: 120, Friction: 20, Velocity: 0.3}},
	}

	merged, err := cfg.WithDefaults()
	require.NoError(t, err)

	require.Equal(t, []float64{200, 0.8}, merged.SnapPoints)
	require.False(t, merged.CanResize())
	require.True(t, merged.CanDismiss())
	require.Equal(t, 0.2, merged.Drag.Resistance)
	require.Equal(t, DefaultDrag().CloseDistance, merged.Drag.CloseDistance)
	require.Equal(t, Spring{Tension: 120, Friction: 20, Velocity: 0.3}, merged.Animation.Snap)
	require.Equal(t, DefaultAnimation().Close, merged.Animation.Close)
	require.Equal(t, time.Second/120, merged.Animation.FrameStep)

	// The caller's document is left alone.
	require.Zero(t, cfg.Drag.CloseDistance)
}

func TestWithDefaultsDoesNotInventSnapPoints(t *testing.T) {
	t.Parallel()

	merged, err := Drawer{}.WithDefaults()
	require.NoError(t, err)
	require.Empty(t, merged.SnapPoints)

	err = Validate(&merged)
	var validationErr *snaperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateRejectsBadTuning(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		mut   func(*Drawer)
		field string
	}{
		{"zero friction", func(d *Drawer) { d.Animation.Open.Friction = 0 }, "animation.open.friction"},
		{"opacity above one", func(d *Drawer) { d.Animation.Backdrop.MaxOpacity = 1.5 }, "animation.backdrop.max_opacity"},
		{"negative close distance", func(d *Drawer) { d.Drag.CloseDistance = -1 }, "drag.close_distance"},
		{"zero close distance", func(d *Drawer) { d.Drag.CloseDistance = 0 }, "drag.close_distance"},
		{"zero min distance", func(d *Drawer) { d.Drag.MinDistance = 0 }, "drag.min_distance"},
		{"zero close delay", func(d *Drawer) { d.Animation.Backdrop.CloseDelay = 0 }, "animation.backdrop.close_delay"},
		{"huge frame step", func(d *Drawer) { d.Animation.FrameStep = time.Second }, "animation.frame_step"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tc.mut(&cfg)

			err := Validate(&cfg)
			var validationErr *snaperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestValidateNil(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))
}
