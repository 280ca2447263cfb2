package config

import (
	"time"
)

// Drawer is the full drawer configuration document. It is supplied once at
// construction and never mutated afterwards; changing it means remounting the engine.
type Drawer struct {
	SnapPoints       []float64 `yaml:"snap_points" validate:"required,min=1,dive,snap_point"`
	InitialSnapIndex int       `yaml:"initial_snap_index" validate:"min=0"`
	Dismissible      *bool     `yaml:"dismissible,omitempty"`
	Resizable        *bool     `yaml:"resizable,omitempty"`
	Animation        Animation `yaml:"animation,omitempty"`
	Drag             Drag      `yaml:"drag,omitempty"`
}

// CanDismiss reports whether a release may dismiss the drawer. Unset means true.
func (d Drawer) CanDismiss() bool {
	return d.Dismissible == nil || *d.Dismissible
}

// CanResize reports whether gestures may move the drawer between snap points.
// Unset means true.
func (d Drawer) CanResize() bool {
	return d.Resizable == nil || *d.Resizable
}

// Animation holds spring and timing parameters for the position and backdrop channels.
type Animation struct {
	Open     Spring   `yaml:"open,omitempty"`
	Snap     Spring   `yaml:"snap,omitempty"`
	Close    Spring   `yaml:"close,omitempty"`
	Backdrop Backdrop `yaml:"backdrop,omitempty"`

	// RestDisplacement and RestSpeed decide when a spring counts as settled
	// (pixels and pixels per second).
	RestDisplacement float64 `yaml:"rest_displacement,omitempty" validate:"gt=0"`
	RestSpeed        float64 `yaml:"rest_speed,omitempty" validate:"gt=0"`

	// FrameStep is the fixed physics step springs are integrated with.
	FrameStep time.Duration `yaml:"frame_step,omitempty" validate:"gt=0s,lte=100ms"`
}

// Spring parameters use the tension/friction convention. Velocity is the initial
// velocity in pixels per millisecond.
type Spring struct {
	Tension  float64 `yaml:"tension,omitempty" validate:"gt=0"`
	Friction float64 `yaml:"friction,omitempty" validate:"gt=0"`
	Velocity float64 `yaml:"velocity,omitempty"`
}

// Backdrop configures the opacity fade that accompanies open and close.
type Backdrop struct {
	OpenDuration  time.Duration `yaml:"open_duration,omitempty" validate:"gt=0s"`
	CloseDuration time.Duration `yaml:"close_duration,omitempty" validate:"gt=0s"`
	CloseDelay    time.Duration `yaml:"close_delay,omitempty" validate:"gt=0s"`
	MaxOpacity    float64       `yaml:"max_opacity,omitempty" validate:"gt=0,lte=1"`
}

// Drag holds gesture tuning. Distances are pixels, velocities pixels per millisecond.
// A zero field means "use the default", so only ScrollTopThreshold may be zero.
type Drag struct {
	Resistance         float64 `yaml:"resistance,omitempty" validate:"gt=0"`
	MinDistance        float64 `yaml:"min_distance,omitempty" validate:"gt=0"`
	ScrollTopThreshold float64 `yaml:"scroll_top_threshold,omitempty" validate:"gte=0"`
	FlingVelocity      float64 `yaml:"fling_velocity,omitempty" validate:"gt=0"`
	DismissVelocity    float64 `yaml:"dismiss_velocity,omitempty" validate:"gt=0"`
	CloseDistance      float64 `yaml:"close_distance,omitempty" validate:"gt=0"`
}
