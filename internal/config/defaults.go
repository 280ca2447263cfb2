package config

import (
	"time"

	"dario.cat/mergo"
)

// DefaultSnapPoints is used when no configuration file is supplied.
var DefaultSnapPoints = []float64{0.3, 0.6, 0.9}

// Default returns a complete, valid drawer configuration.
func Default() Drawer {
	dismissible := true
	resizable := true

	return Drawer{
		SnapPoints:       append([]float64(nil), DefaultSnapPoints...),
		InitialSnapIndex: 0,
		Dismissible:      &dismissible,
		Resizable:        &resizable,
		Animation:        DefaultAnimation(),
		Drag:             DefaultDrag(),
	}
}

// DefaultAnimation returns the stock animation tuning.
func DefaultAnimation() Animation {
	return Animation{
		Open:  Spring{Tension: 65, Friction: 11},
		Snap:  Spring{Tension: 80, Friction: 12},
		Close: Spring{Tension: 90, Friction: 14},
		Backdrop: Backdrop{
			OpenDuration:  250 * time.Millisecond,
			CloseDuration: 200 * time.Millisecond,
			CloseDelay:    80 * time.Millisecond,
			MaxOpacity:    1,
		},
		RestDisplacement: 0.5,
		RestSpeed:        2,
		FrameStep:        time.Second / 120,
	}
}

// DefaultDrag returns the stock gesture tuning.
func DefaultDrag() Drag {
	return Drag{
		Resistance:         0.05,
		MinDistance:        5,
		ScrollTopThreshold: 0,
		FlingVelocity:      0.5,
		DismissVelocity:    1.2,
		CloseDistance:      100,
	}
}

// WithDefaults merges the stock tuning under d: every zero-valued field takes the
// default. Snap points are never defaulted for a document that omits them.
func (d Drawer) WithDefaults() (Drawer, error) {
	out := d
	out.SnapPoints = append([]float64(nil), d.SnapPoints...)

	defaults := Default()
	defaults.SnapPoints = nil

	if err := mergo.Merge(&out, defaults); err != nil {
		return Drawer{}, err
	}
	return out, nil
}
