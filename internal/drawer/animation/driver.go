// Package animation drives the drawer's position and backdrop channels.
package animation

import (
	"time"

	"github.com/alexisbeaulieu97/snapsheet/internal/config"
	"github.com/alexisbeaulieu97/snapsheet/internal/drawer/geometry"
	"github.com/alexisbeaulieu97/snapsheet/internal/drawer/snap"
	"github.com/alexisbeaulieu97/snapsheet/internal/logger"
	"github.com/alexisbeaulieu97/snapsheet/internal/motion"
)

// Hooks are invoked from Advance when animations complete.
type Hooks struct {
	// OnSettle fires when an open or snap spring comes to rest at index.
	OnSettle func(index int)
	// OnClosed fires once both channels finished a close.
	OnClosed func()
}

// Driver owns the position and backdrop channels together with the closing and
// animating guards. Operations are fire-and-forget: completion is only observable
// through Hooks. It is not safe for concurrent use.
type Driver struct {
	cfg    config.Animation
	layout geometry.Layout
	hooks  Hooks
	log    *logger.Logger

	position *motion.Channel
	backdrop *motion.Channel

	closing   bool
	animating bool
	active    int
	target    int
	closeGen  int
}

// New returns a driver with a hidden drawer.
func New(cfg config.Animation, layout geometry.Layout, hooks Hooks, log *logger.Logger) *Driver {
	return &Driver{
		cfg:      cfg,
		layout:   layout,
		hooks:    hooks,
		log:      log,
		position: motion.NewChannel("position", layout.Offscreen),
		backdrop: motion.NewChannel("backdrop", 0),
		active:   snap.Dismiss,
		target:   snap.Dismiss,
	}
}

// Position returns the live position channel value.
func (d *Driver) Position() float64 { return d.position.Value() }

// PositionPhase returns who currently owns the position channel.
func (d *Driver) PositionPhase() motion.Phase { return d.position.Phase() }

// Backdrop returns the live backdrop opacity.
func (d *Driver) Backdrop() float64 { return d.backdrop.Value() }

// Closing reports whether a close is in flight.
func (d *Driver) Closing() bool { return d.closing }

// Animating reports whether an open or snap spring is in flight.
func (d *Driver) Animating() bool { return d.animating }

// Busy reports whether either channel is still animating.
func (d *Driver) Busy() bool {
	return d.position.Phase() == motion.PhaseAnimating || d.backdrop.Phase() == motion.PhaseAnimating
}

// ActiveIndex returns the index the drawer last settled at, or snap.Dismiss.
func (d *Driver) ActiveIndex() int { return d.active }

// Layout returns the layout offsets are resolved against.
func (d *Driver) Layout() geometry.Layout { return d.layout }

// Open slides the drawer in from off-screen to index and fades the backdrop in.
func (d *Driver) Open(index int) {
	d.closeGen++
	d.closing = false
	d.position.Stop()
	d.backdrop.Stop()
	d.position.Release()

	d.animating = true
	d.target = index

	d.position.Set(d.layout.Offscreen)
	d.backdrop.Animate(motion.NewTiming(d.cfg.Backdrop.MaxOpacity, d.cfg.Backdrop.OpenDuration, 0, nil), nil)
	d.position.Animate(d.spring(d.layout.Offset(index), d.cfg.Open.Velocity, d.cfg.Open), d.settleAt(index))

	d.log.WithFields(map[string]any{"index": index, "offset": d.layout.Offset(index)}).Debug("open animation started")
}

// CloseWithVelocity slides the drawer off-screen with a release velocity in pixels
// per millisecond and fades the backdrop after CloseDelay. It returns false, doing
// nothing, when a close is already in flight.
func (d *Driver) CloseWithVelocity(velocity float64) bool {
	if d.closing {
		return false
	}

	d.position.Stop()
	d.backdrop.Stop()
	d.position.Release()

	d.closing = true
	d.animating = false
	d.target = snap.Dismiss
	d.closeGen++
	gen := d.closeGen

	pending := 2
	finish := func(bool) {
		if gen != d.closeGen || !d.closing {
			return
		}
		pending--
		if pending > 0 {
			return
		}
		d.closing = false
		d.active = snap.Dismiss
		d.log.Debug("close animation finished")
		if d.hooks.OnClosed != nil {
			d.hooks.OnClosed()
		}
	}

	d.backdrop.Animate(motion.NewTiming(0, d.cfg.Backdrop.CloseDuration, d.cfg.Backdrop.CloseDelay, nil), finish)
	d.position.Animate(d.spring(d.layout.Offscreen, velocity, d.cfg.Close), finish)

	d.log.WithFields(map[string]any{"velocity": velocity}).Debug("close animation started")
	return true
}

// SnapTo springs the drawer to index carrying velocity (pixels per millisecond).
// It returns false while another spring or a close is in flight.
func (d *Driver) SnapTo(index int, velocity float64) bool {
	if d.animating || d.closing {
		return false
	}

	d.position.Stop()
	d.position.Release()
	d.animating = true
	d.target = index
	d.position.Animate(d.spring(d.layout.Offset(index), velocity, d.cfg.Snap), d.settleAt(index))

	d.log.WithFields(map[string]any{"index": index, "velocity": velocity}).Debug("snap animation started")
	return true
}

// Interrupt stops the in-flight open or snap spring where it is. An interrupted
// opening spring leaves its target as the active index.
func (d *Driver) Interrupt() {
	if d.closing {
		return
	}
	target := d.target
	d.position.Stop()
	if d.active == snap.Dismiss && target != snap.Dismiss {
		d.active = target
	}
}

// BeginDrag interrupts the position animation and hands the channel to a gesture.
// A closing drawer keeps its close animation and drag writes are dropped.
func (d *Driver) BeginDrag() float64 {
	if d.closing {
		return d.position.Value()
	}
	d.Interrupt()
	d.position.Grab()
	return d.position.Value()
}

// DragTo writes the live drag offset.
func (d *Driver) DragTo(offset float64) {
	d.position.DragTo(offset)
}

// EndDrag returns the position channel from the gesture.
func (d *Driver) EndDrag() {
	d.position.Release()
}

// Relayout adopts a new layout. A resting drawer jumps to the new offset of its
// snap point, an in-flight spring is retargeted and a live drag is left alone.
func (d *Driver) Relayout(layout geometry.Layout) {
	d.layout = layout

	switch {
	case d.closing:
		d.position.Retarget(layout.Offscreen)
	case d.position.Phase() == motion.PhaseDragging:
	case d.position.Phase() == motion.PhaseAnimating && d.target != snap.Dismiss:
		d.position.Retarget(layout.Offset(d.target))
	default:
		d.position.Set(layout.Offset(d.active))
	}
}

// Reset hides the drawer immediately and clears every guard.
func (d *Driver) Reset() {
	d.closeGen++
	d.position.Stop()
	d.backdrop.Stop()
	d.position.Release()
	d.position.Set(d.layout.Offscreen)
	d.backdrop.Set(0)
	d.closing = false
	d.animating = false
	d.active = snap.Dismiss
	d.target = snap.Dismiss
}

// Advance steps both channels by dt. Hooks fire from inside Advance.
func (d *Driver) Advance(dt time.Duration) {
	d.backdrop.Step(dt)
	d.position.Step(dt)
}

func (d *Driver) settleAt(index int) func(bool) {
	return func(finished bool) {
		d.animating = false
		d.target = snap.Dismiss
		if !finished {
			return
		}
		d.active = index
		d.log.WithFields(map[string]any{"index": index}).Debug("settled")
		if d.hooks.OnSettle != nil {
			d.hooks.OnSettle(index)
		}
	}
}

func (d *Driver) spring(to, velocity float64, s config.Spring) *motion.Spring {
	return motion.NewSpring(to, velocity*1000, motion.SpringParams{
		Tension:          s.Tension,
		Friction:         s.Friction,
		RestDisplacement: d.cfg.RestDisplacement,
		RestSpeed:        d.cfg.RestSpeed,
		Step:             d.cfg.FrameStep,
	})
}
