// Package drawer is the snap-point drawer state machine.
//
// A Controller ties the geometry resolver, the animation driver and the gesture
// arbiter together and exposes the open/close/snap lifecycle:
//
//	Closed -> Opening -> Open(i) -> Closing -> Closed
//
// Everything is driven from a single goroutine. Frames arrive through Advance.
package drawer

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/snapsheet/internal/config"
	"github.com/alexisbeaulieu97/snapsheet/internal/drawer/animation"
	"github.com/alexisbeaulieu97/snapsheet/internal/drawer/geometry"
	"github.com/alexisbeaulieu97/snapsheet/internal/drawer/gesture"
	"github.com/alexisbeaulieu97/snapsheet/internal/drawer/snap"
	"github.com/alexisbeaulieu97/snapsheet/internal/ids"
	"github.com/alexisbeaulieu97/snapsheet/internal/logger"
	snaperrors "github.com/alexisbeaulieu97/snapsheet/pkg/errors"
)

// Phase is the lifecycle state of the drawer.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpening
	PhaseOpen
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return "closed"
	}
}

// MarshalText encodes the phase by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a phase name.
func (p *Phase) UnmarshalText(text []byte) error {
	switch string(text) {
	case "closed":
		*p = PhaseClosed
	case "opening":
		*p = PhaseOpening
	case "open":
		*p = PhaseOpen
	case "closing":
		*p = PhaseClosing
	default:
		return fmt.Errorf("unknown drawer phase %q", text)
	}
	return nil
}

// State is a snapshot of the drawer.
type State struct {
	Phase       Phase   `json:"phase"`
	Visible     bool    `json:"visible"`
	Open        bool    `json:"open"`
	Closing     bool    `json:"closing"`
	Animating   bool    `json:"animating"`
	Dragging    bool    `json:"dragging"`
	ActiveIndex int     `json:"active_index"`
	Position    float64 `json:"position"`
	Backdrop    float64 `json:"backdrop"`
}

// Controller is a single drawer instance. It is not safe for concurrent use.
type Controller struct {
	id  string
	cfg config.Drawer
	log *logger.Logger
	ids ids.Generator

	resolver     *geometry.Resolver
	driver       *animation.Driver
	arbiter      *gesture.Arbiter
	scroll       gesture.ScrollState
	scrollReader gesture.ScrollReader
	callbacks    Callbacks

	visible     bool
	opening     bool
	open        bool
	controlled  *bool
	pendingOpen bool
	lastSnap    int
}

// New builds a hidden drawer for cfg in a viewport of the given height. Zero
// tuning values in cfg take their defaults.
func New(cfg config.Drawer, viewportHeight float64, opts ...Option) (*Controller, error) {
	merged, err := cfg.WithDefaults()
	if err != nil {
		return nil, err
	}
	if err := config.Validate(&merged); err != nil {
		return nil, err
	}

	resolver, err := geometry.NewResolver(merged.SnapPoints, viewportHeight)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:      merged,
		log:      logger.Nop(),
		ids:      ids.UUID{},
		resolver: resolver,
		lastSnap: snap.Dismiss,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.scrollReader == nil {
		c.scrollReader = &c.scroll
	}

	c.id = c.ids.NewID()
	c.log = c.log.With("drawer_id", c.id)

	c.driver = animation.New(merged.Animation, resolver.Layout(), animation.Hooks{
		OnSettle: c.settled,
		OnClosed: c.closed,
	}, c.log)
	c.arbiter = gesture.New(host{c}, c.scrollReader, gesture.Options{
		Drag:        merged.Drag,
		Dismissible: merged.CanDismiss(),
		Resizable:   merged.CanResize(),
	}, c.log)

	return c, nil
}

// ID returns the instance identifier.
func (c *Controller) ID() string { return c.id }

// Config returns the effective configuration with defaults applied.
func (c *Controller) Config() config.Drawer { return c.cfg }

// Layout returns the current resolved geometry.
func (c *Controller) Layout() geometry.Layout { return c.resolver.Layout() }

// Gestures returns the arbiter hosts feed pointer events into.
func (c *Controller) Gestures() *gesture.Arbiter { return c.arbiter }

// ActiveIndex returns the settled snap index, or snap.Dismiss when hidden.
func (c *Controller) ActiveIndex() int { return c.driver.ActiveIndex() }

// Position returns the live drawer offset from the top of the viewport.
func (c *Controller) Position() float64 { return c.driver.Position() }

// Backdrop returns the live backdrop opacity.
func (c *Controller) Backdrop() float64 { return c.driver.Backdrop() }

// IsOpen reports the open flag. A controlled value takes precedence.
func (c *Controller) IsOpen() bool {
	if c.controlled != nil {
		return *c.controlled
	}
	return c.open
}

// State returns a snapshot of the drawer.
func (c *Controller) State() State {
	return State{
		Phase:       c.phase(),
		Visible:     c.visible,
		Open:        c.IsOpen(),
		Closing:     c.driver.Closing(),
		Animating:   c.driver.Animating(),
		Dragging:    c.arbiter.Dragging(),
		ActiveIndex: c.driver.ActiveIndex(),
		Position:    c.driver.Position(),
		Backdrop:    c.driver.Backdrop(),
	}
}

func (c *Controller) phase() Phase {
	switch {
	case !c.visible:
		return PhaseClosed
	case c.driver.Closing():
		return PhaseClosing
	case c.opening:
		return PhaseOpening
	default:
		return PhaseOpen
	}
}

// Open shows the drawer at the configured initial snap point. Opening an open or
// opening drawer does nothing. An open requested while closing runs once the close
// completes; repeated requests collapse into one.
func (c *Controller) Open() error {
	if !c.resolver.Layout().Valid() {
		return snaperrors.NewGeometryError(c.resolver.Layout().ViewportHeight, c.cfg.SnapPoints, "no valid layout to open into")
	}
	if c.driver.Closing() {
		if !c.pendingOpen {
			c.log.Debug("open queued behind close")
		}
		c.pendingOpen = true
		return nil
	}
	if c.visible {
		return nil
	}

	c.visible = true
	c.opening = true
	c.driver.Open(c.cfg.InitialSnapIndex)
	c.log.WithFields(map[string]any{"index": c.cfg.InitialSnapIndex}).Debug("drawer opening")
	c.setOpen(true)
	return nil
}

// Close dismisses the drawer. It cancels a queued reopen. Closing a closed or
// closing drawer does nothing.
func (c *Controller) Close() {
	c.pendingOpen = false
	if !c.visible {
		return
	}
	c.closeWithVelocity(c.cfg.Animation.Close.Velocity)
}

func (c *Controller) closeWithVelocity(velocity float64) {
	if c.driver.Closing() {
		return
	}
	c.arbiter.Cancel()
	c.driver.CloseWithVelocity(velocity)
	c.opening = false
	c.log.Debug("drawer closing")
}

// SnapTo animates an open drawer to index. The request is dropped while a drag, an
// open/snap spring or a close is in flight.
func (c *Controller) SnapTo(index int) error {
	layout := c.resolver.Layout()
	if index < 0 || index >= layout.Count() {
		return snaperrors.NewValidationError("snap_index", fmt.Sprintf("index %d out of range [0,%d)", index, layout.Count()), nil)
	}
	if !c.visible {
		return snaperrors.NewValidationError("snap_index", "drawer is closed", nil)
	}
	if c.arbiter.Dragging() {
		return nil
	}
	c.driver.SnapTo(index, 0)
	return nil
}

// Resize recomputes the layout for a new viewport height and moves the drawer to
// the new offset of its snap point. On error the previous layout stays in force.
func (c *Controller) Resize(viewportHeight float64) error {
	layout, changed, err := c.resolver.Resize(viewportHeight)
	if err != nil {
		c.log.Error(err, "resize rejected")
		return err
	}
	if !changed {
		return nil
	}
	c.driver.Relayout(layout)
	c.log.WithFields(map[string]any{"viewport_height": viewportHeight, "offset": c.driver.Position()}).Debug("layout changed")
	return nil
}

// SetControlledOpen hands the open flag to the caller. A nil value returns control
// to the drawer. A non-nil value opens or closes the drawer to match.
func (c *Controller) SetControlledOpen(open *bool) {
	if open == nil {
		c.controlled = nil
		return
	}
	v := *open
	c.controlled = &v
	if v {
		if err := c.Open(); err != nil {
			c.log.Error(err, "controlled open failed")
		}
		return
	}
	c.Close()
}

// ReportScroll records the content scroll offset used for content capture.
func (c *Controller) ReportScroll(offset float64) {
	c.scroll.Report(offset)
}

// Advance steps the animations by one frame.
func (c *Controller) Advance(dt time.Duration) {
	c.driver.Advance(dt)
}

// Busy reports whether any animation still needs frames.
func (c *Controller) Busy() bool {
	return c.driver.Busy()
}

func (c *Controller) setOpen(open bool) {
	if c.open == open {
		return
	}
	c.open = open
	if c.callbacks.OnOpenChange != nil {
		c.callbacks.OnOpenChange(open)
	}
}

func (c *Controller) settled(index int) {
	c.opening = false
	if index == c.lastSnap {
		return
	}
	c.lastSnap = index
	c.log.WithFields(map[string]any{"index": index, "offset": c.driver.Position()}).Debug("snap changed")
	if c.callbacks.OnSnapChange != nil {
		c.callbacks.OnSnapChange(index)
	}
}

func (c *Controller) closed() {
	c.visible = false
	c.opening = false
	c.lastSnap = snap.Dismiss
	c.arbiter.Cancel()
	c.driver.Reset()
	c.log.Debug("drawer closed")
	c.setOpen(false)

	if c.pendingOpen {
		c.pendingOpen = false
		if err := c.Open(); err != nil {
			c.log.Error(err, "queued open failed")
		}
	}
}
