// Package gesture arbitrates pointer streams between the drawer and its content.
//
// Two regions feed the arbiter: the handle, which claims every drag it sees, and the
// content, which claims a drag only once it has moved far enough and only when the
// inner scroll view cannot use a downward drag itself. A claimed drag writes the
// drawer position live; its release is turned into a snap target or a dismissal.
package gesture

import (
	"math"

	"github.com/alexisbeaulieu97/snapsheet/internal/config"
	"github.com/alexisbeaulieu97/snapsheet/internal/drawer/geometry"
	"github.com/alexisbeaulieu97/snapsheet/internal/drawer/snap"
	"github.com/alexisbeaulieu97/snapsheet/internal/logger"
)

// Source is the region a touch started in.
type Source int

const (
	SourceHandle Source = iota
	SourceContent
)

func (s Source) String() string {
	if s == SourceHandle {
		return "handle"
	}
	return "content"
}

// Outcome tells the host what happened to an event.
type Outcome int

const (
	// Ignored: there was nothing to act on.
	Ignored Outcome = iota
	// Pending: a content touch is still below the capture threshold.
	Pending
	// Captured: the drawer owns the stream and moved.
	Captured
	// Refused: the drawer declined the stream; the host should let the content
	// (typically its scroll view) handle it.
	Refused
	// Released: a drawer drag ended and a target was dispatched.
	Released
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Captured:
		return "captured"
	case Refused:
		return "refused"
	case Released:
		return "released"
	default:
		return "ignored"
	}
}

// Snapshot is the drawer state the arbiter reads when making a decision.
type Snapshot struct {
	Layout      geometry.Layout
	ActiveIndex int
	Visible     bool
	Closing     bool
	Animating   bool
}

// Host is the drawer side of the arbiter.
type Host interface {
	Snapshot() Snapshot
	// BeginDrag stops any in-flight position animation, takes the position
	// channel for the gesture and returns the current offset.
	BeginDrag() float64
	DragTo(offset float64)
	EndDrag()
	Settle(index int, velocity float64)
	Dismiss()
}

// ScrollReader exposes the inner scroll view's vertical offset.
type ScrollReader interface {
	ScrollOffset() float64
}

// Options are the immutable gesture settings.
type Options struct {
	Drag        config.Drag
	Dismissible bool
	Resizable   bool
}

// Session is the record of one claimed drag.
type Session struct {
	Source      Source
	StartOffset float64
	LastDelta   float64
	Offset      float64
	Velocity    float64
	Direction   snap.Direction
}

// Result describes a finished drag.
type Result struct {
	Outcome   Outcome
	Offset    float64
	Velocity  float64
	Direction snap.Direction
	// Target is the snap index dispatched, or snap.Dismiss.
	Target int
}

type touch struct {
	source  Source
	refused bool
}

// Arbiter owns the gesture session. It is not safe for concurrent use; events
// must arrive in order from a single goroutine.
type Arbiter struct {
	host    Host
	scroll  ScrollReader
	opts    Options
	log     *logger.Logger
	touch   *touch
	session *Session
}

// New creates an Arbiter. scroll may be nil when the content has no scroll view.
func New(host Host, scroll ScrollReader, opts Options, log *logger.Logger) *Arbiter {
	return &Arbiter{host: host, scroll: scroll, opts: opts, log: log}
}

// Dragging reports whether a drag session is active.
func (a *Arbiter) Dragging() bool {
	return a.session != nil
}

// Session returns a copy of the active session.
func (a *Arbiter) Session() (Session, bool) {
	if a.session == nil {
		return Session{}, false
	}
	return *a.session, true
}

// Down starts a touch in src.
func (a *Arbiter) Down(src Source) Outcome {
	if a.touch != nil {
		return Ignored
	}
	snapshot := a.host.Snapshot()
	if !snapshot.Visible {
		return Ignored
	}

	switch src {
	case SourceHandle:
		if snapshot.Closing || snapshot.Animating {
			a.log.WithFields(map[string]any{"source": src.String(), "closing": snapshot.Closing, "animating": snapshot.Animating}).Debug("handle capture refused")
			return Refused
		}
		a.touch = &touch{source: src}
		a.grant(src)
		return Captured
	default:
		a.touch = &touch{source: src}
		return Pending
	}
}

// Move feeds the cumulative vertical delta since the touch went down.
func (a *Arbiter) Move(dy float64) Outcome {
	if a.touch == nil {
		return Ignored
	}
	if a.session != nil {
		a.apply(dy)
		return Captured
	}
	if a.touch.refused {
		return Refused
	}

	switch a.shouldCapture(dy) {
	case Captured:
		a.grant(a.touch.source)
		a.apply(dy)
		return Captured
	case Refused:
		a.touch.refused = true
		a.log.WithFields(map[string]any{"source": a.touch.source.String(), "dy": dy}).Debug("content capture refused")
		return Refused
	default:
		return Pending
	}
}

// Up ends the touch with the final cumulative delta and release velocity in
// pixels per millisecond.
func (a *Arbiter) Up(dy, velocity float64) Result {
	if a.touch == nil {
		return Result{Outcome: Ignored, Target: snap.Dismiss}
	}
	if a.session == nil {
		refused := a.touch.refused
		a.touch = nil
		if refused {
			return Result{Outcome: Refused, Target: snap.Dismiss}
		}
		return Result{Outcome: Ignored, Target: snap.Dismiss}
	}

	a.apply(dy)
	return a.release(velocity)
}

// Terminate ends the touch because the host took it away. An active drag is
// released with zero velocity so the drawer settles somewhere valid.
func (a *Arbiter) Terminate() Result {
	if a.session == nil {
		a.touch = nil
		return Result{Outcome: Ignored, Target: snap.Dismiss}
	}
	a.log.WithFields(map[string]any{"offset": a.session.Offset}).Debug("drag terminated")
	return a.release(0)
}

// Cancel drops the touch and any active drag without dispatching a target. Hosts
// use it when the drawer closes underneath a gesture.
func (a *Arbiter) Cancel() {
	if a.session != nil {
		a.host.EndDrag()
		a.log.WithFields(map[string]any{"offset": a.session.Offset}).Debug("drag cancelled")
	}
	a.session = nil
	a.touch = nil
}

// TerminationRequest answers another responder asking for the stream. A committed
// drawer drag is never handed over.
func (a *Arbiter) TerminationRequest() bool {
	return a.session == nil
}

func (a *Arbiter) shouldCapture(dy float64) Outcome {
	snapshot := a.host.Snapshot()
	if !snapshot.Visible || snapshot.Closing {
		return Refused
	}
	if math.Abs(dy) <= a.opts.Drag.MinDistance {
		return Pending
	}
	if dy < 0 {
		return Captured
	}
	if a.scroll == nil || a.scroll.ScrollOffset() <= a.opts.Drag.ScrollTopThreshold {
		return Captured
	}
	return Refused
}

// grant measures the drag from the active snap offset, read after BeginDrag so an
// interrupted open has already adopted its target index.
func (a *Arbiter) grant(src Source) {
	position := a.host.BeginDrag()
	snapshot := a.host.Snapshot()
	start := snapshot.Layout.Offset(snapshot.ActiveIndex)
	a.session = &Session{Source: src, StartOffset: start, Offset: start}
	a.log.WithFields(map[string]any{
		"source":   src.String(),
		"index":    snapshot.ActiveIndex,
		"offset":   start,
		"position": position,
	}).Debug("drag granted")
}

func (a *Arbiter) apply(dy float64) {
	topmost := a.host.Snapshot().Layout.Topmost
	offset := Resist(a.session.StartOffset+dy, topmost, a.opts.Drag.Resistance)
	a.session.LastDelta = dy
	a.session.Offset = offset
	a.session.Direction = snap.DirectionOf(dy)
	a.host.DragTo(offset)
}

func (a *Arbiter) release(velocity float64) Result {
	session := *a.session
	session.Velocity = velocity
	snapshot := a.host.Snapshot()

	target := snap.Decide(snap.Input{
		Offset:      session.Offset,
		Speed:       math.Abs(velocity),
		Direction:   session.Direction,
		ActiveIndex: snapshot.ActiveIndex,
		Offsets:     snapshot.Layout.Offsets,
	}, snap.Thresholds{
		FlingVelocity:   a.opts.Drag.FlingVelocity,
		DismissVelocity: a.opts.Drag.DismissVelocity,
		CloseDistance:   a.opts.Drag.CloseDistance,
	})

	if target != snap.Dismiss && !a.opts.Resizable {
		target = snapshot.ActiveIndex
	}
	if target == snap.Dismiss && !a.opts.Dismissible {
		target = 0
	}

	a.session = nil
	a.touch = nil
	a.host.EndDrag()

	a.log.WithFields(map[string]any{
		"offset":    session.Offset,
		"velocity":  velocity,
		"direction": session.Direction.String(),
		"target":    target,
	}).Debug("drag released")

	if target == snap.Dismiss {
		a.host.Dismiss()
	} else {
		a.host.Settle(target, velocity)
	}

	return Result{
		Outcome:   Released,
		Offset:    session.Offset,
		Velocity:  velocity,
		Direction: session.Direction,
		Target:    target,
	}
}

// Resist maps a raw offset above topmost onto a rubber-band curve: every extra
// pixel of drag buys less travel. Offsets at or below topmost pass through.
func Resist(raw, topmost, k float64) float64 {
	if raw >= topmost {
		return raw
	}
	excess := topmost - raw
	return topmost - math.Log10(1+excess*k)*10
}
