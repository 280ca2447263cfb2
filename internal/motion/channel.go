// Package motion implements animatable scalar channels.
//
// A Channel is always in exactly one phase: Idle, Animating (an Animation owns the
// value) or Dragging (a gesture owns the value). Taking ownership always goes
// through an explicit stop of the previous owner, so two drivers never write the
// same channel in the same frame.
package motion

import (
	"time"
)

// Phase is the ownership state of a Channel.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAnimating
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAnimating:
		return "animating"
	case PhaseDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Animation drives a channel value over time. Implementations are Spring and Timing.
type Animation interface {
	// Target is the value the animation comes to rest at.
	Target() float64

	start(from, velocity float64)
	advance(dt float64) (value, velocity float64, done bool)
	retarget(to float64)
}

// Channel is a continuous scalar value with explicit ownership.
// It is not safe for concurrent use.
type Channel struct {
	name     string
	value    float64
	velocity float64
	phase    Phase
	anim     Animation
	done     func(finished bool)
}

// NewChannel returns an idle channel holding value.
func NewChannel(name string, value float64) *Channel {
	return &Channel{name: name, value: value}
}

// Name returns the channel name.
func (c *Channel) Name() string { return c.name }

// Value returns the current value.
func (c *Channel) Value() float64 { return c.value }

// Velocity returns the current velocity in units per second.
func (c *Channel) Velocity() float64 { return c.velocity }

// Phase returns the current ownership phase.
func (c *Channel) Phase() Phase { return c.phase }

// Target returns the goal of the in-flight animation.
func (c *Channel) Target() (float64, bool) {
	if c.phase != PhaseAnimating || c.anim == nil {
		return 0, false
	}
	return c.anim.Target(), true
}

// Animate stops whatever currently owns the channel and starts a. done is invoked
// exactly once: with true when a comes to rest, with false when it is stopped.
func (c *Channel) Animate(a Animation, done func(finished bool)) {
	c.Stop()
	c.phase = PhaseAnimating
	c.anim = a
	c.done = done
	a.start(c.value, c.velocity)
}

// Stop cancels the in-flight animation, leaving the value where it is. It reports
// whether an animation was cancelled.
func (c *Channel) Stop() bool {
	if c.phase != PhaseAnimating {
		return false
	}
	cb := c.done
	c.anim = nil
	c.done = nil
	c.phase = PhaseIdle
	c.velocity = 0
	if cb != nil {
		cb(false)
	}
	return true
}

// Set stops any animation and jumps to v. A drag in progress keeps ownership.
func (c *Channel) Set(v float64) {
	c.Stop()
	c.value = v
	c.velocity = 0
}

// Grab hands the channel to a gesture.
func (c *Channel) Grab() {
	c.Stop()
	c.phase = PhaseDragging
	c.velocity = 0
}

// DragTo writes v while the channel is grabbed. Writes from anyone else are dropped.
func (c *Channel) DragTo(v float64) bool {
	if c.phase != PhaseDragging {
		return false
	}
	c.value = v
	return true
}

// Release ends a gesture's ownership.
func (c *Channel) Release() {
	if c.phase == PhaseDragging {
		c.phase = PhaseIdle
	}
}

// Retarget moves the goal of the in-flight animation without restarting it.
func (c *Channel) Retarget(to float64) bool {
	if c.phase != PhaseAnimating || c.anim == nil {
		return false
	}
	c.anim.retarget(to)
	return true
}

// Step advances the in-flight animation by dt. Completion callbacks run after the
// channel is back to Idle so they may start the next animation.
func (c *Channel) Step(dt time.Duration) {
	if c.phase != PhaseAnimating || c.anim == nil || dt <= 0 {
		return
	}

	value, velocity, done := c.anim.advance(dt.Seconds())
	c.value = value
	c.velocity = velocity
	if !done {
		return
	}

	cb := c.done
	c.anim = nil
	c.done = nil
	c.phase = PhaseIdle
	c.velocity = 0
	if cb != nil {
		cb(true)
	}
}
