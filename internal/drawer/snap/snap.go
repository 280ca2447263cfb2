// Package snap decides where a released drawer comes to rest.
package snap

import (
	"math"
)

// Dismiss is the virtual snap index of a fully dismissed drawer.
const Dismiss = -1

// Direction is the sign of a drag's total vertical delta.
type Direction int

const (
	DirectionNone Direction = iota
	// DirectionUp expands the sheet (offset decreasing).
	DirectionUp
	// DirectionDown collapses the sheet (offset increasing).
	DirectionDown
)

// DirectionOf returns the direction of a cumulative delta.
func DirectionOf(delta float64) Direction {
	switch {
	case delta < 0:
		return DirectionUp
	case delta > 0:
		return DirectionDown
	default:
		return DirectionNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// Thresholds are the tunables of the decision. Velocities are pixels per
// millisecond, distances pixels.
type Thresholds struct {
	FlingVelocity   float64
	DismissVelocity float64
	CloseDistance   float64
}

// Input describes a release.
type Input struct {
	// Offset is where the drawer's top edge was released.
	Offset float64
	// Speed is the absolute release velocity.
	Speed       float64
	Direction   Direction
	ActiveIndex int
	// Offsets are the resolved snap offsets, index 0 being the shallowest.
	Offsets []float64
}

// Decide returns the snap index to settle at, or Dismiss. Rules are evaluated in
// order and the first match wins, so velocity beats distance.
//
// Only index 1 may fling straight to index 0; a fling from higher up collapses one
// level at a time.
func Decide(in Input, th Thresholds) int {
	last := len(in.Offsets) - 1
	if last < 0 {
		return Dismiss
	}
	active := in.ActiveIndex
	down := in.Direction == DirectionDown
	up := in.Direction == DirectionUp

	switch {
	case down && active == last && last > 0:
		return active - 1
	case down && active == 1 && in.Speed > th.FlingVelocity:
		return 0
	case down && active == 0 && in.Speed > th.DismissVelocity:
		return Dismiss
	case in.Offset > in.Offsets[0]+th.CloseDistance:
		return Dismiss
	case up && in.Speed > th.FlingVelocity:
		if active >= last {
			return last
		}
		return active + 1
	}

	return nearest(in.Offset, in.Offsets)
}

func nearest(offset float64, offsets []float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i, o := range offsets {
		if d := math.Abs(o - offset); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
