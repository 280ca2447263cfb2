package gesture

import (
	"time"
)

// VelocityTracker estimates release velocity from timestamped positions, for hosts
// that report positions but not velocities.
type VelocityTracker struct {
	window  time.Duration
	samples []sample
}

type sample struct {
	at time.Time
	y  float64
}

// NewVelocityTracker keeps samples from the trailing window.
func NewVelocityTracker(window time.Duration) *VelocityTracker {
	if window <= 0 {
		window = 100 * time.Millisecond
	}
	return &VelocityTracker{window: window}
}

// Reset forgets all samples.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}

// Add records position y at time at. Samples must arrive in time order.
func (v *VelocityTracker) Add(at time.Time, y float64) {
	v.samples = append(v.samples, sample{at: at, y: y})
	cutoff := at.Add(-v.window)
	drop := 0
	for drop < len(v.samples)-2 && v.samples[drop].at.Before(cutoff) {
		drop++
	}
	v.samples = v.samples[drop:]
}

// Velocity returns the average velocity across the window in pixels per millisecond.
func (v *VelocityTracker) Velocity() float64 {
	if len(v.samples) < 2 {
		return 0
	}
	first := v.samples[0]
	last := v.samples[len(v.samples)-1]
	elapsed := last.at.Sub(first.at)
	if elapsed <= 0 {
		return 0
	}
	return (last.y - first.y) / (float64(elapsed) / float64(time.Millisecond))
}
