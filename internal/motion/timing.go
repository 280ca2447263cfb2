package motion

import (
	"math"
	"time"
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInOutCubic accelerates through the first half and decelerates through the second.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Timing is a fixed-duration curve, optionally delayed.
type Timing struct {
	from, to float64
	duration float64
	delay    float64
	elapsed  float64
	easing   Easing
}

// NewTiming builds a timing curve towards to. A nil easing means EaseInOutCubic.
func NewTiming(to float64, duration, delay time.Duration, easing Easing) *Timing {
	if easing == nil {
		easing = EaseInOutCubic
	}
	return &Timing{
		to:       to,
		duration: duration.Seconds(),
		delay:    math.Max(delay.Seconds(), 0),
		easing:   easing,
	}
}

// Target implements Animation.
func (t *Timing) Target() float64 { return t.to }

func (t *Timing) start(from, _ float64) {
	t.from = from
	t.elapsed = 0
}

func (t *Timing) retarget(to float64) { t.to = to }

func (t *Timing) advance(dt float64) (float64, float64, bool) {
	t.elapsed += dt
	if t.elapsed < t.delay {
		return t.from, 0, false
	}

	progress := 1.0
	if t.duration > 0 {
		progress = math.Min((t.elapsed-t.delay)/t.duration, 1)
	}
	if progress >= 1 {
		return t.to, 0, true
	}
	return t.from + (t.to-t.from)*t.easing(progress), 0, false
}
