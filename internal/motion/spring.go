package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// SpringParams configures a Spring. Tension and Friction follow the origami
// convention and are converted to stiffness and damping for a unit mass.
type SpringParams struct {
	Tension  float64
	Friction float64

	// RestDisplacement and RestSpeed bound the distance to target (units) and
	// speed (units per second) under which the spring counts as settled.
	RestDisplacement float64
	RestSpeed        float64

	// Step is the fixed integration step.
	Step time.Duration
}

// Stiffness returns the spring constant for Tension.
func (p SpringParams) Stiffness() float64 {
	return (p.Tension-30)*3.62 + 194
}

// Damping returns the damping coefficient for Friction.
func (p SpringParams) Damping() float64 {
	return (p.Friction-8)*3 + 25
}

// Spring is a damped harmonic animation towards a target.
type Spring struct {
	to       float64
	initial  float64
	params   SpringParams
	spring   harmonica.Spring
	step     float64
	pos, vel float64
	pending  float64
}

// NewSpring builds a spring towards to with an initial velocity in units per second.
func NewSpring(to, initialVelocity float64, p SpringParams) *Spring {
	step := p.Step.Seconds()
	if step <= 0 {
		step = harmonica.FPS(120)
	}

	k := math.Max(p.Stiffness(), 1)
	c := math.Max(p.Damping(), 0.01)
	omega := math.Sqrt(k)

	return &Spring{
		to:      to,
		initial: initialVelocity,
		params:  p,
		spring:  harmonica.NewSpring(step, omega, c/(2*omega)),
		step:    step,
	}
}

// Target implements Animation.
func (s *Spring) Target() float64 { return s.to }

func (s *Spring) start(from, _ float64) {
	s.pos = from
	s.vel = s.initial
	s.pending = 0
}

func (s *Spring) retarget(to float64) { s.to = to }

func (s *Spring) advance(dt float64) (float64, float64, bool) {
	if s.atRest() {
		return s.to, 0, true
	}

	s.pending += dt
	for s.pending >= s.step {
		s.pending -= s.step
		s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.to)
		if s.atRest() {
			return s.to, 0, true
		}
	}
	return s.pos, s.vel, false
}

func (s *Spring) atRest() bool {
	return math.Abs(s.pos-s.to) <= s.params.RestDisplacement && math.Abs(s.vel) <= s.params.RestSpeed
}
