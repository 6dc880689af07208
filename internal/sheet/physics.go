package sheet

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring describes a damped harmonic oscillator.
type Spring struct {
	Mass      float64
	Stiffness float64
	Damping   float64
}

// Physics configures the sheet's motion.
type Physics struct {
	Spring Spring
	// DefaultVelocity is the entry speed, in height units per second, for
	// controller-driven animations and slow releases. Release flicks faster
	// than half of it snap using their own speed instead.
	DefaultVelocity float64
}

// Default physics values.
const (
	DefaultMass            = 1.0
	DefaultStiffness       = 500.0
	DefaultDamping         = 30.0
	DefaultVelocity        = 1500.0
	DefaultFPS             = 60
	settleDistanceEpsilon  = 1e-4
	settleVelocityEpsilon  = 1e-3
	minNormalizationExtent = 1.0
)

// DefaultPhysics returns mass 1, stiffness 500, damping 30, velocity 1500.
func DefaultPhysics() Physics {
	return Physics{
		Spring: Spring{
			Mass:      DefaultMass,
			Stiffness: DefaultStiffness,
			Damping:   DefaultDamping,
		},
		DefaultVelocity: DefaultVelocity,
	}
}

// Validate checks that the spring is physically valid and the default
// velocity is positive.
func (p Physics) Validate() error {
	s := p.Spring
	if s.Mass <= 0 || s.Stiffness <= 0 || s.Damping < 0 {
		return fmt.Errorf("%w: mass=%g stiffness=%g damping=%g",
			ErrInvalidSpring, s.Mass, s.Stiffness, s.Damping)
	}
	if p.DefaultVelocity <= 0 {
		return fmt.Errorf("%w: got %g", ErrNonPositiveVelocity, p.DefaultVelocity)
	}
	return nil
}

// angularFrequency and dampingRatio convert mass/stiffness/damping into the
// parameters harmonica expects.
func (s Spring) angularFrequency() float64 {
	return math.Sqrt(s.Stiffness / s.Mass)
}

func (s Spring) dampingRatio() float64 {
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.Mass))
}

// simulation drives a normalized position from 0 toward 1. Callers map the
// position onto real heights; one spring then works for any height range.
type simulation struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	frames   int
}

func newSimulation(s Spring, fps int, initialVelocity float64) *simulation {
	return &simulation{
		spring:   harmonica.NewSpring(harmonica.FPS(fps), s.angularFrequency(), s.dampingRatio()),
		velocity: initialVelocity,
	}
}

// step advances one frame and returns the new normalized position.
func (sim *simulation) step() float64 {
	sim.position, sim.velocity = sim.spring.Update(sim.position, sim.velocity, 1)
	sim.frames++
	return sim.position
}

// done reports whether the spring has come to rest near its target.
func (sim *simulation) done() bool {
	return math.Abs(1-sim.position) < settleDistanceEpsilon &&
		math.Abs(sim.velocity) < settleVelocityEpsilon
}
