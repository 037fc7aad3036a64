package animation

import "math"

// SpringDescription describes the physical properties of a damped spring.
type SpringDescription struct {
	// Mass of the attached object. Values <= 0 are treated as 1.
	Mass float64
	// Stiffness is the spring constant.
	Stiffness float64
	// Damping is the viscous damping coefficient.
	Damping float64
}

// DefaultSpring is slightly underdamped and settles in roughly half a second.
// It matches a tension of 40 and friction of 7 in origami spring terms.
func DefaultSpring() SpringDescription {
	return SpringDescription{Mass: 1, Stiffness: 230, Damping: 22}
}

// CriticallyDampedSpring returns a spring with the given stiffness that
// reaches its target as fast as possible without overshooting.
func CriticallyDampedSpring(stiffness float64) SpringDescription {
	return SpringDescription{Mass: 1, Stiffness: stiffness, Damping: 2 * math.Sqrt(stiffness)}
}

// BouncySpring returns a visibly underdamped spring.
func BouncySpring() SpringDescription {
	return SpringDescription{Mass: 1, Stiffness: 180, Damping: 12}
}

const (
	// maxSpringStep bounds a single integration step for stability.
	maxSpringStep = 1.0 / 240.0

	defaultPositionTolerance = 1e-3
	defaultVelocityTolerance = 1e-2
)

// SpringSimulation integrates a damped spring toward a target.
//
// The state is explicit (position, velocity, target, elapsed) so a
// simulation can be stepped by any scheduler and replayed exactly.
type SpringSimulation struct {
	spring   SpringDescription
	position float64
	velocity float64
	target   float64
	elapsed  float64
	done     bool

	// PositionTolerance is the distance from target considered at rest.
	PositionTolerance float64
	// VelocityTolerance is the speed considered at rest.
	VelocityTolerance float64
}

// NewSpringSimulation starts a simulation at position with the given initial
// velocity, pulling toward target.
func NewSpringSimulation(spring SpringDescription, position, velocity, target float64) *SpringSimulation {
	if spring.Mass <= 0 {
		spring.Mass = 1
	}
	s := &SpringSimulation{
		spring:            spring,
		position:          position,
		velocity:          velocity,
		target:            target,
		PositionTolerance: defaultPositionTolerance,
		VelocityTolerance: defaultVelocityTolerance,
	}
	s.settleIfAtRest()
	return s
}

// Step advances the simulation by dt seconds and reports whether it has
// come to rest at the target.
func (s *SpringSimulation) Step(dt float64) bool {
	if s.done || dt <= 0 {
		return s.done
	}
	s.elapsed += dt
	for dt > 0 {
		h := min(dt, maxSpringStep)
		dt -= h
		// Semi-implicit Euler: update velocity first, then position.
		accel := (-s.spring.Stiffness*(s.position-s.target) - s.spring.Damping*s.velocity) / s.spring.Mass
		s.velocity += accel * h
		s.position += s.velocity * h
	}
	s.settleIfAtRest()
	return s.done
}

func (s *SpringSimulation) settleIfAtRest() {
	if math.Abs(s.position-s.target) < s.PositionTolerance && math.Abs(s.velocity) < s.VelocityTolerance {
		s.position = s.target
		s.velocity = 0
		s.done = true
	}
}

// Position returns the current position.
func (s *SpringSimulation) Position() float64 {
	return s.position
}

// Velocity returns the current velocity in units per second.
func (s *SpringSimulation) Velocity() float64 {
	return s.velocity
}

// Target returns the rest position.
func (s *SpringSimulation) Target() float64 {
	return s.target
}

// Elapsed returns the simulated time in seconds.
func (s *SpringSimulation) Elapsed() float64 {
	return s.elapsed
}

// IsDone reports whether the spring has settled at its target.
func (s *SpringSimulation) IsDone() bool {
	return s.done
}
