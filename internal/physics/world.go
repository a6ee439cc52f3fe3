package physics

import (
	"image/color"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// World owns a fixed set of bodies and advances them one tick per Step.
// Bodies returns the owned slice; callers read it between steps and must not retain it across a reset.
type World interface {
	Step()
	Bodies() []*Body
	// Collisions is the number of pairs resolved during the last Step.
	Collisions() int
}

// SandboxParams configures the bouncing-balls world.
type SandboxParams struct {
	Bounds        Bounds
	Gravity       mgl64.Vec2
	TimeStep      float64
	Drag          float64
	BounceDrag    float64
	CollisionDrag float64
	RestBand      float64
	RestSpeed     float64
}

// Sandbox is the bouncing-balls world: uniform gravity, a ground and two walls.
type Sandbox struct {
	params     SandboxParams
	bodies     []*Body
	boundary   Boundary
	collider   CollisionResolver
	collisions int
}

// NewSandbox takes ownership of bodies and computes their initial energy.
func NewSandbox(p SandboxParams, bodies []*Body) *Sandbox {
	s := &Sandbox{
		params: p,
		bodies: bodies,
		boundary: Boundary{
			Width:      p.Bounds.Width,
			Gravity:    p.Gravity,
			BounceDrag: p.BounceDrag,
			RestBand:   p.RestBand,
			RestSpeed:  p.RestSpeed,
		},
	}
	s.collider = CollisionResolver{Damping: p.CollisionDrag, Replay: s.replay}
	for _, b := range bodies {
		UpdateEnergy(b, p.Gravity)
	}
	return s
}

// RandomSandbox spawns n balls from rng.
func RandomSandbox(p SandboxParams, n int, spawn BallSpawn, rng *rand.Rand) *Sandbox {
	bodies := make([]*Body, n)
	for i := range bodies {
		bodies[i] = RandomBall(rng, p.Bounds, spawn)
	}
	return NewSandbox(p, bodies)
}

func (s *Sandbox) Bodies() []*Body { return s.bodies }

func (s *Sandbox) Collisions() int { return s.collisions }

func (s *Sandbox) Params() SandboxParams { return s.params }

// Step runs integrate-all, boundary-all, drag-all, every unordered pair in slice order, and
// finally clamps positions back into the region.
func (s *Sandbox) Step() {
	for _, b := range s.bodies {
		Integrate(b, s.params.Gravity, s.params.TimeStep)
		UpdateEnergy(b, s.params.Gravity)
	}
	for _, b := range s.bodies {
		s.boundary.Resolve(b)
	}
	for _, b := range s.bodies {
		Drag(b, s.params.Drag)
	}
	s.collisions = s.collider.ResolvePairs(s.bodies)
	for _, b := range s.bodies {
		s.boundary.Contain(b)
	}
}

// replay re-simulates the current tick for b from its pre-step position with its post-impulse velocity.
func (s *Sandbox) replay(b *Body) {
	Undo(b)
	Integrate(b, s.params.Gravity, s.params.TimeStep)
	UpdateEnergy(b, s.params.Gravity)
	s.boundary.Resolve(b)
	Drag(b, s.params.Drag)
}

// Impulse adds dv to the velocity of every body.
func (s *Sandbox) Impulse(dv mgl64.Vec2) {
	for _, b := range s.bodies {
		b.Velocity = b.Velocity.Add(dv)
	}
}

// SystemParams configures the orbiting-planets world.
type SystemParams struct {
	Bounds        Bounds
	Gravity       mgl64.Vec2
	TimeStep      float64
	Drag          float64
	CollisionDrag float64
	OrbitRadius   float64
}

// System is the orbiting-planets world: every planet is held on a ring around the sun.
type System struct {
	params     SystemParams
	sun        *Body
	planets    []*Body
	bodies     []*Body
	orbit      OrbitConstraint
	collider   CollisionResolver
	collisions int
}

// NewSystem takes ownership of sun and planets.
func NewSystem(p SystemParams, sun *Body, planets []*Body) *System {
	s := &System{
		params:   p,
		sun:      sun,
		planets:  planets,
		orbit:    OrbitConstraint{Radius: p.OrbitRadius, TimeStep: p.TimeStep},
		collider: CollisionResolver{Damping: p.CollisionDrag, SizeScaled: true},
	}
	s.rebuildBodies()
	return s
}

// SunColor is the sun's fill.
var SunColor = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}

// RandomSystem puts a sun of sunRadius and sunMass at the center of the region and n planets on its ring.
func RandomSystem(p SystemParams, n int, sunRadius, sunMass, minRadius, maxRadius float64, rng *rand.Rand) *System {
	sun := NewBodyWithMass(p.Bounds.Center(), mgl64.Vec2{}, sunRadius, sunMass)
	sun.Color = SunColor
	planets := make([]*Body, n)
	for i := range planets {
		planets[i] = RandomPlanet(rng, p.Bounds, sun.Position, p.OrbitRadius, minRadius, maxRadius)
	}
	return NewSystem(p, sun, planets)
}

func (s *System) rebuildBodies() {
	s.bodies = append(s.bodies[:0], s.sun)
	s.bodies = append(s.bodies, s.planets...)
}

// Bodies returns the sun followed by the planets.
func (s *System) Bodies() []*Body { return s.bodies }

func (s *System) Sun() *Body { return s.sun }

func (s *System) Planets() []*Body { return s.planets }

func (s *System) OrbitRadius() float64 { return s.params.OrbitRadius }

func (s *System) Collisions() int { return s.collisions }

func (s *System) Params() SystemParams { return s.params }

// SetSunMass replaces the sun with a body of the given mass at the same place.
func (s *System) SetSunMass(mass float64) {
	old := s.sun
	sun := NewBodyWithMass(old.Position, old.Velocity, old.radius, mass)
	sun.PreviousPosition = old.PreviousPosition
	sun.Color = old.Color
	s.sun = sun
	s.rebuildBodies()
}

// Step integrates every planet without constraint, projects it back onto the ring (moving a
// finite-mass sun too), applies drag, resolves planet pairs, and finally re-seats planets the
// collisions pushed off the ring.
func (s *System) Step() {
	for _, p := range s.planets {
		Integrate(p, s.params.Gravity, s.params.TimeStep)
	}
	for _, p := range s.planets {
		s.orbit.Solve(p, s.sun)
	}
	for _, p := range s.planets {
		Drag(p, s.params.Drag)
	}
	s.collisions = s.collider.ResolvePairs(s.planets)
	for _, p := range s.planets {
		s.orbit.Seat(p, s.sun)
	}
}
