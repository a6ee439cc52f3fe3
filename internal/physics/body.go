package physics

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Body is a point-mass circle in simulation units (not pixels).
// Radius and mass are fixed at construction; everything else is mutated by the World that owns it.
type Body struct {
	Position mgl64.Vec2
	// PreviousPosition is the position before the current step's integration.
	PreviousPosition mgl64.Vec2
	Velocity         mgl64.Vec2
	Color            color.RGBA
	// Energy is mechanical energy relative to the gravity field, refreshed every step.
	Energy float64

	radius float64
	mass   float64
}

// NewBody returns a body whose mass is radius³.
func NewBody(position, velocity mgl64.Vec2, radius float64) *Body {
	return NewBodyWithMass(position, velocity, radius, radius*radius*radius)
}

// NewBodyWithMass returns a body with an explicit mass. Pass math.Inf(1) for an immovable body.
func NewBodyWithMass(position, velocity mgl64.Vec2, radius, mass float64) *Body {
	return &Body{
		Position:         position,
		PreviousPosition: position,
		Velocity:         velocity,
		radius:           radius,
		mass:             mass,
	}
}

func (b *Body) Radius() float64 { return b.radius }

func (b *Body) Mass() float64 { return b.mass }

// InverseMass is 0 for an infinite mass.
func (b *Body) InverseMass() float64 {
	if math.IsInf(b.mass, 1) {
		return 0
	}
	return 1 / b.mass
}

// Movable reports whether positional corrections can displace the body.
func (b *Body) Movable() bool {
	return b.InverseMass() > 0
}

// KineticEnergy is ½·m·|v|². It is 0 for an immovable body at rest and +Inf if an immovable body moves.
func (b *Body) KineticEnergy() float64 {
	v2 := b.Velocity.Dot(b.Velocity)
	if v2 == 0 {
		return 0
	}
	return 0.5 * b.mass * v2
}
