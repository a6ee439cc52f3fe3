package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Contact reports which boundaries a body touched during Resolve.
type Contact uint8

const (
	ContactRest Contact = 1 << iota
	ContactGround
	ContactLeftWall
	ContactRightWall
)

// Has reports whether c includes flag.
func (c Contact) Has(flag Contact) bool {
	return c&flag != 0
}

// Boundary keeps bodies inside [0, Width] on x and above the ground at y = 0. There is no ceiling.
type Boundary struct {
	Width   float64
	Gravity mgl64.Vec2
	// BounceDrag is the flat fraction of velocity lost on every ground or wall contact.
	BounceDrag float64
	// A body within RestBand·radius of the ground moving vertically slower than RestSpeed is put at rest.
	RestBand  float64
	RestSpeed float64
}

// Resolve applies ground then wall handling to b. It expects b.Energy to hold the energy
// computed after this step's integration.
func (r Boundary) Resolve(b *Body) Contact {
	var c Contact
	radius := b.radius

	switch {
	case math.Abs(b.Position[1]) < radius*r.RestBand && math.Abs(b.Velocity[1]) < r.RestSpeed:
		b.Position[1] = radius
		b.Velocity[1] = 0
		FlatDrag(b, r.BounceDrag)
		c |= ContactRest
	case b.Position[1] <= radius:
		b.Position[1] = radius
		// Energy is conserved through the bounce: whatever is not horizontal kinetic
		// energy at ground height goes into the rebound.
		vy2 := 2*(b.Energy+r.Gravity[1]*b.Position[1]) - b.Velocity[0]*b.Velocity[0]
		if vy2 < 0 {
			vy2 = 0
		}
		b.Velocity[1] = math.Sqrt(vy2)
		FlatDrag(b, r.BounceDrag)
		c |= ContactGround
	}

	switch {
	case b.Position[0] <= radius:
		FlatDrag(b, r.BounceDrag)
		b.Position[0] = 2*radius - b.Position[0]
		b.Velocity[0] = -b.Velocity[0]
		c |= ContactLeftWall
	case b.Position[0] >= r.Width-radius:
		FlatDrag(b, r.BounceDrag)
		b.Position[0] = 2*(r.Width-radius) - b.Position[0]
		b.Velocity[0] = -b.Velocity[0]
		c |= ContactRightWall
	}
	return c
}

// Contain clamps b's position into the region without touching velocity. It runs after pairwise
// separation, which can push a body past the ground or a wall.
func (r Boundary) Contain(b *Body) {
	radius := b.radius
	if b.Position[1] < radius {
		b.Position[1] = radius
	}
	if b.Position[0] < radius {
		b.Position[0] = radius
	} else if b.Position[0] > r.Width-radius {
		b.Position[0] = r.Width - radius
	}
}
