package physics

// CollisionResolver handles frictionless elastic impulses between overlapping circles,
// followed by symmetric positional separation and collision damping.
type CollisionResolver struct {
	// Damping is the collision drag applied to both bodies after resolution.
	Damping float64
	// SizeScaled selects Drag (1 − Damping/radius) over FlatDrag (1 − Damping).
	SizeScaled bool
	// Replay, when set, is run on the first body of each colliding pair after the impulse and
	// before separation: it should undo that body's integration for the current step and
	// re-simulate it with the new velocity. The second body never gets this treatment.
	Replay func(b *Body)
}

// Overlapping reports whether the circles of a and b interpenetrate.
func Overlapping(a, b *Body) bool {
	d := a.Position.Sub(b.Position)
	sum := a.radius + b.radius
	return d.Dot(d) < sum*sum
}

// Resolve resolves a against b if they overlap and reports whether it did.
// Pairs with coincident centers have no normal and are skipped.
func (c CollisionResolver) Resolve(a, b *Body) bool {
	if !Overlapping(a, b) {
		return false
	}
	delta := b.Position.Sub(a.Position)
	if delta.Len() == 0 {
		return false
	}
	n := delta.Normalize()

	v1 := a.Velocity.Dot(n)
	v2 := b.Velocity.Dot(n)
	p := 2 * (v1 - v2) / (a.mass + b.mass)
	a.Velocity = a.Velocity.Sub(n.Mul(p * b.mass))
	b.Velocity = b.Velocity.Add(n.Mul(p * a.mass))

	if c.Replay != nil {
		c.Replay(a)
	}

	separate(a, b)

	if c.SizeScaled {
		Drag(a, c.Damping)
		Drag(b, c.Damping)
	} else {
		FlatDrag(a, c.Damping)
		FlatDrag(b, c.Damping)
	}
	return true
}

// separate pushes a and b apart along the line of centers by half the penetration each.
func separate(a, b *Body) {
	d := a.Position.Sub(b.Position)
	dist := d.Len()
	overlap := a.radius + b.radius - dist
	if overlap <= 0 || dist == 0 {
		return
	}
	correction := d.Mul(overlap / 2 / dist)
	a.Position = a.Position.Add(correction)
	b.Position = b.Position.Sub(correction)
}

// ResolvePairs runs c over every unordered pair (i < j) in slice order and returns the number of collisions.
func (c CollisionResolver) ResolvePairs(bodies []*Body) int {
	n := 0
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if c.Resolve(bodies[i], bodies[j]) {
				n++
			}
		}
	}
	return n
}
