package physics

// OrbitConstraint holds a planet at exactly Radius from the sun.
type OrbitConstraint struct {
	Radius   float64
	TimeStep float64
}

// Solve moves planet and sun so that their distance is Radius, sharing the correction by inverse
// mass, then re-derives planet velocity from its displacement since PreviousPosition.
// An immovable sun takes none of the correction. Returns false (and does nothing) when the
// two centers coincide or neither body can move.
func (o OrbitConstraint) Solve(planet, sun *Body) bool {
	w1 := planet.InverseMass()
	w2 := sun.InverseMass()
	if w1+w2 == 0 {
		return false
	}
	delta := planet.Position.Sub(sun.Position)
	dist := delta.Len()
	if dist == 0 {
		return false
	}
	excess := delta.Mul((dist - o.Radius) / dist)

	planet.Position = planet.Position.Sub(excess.Mul(w1 / (w1 + w2)))
	sun.Position = sun.Position.Add(excess.Mul(w2 / (w1 + w2)))

	planet.Velocity = planet.Position.Sub(planet.PreviousPosition).Mul(1 / o.TimeStep)
	return true
}

// Seat projects planet onto the ring around the sun's current position without moving the
// sun or changing any velocity.
func (o OrbitConstraint) Seat(planet, sun *Body) bool {
	delta := planet.Position.Sub(sun.Position)
	dist := delta.Len()
	if dist == 0 {
		return false
	}
	planet.Position = sun.Position.Add(delta.Mul(o.Radius / dist))
	return true
}
