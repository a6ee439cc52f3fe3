package physics

import "github.com/go-gl/mathgl/mgl64"

// Integrate advances b by one step of dt under constant acceleration g using the average-velocity rule:
//
//	v' = v + g·dt
//	p' = p + (v + v')·dt/2
//
// The pre-step position is saved in PreviousPosition first.
func Integrate(b *Body, g mgl64.Vec2, dt float64) {
	b.PreviousPosition = b.Position
	next := b.Velocity.Add(g.Mul(dt))
	b.Position = b.Position.Add(b.Velocity.Add(next).Mul(dt / 2))
	b.Velocity = next
}

// Undo restores the position saved by the last Integrate. Velocity is left as is.
func Undo(b *Body) {
	b.Position = b.PreviousPosition
}

// MechanicalEnergy is the per-unit-mass kinetic plus potential energy of b in the field g:
// |v|²/2 − g·p.
func MechanicalEnergy(b *Body, g mgl64.Vec2) float64 {
	return b.Velocity.Dot(b.Velocity)/2 - g.Dot(b.Position)
}

// UpdateEnergy stores MechanicalEnergy in b.Energy.
func UpdateEnergy(b *Body, g mgl64.Vec2) {
	b.Energy = MechanicalEnergy(b, g)
}
