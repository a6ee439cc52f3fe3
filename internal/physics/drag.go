package physics

// Drag scales velocity by 1 − coefficient/radius, so smaller bodies lose more speed per step.
// The factor is clamped at 0; the body stops rather than reversing.
func Drag(b *Body, coefficient float64) {
	factor := 1 - coefficient/b.radius
	if factor < 0 {
		factor = 0
	}
	b.Velocity = b.Velocity.Mul(factor)
}

// FlatDrag scales velocity by 1 − fraction regardless of size. Used for bounce and
// collision damping in the sandbox.
func FlatDrag(b *Body, fraction float64) {
	b.Velocity = b.Velocity.Mul(1 - fraction)
}
