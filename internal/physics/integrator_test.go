package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const dt = 1.0 / 60.0

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestIntegrateFromRest(t *testing.T) {
	b := NewBody(mgl64.Vec2{5, 5}, mgl64.Vec2{}, 1)
	Integrate(b, mgl64.Vec2{0, -10}, dt)

	if !near(b.Velocity[1], -10*dt, 1e-12) {
		t.Errorf("velocity.y = %v, want %v", b.Velocity[1], -10*dt)
	}
	if !near(b.Position[1], 5-10*dt*dt/2, 1e-12) {
		t.Errorf("position.y = %v, want %v", b.Position[1], 5-10*dt*dt/2)
	}
	if b.Position[0] != 5 || b.Velocity[0] != 0 {
		t.Errorf("x changed: position=%v velocity=%v", b.Position, b.Velocity)
	}
	if b.PreviousPosition != (mgl64.Vec2{5, 5}) {
		t.Errorf("previous position = %v, want (5,5)", b.PreviousPosition)
	}
}

func TestIntegrateAverageVelocity(t *testing.T) {
	b := NewBody(mgl64.Vec2{0, 0}, mgl64.Vec2{3, 4}, 0.5)
	g := mgl64.Vec2{0, -100}
	Integrate(b, g, dt)

	wantV := mgl64.Vec2{3, 4 - 100*dt}
	wantP := mgl64.Vec2{3 * dt, (4 + wantV[1]) * dt / 2}
	if !b.Velocity.ApproxEqualThreshold(wantV, 1e-12) {
		t.Errorf("velocity = %v, want %v", b.Velocity, wantV)
	}
	if !b.Position.ApproxEqualThreshold(wantP, 1e-12) {
		t.Errorf("position = %v, want %v", b.Position, wantP)
	}
}

func TestIntegrateDeterministic(t *testing.T) {
	run := func() *Body {
		b := NewBody(mgl64.Vec2{1.25, 7.5}, mgl64.Vec2{-3.3, 2.2}, 0.7)
		for i := 0; i < 1000; i++ {
			Integrate(b, mgl64.Vec2{0, -10}, dt)
		}
		return b
	}
	a, b := run(), run()
	if a.Position != b.Position || a.Velocity != b.Velocity {
		t.Errorf("non-deterministic: %v/%v vs %v/%v", a.Position, a.Velocity, b.Position, b.Velocity)
	}
}

func TestUndoRestoresPreviousPosition(t *testing.T) {
	b := NewBody(mgl64.Vec2{2, 3}, mgl64.Vec2{1, 1}, 1)
	Integrate(b, mgl64.Vec2{0, -10}, dt)
	v := b.Velocity
	Undo(b)
	if b.Position != (mgl64.Vec2{2, 3}) {
		t.Errorf("position after undo = %v, want (2,3)", b.Position)
	}
	if b.Velocity != v {
		t.Errorf("undo changed velocity: %v -> %v", v, b.Velocity)
	}
}

func TestMechanicalEnergy(t *testing.T) {
	b := NewBody(mgl64.Vec2{0, 2}, mgl64.Vec2{3, 4}, 1)
	UpdateEnergy(b, mgl64.Vec2{0, -10})
	// 25/2 + 10*2
	if !near(b.Energy, 32.5, 1e-12) {
		t.Errorf("energy = %v, want 32.5", b.Energy)
	}
}

func TestMassIsRadiusCubed(t *testing.T) {
	b := NewBody(mgl64.Vec2{}, mgl64.Vec2{}, 0.5)
	if b.Mass() != 0.125 {
		t.Errorf("mass = %v, want 0.125", b.Mass())
	}
	if b.InverseMass() != 8 {
		t.Errorf("inverse mass = %v, want 8", b.InverseMass())
	}
	sun := NewBodyWithMass(mgl64.Vec2{}, mgl64.Vec2{}, 2, math.Inf(1))
	if sun.InverseMass() != 0 || sun.Movable() {
		t.Errorf("infinite mass body: inverse=%v movable=%v", sun.InverseMass(), sun.Movable())
	}
}
