package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestHeadOnEqualMassSwapsVelocities(t *testing.T) {
	a := NewBody(mgl64.Vec2{0, 5}, mgl64.Vec2{2, 0}, 1)
	b := NewBody(mgl64.Vec2{1.9, 5}, mgl64.Vec2{-2, 0}, 1)
	c := CollisionResolver{Damping: 0.01}

	if !c.Resolve(a, b) {
		t.Fatal("expected a collision")
	}
	if !near(a.Velocity[0], -2*0.99, 1e-12) || !near(b.Velocity[0], 2*0.99, 1e-12) {
		t.Errorf("velocities = %v, %v; want swapped within collision drag", a.Velocity, b.Velocity)
	}
	if a.Velocity[1] != 0 || b.Velocity[1] != 0 {
		t.Errorf("tangential velocity appeared: %v, %v", a.Velocity, b.Velocity)
	}
	if d := b.Position.Sub(a.Position).Len(); d < 2-1e-9 {
		t.Errorf("bodies still overlap: distance %v", d)
	}
	// Separation is symmetric regardless of mass.
	if !near(a.Position[0], -0.05, 1e-12) || !near(b.Position[0], 1.95, 1e-12) {
		t.Errorf("positions = %v, %v; want -0.05 and 1.95", a.Position, b.Position)
	}
}

func TestCollisionConservesNormalMomentum(t *testing.T) {
	a := NewBody(mgl64.Vec2{0, 0}, mgl64.Vec2{3, 1}, 1)
	b := NewBody(mgl64.Vec2{2.5, 0.5}, mgl64.Vec2{-1, 2}, 2)
	before := a.Velocity.Mul(a.Mass()).Add(b.Velocity.Mul(b.Mass()))

	c := CollisionResolver{}
	if !c.Resolve(a, b) {
		t.Fatal("expected a collision")
	}
	after := a.Velocity.Mul(a.Mass()).Add(b.Velocity.Mul(b.Mass()))
	if !after.ApproxEqualThreshold(before, 1e-9) {
		t.Errorf("momentum %v -> %v", before, after)
	}

	// Heavier body changes velocity less.
	dvA := a.Velocity.Sub(mgl64.Vec2{3, 1}).Len()
	dvB := b.Velocity.Sub(mgl64.Vec2{-1, 2}).Len()
	if dvB >= dvA {
		t.Errorf("heavy body dv=%v, light body dv=%v", dvB, dvA)
	}
}

func TestCollisionTangentialUntouched(t *testing.T) {
	a := NewBody(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 3}, 1)
	b := NewBody(mgl64.Vec2{1.5, 0}, mgl64.Vec2{-1, -2}, 1)
	c := CollisionResolver{}
	c.Resolve(a, b)
	if a.Velocity[1] != 3 || b.Velocity[1] != -2 {
		t.Errorf("tangential components changed: %v, %v", a.Velocity, b.Velocity)
	}
}

func TestCollisionSkipsSeparatedAndCoincident(t *testing.T) {
	tests := []struct {
		name string
		a, b mgl64.Vec2
	}{
		{"apart", mgl64.Vec2{0, 0}, mgl64.Vec2{3, 0}},
		{"exactly touching", mgl64.Vec2{0, 0}, mgl64.Vec2{2, 0}},
		{"coincident", mgl64.Vec2{4, 4}, mgl64.Vec2{4, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewBody(tt.a, mgl64.Vec2{1, 0}, 1)
			b := NewBody(tt.b, mgl64.Vec2{-1, 0}, 1)
			c := CollisionResolver{Damping: 0.01}
			if c.Resolve(a, b) {
				t.Fatal("unexpected collision")
			}
			if a.Position != tt.a || b.Position != tt.b || a.Velocity[0] != 1 || b.Velocity[0] != -1 {
				t.Errorf("bodies mutated: %v %v %v %v", a.Position, a.Velocity, b.Position, b.Velocity)
			}
		})
	}
}

func TestReplayRunsOnFirstBodyOnly(t *testing.T) {
	a := NewBody(mgl64.Vec2{0, 5}, mgl64.Vec2{2, 0}, 1)
	b := NewBody(mgl64.Vec2{1.5, 5}, mgl64.Vec2{-2, 0}, 1)
	var replayed []*Body
	c := CollisionResolver{Replay: func(x *Body) {
		if x.Velocity[0] >= 0 {
			t.Errorf("replay saw pre-impulse velocity %v", x.Velocity)
		}
		replayed = append(replayed, x)
	}}
	c.Resolve(a, b)
	if len(replayed) != 1 || replayed[0] != a {
		t.Errorf("replayed = %v, want only the first body", replayed)
	}
}

func TestSizeScaledCollisionDrag(t *testing.T) {
	a := NewBody(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, 0.5)
	b := NewBody(mgl64.Vec2{0.9, 0}, mgl64.Vec2{-1, 0}, 0.5)
	c := CollisionResolver{Damping: 0.01, SizeScaled: true}
	c.Resolve(a, b)
	want := 1 - 0.01/0.5
	if !near(a.Velocity[0], -want, 1e-12) || !near(b.Velocity[0], want, 1e-12) {
		t.Errorf("velocities = %v, %v; want ±%v", a.Velocity, b.Velocity, want)
	}
}

func TestResolvePairsCountsCollisions(t *testing.T) {
	bodies := []*Body{
		NewBody(mgl64.Vec2{0, 0}, mgl64.Vec2{}, 1),
		NewBody(mgl64.Vec2{1.5, 0}, mgl64.Vec2{}, 1),
		NewBody(mgl64.Vec2{10, 10}, mgl64.Vec2{}, 1),
	}
	if n := (CollisionResolver{}).ResolvePairs(bodies); n != 1 {
		t.Errorf("collisions = %d, want 1", n)
	}
}
