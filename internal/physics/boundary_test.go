package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func testBoundary() Boundary {
	return Boundary{
		Width:      20,
		Gravity:    mgl64.Vec2{0, -10},
		BounceDrag: 0.05,
		RestBand:   1.1,
		RestSpeed:  0.1,
	}
}

func TestDragNeverIncreasesSpeed(t *testing.T) {
	tests := []struct {
		name        string
		radius      float64
		coefficient float64
		velocity    mgl64.Vec2
	}{
		{"small body", 0.2, 0.005, mgl64.Vec2{10, -3}},
		{"large body", 1.0, 0.005, mgl64.Vec2{-4, 4}},
		{"collision drag", 0.3, 0.01, mgl64.Vec2{0, 12}},
		{"coefficient above radius", 0.1, 0.5, mgl64.Vec2{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(mgl64.Vec2{}, tt.velocity, tt.radius)
			before := b.Velocity.Len()
			Drag(b, tt.coefficient)
			after := b.Velocity.Len()
			if after >= before {
				t.Errorf("|v| went from %v to %v", before, after)
			}
			if b.Velocity.Dot(tt.velocity) < 0 {
				t.Errorf("drag reversed velocity: %v -> %v", tt.velocity, b.Velocity)
			}
		})
	}
}

func TestDragSizeDependence(t *testing.T) {
	small := NewBody(mgl64.Vec2{}, mgl64.Vec2{10, 0}, 0.2)
	large := NewBody(mgl64.Vec2{}, mgl64.Vec2{10, 0}, 1.0)
	Drag(small, 0.005)
	Drag(large, 0.005)
	if small.Velocity[0] >= large.Velocity[0] {
		t.Errorf("small body kept %v, large kept %v; small should lose more", small.Velocity[0], large.Velocity[0])
	}
	if !near(large.Velocity[0], 10*(1-0.005), 1e-12) {
		t.Errorf("large velocity = %v", large.Velocity[0])
	}
}

func TestRestingContactIsFixedPoint(t *testing.T) {
	r := testBoundary()
	b := NewBody(mgl64.Vec2{10, 0.5}, mgl64.Vec2{}, 0.5)
	for i := 0; i < 10; i++ {
		c := r.Resolve(b)
		if !c.Has(ContactRest) {
			t.Fatalf("iteration %d: contact = %b, want rest", i, c)
		}
	}
	if b.Position != (mgl64.Vec2{10, 0.5}) || b.Velocity != (mgl64.Vec2{}) {
		t.Errorf("rest state drifted: position=%v velocity=%v", b.Position, b.Velocity)
	}
}

func TestRestingContactSnapsSlowBody(t *testing.T) {
	r := testBoundary()
	b := NewBody(mgl64.Vec2{10, 0.52}, mgl64.Vec2{2, 0.05}, 0.5)
	c := r.Resolve(b)
	if !c.Has(ContactRest) {
		t.Fatalf("contact = %b, want rest", c)
	}
	if b.Position[1] != 0.5 || b.Velocity[1] != 0 {
		t.Errorf("position.y=%v velocity.y=%v, want 0.5 and 0", b.Position[1], b.Velocity[1])
	}
	if !near(b.Velocity[0], 2*0.95, 1e-12) {
		t.Errorf("velocity.x = %v, want %v", b.Velocity[0], 2*0.95)
	}
}

func TestGroundImpactConservesEnergy(t *testing.T) {
	r := testBoundary()
	b := NewBody(mgl64.Vec2{5, 0.9}, mgl64.Vec2{3, -4}, 1)
	b.Energy = 20
	c := r.Resolve(b)
	if !c.Has(ContactGround) {
		t.Fatalf("contact = %b, want ground", c)
	}
	if b.Position[1] != 1 {
		t.Errorf("position.y = %v, want 1", b.Position[1])
	}
	// vy² = 2(20 - 10·1) - 3²
	wantVy := math.Sqrt(11) * 0.95
	if !near(b.Velocity[1], wantVy, 1e-12) {
		t.Errorf("velocity.y = %v, want %v", b.Velocity[1], wantVy)
	}
	if !near(b.Velocity[0], 3*0.95, 1e-12) {
		t.Errorf("velocity.x = %v, want %v", b.Velocity[0], 3*0.95)
	}
}

func TestGroundImpactNegativeRadicand(t *testing.T) {
	r := testBoundary()
	b := NewBody(mgl64.Vec2{5, 0.8}, mgl64.Vec2{5, -4}, 1)
	b.Energy = 5
	r.Resolve(b)
	if b.Velocity[1] != 0 {
		t.Errorf("velocity.y = %v, want 0", b.Velocity[1])
	}
	if math.IsNaN(b.Velocity[0]) || math.IsNaN(b.Velocity[1]) {
		t.Errorf("NaN velocity: %v", b.Velocity)
	}
}

func TestWallReflection(t *testing.T) {
	tests := []struct {
		name    string
		x, vx   float64
		wantX   float64
		contact Contact
	}{
		{"left", 0.3, -2, 0.7, ContactLeftWall},
		{"right", 19.8, 2, 19.2, ContactRightWall},
		{"left exactly touching", 0.5, -1, 0.5, ContactLeftWall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testBoundary()
			b := NewBody(mgl64.Vec2{tt.x, 5}, mgl64.Vec2{tt.vx, 0}, 0.5)
			c := r.Resolve(b)
			if !c.Has(tt.contact) {
				t.Fatalf("contact = %b, want %b", c, tt.contact)
			}
			if !near(b.Position[0], tt.wantX, 1e-12) {
				t.Errorf("x = %v, want %v", b.Position[0], tt.wantX)
			}
			if !near(b.Velocity[0], -tt.vx*0.95, 1e-12) {
				t.Errorf("vx = %v, want %v", b.Velocity[0], -tt.vx*0.95)
			}
		})
	}
}

func TestGroundAndWallSameStep(t *testing.T) {
	r := testBoundary()
	b := NewBody(mgl64.Vec2{0.2, 0.3}, mgl64.Vec2{-1, -5}, 0.5)
	b.Energy = 30
	c := r.Resolve(b)
	if !c.Has(ContactGround) || !c.Has(ContactLeftWall) {
		t.Errorf("contact = %b, want ground and left wall", c)
	}
	if b.Velocity[0] <= 0 || b.Velocity[1] <= 0 {
		t.Errorf("velocity = %v, want both components positive", b.Velocity)
	}
}

func TestContainClampsPosition(t *testing.T) {
	r := testBoundary()
	b := NewBody(mgl64.Vec2{20.1, -0.2}, mgl64.Vec2{1, -1}, 0.5)
	r.Contain(b)
	if b.Position != (mgl64.Vec2{19.5, 0.5}) {
		t.Errorf("position = %v, want (19.5, 0.5)", b.Position)
	}
	if b.Velocity != (mgl64.Vec2{1, -1}) {
		t.Errorf("contain changed velocity to %v", b.Velocity)
	}
}
