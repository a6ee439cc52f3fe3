package physics

import (
	"image/color"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds is the simulation region [0, Width] × [0, Height].
type Bounds struct {
	Width, Height float64
}

// Center returns the middle of the region.
func (b Bounds) Center() mgl64.Vec2 {
	return mgl64.Vec2{b.Width / 2, b.Height / 2}
}

// NewRand returns a deterministic random source for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// colorLevels are the channel values random colors are drawn from.
var colorLevels = [...]uint8{32, 64, 96, 128, 160, 192, 224}

// RandomColor picks each channel from colorLevels.
func RandomColor(rng *rand.Rand) color.RGBA {
	return color.RGBA{
		R: colorLevels[rng.IntN(len(colorLevels))],
		G: colorLevels[rng.IntN(len(colorLevels))],
		B: colorLevels[rng.IntN(len(colorLevels))],
		A: 255,
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// BallSpawn controls random sandbox placement.
type BallSpawn struct {
	MinRadius, MaxRadius float64
	// Margin keeps centers this far from every edge of the region.
	Margin float64
	// MaxSpeed bounds each velocity component to [-MaxSpeed, MaxSpeed].
	MaxSpeed float64
}

// RandomBall draws radius, position, velocity and color from rng.
func RandomBall(rng *rand.Rand, bounds Bounds, spawn BallSpawn) *Body {
	radius := uniform(rng, spawn.MinRadius, spawn.MaxRadius)
	pos := mgl64.Vec2{
		uniform(rng, spawn.Margin, bounds.Width-spawn.Margin),
		uniform(rng, spawn.Margin, bounds.Height-spawn.Margin),
	}
	vel := mgl64.Vec2{
		uniform(rng, -spawn.MaxSpeed, spawn.MaxSpeed),
		uniform(rng, -spawn.MaxSpeed, spawn.MaxSpeed),
	}
	b := NewBody(pos, vel, radius)
	b.Color = RandomColor(rng)
	return b
}

// RandomPlanet places a body of random radius on the ring of orbitRadius around center,
// in the direction of a uniformly drawn point of bounds. Velocity starts at zero.
func RandomPlanet(rng *rand.Rand, bounds Bounds, center mgl64.Vec2, orbitRadius, minRadius, maxRadius float64) *Body {
	var dir mgl64.Vec2
	for {
		p := mgl64.Vec2{uniform(rng, 0, bounds.Width), uniform(rng, 0, bounds.Height)}
		dir = p.Sub(center)
		if dir.Len() > 0 {
			break
		}
	}
	radius := uniform(rng, minRadius, maxRadius)
	b := NewBody(center.Add(dir.Normalize().Mul(orbitRadius)), mgl64.Vec2{}, radius)
	b.Color = RandomColor(rng)
	return b
}
