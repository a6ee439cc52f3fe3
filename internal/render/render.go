// Package render turns world state into screen-space draw commands. It never touches the
// window; internal/graphics issues the actual draw calls.
package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Magda-Gr/physics-simulations/internal/physics"
)

// OrbitColor is the stroke of the orbit ring.
var OrbitColor = color.RGBA{A: 0xff}

// Viewport maps simulation units to pixels: uniform scale, y flipped so the ground is the bottom edge.
type Viewport struct {
	Scale  float64
	Height int32
}

// NewViewport sizes the simulation so that its shorter side spans minSimWidth units.
func NewViewport(width, height int32, minSimWidth float64) Viewport {
	return Viewport{
		Scale:  float64(min(width, height)) / minSimWidth,
		Height: height,
	}
}

// Bounds is the simulation region covered by a window of the given width.
func (v Viewport) Bounds(width int32) physics.Bounds {
	return physics.Bounds{
		Width:  float64(width) / v.Scale,
		Height: float64(v.Height) / v.Scale,
	}
}

// X converts a simulation x to a pixel column.
func (v Viewport) X(x float64) int32 {
	return int32(x * v.Scale)
}

// Y converts a simulation y to a pixel row.
func (v Viewport) Y(y float64) int32 {
	return int32(float64(v.Height) - y*v.Scale)
}

// Length converts a simulation distance to pixels.
func (v Viewport) Length(l float64) int32 {
	return int32(v.Scale * l)
}

// Circle is one draw call: filled unless Outline is set.
type Circle struct {
	X, Y, Radius int32
	Color        color.RGBA
	Outline      bool
}

func (v Viewport) circle(center mgl64.Vec2, radius float64, c color.RGBA, outline bool) Circle {
	return Circle{X: v.X(center[0]), Y: v.Y(center[1]), Radius: v.Length(radius), Color: c, Outline: outline}
}

// ringed is implemented by worlds with a central body and a fixed orbit.
type ringed interface {
	Sun() *physics.Body
	OrbitRadius() float64
}

// Frame lists the circles for w in draw order. A world with an orbit gets its ring first.
func (v Viewport) Frame(w physics.World, dst []Circle) []Circle {
	dst = dst[:0]
	if r, ok := w.(ringed); ok {
		dst = append(dst, v.circle(r.Sun().Position, r.OrbitRadius(), OrbitColor, true))
	}
	for _, b := range w.Bodies() {
		if math.IsNaN(b.Position[0]) || math.IsNaN(b.Position[1]) {
			continue
		}
		dst = append(dst, v.circle(b.Position, b.Radius(), b.Color, false))
	}
	return dst
}
