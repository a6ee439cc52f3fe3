package control

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Direction is one of the four impulse commands.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{"up", "down", "left", "right"}

func (d Direction) String() string {
	if d < Up || d > Right {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection accepts up, down, left or right in any case.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range directionNames {
		if s == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q (want up, down, left or right)", s)
}

// Vector is the velocity change for d at the given magnitude, in simulation units with y up.
func (d Direction) Vector(magnitude float64) mgl64.Vec2 {
	switch d {
	case Up:
		return mgl64.Vec2{0, magnitude}
	case Down:
		return mgl64.Vec2{0, -magnitude}
	case Left:
		return mgl64.Vec2{-magnitude, 0}
	case Right:
		return mgl64.Vec2{magnitude, 0}
	}
	return mgl64.Vec2{}
}

// Impulser is anything that accepts a velocity change for all its bodies at once.
type Impulser interface {
	Impulse(dv mgl64.Vec2)
}

// Surface turns directional commands into impulses of a fixed magnitude.
type Surface struct {
	Magnitude float64
}

// Apply sends d to target.
func (s Surface) Apply(target Impulser, d Direction) {
	target.Impulse(d.Vector(s.Magnitude))
}
