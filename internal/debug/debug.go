package debug

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Magda-Gr/physics-simulations/internal/sim"
)

const (
	fontSize   = 18
	padding    = 10
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 15
)

var overlayColor = rl.NewColor(0, 120, 0, 255)

// Overlay draws FPS and session statistics in the top-right corner while the session asks for it.
type Overlay struct {
	session    *sim.Session
	frameCount uint32
	lines      []string
}

func New(session *sim.Session) *Overlay {
	return &Overlay{session: session}
}

// Draw renders the overlay. Call after the world and terminal in the draw loop.
func (o *Overlay) Draw() {
	if !o.session.ShowFPS() {
		o.lines = o.lines[:0]
		return
	}
	o.frameCount++
	if o.frameCount%updateInterval == 0 || len(o.lines) == 0 {
		o.refresh()
	}

	screenW := int32(rl.GetScreenWidth())
	for i, text := range o.lines {
		x := screenW - rl.MeasureText(text, fontSize) - padding
		rl.DrawText(text, x, int32(padding+i*lineHeight), fontSize, overlayColor)
	}
}

func (o *Overlay) refresh() {
	st := o.session.Stats()
	o.lines = append(o.lines[:0],
		fmt.Sprintf("FPS: %d", rl.GetFPS()),
		fmt.Sprintf("Tick: %d", st.Tick),
		fmt.Sprintf("Bodies: %d", st.Bodies),
		fmt.Sprintf("Kinetic: %.1f", st.Kinetic),
	)
	if !math.IsNaN(st.SunMass) {
		o.lines = append(o.lines, fmt.Sprintf("Sun mass: %v", st.SunMass))
	}
	if st.Paused {
		o.lines = append(o.lines, "Paused")
	}
}
