package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Magda-Gr/physics-simulations/internal/config"
	"github.com/Magda-Gr/physics-simulations/internal/render"
)

// Run opens a fixed-size window and runs the main loop at w.FPS. Each frame it calls update
// (input and one simulation tick), then clears to white and calls draw.
// ESC toggles the terminal; close via window button.
func Run(w config.Window, update, draw func()) {
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(w.FPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.White)
		draw()
		rl.EndDrawing()
	}
}

// DrawCircles issues one raylib call per circle, in order.
func DrawCircles(circles []render.Circle) {
	for _, c := range circles {
		col := rl.NewColor(c.Color.R, c.Color.G, c.Color.B, c.Color.A)
		if c.Outline {
			rl.DrawCircleLines(c.X, c.Y, float32(c.Radius), col)
			continue
		}
		rl.DrawCircle(c.X, c.Y, float32(c.Radius), col)
	}
}
