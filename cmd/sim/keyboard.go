package main

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Magda-Gr/physics-simulations/internal/control"
	"github.com/Magda-Gr/physics-simulations/internal/logger"
	"github.com/Magda-Gr/physics-simulations/internal/sim"
)

var arrowKeys = []struct {
	key int32
	dir control.Direction
}{
	{rl.KeyUp, control.Up},
	{rl.KeyDown, control.Down},
	{rl.KeyLeft, control.Left},
	{rl.KeyRight, control.Right},
}

// keyboard maps key presses to session controls while the terminal is closed.
type keyboard struct {
	session *sim.Session
	log     *logger.Logger
}

func newKeyboard(session *sim.Session, log *logger.Logger) *keyboard {
	return &keyboard{session: session, log: log}
}

// Update polls the keys once per frame. Controls that do not apply to the running variant are ignored.
func (k *keyboard) Update() {
	for _, a := range arrowKeys {
		if rl.IsKeyPressed(a.key) {
			k.report(k.session.Impulse(a.dir))
		}
	}
	if rl.IsKeyPressed(rl.KeyPageUp) {
		k.report(k.session.ScaleSunMass(2))
	}
	if rl.IsKeyPressed(rl.KeyPageDown) {
		k.report(k.session.ScaleSunMass(0.5))
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		k.session.TogglePause()
	}
}

func (k *keyboard) report(err error) {
	if err == nil || errors.Is(err, sim.ErrNoImpulse) || errors.Is(err, sim.ErrNoSun) {
		return
	}
	k.log.Log(err.Error())
}
