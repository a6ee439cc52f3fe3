package sim

import (
	"math"

	"github.com/Magda-Gr/physics-simulations/internal/commands"
	"github.com/Magda-Gr/physics-simulations/internal/control"
)

// RegisterCommands adds the session's terminal commands to reg.
func (s *Session) RegisterCommands(reg *commands.Registry) {
	impulse := commands.NewFlagSet("impulse")
	dir := impulse.String("dir", "up", "up, down, left or right")
	reg.Register("impulse", "-dir up|down|left|right: push every ball", impulse, func() error {
		d, err := control.ParseDirection(*dir)
		if err != nil {
			return err
		}
		return s.Impulse(d)
	})

	sunmass := commands.NewFlagSet("sunmass")
	value := sunmass.Float64("value", 1, "new sun mass")
	inf := sunmass.Bool("inf", false, "make the sun immovable")
	reg.Register("sunmass", "-value M | -inf: change the sun's mass", sunmass, func() error {
		m := *value
		if *inf {
			m = math.Inf(1)
		}
		return s.SetSunMass(m)
	})

	reg.Register("pause", "pause or resume", nil, func() error {
		s.TogglePause()
		return nil
	})

	step := commands.NewFlagSet("step")
	n := step.Int("n", 1, "ticks to advance")
	reg.Register("step", "-n N: advance N ticks while paused", step, func() error {
		return s.StepN(*n)
	})

	reset := commands.NewFlagSet("reset")
	seed := reset.Int64("seed", 0, "random seed; 0 picks one")
	reg.Register("reset", "-seed S: rebuild the world", reset, func() error {
		s.Reset(*seed)
		return nil
	})

	reg.Register("stats", "log tick, bodies and energy", nil, func() error {
		s.log.Log(s.Stats().String())
		return nil
	})

	fps := commands.NewFlagSet("fps")
	show := fps.Bool("show", true, "show the overlay")
	reg.Register("fps", "-show=true|false: toggle the overlay", fps, func() error {
		s.SetShowFPS(*show)
		return nil
	})
}
