package main

import (
	"flag"
	"log"

	"github.com/Magda-Gr/physics-simulations/internal/commands"
	"github.com/Magda-Gr/physics-simulations/internal/config"
	"github.com/Magda-Gr/physics-simulations/internal/debug"
	"github.com/Magda-Gr/physics-simulations/internal/env"
	"github.com/Magda-Gr/physics-simulations/internal/graphics"
	"github.com/Magda-Gr/physics-simulations/internal/logger"
	"github.com/Magda-Gr/physics-simulations/internal/sim"
	"github.com/Magda-Gr/physics-simulations/internal/terminal"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "YAML configuration file")
	variant := flag.String("variant", "", "balls or solar (overrides config)")
	seed := flag.Int64("seed", 0, "random seed (overrides config; 0 keeps it)")
	bodies := flag.Int("n", 0, "number of balls or planets (overrides config; 0 keeps it)")
	flag.Parse()

	if err := env.Load(".env"); err != nil {
		log.Printf(".env: %v", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	cfg.ApplyEnv()
	if *variant != "" {
		cfg.Variant = config.Variant(*variant)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *bodies != 0 {
		cfg.SetBodyCount(*bodies)
	}

	lg := logger.New(cfg.LogFile)
	session, err := sim.New(cfg, lg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	lg.Logf("config %s loaded", *configPath)

	reg := commands.NewRegistry()
	session.RegisterCommands(reg)
	term := terminal.New(lg, reg)
	overlay := debug.New(session)
	keys := newKeyboard(session, lg)

	update := func() {
		term.Update()
		if !term.IsOpen() {
			keys.Update()
		}
		session.Tick()
	}
	draw := func() {
		graphics.DrawCircles(session.Frame())
		term.Draw()
		overlay.Draw()
	}
	graphics.Run(cfg.Window, update, draw)
}
