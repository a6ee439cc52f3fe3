// Package sim runs one simulation session: it builds the configured world, advances it once per
// frame and exposes the controls the window loop and terminal drive.
package sim

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Magda-Gr/physics-simulations/internal/config"
	"github.com/Magda-Gr/physics-simulations/internal/control"
	"github.com/Magda-Gr/physics-simulations/internal/logger"
	"github.com/Magda-Gr/physics-simulations/internal/physics"
	"github.com/Magda-Gr/physics-simulations/internal/render"
)

var (
	// ErrNoImpulse is returned when impulses are sent to a world that does not take them.
	ErrNoImpulse = errors.New("impulses apply to the balls variant only")
	// ErrNoSun is returned for sun-mass changes outside the solar variant.
	ErrNoSun = errors.New("sun mass applies to the solar variant only")
)

// Session owns the active world and everything that happens between frames.
type Session struct {
	cfg      config.Config
	log      *logger.Logger
	viewport render.Viewport
	surface  control.Surface
	clock    func() time.Time

	world   physics.World
	seed    int64
	tick    uint64
	paused  bool
	pending int
	showFPS bool
	circles []render.Circle
}

// New validates cfg and builds its world. log may be nil.
func New(cfg config.Config, log *logger.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim new: %w", err)
	}
	if log == nil {
		log = logger.New("")
	}
	s := &Session{
		cfg:      cfg,
		log:      log,
		viewport: render.NewViewport(cfg.Window.Width, cfg.Window.Height, cfg.Window.MinSimWidth),
		surface:  control.Surface{Magnitude: cfg.Balls.Impulse},
		clock:    time.Now,
		showFPS:  cfg.ShowFPS,
	}
	s.Reset(cfg.Seed)
	return s, nil
}

// Bounds is the simulation region the window covers.
func (s *Session) Bounds() physics.Bounds {
	return s.viewport.Bounds(s.cfg.Window.Width)
}

func (s *Session) Config() config.Config { return s.cfg }

func (s *Session) World() physics.World { return s.world }

func (s *Session) Viewport() render.Viewport { return s.viewport }

func (s *Session) Seed() int64 { return s.seed }

// Reset rebuilds the world from the configuration. seed 0 picks one from the clock.
func (s *Session) Reset(seed int64) {
	if seed == 0 {
		seed = s.clock().UnixNano()
	}
	s.seed = seed
	s.tick = 0
	s.pending = 0
	rng := physics.NewRand(seed)

	switch s.cfg.Variant {
	case config.VariantSolar:
		c := s.cfg.Solar
		s.world = physics.RandomSystem(s.systemParams(), c.Planets, c.SunRadius, c.SunMass, c.MinRadius, c.MaxRadius, rng)
	default:
		c := s.cfg.Balls
		spawn := physics.BallSpawn{
			MinRadius: c.MinRadius,
			MaxRadius: c.MaxRadius,
			Margin:    c.MaxRadius,
			MaxSpeed:  c.MaxSpeed,
		}
		s.world = physics.RandomSandbox(s.sandboxParams(), c.Count, spawn, rng)
	}
	s.log.Logf("%s world: %d bodies, seed %d", s.cfg.Variant, len(s.world.Bodies()), seed)
}

func (s *Session) sandboxParams() physics.SandboxParams {
	c := s.cfg.Balls
	return physics.SandboxParams{
		Bounds:        s.Bounds(),
		Gravity:       mgl64.Vec2{0, c.Gravity},
		TimeStep:      s.cfg.TimeStep,
		Drag:          c.Drag,
		BounceDrag:    c.BounceDrag,
		CollisionDrag: c.CollisionDrag,
		RestBand:      c.RestBand,
		RestSpeed:     c.RestSpeed,
	}
}

func (s *Session) systemParams() physics.SystemParams {
	c := s.cfg.Solar
	return physics.SystemParams{
		Bounds:        s.Bounds(),
		Gravity:       mgl64.Vec2{0, c.Gravity},
		TimeStep:      s.cfg.TimeStep,
		Drag:          c.Drag,
		CollisionDrag: c.CollisionDrag,
		OrbitRadius:   c.OrbitRadius,
	}
}

// Tick advances the world by one step unless paused with no single steps queued.
// It reports whether a step ran.
func (s *Session) Tick() bool {
	if s.paused {
		if s.pending == 0 {
			return false
		}
		s.pending--
	}
	s.world.Step()
	s.tick++
	return true
}

// Frame returns the draw list for the current world state. The slice is reused by the next call.
func (s *Session) Frame() []render.Circle {
	s.circles = s.viewport.Frame(s.world, s.circles)
	return s.circles
}

func (s *Session) Paused() bool { return s.paused }

// SetPaused pauses or resumes. Resuming drops queued single steps.
func (s *Session) SetPaused(paused bool) {
	if s.paused == paused {
		return
	}
	s.paused = paused
	if !paused {
		s.pending = 0
	}
	if paused {
		s.log.Logf("paused at tick %d", s.tick)
	} else {
		s.log.Logf("resumed at tick %d", s.tick)
	}
}

func (s *Session) TogglePause() { s.SetPaused(!s.paused) }

// StepN queues n single steps and pauses the session if it was running.
func (s *Session) StepN(n int) error {
	if n <= 0 {
		return fmt.Errorf("step: n must be positive, got %d", n)
	}
	s.SetPaused(true)
	s.pending += n
	return nil
}

func (s *Session) ShowFPS() bool { return s.showFPS }

func (s *Session) SetShowFPS(show bool) { s.showFPS = show }

// Impulse applies d to every ball.
func (s *Session) Impulse(d control.Direction) error {
	target, ok := s.world.(control.Impulser)
	if !ok {
		return ErrNoImpulse
	}
	s.surface.Apply(target, d)
	s.log.Logf("impulse %s", d)
	return nil
}

// SunMass is the current sun mass, or NaN outside the solar variant.
func (s *Session) SunMass() float64 {
	sys, ok := s.world.(*physics.System)
	if !ok {
		return math.NaN()
	}
	return sys.Sun().Mass()
}

// SetSunMass replaces the sun with one of mass m. m may be +Inf.
func (s *Session) SetSunMass(m float64) error {
	sys, ok := s.world.(*physics.System)
	if !ok {
		return ErrNoSun
	}
	if !(m > 0) {
		return fmt.Errorf("sun mass %v: must be positive", m)
	}
	sys.SetSunMass(m)
	s.log.Logf("sun mass %v", m)
	return nil
}

// ScaleSunMass multiplies the sun mass by f. An infinite sun becomes mass 1 when scaled down.
func (s *Session) ScaleSunMass(f float64) error {
	m := s.SunMass()
	if math.IsNaN(m) {
		return ErrNoSun
	}
	if math.IsInf(m, 1) {
		if f >= 1 {
			return nil
		}
		m = 1
	} else {
		m *= f
	}
	return s.SetSunMass(m)
}

// Stats is a snapshot for the overlay and the stats command.
type Stats struct {
	Tick       uint64
	Bodies     int
	Kinetic    float64
	Collisions int
	// SunMass is NaN outside the solar variant.
	SunMass float64
	Paused  bool
}

// Stats sums kinetic energy over movable bodies.
func (s *Session) Stats() Stats {
	st := Stats{
		Tick:       s.tick,
		Bodies:     len(s.world.Bodies()),
		Collisions: s.world.Collisions(),
		SunMass:    s.SunMass(),
		Paused:     s.paused,
	}
	for _, b := range s.world.Bodies() {
		if b.Movable() {
			st.Kinetic += b.KineticEnergy()
		}
	}
	return st
}

func (st Stats) String() string {
	line := fmt.Sprintf("tick %d, %d bodies, kinetic %.2f, %d collisions", st.Tick, st.Bodies, st.Kinetic, st.Collisions)
	if !math.IsNaN(st.SunMass) {
		line += fmt.Sprintf(", sun mass %v", st.SunMass)
	}
	if st.Paused {
		line += ", paused"
	}
	return line
}
