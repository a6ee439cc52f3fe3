package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Magda-Gr/physics-simulations/internal/env"
)

// DefaultPath is where the simulator looks for a configuration file when -config is not given.
const DefaultPath = "config/sim.yaml"

// Variant selects which world is simulated.
type Variant string

const (
	VariantBalls Variant = "balls"
	VariantSolar Variant = "solar"
)

// Window is the fixed-size window and the simulation scale derived from it.
type Window struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
	// MinSimWidth is how many simulation units the shorter window side spans.
	MinSimWidth float64 `yaml:"min_sim_width"`
	FPS         int32   `yaml:"fps"`
}

// Balls configures the bouncing-balls sandbox.
type Balls struct {
	Count         int     `yaml:"count"`
	Gravity       float64 `yaml:"gravity"`
	Drag          float64 `yaml:"drag"`
	BounceDrag    float64 `yaml:"bounce_drag"`
	CollisionDrag float64 `yaml:"collision_drag"`
	Impulse       float64 `yaml:"impulse"`
	MinRadius     float64 `yaml:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
	MaxSpeed      float64 `yaml:"max_speed"`
	RestSpeed     float64 `yaml:"rest_speed"`
	RestBand      float64 `yaml:"rest_band"`
}

// Solar configures the orbiting-planets system. SunMass may be +Inf (YAML .inf).
type Solar struct {
	Planets       int     `yaml:"planets"`
	SunMass       float64 `yaml:"sun_mass"`
	SunRadius     float64 `yaml:"sun_radius"`
	OrbitRadius   float64 `yaml:"orbit_radius"`
	Gravity       float64 `yaml:"gravity"`
	Drag          float64 `yaml:"drag"`
	CollisionDrag float64 `yaml:"collision_drag"`
	MinRadius     float64 `yaml:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
}

// Config is the full simulator configuration.
type Config struct {
	Variant Variant `yaml:"variant"`
	// Seed drives initial placement; 0 picks one from the clock.
	Seed     int64   `yaml:"seed"`
	TimeStep float64 `yaml:"time_step"`
	// LogFile receives every log line; empty disables the file.
	LogFile string `yaml:"log_file"`
	ShowFPS bool   `yaml:"show_fps"`
	Window  Window `yaml:"window"`
	Balls   Balls  `yaml:"balls"`
	Solar   Solar  `yaml:"solar"`
}

// Default returns the stock configuration of both variants.
func Default() Config {
	return Config{
		Variant:  VariantBalls,
		TimeStep: 1.0 / 60.0,
		LogFile:  "logs/sim.txt",
		Window: Window{
			Width:       1000,
			Height:      600,
			Title:       "Physics Simulations",
			MinSimWidth: 20,
			FPS:         60,
		},
		Balls: Balls{
			Count:         10,
			Gravity:       -10,
			Drag:          0.005,
			BounceDrag:    0.05,
			CollisionDrag: 0.01,
			Impulse:       10,
			MinRadius:     0.2,
			MaxRadius:     1.0,
			MaxSpeed:      15,
			RestSpeed:     0.1,
			RestBand:      1.1,
		},
		Solar: Solar{
			Planets:       5,
			SunMass:       math.Inf(1),
			SunRadius:     2,
			OrbitRadius:   7,
			Gravity:       -100,
			Drag:          0.005,
			CollisionDrag: 0.01,
			MinRadius:     0.2,
			MaxRadius:     1.0,
		},
	}
}

// Load returns Default overlaid with the YAML file at path. A missing file yields the defaults.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := Decode(bytes.NewReader(data), &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays YAML from r onto cfg.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides cfg from SIM_* environment variables.
func (c *Config) ApplyEnv() {
	c.Variant = Variant(env.String("SIM_VARIANT", string(c.Variant)))
	c.Seed = env.Int64("SIM_SEED", c.Seed)
	c.LogFile = env.String("SIM_LOG_FILE", c.LogFile)
	c.Solar.SunMass = env.Float("SIM_SUN_MASS", c.Solar.SunMass)
	if n := env.Int("SIM_BODIES", 0); n != 0 {
		c.SetBodyCount(n)
	}
}

// BodyCount is the number of moving bodies of the selected variant.
func (c Config) BodyCount() int {
	if c.Variant == VariantSolar {
		return c.Solar.Planets
	}
	return c.Balls.Count
}

// SetBodyCount sets the body count of the selected variant.
func (c *Config) SetBodyCount(n int) {
	if c.Variant == VariantSolar {
		c.Solar.Planets = n
		return
	}
	c.Balls.Count = n
}

// Scale is pixels per simulation unit.
func (c Config) Scale() float64 {
	return float64(min(c.Window.Width, c.Window.Height)) / c.Window.MinSimWidth
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	fraction := func(v float64) bool { return v >= 0 && v < 1 }

	check(c.Variant == VariantBalls || c.Variant == VariantSolar, "variant %q: want %q or %q", c.Variant, VariantBalls, VariantSolar)
	check(c.TimeStep > 0, "time_step %v: must be positive", c.TimeStep)
	check(c.Window.Width > 0 && c.Window.Height > 0, "window %dx%d: must be positive", c.Window.Width, c.Window.Height)
	check(c.Window.MinSimWidth > 0, "window.min_sim_width %v: must be positive", c.Window.MinSimWidth)
	check(c.Window.FPS > 0, "window.fps %d: must be positive", c.Window.FPS)

	b := c.Balls
	check(b.Count > 0, "balls.count %d: must be positive", b.Count)
	check(b.MinRadius > 0 && b.MinRadius <= b.MaxRadius, "balls radius range [%v, %v]: need 0 < min <= max", b.MinRadius, b.MaxRadius)
	check(fraction(b.Drag), "balls.drag %v: must be in [0,1)", b.Drag)
	check(fraction(b.BounceDrag), "balls.bounce_drag %v: must be in [0,1)", b.BounceDrag)
	check(fraction(b.CollisionDrag), "balls.collision_drag %v: must be in [0,1)", b.CollisionDrag)
	check(b.MaxSpeed >= 0, "balls.max_speed %v: must not be negative", b.MaxSpeed)
	check(b.RestSpeed >= 0 && b.RestBand >= 1, "balls rest_speed %v / rest_band %v: need speed >= 0 and band >= 1", b.RestSpeed, b.RestBand)

	s := c.Solar
	check(s.Planets > 0, "solar.planets %d: must be positive", s.Planets)
	check(s.SunMass > 0, "solar.sun_mass %v: must be positive", s.SunMass)
	check(s.SunRadius > 0, "solar.sun_radius %v: must be positive", s.SunRadius)
	check(s.MinRadius > 0 && s.MinRadius <= s.MaxRadius, "solar radius range [%v, %v]: need 0 < min <= max", s.MinRadius, s.MaxRadius)
	check(fraction(s.Drag), "solar.drag %v: must be in [0,1)", s.Drag)
	check(fraction(s.CollisionDrag), "solar.collision_drag %v: must be in [0,1)", s.CollisionDrag)
	check(s.OrbitRadius > 0, "solar.orbit_radius %v: must be positive", s.OrbitRadius)

	if len(errs) == 0 {
		w := float64(c.Window.Width) / c.Scale()
		h := float64(c.Window.Height) / c.Scale()
		check(2*b.MaxRadius < w && 2*b.MaxRadius < h, "balls.max_radius %v: region %.2fx%.2f too small", b.MaxRadius, w, h)
		check(s.OrbitRadius+s.MaxRadius <= min(w, h)/2, "solar.orbit_radius %v: ring does not fit region %.2fx%.2f", s.OrbitRadius, w, h)
	}
	return errors.Join(errs...)
}
