package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/math"
	"github.com/spaghettifunk/sketchbook/engine/renderer/components"
)

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
	PosX   int32  `toml:"pos_x"`
	PosY   int32  `toml:"pos_y"`
}

type CameraConfig struct {
	Eye    [3]float64 `toml:"eye"`
	Center [3]float64 `toml:"center"`
	Up     [3]float64 `toml:"up"`
	// Degrees per second the orbiting sketches turn around the center.
	OrbitSpeed float64 `toml:"orbit_speed"`
}

type ProjectionConfig struct {
	Kind   string  `toml:"kind"`
	FovY   float64 `toml:"fovy"`
	Near   float64 `toml:"near"`
	Far    float64 `toml:"far"`
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Top    float64 `toml:"top"`
}

type SphereConfig struct {
	Radius float64 `toml:"radius"`
	Slices uint32  `toml:"slices"`
	Stacks uint32  `toml:"stacks"`
}

type LightConfig struct {
	Position [3]float64 `toml:"position"`
}

/**
 * @brief The scene configuration read from a TOML file. Every field has a
 * default (see Default) so a file only needs the values it changes.
 */
type Config struct {
	Sketch     string           `toml:"sketch"`
	LogLevel   string           `toml:"log_level"`
	Window     WindowConfig     `toml:"window"`
	Camera     CameraConfig     `toml:"camera"`
	Projection ProjectionConfig `toml:"projection"`
	Sphere     SphereConfig     `toml:"sphere"`
	Light      LightConfig      `toml:"light"`
}

// Default returns the configuration of the lit sphere scene.
func Default() *Config {
	return &Config{
		Sketch:   "sphere",
		LogLevel: "info",
		Window: WindowConfig{
			Title:  "sketchbook",
			Width:  800,
			Height: 600,
			PosX:   100,
			PosY:   100,
		},
		Camera: CameraConfig{
			Eye:        [3]float64{2, 2, 2},
			Center:     [3]float64{0, 0, 0},
			Up:         [3]float64{0, 0, 1},
			OrbitSpeed: 20,
		},
		Projection: ProjectionConfig{
			Kind:   "perspective",
			FovY:   30,
			Near:   1,
			Far:    11,
			Left:   -1,
			Right:  1,
			Bottom: -1,
			Top:    1,
		},
		Sphere: SphereConfig{
			Radius: 1,
			Slices: 24,
			Stacks: 24,
		},
		Light: LightConfig{
			Position: [3]float64{4, 4, 4},
		},
	}
}

// Load reads path on top of the defaults and validates the result. Unknown
// keys are rejected so typos do not go unnoticed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML data on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", core.ErrInvalidConfig, strict.String())
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %s", core.ErrInvalidConfig, row, col, decodeErr.Error())
		}
		return nil, fmt.Errorf("%w: %s", core.ErrInvalidConfig, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as TOML to path.
func Save(cfg *Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the values the math layer would otherwise turn into NaN.
func (c *Config) Validate() error {
	if c.Window.Width == 0 || c.Window.Height == 0 {
		return fmt.Errorf("%w: window size %dx%d", core.ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.LogLevel != "" {
		if err := core.ValidLogLevel(c.LogLevel); err != nil {
			return err
		}
	}
	if c.Sphere.Radius <= 0 || c.Sphere.Slices < 3 || c.Sphere.Stacks < 2 {
		return fmt.Errorf("%w: sphere radius %g slices %d stacks %d",
			core.ErrInvalidConfig, c.Sphere.Radius, c.Sphere.Slices, c.Sphere.Stacks)
	}
	if _, err := c.NewCamera(); err != nil {
		return fmt.Errorf("%w: %w", core.ErrInvalidConfig, err)
	}
	return nil
}

// CameraProjection converts the projection section.
func (c *Config) CameraProjection() (components.Projection, error) {
	kind, err := components.ParseProjectionKind(c.Projection.Kind)
	if err != nil {
		return components.Projection{}, err
	}
	return components.Projection{
		Kind:   kind,
		FovY:   c.Projection.FovY,
		Aspect: float64(c.Window.Width) / float64(c.Window.Height),
		Near:   c.Projection.Near,
		Far:    c.Projection.Far,
		Left:   c.Projection.Left,
		Right:  c.Projection.Right,
		Bottom: c.Projection.Bottom,
		Top:    c.Projection.Top,
	}, nil
}

// NewCamera builds a validated camera from the camera and projection
// sections.
func (c *Config) NewCamera() (*components.Camera, error) {
	projection, err := c.CameraProjection()
	if err != nil {
		return nil, err
	}
	camera := components.NewCamera(c.Eye(), c.Center(), c.Up(), projection)
	if err := camera.Validate(); err != nil {
		return nil, err
	}
	return camera, nil
}

func (c *Config) Eye() math.Vec3 {
	return math.Vec3FromArray(c.Camera.Eye)
}

func (c *Config) Center() math.Vec3 {
	return math.Vec3FromArray(c.Camera.Center)
}

func (c *Config) Up() math.Vec3 {
	return math.Vec3FromArray(c.Camera.Up)
}

func (c *Config) LightPosition() math.Vec3 {
	return math.Vec3FromArray(c.Light.Position)
}
