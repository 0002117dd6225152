package sketches

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spaghettifunk/sketchbook/engine"
	"github.com/spaghettifunk/sketchbook/engine/config"
	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/renderer/metadata"
)

/**
 * @brief A scene driven by the engine frame loop. The engine calls
 * Initialize once, then Update and Render every frame, and Shutdown last.
 */
type Sketch interface {
	Initialize() error
	Update(deltaTime float64) error
	Render(packet *metadata.RenderPacket, deltaTime float64) error
	OnResize(width, height uint32) error
	OnConfigChanged(cfg *config.Config) error
	Shutdown() error
}

// Factory builds a sketch from the scene configuration.
type Factory func(cfg *config.Config) (Sketch, error)

var registry = map[string]Factory{
	"triangle":       newTriangle,
	"square":         newSquare,
	"square-frustum": newSquareFrustum,
	"circle":         newCircle,
	"cube":           newCube,
	"frame-sphere":   newFrameSphere,
	"sphere":         newSphere(false),
	"sphere-editor":  newSphere(true),
}

// Names lists the registered sketches in alphabetical order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// New builds the sketch registered as name.
func New(name string, cfg *config.Config) (Sketch, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q, available: %v", core.ErrUnknownSketch, name, Names())
	}
	return factory(cfg)
}

// NewGame wraps the sketch registered as name into a game the engine can
// run. configPath is watched for changes when not empty.
func NewGame(name string, cfg *config.Config, configPath string) (*engine.Game, error) {
	s, err := New(name, cfg)
	if err != nil {
		return nil, err
	}
	app := engine.NewApplicationConfig(cfg, configPath)
	app.Name = fmt.Sprintf("%s - %s", cfg.Window.Title, name)

	return &engine.Game{
		ApplicationConfig: app,
		State:             s,
		FnInitialize:      s.Initialize,
		FnUpdate:          s.Update,
		FnRender:          s.Render,
		FnOnResize:        s.OnResize,
		FnOnConfigChanged: s.OnConfigChanged,
		FnShutdown:        s.Shutdown,
	}, nil
}
