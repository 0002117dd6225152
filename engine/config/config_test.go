package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/math"
	"github.com/spaghettifunk/sketchbook/engine/renderer/components"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	camera, err := cfg.NewCamera()
	require.NoError(t, err)
	assert.Equal(t, math.NewVec3(2, 2, 2), camera.Eye)
	assert.Equal(t, components.PROJECTION_PERSPECTIVE, camera.Projection.Kind)
	assert.InDelta(t, 800.0/600.0, camera.Projection.Aspect, 1e-12)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
sketch = "cube"
log_level = "debug"

[camera]
eye = [0.0, 0.0, 5.0]
up = [0.0, 1.0, 0.0]

[projection]
kind = "orthogonal"
near = 0.1
far = 10.0
`))
	require.NoError(t, err)
	assert.Equal(t, "cube", cfg.Sketch)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, math.NewVec3(0, 0, 5), cfg.Eye())
	assert.Equal(t, math.NewVec3Up(), cfg.Up())
	// untouched keys keep their defaults
	assert.Equal(t, math.NewVec3Zero(), cfg.Center())
	assert.Equal(t, uint32(800), cfg.Window.Width)
	assert.Equal(t, uint32(24), cfg.Sphere.Slices)

	p, err := cfg.CameraProjection()
	require.NoError(t, err)
	assert.Equal(t, components.PROJECTION_ORTHOGONAL, p.Kind)
	assert.InDelta(t, 0.1, p.Near, 1e-12)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":     `sketchh = "cube"`,
		"bad syntax":      `sketch = `,
		"wrong type":      `[window]` + "\n" + `width = "wide"`,
		"zero width":      `[window]` + "\n" + `width = 0`,
		"log level":       `log_level = "chatty"`,
		"sphere slices":   `[sphere]` + "\n" + `slices = 2`,
		"sphere radius":   `[sphere]` + "\n" + `radius = 0.0`,
		"projection kind": `[projection]` + "\n" + `kind = "fisheye"`,
		"near equals far": `[projection]` + "\n" + `near = 2.0` + "\n" + `far = 2.0`,
		"collinear up":    `[camera]` + "\n" + `eye = [0.0, 0.0, 3.0]`,
		"eye on center":   `[camera]` + "\n" + `eye = [0.0, 0.0, 0.0]`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.ErrorIs(t, err, core.ErrInvalidConfig)
		})
	}
}

func TestValidateWrapsCameraErrors(t *testing.T) {
	cfg := Default()
	cfg.Camera.Eye = [3]float64{0, 0, 4}
	err := cfg.Validate()
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
	assert.ErrorIs(t, err, core.ErrDegenerateCamera)

	cfg = Default()
	cfg.Projection.FovY = 180
	err = cfg.Validate()
	assert.ErrorIs(t, err, core.ErrInvalidProjection)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.toml")
	cfg := Default()
	cfg.Sketch = "frame-sphere"
	cfg.Camera.Eye = [3]float64{1, 2, 3}
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadSampleConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "sketch.toml"))
	require.NoError(t, err)
	assert.Equal(t, "sphere-editor", cfg.Sketch)
	assert.Equal(t, math.NewVec3(4, 4, 4), cfg.LightPosition())
}
