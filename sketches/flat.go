package sketches

import (
	"github.com/spaghettifunk/sketchbook/engine/config"
	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/geometry"
	"github.com/spaghettifunk/sketchbook/engine/graphic"
	"github.com/spaghettifunk/sketchbook/engine/math"
	"github.com/spaghettifunk/sketchbook/engine/renderer/metadata"
)

// flatSketch draws a single mesh with a fixed mvp matrix. It ignores input
// and configuration changes.
type flatSketch struct {
	name string
	mesh *geometry.Mesh
	mvp  math.Mat4
}

func newTriangle(cfg *config.Config) (Sketch, error) {
	return &flatSketch{
		name: "triangle",
		mesh: geometry.Triangle(),
		mvp:  math.NewMat4Identity(),
	}, nil
}

func newSquare(cfg *config.Config) (Sketch, error) {
	return &flatSketch{
		name: "square",
		mesh: geometry.FrameSquare(0.9, geometry.ColourRed),
		mvp:  math.NewMat4Identity(),
	}, nil
}

// newSquareFrustum pushes the square to z = -1 and looks at it through a
// frustum whose far plane is behind the eye, as the classic demo does.
func newSquareFrustum(cfg *config.Config) (Sketch, error) {
	square := geometry.FrameSquare(0.9, geometry.ColourRed)
	for i := range square.Positions {
		square.Positions[i].Z = -1.0
	}
	return &flatSketch{
		name: "square-frustum",
		mesh: square,
		mvp:  graphic.Frustum(-1.0, 1.0, -1.0, 1.0, 0.1, -2.0),
	}, nil
}

func (s *flatSketch) Initialize() error {
	core.LogDebug("%s: %d vertices", s.name, s.mesh.VertexCount())
	return s.mesh.Validate()
}

func (s *flatSketch) Update(deltaTime float64) error {
	return nil
}

func (s *flatSketch) Render(packet *metadata.RenderPacket, deltaTime float64) error {
	packet.Add(metadata.DrawCall{
		Geometry: s.mesh,
		Shader:   metadata.ShaderSimple,
		Uniforms: []metadata.Uniform{metadata.Mat4Uniform("mvp", s.mvp)},
	})
	return nil
}

func (s *flatSketch) OnResize(width, height uint32) error {
	return nil
}

func (s *flatSketch) OnConfigChanged(cfg *config.Config) error {
	return nil
}

func (s *flatSketch) Shutdown() error {
	return nil
}
