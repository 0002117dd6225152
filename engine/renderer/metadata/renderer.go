package metadata

import (
	"github.com/spaghettifunk/sketchbook/engine/geometry"
	"github.com/spaghettifunk/sketchbook/engine/math"
)

type RendererBackendConfig struct {
	/** @brief The name of the application */
	ApplicationName string
	/** @brief The initial framebuffer width. */
	Width uint32
	/** @brief The initial framebuffer height. */
	Height uint32
}

/**
 * @brief A single mesh to be drawn with one of the built-in shaders.
 */
type DrawCall struct {
	/** @brief The mesh to draw. Uploaded on first use. */
	Geometry *geometry.Mesh
	/** @brief The built-in shader used for this draw. */
	Shader ShaderName
	/** @brief The uniforms set before drawing. */
	Uniforms []Uniform
	/** @brief Enables the depth test for this draw only. */
	DepthTest bool
	/** @brief Which faces are culled. */
	CullMode FaceCullMode
}

/**
 * @brief Everything the renderer needs to draw a frame.
 */
type RenderPacket struct {
	DeltaTime float64
	/** @brief The framebuffer size this packet was built for. */
	Width  uint32
	Height uint32
	/** @brief The colour the frame is cleared to. */
	ClearColour math.Vec4
	/** @brief The draw calls, executed in order. */
	DrawCalls []DrawCall
	/** @brief Meshes whose GPU copies are freed before this frame is drawn. */
	Released []*geometry.Mesh
}

// NewRenderPacket starts a packet cleared to the sketchbook grey.
func NewRenderPacket(deltaTime float64, width, height uint32) *RenderPacket {
	return &RenderPacket{
		DeltaTime:   deltaTime,
		Width:       width,
		Height:      height,
		ClearColour: DefaultClearColour,
	}
}

// DefaultClearColour is the background of every sketch.
var DefaultClearColour = math.NewVec4(0.3, 0.3, 0.3, 1.0)

func (p *RenderPacket) Add(call DrawCall) {
	p.DrawCalls = append(p.DrawCalls, call)
}

// Release asks the renderer to drop the uploaded copy of a mesh that is no
// longer drawn.
func (p *RenderPacket) Release(mesh *geometry.Mesh) {
	p.Released = append(p.Released, mesh)
}
