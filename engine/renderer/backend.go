package renderer

import (
	"github.com/spaghettifunk/sketchbook/engine/geometry"
	"github.com/spaghettifunk/sketchbook/engine/renderer/metadata"
)

// RendererBackend is implemented by each graphics API.
type RendererBackend interface {
	Initialize(config *metadata.RendererBackendConfig) error
	Shutdown() error
	Resized(width, height uint32) error
	BeginFrame(packet *metadata.RenderPacket) error
	EndFrame(deltaTime float64) error
	/** @brief Compiles and links a built-in shader. */
	ShaderCreate(name metadata.ShaderName) error
	ShaderDestroy(name metadata.ShaderName)
	/** @brief Uploads the vertex and index data of mesh. */
	CreateGeometry(mesh *geometry.Mesh) (*metadata.Geometry, error)
	DestroyGeometry(geometry *metadata.Geometry)
	DrawGeometry(data *metadata.GeometryRenderData) error
}
