package metadata

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/sketchbook/engine/geometry"
)

/**
 * @brief A mesh uploaded to the GPU.
 */
type Geometry struct {
	/** @brief The ID of the mesh this geometry was created from. */
	ID uuid.UUID
	/** @brief The internal geometry identifier, used by the renderer backend to map to internal resources. */
	InternalID uint32
	/** @brief The name of the source mesh. */
	Name string
	/** @brief How the indices are assembled. */
	Mode geometry.DrawMode
	VertexCount uint32
	IndexCount  uint32
	/** @brief Backend private data. */
	InternalData interface{}
}

/**
 * @brief What a backend needs to draw one uploaded geometry.
 */
type GeometryRenderData struct {
	Geometry  *Geometry
	Shader    ShaderName
	Uniforms  []Uniform
	DepthTest bool
	CullMode  FaceCullMode
}
