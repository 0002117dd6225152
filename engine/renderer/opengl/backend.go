package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/geometry"
	"github.com/spaghettifunk/sketchbook/engine/renderer"
	"github.com/spaghettifunk/sketchbook/engine/renderer/metadata"
)

var _ renderer.RendererBackend = (*Backend)(nil)

// Vertex attribute locations shared by every built-in shader.
const (
	ATTRIBUTE_POSITION uint32 = 0
	ATTRIBUTE_COLOUR   uint32 = 1
	ATTRIBUTE_NORMAL   uint32 = 2
)

// Surface presents a finished frame. The platform window implements it.
type Surface interface {
	SwapBuffers()
}

type geometryBuffers struct {
	vao  uint32
	vbos []uint32
	ebo  uint32
}

/**
 * @brief The OpenGL 4.1 core renderer backend. Every method must be called
 * on the thread that owns the GL context.
 */
type Backend struct {
	surface  Surface
	programs map[metadata.ShaderName]*program
	current  *program

	width  uint32
	height uint32
	ids    core.IdentifierPool
}

func New(surface Surface) *Backend {
	return &Backend{
		surface:  surface,
		programs: make(map[metadata.ShaderName]*program),
	}
}

func (b *Backend) Initialize(config *metadata.RendererBackendConfig) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	core.LogInfo("%s: OpenGL %s, GLSL %s", config.ApplicationName,
		gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	gl.Enable(gl.MULTISAMPLE)
	gl.DepthFunc(gl.LESS)
	gl.FrontFace(gl.CCW)
	b.width = config.Width
	b.height = config.Height
	return nil
}

func (b *Backend) Shutdown() error {
	for name, p := range b.programs {
		p.destroy()
		delete(b.programs, name)
	}
	b.current = nil
	return nil
}

func (b *Backend) Resized(width, height uint32) error {
	b.width = width
	b.height = height
	return nil
}

func (b *Backend) BeginFrame(packet *metadata.RenderPacket) error {
	gl.Viewport(0, 0, int32(packet.Width), int32(packet.Height))
	c := packet.ClearColour.SerializeF32()
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	return nil
}

func (b *Backend) EndFrame(deltaTime float64) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		core.LogWarn("OpenGL error 0x%04x during frame", code)
	}
	b.surface.SwapBuffers()
	return nil
}

func (b *Backend) ShaderCreate(name metadata.ShaderName) error {
	if _, ok := b.programs[name]; ok {
		return nil
	}
	p, err := newProgram(name)
	if err != nil {
		return err
	}
	b.programs[name] = p
	core.LogDebug("shader %s created (program %d)", name, p.id)
	return nil
}

func (b *Backend) ShaderDestroy(name metadata.ShaderName) {
	if p, ok := b.programs[name]; ok {
		if b.current == p {
			b.current = nil
		}
		p.destroy()
		delete(b.programs, name)
	}
}

func uploadAttribute(location uint32, components int32, data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.VertexAttribPointer(location, components, gl.FLOAT, false, components*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(location)
	return vbo
}

// CreateGeometry uploads each attribute into its own buffer. Missing colours
// default to white through the generic attribute value.
func (b *Backend) CreateGeometry(mesh *geometry.Mesh) (*metadata.Geometry, error) {
	buffers := &geometryBuffers{}
	gl.GenVertexArrays(1, &buffers.vao)
	gl.BindVertexArray(buffers.vao)

	buffers.vbos = append(buffers.vbos, uploadAttribute(ATTRIBUTE_POSITION, 3, mesh.PositionsF32()))
	if len(mesh.Colours) > 0 {
		buffers.vbos = append(buffers.vbos, uploadAttribute(ATTRIBUTE_COLOUR, 4, mesh.ColoursF32()))
	} else {
		gl.VertexAttrib4f(ATTRIBUTE_COLOUR, 1, 1, 1, 1)
	}
	if len(mesh.Normals) > 0 {
		buffers.vbos = append(buffers.vbos, uploadAttribute(ATTRIBUTE_NORMAL, 3, mesh.NormalsF32()))
	}

	gl.GenBuffers(1, &buffers.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buffers.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	return &metadata.Geometry{
		ID:           mesh.ID,
		InternalID:   b.ids.Acquire(buffers),
		Name:         mesh.Name,
		Mode:         mesh.Mode,
		VertexCount:  uint32(mesh.VertexCount()),
		IndexCount:   uint32(mesh.IndexCount()),
		InternalData: buffers,
	}, nil
}

func (b *Backend) DestroyGeometry(g *metadata.Geometry) {
	buffers, ok := g.InternalData.(*geometryBuffers)
	if !ok {
		return
	}
	gl.DeleteBuffers(int32(len(buffers.vbos)), &buffers.vbos[0])
	gl.DeleteBuffers(1, &buffers.ebo)
	gl.DeleteVertexArrays(1, &buffers.vao)
	if err := b.ids.Release(g.InternalID); err != nil {
		core.LogWarn(err.Error())
	}
	g.InternalData = nil
}

func primitive(mode geometry.DrawMode) uint32 {
	switch mode {
	case geometry.Points:
		return gl.POINTS
	case geometry.Lines:
		return gl.LINES
	case geometry.LineLoop:
		return gl.LINE_LOOP
	}
	return gl.TRIANGLES
}

func (b *Backend) DrawGeometry(data *metadata.GeometryRenderData) error {
	p, ok := b.programs[data.Shader]
	if !ok {
		return fmt.Errorf("%w: %q", core.ErrUnknownShader, data.Shader)
	}
	buffers, ok := data.Geometry.InternalData.(*geometryBuffers)
	if !ok {
		return fmt.Errorf("%w: %s was not uploaded", core.ErrInvalidGeometry, data.Geometry.Name)
	}
	if b.current != p {
		gl.UseProgram(p.id)
		b.current = p
	}
	for _, u := range data.Uniforms {
		p.setUniform(u)
	}

	if data.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	switch data.CullMode {
	case metadata.FaceCullModeNone:
		gl.Disable(gl.CULL_FACE)
	case metadata.FaceCullModeFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	case metadata.FaceCullModeBack:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	case metadata.FaceCullModeFrontAndBack:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT_AND_BACK)
	}

	gl.BindVertexArray(buffers.vao)
	gl.DrawElements(primitive(data.Geometry.Mode), int32(data.Geometry.IndexCount), gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	return nil
}
