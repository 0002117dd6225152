package renderer

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/geometry"
	"github.com/spaghettifunk/sketchbook/engine/renderer/metadata"
)

type RendererType uint8

const (
	OpenGL RendererType = iota
)

/**
 * @brief The renderer frontend. Owns the GPU copies of meshes, keyed by mesh
 * ID, and turns render packets into backend calls.
 */
type Renderer struct {
	backend    RendererBackend
	geometries map[uuid.UUID]*metadata.Geometry
	shaders    map[metadata.ShaderName]bool

	width, height uint32
	initialized   bool
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{
		backend:    backend,
		geometries: make(map[uuid.UUID]*metadata.Geometry),
		shaders:    make(map[metadata.ShaderName]bool),
	}
}

// Initialize starts the backend and builds every built-in shader.
func (r *Renderer) Initialize(appName string, width, height uint32) error {
	config := &metadata.RendererBackendConfig{
		ApplicationName: appName,
		Width:           width,
		Height:          height,
	}
	if err := r.backend.Initialize(config); err != nil {
		return err
	}
	for _, name := range metadata.BuiltinShaders {
		if err := r.backend.ShaderCreate(name); err != nil {
			core.LogError("failed to create shader %s: %s", name, err)
			return err
		}
		r.shaders[name] = true
	}
	r.width = width
	r.height = height
	r.initialized = true
	core.LogInfo("renderer initialized (%dx%d)", width, height)
	return nil
}

func (r *Renderer) Shutdown() error {
	if !r.initialized {
		return nil
	}
	for id, g := range r.geometries {
		r.backend.DestroyGeometry(g)
		delete(r.geometries, id)
	}
	for name := range r.shaders {
		r.backend.ShaderDestroy(name)
		delete(r.shaders, name)
	}
	r.initialized = false
	return r.backend.Shutdown()
}

func (r *Renderer) OnResize(width, height uint32) error {
	r.width = width
	r.height = height
	if width == 0 || height == 0 {
		return nil
	}
	return r.backend.Resized(width, height)
}

// GeometryCount is the number of meshes currently on the GPU.
func (r *Renderer) GeometryCount() int {
	return len(r.geometries)
}

// Release frees the GPU copy of mesh, if any.
func (r *Renderer) Release(mesh *geometry.Mesh) {
	if g, ok := r.geometries[mesh.ID]; ok {
		r.backend.DestroyGeometry(g)
		delete(r.geometries, mesh.ID)
	}
}

// acquire uploads mesh on first use.
func (r *Renderer) acquire(mesh *geometry.Mesh) (*metadata.Geometry, error) {
	if g, ok := r.geometries[mesh.ID]; ok {
		return g, nil
	}
	g, err := r.backend.CreateGeometry(mesh)
	if err != nil {
		return nil, err
	}
	core.LogDebug("uploaded geometry %s (%d vertices, %d indices)", mesh.Name, g.VertexCount, g.IndexCount)
	r.geometries[mesh.ID] = g
	return g, nil
}

func (r *Renderer) validate(call *metadata.DrawCall) error {
	if call.Geometry == nil {
		return fmt.Errorf("%w: draw call without geometry", core.ErrInvalidGeometry)
	}
	if _, uploaded := r.geometries[call.Geometry.ID]; !uploaded {
		if err := call.Geometry.Validate(); err != nil {
			return err
		}
	}
	if !r.shaders[call.Shader] {
		return fmt.Errorf("%w: %q", core.ErrUnknownShader, call.Shader)
	}
	set := make(map[string]bool, len(call.Uniforms))
	for _, u := range call.Uniforms {
		if err := u.Validate(); err != nil {
			return err
		}
		set[u.Name] = true
	}
	for _, name := range call.Shader.RequiredUniforms() {
		if !set[name] {
			return fmt.Errorf("%w: shader %s needs %s", core.ErrInvalidUniform, call.Shader, name)
		}
	}
	return nil
}

// DrawFrame executes packet. A zero sized framebuffer skips the frame.
func (r *Renderer) DrawFrame(packet *metadata.RenderPacket) error {
	if !r.initialized {
		return core.ErrNotInitialized
	}
	for _, mesh := range packet.Released {
		r.Release(mesh)
	}
	if packet.Width == 0 || packet.Height == 0 {
		return nil
	}
	for i := range packet.DrawCalls {
		if err := r.validate(&packet.DrawCalls[i]); err != nil {
			return fmt.Errorf("draw call %d: %w", i, err)
		}
	}
	if err := r.backend.BeginFrame(packet); err != nil {
		core.LogError(err.Error())
		return err
	}
	for i := range packet.DrawCalls {
		call := &packet.DrawCalls[i]
		g, err := r.acquire(call.Geometry)
		if err != nil {
			return fmt.Errorf("draw call %d: %w", i, err)
		}
		data := &metadata.GeometryRenderData{
			Geometry:  g,
			Shader:    call.Shader,
			Uniforms:  call.Uniforms,
			DepthTest: call.DepthTest,
			CullMode:  call.CullMode,
		}
		if err := r.backend.DrawGeometry(data); err != nil {
			return err
		}
	}
	if err := r.backend.EndFrame(packet.DeltaTime); err != nil {
		core.LogError("RendererEndFrame failed. Application shutting down...")
		return err
	}
	return nil
}
