package sketches

import (
	m "math"

	"github.com/spaghettifunk/sketchbook/engine/config"
	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/geometry"
	"github.com/spaghettifunk/sketchbook/engine/graphic"
	"github.com/spaghettifunk/sketchbook/engine/math"
	"github.com/spaghettifunk/sketchbook/engine/renderer/components"
	"github.com/spaghettifunk/sketchbook/engine/renderer/metadata"
	"github.com/spaghettifunk/sketchbook/engine/systems"
)

// Degrees per second the arrow keys turn the camera around the sphere.
const SPHERE_TURN_SPEED = 60.0

/**
 * @brief A lit sphere with the coordinate axes, seen through the camera of
 * the configuration. Arrows yaw and pitch, minus and equal zoom and R
 * restores the configured camera.
 *
 * The editor variant applies every reloaded configuration while running:
 * camera, projection, light and sphere tessellation. The sphere is rebuilt
 * on a worker and swapped in by Update.
 */
type sphereSketch struct {
	name      string
	live      bool
	camera    *components.Camera
	transform *graphic.Transform
	sphere    *geometry.Mesh
	axes      *geometry.Mesh
	params    config.SphereConfig
	jobs      *systems.JobSystem
	rebuilt   chan tessellation
	light     math.Vec3
	stale     []*geometry.Mesh
	width     uint32
	height    uint32
}

// tessellation is a sphere rebuilt for a configuration.
type tessellation struct {
	params config.SphereConfig
	mesh   *geometry.Mesh
}

func newSphere(live bool) Factory {
	return func(cfg *config.Config) (Sketch, error) {
		name := "sphere"
		if live {
			name = "sphere-editor"
		}
		camera, err := cfg.NewCamera()
		if err != nil {
			return nil, err
		}
		sphere, err := litSphere(cfg.Sphere)
		if err != nil {
			return nil, err
		}
		return &sphereSketch{
			name:   name,
			live:   live,
			camera: camera,
			transform: graphic.NewTransformFromPositionRotationScale(
				math.NewVec3(0.25, -0.25, 0.0), math.NewVec3Up(), 0, math.NewVec3(0.3, 0.3, 0.3)),
			sphere:  sphere,
			axes:    geometry.CoordinateAxes(1.0),
			params:  cfg.Sphere,
			rebuilt: make(chan tessellation, 1),
			light:   cfg.LightPosition(),
			width:   cfg.Window.Width,
			height:  cfg.Window.Height,
		}, nil
	}
}

func litSphere(params config.SphereConfig) (*geometry.Mesh, error) {
	return geometry.Sphere(params.Radius, params.Slices, params.Stacks, geometry.ColourYellow)
}

func (s *sphereSketch) Initialize() error {
	if err := s.sphere.Validate(); err != nil {
		return err
	}
	if s.live {
		jobs, err := systems.NewJobSystem(1, 4)
		if err != nil {
			return err
		}
		s.jobs = jobs
	}
	core.EventRegister(core.EVENT_CODE_CAMERA_RESET, s, s.onCameraReset)
	core.LogDebug("%s: %d vertices, %d indices", s.name, s.sphere.VertexCount(), s.sphere.IndexCount())
	return nil
}

// rebuild tessellates a sphere for params on the job system.
func (s *sphereSketch) rebuild(params config.SphereConfig) error {
	if s.jobs == nil {
		return core.ErrNotInitialized
	}
	return s.jobs.Submit(systems.JobTask{
		Name: "tessellate sphere",
		Run: func() (interface{}, error) {
			return litSphere(params)
		},
		OnComplete: func(result interface{}) {
			t := tessellation{params: params, mesh: result.(*geometry.Mesh)}
			for {
				select {
				case s.rebuilt <- t:
					return
				default:
				}
				// drop the older sphere still waiting
				select {
				case <-s.rebuilt:
				default:
				}
			}
		},
	})
}

// swapRebuilt takes the rebuilt sphere, if any. Spheres for a superseded
// configuration are dropped.
func (s *sphereSketch) swapRebuilt() {
	select {
	case t := <-s.rebuilt:
		if t.params != s.params {
			return
		}
		s.stale = append(s.stale, s.sphere)
		s.sphere = t.mesh
		core.LogDebug("%s: sphere rebuilt with %d slices and %d stacks", s.name, t.params.Slices, t.params.Stacks)
	default:
	}
}

func (s *sphereSketch) Update(deltaTime float64) error {
	s.swapRebuilt()
	step := SPHERE_TURN_SPEED * deltaTime
	if core.InputIsKeyDown(core.KEY_LEFT) {
		s.camera.Yaw(-step)
	}
	if core.InputIsKeyDown(core.KEY_RIGHT) {
		s.camera.Yaw(step)
	}
	if core.InputIsKeyDown(core.KEY_UP) {
		s.camera.Pitch(step)
	}
	if core.InputIsKeyDown(core.KEY_DOWN) {
		s.camera.Pitch(-step)
	}
	if core.InputIsKeyDown(core.KEY_MINUS) {
		s.camera.Zoom(m.Pow(2.0, deltaTime))
	}
	if core.InputIsKeyDown(core.KEY_EQUAL) {
		s.camera.Zoom(m.Pow(2.0, -deltaTime))
	}
	return nil
}

func (s *sphereSketch) Render(packet *metadata.RenderPacket, deltaTime float64) error {
	for _, mesh := range s.stale {
		packet.Release(mesh)
	}
	s.stale = nil

	model := s.transform.GetLocal()
	view := s.camera.GetView()
	projection := s.camera.GetProjection()

	packet.Add(metadata.DrawCall{
		Geometry: s.sphere,
		Shader:   metadata.ShaderLighting,
		Uniforms: []metadata.Uniform{
			metadata.Mat4Uniform("model", model),
			metadata.Mat4Uniform("view", view),
			metadata.Mat4Uniform("projection", projection),
			metadata.Mat3Uniform("normal_matrix", s.camera.NormalMatrix(model)),
			metadata.Vec3Uniform("light_position", s.light),
		},
		DepthTest: true,
		CullMode:  metadata.FaceCullModeBack,
	})
	packet.Add(metadata.DrawCall{
		Geometry: s.axes,
		Shader:   metadata.ShaderSimple,
		Uniforms: []metadata.Uniform{metadata.Mat4Uniform("mvp", projection.Mul(view))},
	})
	return nil
}

func (s *sphereSketch) OnResize(width, height uint32) error {
	s.width = width
	s.height = height
	s.camera.SetAspect(width, height)
	return nil
}

func (s *sphereSketch) OnConfigChanged(cfg *config.Config) error {
	if !s.live {
		core.LogInfo("%s: restart to apply the new configuration, or run sphere-editor", s.name)
		return nil
	}
	camera, err := cfg.NewCamera()
	if err != nil {
		return err
	}
	if cfg.Sphere != s.params {
		if err := s.rebuild(cfg.Sphere); err != nil {
			return err
		}
		s.params = cfg.Sphere
	}
	camera.SetAspect(s.width, s.height)
	s.camera = camera
	s.light = cfg.LightPosition()
	return nil
}

func (s *sphereSketch) Shutdown() error {
	core.EventUnregister(core.EVENT_CODE_CAMERA_RESET, s)
	if s.jobs != nil {
		return s.jobs.Shutdown()
	}
	return nil
}

func (s *sphereSketch) onCameraReset(context core.EventContext, listener interface{}) bool {
	s.camera.Reset()
	return false
}
