package sketches

import (
	m "math"

	"github.com/spaghettifunk/sketchbook/engine/config"
	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/geometry"
	"github.com/spaghettifunk/sketchbook/engine/math"
	"github.com/spaghettifunk/sketchbook/engine/renderer/components"
	"github.com/spaghettifunk/sketchbook/engine/renderer/metadata"
)

const (
	// Degrees per second the arrow keys turn the camera.
	ORBIT_ANGLE_SPEED = 45.0
	// Units per second the zoom keys move the camera.
	ORBIT_ZOOM_SPEED = 2.0
	ORBIT_MIN_RADIUS = 0.1
)

// orbit places the eye on a sphere around the origin. Angles are in degrees,
// theta from +Z and phi from +X towards +Y.
type orbit struct {
	radius float64
	theta  float64
	phi    float64
}

/**
 * @brief Draws wireframe meshes seen by a camera orbiting the origin.
 * Arrows turn the camera, minus and equal zoom, space toggles automatic
 * rotation and R restores the starting position.
 */
type orbitSketch struct {
	name     string
	meshes   []*geometry.Mesh
	camera   *components.Camera
	home     orbit
	current  orbit
	speed    float64
	rotating bool
}

func newOrbitSketch(name string, cfg *config.Config, home orbit, up math.Vec3, meshes ...*geometry.Mesh) *orbitSketch {
	s := &orbitSketch{
		name:    name,
		meshes:  meshes,
		home:    home,
		current: home,
		speed:   cfg.Camera.OrbitSpeed,
	}
	s.camera = components.NewCamera(math.NewVec3Zero(), math.NewVec3Zero(), up, components.DefaultProjection())
	s.camera.Orbit(home.radius, home.theta, home.phi)
	s.camera.SetHome(s.camera.Eye, s.camera.Center, up)
	return s
}

func newCircle(cfg *config.Config) (Sketch, error) {
	circle, err := geometry.FrameCircle(0.5, 24, geometry.ColourWhite)
	if err != nil {
		return nil, err
	}
	return newOrbitSketch("circle", cfg, orbit{radius: 2.0}, math.NewVec3(0, 1, 0), circle), nil
}

func newCube(cfg *config.Config) (Sketch, error) {
	cube := geometry.FrameCube(0.5, geometry.ColourRed)
	return newOrbitSketch("cube", cfg, orbit{radius: 7.0, theta: 45.0, phi: 45.0}, math.NewVec3(0, 1, 0), cube), nil
}

func newFrameSphere(cfg *config.Config) (Sketch, error) {
	sphere, err := geometry.FrameSphere(0.5, 24, 16, geometry.ColourWhite)
	if err != nil {
		return nil, err
	}
	axes := geometry.CoordinateAxes(1.0)
	return newOrbitSketch("frame-sphere", cfg, orbit{radius: 4.0, theta: 60.0, phi: 45.0}, math.NewVec3(0, 0, 1), sphere, axes), nil
}

func (s *orbitSketch) Initialize() error {
	for _, mesh := range s.meshes {
		if err := mesh.Validate(); err != nil {
			return err
		}
	}
	core.EventRegister(core.EVENT_CODE_CAMERA_RESET, s, s.onCameraReset)
	return s.camera.Validate()
}

func (s *orbitSketch) Update(deltaTime float64) error {
	next := s.current
	step := ORBIT_ANGLE_SPEED * deltaTime
	if core.InputIsKeyDown(core.KEY_LEFT) {
		next.phi -= step
	}
	if core.InputIsKeyDown(core.KEY_RIGHT) {
		next.phi += step
	}
	if core.InputIsKeyDown(core.KEY_UP) {
		next.theta -= step
	}
	if core.InputIsKeyDown(core.KEY_DOWN) {
		next.theta += step
	}
	if core.InputIsKeyDown(core.KEY_MINUS) {
		next.radius += ORBIT_ZOOM_SPEED * deltaTime
	}
	if core.InputIsKeyDown(core.KEY_EQUAL) {
		next.radius = m.Max(next.radius-ORBIT_ZOOM_SPEED*deltaTime, ORBIT_MIN_RADIUS)
	}
	if core.InputKeyPressedThisFrame(core.KEY_SPACE) {
		s.rotating = !s.rotating
		core.LogDebug("%s: auto rotation %t", s.name, s.rotating)
	}
	if s.rotating {
		next.phi = m.Mod(next.phi+s.speed*deltaTime, 360.0)
	}
	if next == s.current {
		return nil
	}

	s.camera.Orbit(next.radius, next.theta, next.phi)
	if err := s.camera.Validate(); err != nil {
		// the eye ended up on the up axis, stay where we were
		s.camera.Orbit(s.current.radius, s.current.theta, s.current.phi)
		return nil
	}
	s.current = next
	return nil
}

func (s *orbitSketch) Render(packet *metadata.RenderPacket, deltaTime float64) error {
	mvp := s.camera.ViewProjection()
	for _, mesh := range s.meshes {
		packet.Add(metadata.DrawCall{
			Geometry: mesh,
			Shader:   metadata.ShaderSimple,
			Uniforms: []metadata.Uniform{metadata.Mat4Uniform("mvp", mvp)},
		})
	}
	return nil
}

func (s *orbitSketch) OnResize(width, height uint32) error {
	s.camera.SetAspect(width, height)
	return nil
}

func (s *orbitSketch) OnConfigChanged(cfg *config.Config) error {
	s.speed = cfg.Camera.OrbitSpeed
	return nil
}

func (s *orbitSketch) Shutdown() error {
	core.EventUnregister(core.EVENT_CODE_CAMERA_RESET, s)
	return nil
}

func (s *orbitSketch) onCameraReset(context core.EventContext, listener interface{}) bool {
	s.current = s.home
	s.rotating = false
	s.camera.Reset()
	return false
}
