package components

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/graphic"
	"github.com/spaghettifunk/sketchbook/engine/math"
)

const tol = 1e-9

func zUpCamera() *Camera {
	return NewCamera(
		math.NewVec3(2, 2, 2),
		math.NewVec3Zero(),
		math.NewVec3(0, 0, 1),
		DefaultProjection(),
	)
}

func TestCameraViewIsCached(t *testing.T) {
	c := zUpCamera()
	assert.True(t, c.IsDirty)

	v := c.GetView()
	assert.False(t, c.IsDirty)
	assert.Equal(t, graphic.LookAt(c.Eye, c.Center, c.Up), v)

	// stale until a setter marks it dirty
	c.Eye = math.NewVec3(5, 0, 0)
	assert.Equal(t, v, c.GetView())

	c.SetEye(math.NewVec3(5, 0, 0))
	assert.NotEqual(t, v, c.GetView())
}

func TestCameraViewProjection(t *testing.T) {
	c := zUpCamera()
	want := graphic.Perspective(30, 1, 1, 11).Mul(graphic.LookAt(c.Eye, c.Center, c.Up))
	assert.True(t, c.ViewProjection().Compare(want, tol))

	// the center lands in the middle of the screen
	clip := c.ViewProjection().MulVec4(graphic.PointToVec4(c.Center))
	assert.InDelta(t, 0.0, clip.X/clip.W, tol)
	assert.InDelta(t, 0.0, clip.Y/clip.W, tol)
}

func TestCameraSetAspect(t *testing.T) {
	c := zUpCamera()
	before := c.GetProjection()
	c.SetAspect(0, 600)
	assert.Equal(t, before, c.GetProjection())

	c.SetAspect(800, 400)
	assert.InDelta(t, 2.0, c.Projection.Aspect, tol)
	assert.InDelta(t, before.Data[0][0]/2, c.GetProjection().Data[0][0], tol)
	assert.InDelta(t, before.Data[1][1], c.GetProjection().Data[1][1], tol)
}

func TestCameraSetAspectOrthogonal(t *testing.T) {
	p := DefaultProjection()
	p.Kind = PROJECTION_ORTHOGONAL
	c := NewCamera(math.NewVec3(0, 0, 5), math.NewVec3Zero(), math.NewVec3Up(), p)
	c.SetAspect(400, 200)
	assert.InDelta(t, -2.0, c.Projection.Left, tol)
	assert.InDelta(t, 2.0, c.Projection.Right, tol)
	assert.InDelta(t, 1.0, c.Projection.Top, tol)
}

func TestCameraOrbit(t *testing.T) {
	c := zUpCamera()
	c.Orbit(4, 60, 45)
	theta := m.Pi * 60 / 180
	phi := m.Pi * 45 / 180
	want := math.NewVec3(4*m.Sin(theta)*m.Cos(phi), 4*m.Sin(theta)*m.Sin(phi), 4*m.Cos(theta))
	assert.True(t, c.Eye.Compare(want, tol), c.Eye.String())
	assert.InDelta(t, 4.0, c.Distance(), tol)

	c.SetCenter(math.NewVec3(1, 1, 1))
	c.Orbit(2, 0, 0)
	assert.True(t, c.Eye.Compare(math.NewVec3(1, 1, 3), tol))
}

func TestCameraYaw(t *testing.T) {
	c := NewCamera(math.NewVec3(3, 0, 1), math.NewVec3Zero(), math.NewVec3(0, 0, 1), DefaultProjection())
	c.Yaw(90)
	assert.True(t, c.Eye.Compare(math.NewVec3(0, 3, 1), tol), c.Eye.String())
	assert.InDelta(t, m.Sqrt(10), c.Distance(), tol)
}

func TestCameraPitchClamp(t *testing.T) {
	c := NewCamera(math.NewVec3(5, 0, 0), math.NewVec3Zero(), math.NewVec3(0, 0, 1), DefaultProjection())
	c.Pitch(30)
	assert.InDelta(t, 5*m.Sin(m.Pi/6), c.Eye.Z, tol)
	assert.InDelta(t, 5.0, c.Distance(), tol)

	c.Pitch(120)
	elevation := m.Asin(c.Eye.Z/c.Distance()) * 180 / m.Pi
	assert.InDelta(t, PITCH_LIMIT_DEGREES, elevation, 1e-6)
	require.NoError(t, c.Validate())

	c.Pitch(-500)
	elevation = m.Asin(c.Eye.Z/c.Distance()) * 180 / m.Pi
	assert.InDelta(t, -PITCH_LIMIT_DEGREES, elevation, 1e-6)
}

func TestCameraZoomAndReset(t *testing.T) {
	c := zUpCamera()
	c.Zoom(2)
	assert.True(t, c.Eye.Compare(math.NewVec3(4, 4, 4), tol))
	c.Zoom(-1)
	assert.True(t, c.Eye.Compare(math.NewVec3(4, 4, 4), tol))

	c.Reset()
	assert.Equal(t, math.NewVec3(2, 2, 2), c.Eye)

	c.SetHome(math.NewVec3(0, 0, 5), math.NewVec3Zero(), math.NewVec3Up())
	c.Reset()
	assert.Equal(t, math.NewVec3(0, 0, 5), c.Eye)
	assert.Equal(t, math.NewVec3Up(), c.Up)
}

func TestCameraBasis(t *testing.T) {
	c := NewCamera(math.NewVec3(0, 0, 5), math.NewVec3Zero(), math.NewVec3Up(), DefaultProjection())
	assert.True(t, c.Backward().Compare(math.NewVec3(0, 0, 1), tol))
	assert.True(t, c.Forward().Compare(math.NewVec3(0, 0, -1), tol))
	assert.True(t, c.Right().Compare(math.NewVec3(1, 0, 0), tol))
	assert.True(t, c.CameraUp().Compare(math.NewVec3(0, 1, 0), tol))
}

func TestCameraNormalMatrix(t *testing.T) {
	c := zUpCamera()
	model := graphic.Translate(math.NewVec3(0.25, -0.25, 0)).Mul(graphic.Scale(math.NewVec3(0.3, 0.3, 0.3)))
	assert.Equal(t, c.GetView().Mul(model).Upper3().Transpose(), c.NormalMatrix(model))
}

func TestCameraValidate(t *testing.T) {
	require.NoError(t, zUpCamera().Validate())

	c := NewCamera(math.NewVec3(0, 0, 5), math.NewVec3Zero(), math.NewVec3(0, 0, 1), DefaultProjection())
	assert.ErrorIs(t, c.Validate(), core.ErrDegenerateCamera)

	c = NewCamera(math.NewVec3Zero(), math.NewVec3Zero(), math.NewVec3Up(), DefaultProjection())
	assert.ErrorIs(t, c.Validate(), core.ErrDegenerateCamera)

	p := DefaultProjection()
	p.Far = p.Near
	c = NewCamera(math.NewVec3(0, 0, 5), math.NewVec3Zero(), math.NewVec3Up(), p)
	assert.ErrorIs(t, c.Validate(), core.ErrInvalidProjection)
}

func TestProjection(t *testing.T) {
	p := DefaultProjection()
	assert.Equal(t, graphic.Perspective(30, 1, 1, 11), p.Matrix())

	p.Kind = PROJECTION_FRUSTUM
	assert.Equal(t, graphic.Frustum(-1, 1, -1, 1, 1, 11), p.Matrix())
	p.Left = p.Right
	assert.ErrorIs(t, p.Validate(), core.ErrInvalidProjection)

	p = DefaultProjection()
	p.Kind = PROJECTION_ORTHOGONAL
	assert.Equal(t, graphic.Orthogonal(-1, 1, -1, 1, 1, 11), p.Matrix())
	require.NoError(t, p.Validate())

	p = DefaultProjection()
	p.Aspect = 0
	assert.ErrorIs(t, p.Validate(), core.ErrInvalidProjection)
	p = DefaultProjection()
	p.FovY = m.Inf(1)
	assert.ErrorIs(t, p.Validate(), core.ErrInvalidProjection)
}

func TestParseProjectionKind(t *testing.T) {
	cases := map[string]ProjectionKind{
		"perspective": PROJECTION_PERSPECTIVE,
		"frustum":     PROJECTION_FRUSTUM,
		"projection":  PROJECTION_FRUSTUM,
		"orthogonal":  PROJECTION_ORTHOGONAL,
	}
	for name, want := range cases {
		got, err := ParseProjectionKind(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseProjectionKind("fisheye")
	assert.ErrorIs(t, err, core.ErrInvalidProjection)
	assert.Equal(t, "frustum", PROJECTION_FRUSTUM.String())
}
