package components

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/graphic"
	"github.com/spaghettifunk/sketchbook/engine/math"
)

// Pitch is clamped to this elevation, in degrees, so the view direction
// never becomes parallel to Up.
const PITCH_LIMIT_DEGREES = 89.0

// Squared sine of the smallest angle allowed between Up and the view direction.
const collinearTolerance = 1e-12

/**
 * @brief Represents a camera looking from Eye at Center, with a projection.
 * NOTE: Do not set the fields directly, use the setters so the cached
 * matrices are rebuilt when needed.
 */
type Camera struct {
	/** @brief The position of this camera. */
	Eye math.Vec3
	/** @brief The point the camera looks at. */
	Center math.Vec3
	/** @brief The approximate up direction. Must not be parallel to Eye - Center. */
	Up math.Vec3
	/** @brief The projection parameters. */
	Projection Projection

	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/** @brief Internal flag used to determine when the projection matrix needs to be rebuilt. */
	IsProjectionDirty bool
	/**
	 * @brief The view matrix of this camera.
	 * NOTE: IMPORTANT: Do not get this directly, use GetView() instead
	 * so the view matrix is recalculated when needed.
	 */
	ViewMatrix math.Mat4
	/** @brief The cached projection matrix, see GetProjection(). */
	ProjectionMatrix math.Mat4

	homeEye, homeCenter, homeUp math.Vec3
}

func NewCamera(eye, center, up math.Vec3, projection Projection) *Camera {
	c := &Camera{
		homeEye:    eye,
		homeCenter: center,
		homeUp:     up,
		Projection: projection,
	}
	c.Reset()
	return c
}

// Reset restores the eye, center and up the camera was created with, or
// last re-homed to with SetHome.
func (c *Camera) Reset() {
	c.SetLookAt(c.homeEye, c.homeCenter, c.homeUp)
	c.IsProjectionDirty = true
}

// SetHome changes the pose Reset returns to.
func (c *Camera) SetHome(eye, center, up math.Vec3) {
	c.homeEye = eye
	c.homeCenter = center
	c.homeUp = up
}

func (c *Camera) SetLookAt(eye, center, up math.Vec3) {
	c.Eye = eye
	c.Center = center
	c.Up = up
	c.IsDirty = true
}

func (c *Camera) SetEye(eye math.Vec3) {
	c.Eye = eye
	c.IsDirty = true
}

func (c *Camera) SetCenter(center math.Vec3) {
	c.Center = center
	c.IsDirty = true
}

func (c *Camera) SetUp(up math.Vec3) {
	c.Up = up
	c.IsDirty = true
}

func (c *Camera) SetProjection(projection Projection) {
	c.Projection = projection
	c.IsProjectionDirty = true
}

// SetAspect adapts the projection to a framebuffer of width x height.
// A zero sized framebuffer (minimized window) is ignored.
func (c *Camera) SetAspect(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}
	c.Projection = c.Projection.withAspect(float64(width) / float64(height))
	c.IsProjectionDirty = true
}

// Validate reports a pose for which no view matrix exists.
func (c *Camera) Validate() error {
	dir := c.Eye.Sub(c.Center)
	if dir.Square() == 0 {
		return fmt.Errorf("%w: eye and center are both %s", core.ErrDegenerateCamera, c.Eye)
	}
	if math.Cross(c.Up, dir).Square() <= collinearTolerance*dir.Square()*c.Up.Square() {
		return fmt.Errorf("%w: up %s, eye - center %s", core.ErrDegenerateCamera, c.Up, dir)
	}
	return c.Projection.Validate()
}

func (c *Camera) GetView() math.Mat4 {
	if c.IsDirty {
		c.ViewMatrix = graphic.LookAt(c.Eye, c.Center, c.Up)
		c.IsDirty = false
	}
	return c.ViewMatrix
}

func (c *Camera) GetProjection() math.Mat4 {
	if c.IsProjectionDirty {
		c.ProjectionMatrix = c.Projection.Matrix()
		c.IsProjectionDirty = false
	}
	return c.ProjectionMatrix
}

// ViewProjection returns projection * view, the model-less mvp.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.GetProjection().Mul(c.GetView())
}

// NormalMatrix returns the normal matrix for model seen by this camera.
func (c *Camera) NormalMatrix(model math.Mat4) math.Mat3 {
	return graphic.NormalMatrix(c.GetView().Mul(model))
}

func (c *Camera) Forward() math.Vec3 {
	return c.GetView().Forward()
}

func (c *Camera) Backward() math.Vec3 {
	return c.GetView().Backward()
}

func (c *Camera) Right() math.Vec3 {
	return c.GetView().Right()
}

func (c *Camera) CameraUp() math.Vec3 {
	return c.GetView().Up()
}

// Distance is how far the eye is from the center.
func (c *Camera) Distance() float64 {
	return c.Eye.Distance(c.Center)
}

/**
 * @brief Places the eye on a sphere around Center.
 *
 * @param radius The distance from Center.
 * @param thetaDegrees The polar angle, measured from +Z.
 * @param phiDegrees The azimuth, measured from +X towards +Y.
 */
func (c *Camera) Orbit(radius, thetaDegrees, phiDegrees float64) {
	theta := math.DegToRad(thetaDegrees)
	phi := math.DegToRad(phiDegrees)
	offset := math.NewVec3(
		radius*m.Sin(theta)*m.Cos(phi),
		radius*m.Sin(theta)*m.Sin(phi),
		radius*m.Cos(theta),
	)
	c.SetEye(c.Center.Add(offset))
}

// Yaw turns the eye around Center about the Up axis.
func (c *Camera) Yaw(degrees float64) {
	offset := c.Eye.Sub(c.Center)
	offset = offset.Transform(graphic.Rotate(c.Up, degrees))
	c.SetEye(c.Center.Add(offset))
}

// Pitch raises (positive) or lowers the eye around Center, keeping its
// elevation above the plane normal to Up within +/-PITCH_LIMIT_DEGREES.
func (c *Camera) Pitch(degrees float64) {
	offset := c.Eye.Sub(c.Center)
	up := c.Up.Normalize()
	elevation := math.RadToDeg(m.Asin(math.Clamp(offset.Normalize().Dot(up), -1.0, 1.0)))
	target := math.Clamp(elevation+degrees, -PITCH_LIMIT_DEGREES, PITCH_LIMIT_DEGREES)
	axis := math.Cross(offset, up)
	if axis.Square() == 0 || target == elevation {
		return
	}
	offset = offset.Transform(graphic.Rotate(axis, target-elevation))
	c.SetEye(c.Center.Add(offset))
}

// Zoom scales the eye's distance to Center by factor.
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	offset := c.Eye.Sub(c.Center).MulScalar(factor)
	c.SetEye(c.Center.Add(offset))
}
