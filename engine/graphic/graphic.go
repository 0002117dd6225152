package graphic

import (
	m "math"

	"github.com/spaghettifunk/sketchbook/engine/math"
)

/**
 * @brief Creates and returns a translation matrix from the given offset.
 * Applied to a homogeneous point (x, y, z, 1) it yields
 * (x+offset.X, y+offset.Y, z+offset.Z, 1).
 *
 * @param offset The translation.
 * @return A newly created translation matrix.
 */
func Translate(offset math.Vec3) math.Mat4 {
	out_matrix := math.NewMat4Identity()
	out_matrix.Data[0][3] = offset.X
	out_matrix.Data[1][3] = offset.Y
	out_matrix.Data[2][3] = offset.Z
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided factors.
 *
 * @param factors The 3-component scale.
 * @return A scale matrix.
 */
func Scale(factors math.Vec3) math.Mat4 {
	out_matrix := math.NewMat4Identity()
	out_matrix.Data[0][0] = factors.X
	out_matrix.Data[1][1] = factors.Y
	out_matrix.Data[2][2] = factors.Z
	return out_matrix
}

/**
 * @brief Creates a rotation of angleDegrees around axis (Rodrigues' formula).
 * The axis does not need to be normalized. Positive angles rotate
 * counter-clockwise when looking down the axis towards the origin.
 *
 * @param axis The rotation axis.
 * @param angleDegrees The angle in degrees.
 * @return A rotation matrix.
 */
func Rotate(axis math.Vec3, angleDegrees float64) math.Mat4 {
	theta := 2.0 * math.K_PI * angleDegrees / 360.0
	n := axis.Normalize()
	c := m.Cos(theta)
	s := m.Sin(theta)
	k := 1.0 - c

	out_matrix := math.NewMat4Identity()
	out_matrix.Data[0][0] = n.X*n.X*k + c
	out_matrix.Data[0][1] = n.X*n.Y*k - n.Z*s
	out_matrix.Data[0][2] = n.X*n.Z*k + n.Y*s
	out_matrix.Data[1][0] = n.X*n.Y*k + n.Z*s
	out_matrix.Data[1][1] = n.Y*n.Y*k + c
	out_matrix.Data[1][2] = n.Y*n.Z*k - n.X*s
	out_matrix.Data[2][0] = n.X*n.Z*k - n.Y*s
	out_matrix.Data[2][1] = n.Y*n.Z*k + n.X*s
	out_matrix.Data[2][2] = n.Z*n.Z*k + c
	return out_matrix
}

/**
 * @brief Creates and returns a view matrix looking at center from eye.
 * The rows hold the camera basis: right, up and backward. up must not be
 * parallel to eye - center, otherwise the result is NaN.
 *
 * @param eye The camera position.
 * @param center The point to look at.
 * @param up The approximate up direction.
 * @return A view matrix.
 */
func LookAt(eye, center, up math.Vec3) math.Mat4 {
	z_axis := eye.Sub(center).Normalize()
	x_axis := math.Cross(up, z_axis).Normalize()
	y_axis := math.Cross(z_axis, x_axis)

	out_matrix := math.NewMat4Identity()
	out_matrix.Data[0] = [4]float64{x_axis.X, x_axis.Y, x_axis.Z, -eye.Dot(x_axis)}
	out_matrix.Data[1] = [4]float64{y_axis.X, y_axis.Y, y_axis.Z, -eye.Dot(y_axis)}
	out_matrix.Data[2] = [4]float64{z_axis.X, z_axis.Y, z_axis.Z, -eye.Dot(z_axis)}
	return out_matrix
}

/**
 * @brief Creates and returns a symmetric perspective matrix.
 *
 * @param fovyDegrees The vertical field of view in degrees.
 * @param aspect The aspect ratio (width / height).
 * @param near The near clipping plane distance.
 * @param far The far clipping plane distance.
 * @return A new perspective matrix.
 */
func Perspective(fovyDegrees, aspect, near, far float64) math.Mat4 {
	f := 1.0 / m.Tan(fovyDegrees*math.K_PI/360.0)
	out_matrix := math.Mat4{}
	out_matrix.Data[0][0] = f / aspect
	out_matrix.Data[1][1] = f
	out_matrix.Data[2][2] = -(far + near) / (far - near)
	out_matrix.Data[2][3] = -2.0 * far * near / (far - near)
	out_matrix.Data[3][2] = -1.0
	return out_matrix
}

/**
 * @brief Creates and returns an off-axis perspective matrix for the view
 * volume bounded by the given planes.
 */
func Frustum(left, right, bottom, top, near, far float64) math.Mat4 {
	out_matrix := math.Mat4{}
	out_matrix.Data[0][0] = 2.0 * near / (right - left)
	out_matrix.Data[0][2] = (right + left) / (right - left)
	out_matrix.Data[1][1] = 2.0 * near / (top - bottom)
	out_matrix.Data[1][2] = (top + bottom) / (top - bottom)
	out_matrix.Data[2][2] = -(far + near) / (far - near)
	out_matrix.Data[2][3] = -2.0 * far * near / (far - near)
	out_matrix.Data[3][2] = -1.0
	return out_matrix
}

// FrustumProjection is another name for Frustum.
func FrustumProjection(left, right, bottom, top, near, far float64) math.Mat4 {
	return Frustum(left, right, bottom, top, near, far)
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically
 * used to render flat or 2D scenes.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param near The near clipping plane distance.
 * @param far The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func Orthogonal(left, right, bottom, top, near, far float64) math.Mat4 {
	out_matrix := math.NewMat4Identity()
	out_matrix.Data[0][0] = 2.0 / (right - left)
	out_matrix.Data[0][3] = -(right + left) / (right - left)
	out_matrix.Data[1][1] = 2.0 / (top - bottom)
	out_matrix.Data[1][3] = -(top + bottom) / (top - bottom)
	out_matrix.Data[2][2] = -2.0 / (far - near)
	out_matrix.Data[2][3] = -(far + near) / (far - near)
	return out_matrix
}

// NormalMatrix returns the transposed upper-left 3x3 block of view, used to
// carry surface normals through a model-view transform.
func NormalMatrix(view math.Mat4) math.Mat3 {
	return view.Upper3().Transpose()
}

// PointToVec4 lifts v to a homogeneous position.
func PointToVec4(v math.Vec3) math.Vec4 {
	return v.ToPoint()
}
