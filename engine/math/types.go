package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float64
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 represents a 4D vector, mostly used as a homogeneous coordinate.
type Vec4 struct {
	X, Y, Z, W float64
}

/**
 * @brief a 3x3 matrix, typically used to transform normals.
 * Elements are addressed as Data[row][col].
 */
type Mat3 struct {
	/** @brief The matrix elements */
	Data [3][3]float64
}

/**
 * @brief a 4x4 matrix, typically used to represent object transformations.
 * Elements are addressed as Data[row][col].
 */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [4][4]float64
}
