package math

import (
	"fmt"
)

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0.
 */
func NewVec2Zero() Vec2 {
	return Vec2{X: 0.0, Y: 0.0}
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

/**
 * Returns the dot product of v and other. Two vectors multiplied together
 * always means the dot product; there is no element-wise product.
 */
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

/**
 * Divides every component of v by scalar. A zero scalar yields
 * non-finite components; it is not checked.
 */
func (v Vec2) DivScalar(scalar float64) Vec2 {
	return Vec2{v.X / scalar, v.Y / scalar}
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2) Square() float64 {
	return v.Dot(v)
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @return The length.
 */
func (v Vec2) Length() float64 {
	return ksqrt(v.Square())
}

/**
 * Returns a unit vector pointing the same way as v.
 */
func (v Vec2) Normalize() Vec2 {
	return v.DivScalar(v.Length())
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_TOLERANCE or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec2) Compare(other Vec2, tolerance float64) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

// Serialize flattens the vector as [x, y].
func (v Vec2) Serialize() [2]float64 {
	return [2]float64{v.X, v.Y}
}

// SerializeF32 flattens the vector as [x, y] narrowed to 32-bit floats.
func (v Vec2) SerializeF32() [2]float32 {
	return [2]float32{float32(v.X), float32(v.Y)}
}

func (v Vec2) String() string {
	return fmt.Sprintf("Vec2:[%g,%g]", v.X, v.Y)
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Vec3FromArray builds a vector from an [x, y, z] triple, the shape used by
// config files.
func Vec3FromArray(a [3]float64) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0.
 */
func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVec3Down() Vec3 {
	return Vec3{0.0, -1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVec3Right() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVec3Forward() Vec3 {
	return Vec3{0.0, 0.0, -1.0}
}

/**
 * @brief Returns a new vec4 using v as the x, y and z components and w for w.
 *
 * @param w The w component.
 * @return A new vec4
 */
func (v Vec3) ToVec4(w float64) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// ToPoint lifts v to a homogeneous position (w = 1).
func (v Vec3) ToPoint() Vec4 {
	return v.ToVec4(1.0)
}

// At returns the component at index i (0 = x, 1 = y, 2 = z). Any other
// index is a programming error and panics with ErrIndexOutOfRange.
func (v Vec3) At(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Errorf("%w: %d not in [0, 2]", ErrIndexOutOfRange, i))
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 *
 * @param scalar The scalar value.
 * @return A copy of the resulting vector.
 */
func (v Vec3) MulScalar(scalar float64) Vec3 {
	return Vec3{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

// Scale is the free-function form of scalar multiplication, k * v.
func Scale(k float64, v Vec3) Vec3 {
	return v.MulScalar(k)
}

/**
 * @brief Divides all elements of v by scalar. Every component uses the same
 * divisor; a zero divisor produces non-finite components.
 */
func (v Vec3) DivScalar(scalar float64) Vec3 {
	return Vec3{
		v.X / scalar,
		v.Y / scalar,
		v.Z / scalar}
}

// Negate flips the sign of every component.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

/**
 * @brief Returns the dot product between v and other. Typically used
 * to calculate the difference in direction.
 *
 * @param other The second vector.
 * @return The dot product.
 */
func (v Vec3) Dot(other Vec3) float64 {
	p := float64(0)
	p += v.X * other.X
	p += v.Y * other.Y
	p += v.Z * other.Z
	return p
}

// Dot is the free-function form of Vec3.Dot.
func Dot(a, b Vec3) float64 {
	return a.Dot(b)
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec3) Square() float64 {
	return v.Dot(v)
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec3) Length() float64 {
	return ksqrt(v.Square())
}

/**
 * @brief Returns a normalized copy of v. The zero vector has no direction
 * and yields NaN components.
 */
func (v Vec3) Normalize() Vec3 {
	return v.DivScalar(v.Length())
}

/**
 * @brief Calculates and returns the cross product of v and other.
 * The cross product is a new vector which is orthogonal to both provided vectors.
 *
 * @param other The second vector.
 * @return The cross product.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Cross(v, other)
}

// Cross returns a × b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_TOLERANCE or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Compare(other Vec3, tolerance float64) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}

	if kabs(v.Y-other.Y) > tolerance {
		return false
	}

	if kabs(v.Z-other.Z) > tolerance {
		return false
	}

	return true
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec3) Distance(other Vec3) float64 {
	return v.Sub(other).Length()
}

/**
 * @brief Transform v by m. NOTE: It is assumed by this function that the
 * vector v is a point, not a direction, and is calculated as if a w component
 * with a value of 1.0 is there.
 *
 * @param m The matrix to transform by.
 * @return A transformed copy of v.
 */
func (v Vec3) Transform(m Mat4) Vec3 {
	return m.MulVec4(v.ToPoint()).ToVec3()
}

// Serialize flattens the vector as [x, y, z].
func (v Vec3) Serialize() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// SerializeF32 flattens the vector as [x, y, z] narrowed to 32-bit floats.
func (v Vec3) SerializeF32() [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

func (v Vec3) String() string {
	return fmt.Sprintf("Vec3:[%g,%g,%g]", v.X, v.Y, v.Z)
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 */
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 0.0.
 */
func NewVec4Zero() Vec4 {
	return Vec4{0.0, 0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 1.0.
 */
func NewVec4One() Vec4 {
	return Vec4{1.0, 1.0, 1.0, 1.0}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of v,
 * essentially dropping the w component.
 */
func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
		W: v.W + other.W,
	}
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
		W: v.W - other.W,
	}
}

func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vec4) Square() float64 {
	return v.Dot(v)
}

func (v Vec4) Length() float64 {
	return ksqrt(v.Square())
}

func (v Vec4) Normalize() Vec4 {
	length := v.Length()
	return Vec4{
		v.X / length,
		v.Y / length,
		v.Z / length,
		v.W / length}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vec4) Compare(other Vec4, tolerance float64) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}

	if kabs(v.Y-other.Y) > tolerance {
		return false
	}

	if kabs(v.Z-other.Z) > tolerance {
		return false
	}

	if kabs(v.W-other.W) > tolerance {
		return false
	}

	return true
}

// Serialize flattens the vector as [x, y, z, w].
func (v Vec4) Serialize() [4]float64 {
	return [4]float64{v.X, v.Y, v.Z, v.W}
}

// SerializeF32 flattens the vector as [x, y, z, w] narrowed to 32-bit floats.
func (v Vec4) SerializeF32() [4]float32 {
	return [4]float32{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

func (v Vec4) String() string {
	return fmt.Sprintf("Vec4:[%g,%g,%g,%g]", v.X, v.Y, v.Z, v.W)
}
