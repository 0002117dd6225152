package math

import (
	"fmt"
	"strings"
)

// ------------------------------------------
// Matrix 3x3
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0},
 *   {0, 1, 0},
 *   {0, 0, 1}
 * }
 */
func NewMat3Identity() Mat3 {
	out_matrix := Mat3{}
	out_matrix.Data[0][0] = 1.0
	out_matrix.Data[1][1] = 1.0
	out_matrix.Data[2][2] = 1.0
	return out_matrix
}

// NewMat3Zero returns the matrix with every element set to zero.
func NewMat3Zero() Mat3 {
	return Mat3{}
}

func (mt Mat3) Add(other Mat3) Mat3 {
	out_matrix := Mat3{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out_matrix.Data[i][j] = mt.Data[i][j] + other.Data[i][j]
		}
	}
	return out_matrix
}

func (mt Mat3) Sub(other Mat3) Mat3 {
	out_matrix := Mat3{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out_matrix.Data[i][j] = mt.Data[i][j] - other.Data[i][j]
		}
	}
	return out_matrix
}

/**
 * @brief Returns the result of multiplying mt and other. Entry (i, j) is the
 * dot product of row i of mt and column j of other.
 */
func (mt Mat3) Mul(other Mat3) Mat3 {
	out_matrix := Mat3{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sum := float64(0)
			for i := 0; i < 3; i++ {
				sum += mt.Data[row][i] * other.Data[i][col]
			}
			out_matrix.Data[row][col] = sum
		}
	}
	return out_matrix
}

// MulVec3 returns mt * v, treating v as a column vector.
func (mt Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		mt.Data[0][0]*v.X + mt.Data[0][1]*v.Y + mt.Data[0][2]*v.Z,
		mt.Data[1][0]*v.X + mt.Data[1][1]*v.Y + mt.Data[1][2]*v.Z,
		mt.Data[2][0]*v.X + mt.Data[2][1]*v.Y + mt.Data[2][2]*v.Z,
	}
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 */
func (mt Mat3) Transpose() Mat3 {
	out_matrix := Mat3{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out_matrix.Data[i][j] = mt.Data[j][i]
		}
	}
	return out_matrix
}

// Row returns row i. Indexing the result selects the column.
func (mt Mat3) Row(i int) [3]float64 {
	return mt.Data[i]
}

func (mt Mat3) At(row, col int) float64 {
	return mt.Data[row][col]
}

func (mt Mat3) Compare(other Mat3, tolerance float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if kabs(mt.Data[i][j]-other.Data[i][j]) > tolerance {
				return false
			}
		}
	}
	return true
}

// Serialize flattens the matrix in row-major order.
func (mt Mat3) Serialize() [9]float64 {
	out := [9]float64{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i*3+j] = mt.Data[i][j]
		}
	}
	return out
}

// SerializeF32 flattens the matrix in row-major order, narrowing every
// element to the nearest float32. Out of range values become +/-Inf.
func (mt Mat3) SerializeF32() [9]float32 {
	out := [9]float32{}
	for i, v := range mt.Serialize() {
		out[i] = float32(v)
	}
	return out
}

func (mt Mat3) String() string {
	rows := make([][]float64, 0, 3)
	for i := range mt.Data {
		rows = append(rows, mt.Data[i][:])
	}
	return formatMatrix("Mat3", rows)
}

// ------------------------------------------
// Matrix 4x4
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0][0] = 1.0
	out_matrix.Data[1][1] = 1.0
	out_matrix.Data[2][2] = 1.0
	out_matrix.Data[3][3] = 1.0
	return out_matrix
}

// NewMat4Zero returns the matrix with every element set to zero.
func NewMat4Zero() Mat4 {
	return Mat4{}
}

func (mt Mat4) Add(other Mat4) Mat4 {
	out_matrix := Mat4{}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out_matrix.Data[i][j] = mt.Data[i][j] + other.Data[i][j]
		}
	}
	return out_matrix
}

func (mt Mat4) Sub(other Mat4) Mat4 {
	out_matrix := Mat4{}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out_matrix.Data[i][j] = mt.Data[i][j] - other.Data[i][j]
		}
	}
	return out_matrix
}

/**
 * @brief Returns the result of multiplying mt and other.
 *
 * @param other The second matrix to be multiplied.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := float64(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[row][i] * other.Data[i][col]
			}
			out_matrix.Data[row][col] = sum
		}
	}

	return out_matrix
}

// MulVec4 returns mt * v, treating v as a homogeneous column vector.
func (mt Mat4) MulVec4(v Vec4) Vec4 {
	r := [4]float64{}
	in := v.Serialize()
	for row := 0; row < 4; row++ {
		for i := 0; i < 4; i++ {
			r[row] += mt.Data[row][i] * in[i]
		}
	}
	return Vec4{r[0], r[1], r[2], r[3]}
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 */
func (mt Mat4) Transpose() Mat4 {
	out_matrix := Mat4{}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out_matrix.Data[i][j] = mt.Data[j][i]
		}
	}
	return out_matrix
}

// Upper3 returns the upper-left 3x3 block, i.e. the matrix without its
// translation part.
func (mt Mat4) Upper3() Mat3 {
	out_matrix := Mat3{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out_matrix.Data[i][j] = mt.Data[i][j]
		}
	}
	return out_matrix
}

// Row returns row i. Indexing the result selects the column.
func (mt Mat4) Row(i int) [4]float64 {
	return mt.Data[i]
}

func (mt Mat4) At(row, col int) float64 {
	return mt.Data[row][col]
}

func (mt Mat4) Compare(other Mat4, tolerance float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if kabs(mt.Data[i][j]-other.Data[i][j]) > tolerance {
				return false
			}
		}
	}
	return true
}

/**
 * @brief Creates and returns an inverse of the provided matrix. A singular
 * matrix yields non-finite elements.
 *
 * @return A inverted copy of the provided matrix.
 */
func (mt Mat4) Inverse() Mat4 {
	m := mt.Serialize()

	t0 := m[10] * m[15]
	t1 := m[14] * m[11]
	t2 := m[6] * m[15]
	t3 := m[14] * m[7]
	t4 := m[6] * m[11]
	t5 := m[10] * m[7]
	t6 := m[2] * m[15]
	t7 := m[14] * m[3]
	t8 := m[2] * m[11]
	t9 := m[10] * m[3]
	t10 := m[2] * m[7]
	t11 := m[6] * m[3]
	t12 := m[8] * m[13]
	t13 := m[12] * m[9]
	t14 := m[4] * m[13]
	t15 := m[12] * m[5]
	t16 := m[4] * m[9]
	t17 := m[8] * m[5]
	t18 := m[0] * m[13]
	t19 := m[12] * m[1]
	t20 := m[0] * m[9]
	t21 := m[8] * m[1]
	t22 := m[0] * m[5]
	t23 := m[4] * m[1]

	o := [16]float64{}

	o[0] = (t0*m[5] + t3*m[9] + t4*m[13]) - (t1*m[5] + t2*m[9] + t5*m[13])
	o[1] = (t1*m[1] + t6*m[9] + t9*m[13]) - (t0*m[1] + t7*m[9] + t8*m[13])
	o[2] = (t2*m[1] + t7*m[5] + t10*m[13]) - (t3*m[1] + t6*m[5] + t11*m[13])
	o[3] = (t5*m[1] + t8*m[5] + t11*m[9]) - (t4*m[1] + t9*m[5] + t10*m[9])

	d := 1.0 / (m[0]*o[0] + m[4]*o[1] + m[8]*o[2] + m[12]*o[3])

	o[0] = d * o[0]
	o[1] = d * o[1]
	o[2] = d * o[2]
	o[3] = d * o[3]
	o[4] = d * ((t1*m[4] + t2*m[8] + t5*m[12]) - (t0*m[4] + t3*m[8] + t4*m[12]))
	o[5] = d * ((t0*m[0] + t7*m[8] + t8*m[12]) - (t1*m[0] + t6*m[8] + t9*m[12]))
	o[6] = d * ((t3*m[0] + t6*m[4] + t11*m[12]) - (t2*m[0] + t7*m[4] + t10*m[12]))
	o[7] = d * ((t4*m[0] + t9*m[4] + t10*m[8]) - (t5*m[0] + t8*m[4] + t11*m[8]))
	o[8] = d * ((t12*m[7] + t15*m[11] + t16*m[15]) - (t13*m[7] + t14*m[11] + t17*m[15]))
	o[9] = d * ((t13*m[3] + t18*m[11] + t21*m[15]) - (t12*m[3] + t19*m[11] + t20*m[15]))
	o[10] = d * ((t14*m[3] + t19*m[7] + t22*m[15]) - (t15*m[3] + t18*m[7] + t23*m[15]))
	o[11] = d * ((t17*m[3] + t20*m[7] + t23*m[11]) - (t16*m[3] + t21*m[7] + t22*m[11]))
	o[12] = d * ((t14*m[10] + t17*m[14] + t13*m[6]) - (t16*m[14] + t12*m[6] + t15*m[10]))
	o[13] = d * ((t20*m[14] + t12*m[2] + t19*m[10]) - (t18*m[10] + t21*m[14] + t13*m[2]))
	o[14] = d * ((t18*m[6] + t23*m[14] + t15*m[2]) - (t22*m[14] + t14*m[2] + t19*m[6]))
	o[15] = d * ((t22*m[10] + t16*m[2] + t21*m[6]) - (t20*m[6] + t23*m[10] + t17*m[2]))

	return NewMat4FromSlice(o[:])
}

// NewMat4FromSlice builds a matrix from 16 row-major values. Extra values
// are ignored; missing ones stay zero.
func NewMat4FromSlice(values []float64) Mat4 {
	out_matrix := Mat4{}
	for i := 0; i < 16 && i < len(values); i++ {
		out_matrix.Data[i/4][i%4] = values[i]
	}
	return out_matrix
}

/**
 * @brief Returns a right vector relative to the provided view matrix.
 */
func (mt Mat4) Right() Vec3 {
	return Vec3{mt.Data[0][0], mt.Data[0][1], mt.Data[0][2]}.Normalize()
}

/**
 * @brief Returns an upward vector relative to the provided view matrix.
 */
func (mt Mat4) Up() Vec3 {
	return Vec3{mt.Data[1][0], mt.Data[1][1], mt.Data[1][2]}.Normalize()
}

/**
 * @brief Returns a backward vector relative to the provided view matrix.
 */
func (mt Mat4) Backward() Vec3 {
	return Vec3{mt.Data[2][0], mt.Data[2][1], mt.Data[2][2]}.Normalize()
}

/**
 * @brief Returns a forward vector relative to the provided view matrix.
 */
func (mt Mat4) Forward() Vec3 {
	return mt.Backward().Negate()
}

// Serialize flattens the matrix in row-major order: row 0 first, then row 1...
func (mt Mat4) Serialize() [16]float64 {
	out := [16]float64{}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i*4+j] = mt.Data[i][j]
		}
	}
	return out
}

// SerializeF32 flattens the matrix in row-major order, narrowing every
// element to the nearest float32. Out of range values become +/-Inf.
// Graphics APIs that expect column-major data must transpose on upload.
func (mt Mat4) SerializeF32() [16]float32 {
	out := [16]float32{}
	for i, v := range mt.Serialize() {
		out[i] = float32(v)
	}
	return out
}

func (mt Mat4) String() string {
	rows := make([][]float64, 0, 4)
	for i := range mt.Data {
		rows = append(rows, mt.Data[i][:])
	}
	return formatMatrix("Mat4", rows)
}

func formatMatrix(name string, rows [][]float64) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(":\n")
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, v := range row {
			cells = append(cells, fmt.Sprintf("%g", v))
		}
		sb.WriteString("[")
		sb.WriteString(strings.Join(cells, ","))
		sb.WriteString("]\n")
	}
	return sb.String()
}
