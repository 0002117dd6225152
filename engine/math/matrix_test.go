package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rowsMat4(rows ...[4]float64) Mat4 {
	out := Mat4{}
	for i, r := range rows {
		out.Data[i] = r
	}
	return out
}

func TestMat4AddSub(t *testing.T) {
	m1 := rowsMat4(
		[4]float64{1, 1, 1, 1},
		[4]float64{2, 2, 2, 2},
		[4]float64{3, 3, 3, 3},
		[4]float64{4, 4, 4, 4},
	)
	m2 := rowsMat4(
		[4]float64{4, 4, 4, 4},
		[4]float64{3, 3, 3, 3},
		[4]float64{2, 2, 2, 2},
		[4]float64{1, 1, 1, 1},
	)

	sum := m1.Add(m2)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, 5.0, sum.At(i, j))
		}
	}

	// element-wise algebra: m1 + m2 - m1 - m2 - m2 == -m2
	got := m1.Add(m2).Sub(m1).Sub(m2).Sub(m2)
	assert.Equal(t, NewMat4Zero().Sub(m2), got)
}

func TestMat4Identity(t *testing.T) {
	a := rowsMat4(
		[4]float64{1, 2, 3, 4},
		[4]float64{-5, 6, 0.5, 8},
		[4]float64{9, 0, 11, -12},
		[4]float64{13, 14, 15, 1},
	)
	id := NewMat4Identity()
	assert.Equal(t, a, a.Mul(id))
	assert.Equal(t, a, id.Mul(a))
	assert.Equal(t, a, a.Transpose().Transpose())
	assert.Equal(t, 6.0, a.Row(1)[1])
	assert.Equal(t, -5.0, a.Row(1)[0])
}

func TestMat4Mul(t *testing.T) {
	a := rowsMat4(
		[4]float64{1, 2, 0, 0},
		[4]float64{0, 1, 0, 0},
		[4]float64{0, 0, 1, 0},
		[4]float64{0, 0, 0, 1},
	)
	b := rowsMat4(
		[4]float64{1, 0, 0, 0},
		[4]float64{3, 1, 0, 0},
		[4]float64{0, 0, 1, 0},
		[4]float64{0, 0, 0, 1},
	)
	ab := a.Mul(b)
	assert.Equal(t, [4]float64{7, 2, 0, 0}, ab.Row(0))
	assert.Equal(t, [4]float64{3, 1, 0, 0}, ab.Row(1))

	ba := b.Mul(a)
	assert.Equal(t, [4]float64{1, 2, 0, 0}, ba.Row(0))
	assert.Equal(t, [4]float64{3, 7, 0, 0}, ba.Row(1))
}

func TestMat4MulVec4(t *testing.T) {
	tr := NewMat4Identity()
	tr.Data[0][3] = 1
	tr.Data[1][3] = 2
	tr.Data[2][3] = 3

	p := tr.MulVec4(NewVec4(1, 1, 1, 1))
	assert.Equal(t, Vec4{2, 3, 4, 1}, p)

	// directions ignore translation
	d := tr.MulVec4(NewVec4(1, 1, 1, 0))
	assert.Equal(t, Vec4{1, 1, 1, 0}, d)

	assert.Equal(t, Vec3{2, 3, 4}, NewVec3One().Transform(tr))
}

func TestMat4Serialize(t *testing.T) {
	a := NewMat4Zero()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a.Data[i][j] = float64(i*4 + j)
		}
	}
	s := a.Serialize()
	for k := 0; k < 16; k++ {
		assert.Equal(t, float64(k), s[k])
	}
	f := a.SerializeF32()
	for k := 0; k < 16; k++ {
		assert.Equal(t, float32(k), f[k])
	}
	assert.Equal(t, a, NewMat4FromSlice(s[:]))
}

func TestMat4SerializeF32Overflow(t *testing.T) {
	a := NewMat4Identity()
	a.Data[3][0] = 1e300
	f := a.SerializeF32()
	assert.True(t, m.IsInf(float64(f[12]), 1))
	assert.Equal(t, float32(1), f[0])
}

func TestMat4Inverse(t *testing.T) {
	assert.Equal(t, NewMat4Identity(), NewMat4Identity().Inverse())

	a := rowsMat4(
		[4]float64{2, 0, 0, 1},
		[4]float64{0, 3, 0, -2},
		[4]float64{0, 0, 4, 5},
		[4]float64{0, 0, 0, 1},
	)
	inv := a.Inverse()
	assert.True(t, a.Mul(inv).Compare(NewMat4Identity(), StandardTol), a.Mul(inv).String())
	assert.True(t, inv.Mul(a).Compare(NewMat4Identity(), StandardTol), inv.Mul(a).String())
}

func TestMat4ViewBasis(t *testing.T) {
	id := NewMat4Identity()
	assert.Equal(t, Vec3{1, 0, 0}, id.Right())
	assert.Equal(t, Vec3{0, 1, 0}, id.Up())
	assert.Equal(t, Vec3{0, 0, 1}, id.Backward())
	assert.Equal(t, Vec3{0, 0, -1}, id.Forward())
}

func TestMat4Upper3(t *testing.T) {
	a := NewMat4Identity()
	a.Data[0][1] = 7
	a.Data[0][3] = 9
	u := a.Upper3()
	assert.Equal(t, 7.0, u.At(0, 1))
	assert.Equal(t, NewMat3Identity().Add(Mat3{Data: [3][3]float64{{0, 7, 0}}}), u)
}

func TestMat3(t *testing.T) {
	a := Mat3{Data: [3][3]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 10},
	}}
	id := NewMat3Identity()
	assert.Equal(t, a, a.Mul(id))
	assert.Equal(t, a, id.Mul(a))
	assert.Equal(t, a, a.Transpose().Transpose())
	assert.Equal(t, [3]float64{1, 4, 7}, a.Transpose().Row(0))
	assert.Equal(t, Vec3{14, 32, 53}, a.MulVec3(NewVec3(1, 2, 3)))
	assert.Equal(t, NewMat3Zero(), a.Sub(a))
	assert.Equal(t, [9]float32{1, 2, 3, 4, 5, 6, 7, 8, 10}, a.SerializeF32())
}

func TestMatrixString(t *testing.T) {
	assert.Equal(t, "Mat3:\n[1,0,0]\n[0,1,0]\n[0,0,1]\n", NewMat3Identity().String())
}
