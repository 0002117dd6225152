package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/math"
)

const tol = 1e-9

func TestTriangle(t *testing.T) {
	mesh := Triangle()
	require.NoError(t, mesh.Validate())
	assert.Equal(t, Triangles, mesh.Mode)
	assert.Equal(t, 3, mesh.VertexCount())
	assert.Equal(t, math.Vec3{X: 0.5, Y: -0.5}, mesh.Positions[1])
	assert.Equal(t, []float32{1, 0, 0, 1, 0, 1, 0, 1, 0, 0, 1, 1}, mesh.ColoursF32())
}

func TestFrameSquare(t *testing.T) {
	mesh := FrameSquare(0.5, ColourWhite)
	require.NoError(t, mesh.Validate())
	assert.Equal(t, LineLoop, mesh.Mode)
	assert.Equal(t, 4, mesh.IndexCount())

	lo, hi, center := mesh.Extents()
	assert.Equal(t, math.Vec3{X: -0.5, Y: -0.5}, lo)
	assert.Equal(t, math.Vec3{X: 0.5, Y: 0.5}, hi)
	assert.Equal(t, math.NewVec3Zero(), center)
}

func TestFrameCircle(t *testing.T) {
	mesh, err := FrameCircle(2, 8, ColourWhite)
	require.NoError(t, err)
	require.NoError(t, mesh.Validate())
	assert.Equal(t, 8, mesh.VertexCount())
	assert.Equal(t, 16, mesh.IndexCount())
	// the last segment closes the circle
	assert.Equal(t, []uint32{7, 0}, mesh.Indices[14:])
	for _, p := range mesh.Positions {
		assert.InDelta(t, 2.0, p.Length(), tol)
	}

	_, err = FrameCircle(1, 2, ColourWhite)
	assert.ErrorIs(t, err, core.ErrInvalidGeometry)
}

func TestFrameCube(t *testing.T) {
	mesh := FrameCube(1, ColourRed)
	require.NoError(t, mesh.Validate())
	assert.Equal(t, 8, mesh.VertexCount())
	assert.Equal(t, 24, mesh.IndexCount())
	for i := 0; i < len(mesh.Indices); i += 2 {
		a := mesh.Positions[mesh.Indices[i]]
		b := mesh.Positions[mesh.Indices[i+1]]
		assert.InDelta(t, 2.0, a.Distance(b), tol, "edge %d", i/2)
	}
}

func TestCube(t *testing.T) {
	mesh := Cube(1, ColourWhite)
	require.NoError(t, mesh.Validate())
	assert.Equal(t, 24, mesh.VertexCount())
	assert.Equal(t, 36, mesh.IndexCount())
	require.Len(t, mesh.Normals, 24)
	for i, p := range mesh.Positions {
		n := mesh.Normals[i]
		assert.InDelta(t, 1.0, n.Length(), tol)
		// normals point away from the center
		assert.Greater(t, p.Dot(n), 0.0)
	}
}

func TestFrameSphere(t *testing.T) {
	var slices, stacks uint32 = 24, 16
	mesh, err := FrameSphere(0.5, slices, stacks, ColourYellow)
	require.NoError(t, err)
	require.NoError(t, mesh.Validate())
	assert.Equal(t, int(2+slices*(stacks-1)), mesh.VertexCount())
	assert.Equal(t, int(2*(slices*(stacks-1)+slices*stacks)), mesh.IndexCount())
	assert.Equal(t, math.Vec3{Z: 0.5}, mesh.Positions[0])
	assert.Equal(t, math.Vec3{Z: -0.5}, mesh.Positions[len(mesh.Positions)-1])
	for _, p := range mesh.Positions {
		assert.InDelta(t, 0.5, p.Length(), tol)
	}

	_, err = FrameSphere(1, 3, 1, ColourYellow)
	assert.ErrorIs(t, err, core.ErrInvalidGeometry)

	small, err := FrameSphere(1, 3, 2, ColourYellow)
	require.NoError(t, err)
	require.NoError(t, small.Validate())
	assert.Equal(t, 5, small.VertexCount())
}

func TestSphere(t *testing.T) {
	var slices, stacks uint32 = 24, 24
	mesh, err := Sphere(1, slices, stacks, ColourYellow)
	require.NoError(t, err)
	require.NoError(t, mesh.Validate())
	assert.Equal(t, int((stacks+1)*(slices+1)), mesh.VertexCount())
	assert.Equal(t, int(6*slices*stacks), mesh.IndexCount())
	assert.Equal(t, []uint32{0, 25, 1, 1, 25, 26}, mesh.Indices[:6])
	for i, n := range mesh.Normals {
		assert.InDelta(t, 1.0, n.Length(), tol)
		assert.True(t, n.Compare(mesh.Positions[i], tol))
	}
	assert.Len(t, mesh.PositionsF32(), 3*mesh.VertexCount())
	assert.Len(t, mesh.NormalsF32(), 3*mesh.VertexCount())

	_, err = Sphere(1, 2, 8, ColourYellow)
	assert.ErrorIs(t, err, core.ErrInvalidGeometry)
}

func TestCoordinateAxes(t *testing.T) {
	mesh := CoordinateAxes(2)
	require.NoError(t, mesh.Validate())
	assert.Equal(t, Lines, mesh.Mode)
	assert.Equal(t, math.Vec3{X: 2}, mesh.Positions[0])
	assert.Equal(t, math.Vec3{Z: -2}, mesh.Positions[5])
	assert.Equal(t, ColourBlue, mesh.Colours[4])
}

func TestMeshIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, Triangle().ID, Triangle().ID)
}

func TestValidate(t *testing.T) {
	mesh := Triangle()
	mesh.Indices = []uint32{0, 1, 3}
	assert.ErrorIs(t, mesh.Validate(), core.ErrInvalidGeometry)

	mesh = Triangle()
	mesh.Indices = []uint32{0, 1}
	assert.ErrorIs(t, mesh.Validate(), core.ErrInvalidGeometry)

	mesh = Triangle()
	mesh.Colours = mesh.Colours[:2]
	assert.ErrorIs(t, mesh.Validate(), core.ErrInvalidGeometry)

	assert.ErrorIs(t, (&Mesh{}).Validate(), core.ErrInvalidGeometry)
}

func TestGenerateNormals(t *testing.T) {
	mesh := Triangle()
	require.NoError(t, GenerateNormals(mesh))
	for _, n := range mesh.Normals {
		assert.True(t, n.Compare(math.NewVec3(0, 0, -1), tol), n.String())
	}

	assert.ErrorIs(t, GenerateNormals(CoordinateAxes(1)), core.ErrInvalidGeometry)
	assert.Equal(t, "lines", Lines.String())
}
