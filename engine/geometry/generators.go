package geometry

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/math"
)

var (
	ColourRed    = math.NewVec4(1, 0, 0, 1)
	ColourGreen  = math.NewVec4(0, 1, 0, 1)
	ColourBlue   = math.NewVec4(0, 0, 1, 1)
	ColourYellow = math.NewVec4(1, 1, 0, 1)
	ColourWhite  = math.NewVec4(1, 1, 1, 1)
	ColourBlack  = math.NewVec4(0, 0, 0, 1)
)

func checkSlicesStacks(slices, stacks uint32) error {
	if slices < 3 {
		return fmt.Errorf("%w: need at least 3 slices, got %d", core.ErrInvalidGeometry, slices)
	}
	if stacks < 2 {
		return fmt.Errorf("%w: need at least 2 stacks, got %d", core.ErrInvalidGeometry, stacks)
	}
	return nil
}

// spherePoint returns the point at polar angle theta (from +Z) and azimuth
// phi (from +X towards +Y).
func spherePoint(radius, theta, phi float64) math.Vec3 {
	return math.NewVec3(
		radius*m.Sin(theta)*m.Cos(phi),
		radius*m.Sin(theta)*m.Sin(phi),
		radius*m.Cos(theta),
	)
}

// Triangle is a single red/green/blue triangle in the z = 0 plane.
func Triangle() *Mesh {
	mesh := newMesh("triangle", Triangles)
	mesh.Positions = []math.Vec3{
		{X: 0.0, Y: 0.5},
		{X: 0.5, Y: -0.5},
		{X: -0.5, Y: -0.5},
	}
	mesh.Colours = []math.Vec4{ColourRed, ColourGreen, ColourBlue}
	mesh.Indices = []uint32{0, 1, 2}
	return mesh
}

// FrameSquare is the outline of an axis aligned square of side 2*half in the
// z = 0 plane.
func FrameSquare(half float64, colour math.Vec4) *Mesh {
	mesh := newMesh("frame-square", LineLoop)
	mesh.Positions = []math.Vec3{
		{X: -half, Y: -half},
		{X: half, Y: -half},
		{X: half, Y: half},
		{X: -half, Y: half},
	}
	mesh.SetColour(colour)
	mesh.Indices = []uint32{0, 1, 2, 3}
	return mesh
}

// FrameCircle is a circle in the z = 0 plane made of slices line segments.
func FrameCircle(radius float64, slices uint32, colour math.Vec4) (*Mesh, error) {
	if slices < 3 {
		return nil, fmt.Errorf("%w: need at least 3 slices, got %d", core.ErrInvalidGeometry, slices)
	}
	mesh := newMesh("frame-circle", Lines)
	mesh.Positions = make([]math.Vec3, 0, slices)
	mesh.Indices = make([]uint32, 0, 2*slices)
	for i := uint32(0); i < slices; i++ {
		phi := 2.0 * math.K_PI * float64(i) / float64(slices)
		mesh.Positions = append(mesh.Positions, math.NewVec3(radius*m.Cos(phi), radius*m.Sin(phi), 0))
		mesh.Indices = append(mesh.Indices, i, (i+1)%slices)
	}
	mesh.SetColour(colour)
	return mesh, nil
}

// FrameCube is the 12 edges of an axis aligned cube of side 2*half.
func FrameCube(half float64, colour math.Vec4) *Mesh {
	mesh := newMesh("frame-cube", Lines)
	mesh.Positions = []math.Vec3{
		{X: -half, Y: -half, Z: -half},
		{X: half, Y: -half, Z: -half},
		{X: half, Y: -half, Z: half},
		{X: -half, Y: -half, Z: half},
		{X: -half, Y: half, Z: -half},
		{X: half, Y: half, Z: -half},
		{X: half, Y: half, Z: half},
		{X: -half, Y: half, Z: half},
	}
	mesh.SetColour(colour)
	mesh.Indices = []uint32{
		0, 1, 1, 2, 2, 3, 3, 0, // bottom
		0, 4, 1, 5, 2, 6, 3, 7, // sides
		4, 5, 5, 6, 6, 7, 7, 4, // top
	}
	return mesh
}

// Cube is a solid cube of side 2*half. Every face has its own four vertices
// so the generated normals stay flat.
func Cube(half float64, colour math.Vec4) *Mesh {
	faces := []struct{ n, u math.Vec3 }{
		{math.NewVec3(0, 0, 1), math.NewVec3(1, 0, 0)},
		{math.NewVec3(0, 0, -1), math.NewVec3(-1, 0, 0)},
		{math.NewVec3(1, 0, 0), math.NewVec3(0, 1, 0)},
		{math.NewVec3(-1, 0, 0), math.NewVec3(0, -1, 0)},
		{math.NewVec3(0, 1, 0), math.NewVec3(0, 0, 1)},
		{math.NewVec3(0, -1, 0), math.NewVec3(0, 0, -1)},
	}
	mesh := newMesh("cube", Triangles)
	mesh.Positions = make([]math.Vec3, 0, 24)
	mesh.Indices = make([]uint32, 0, 36)
	for f, face := range faces {
		// counter-clockwise seen from outside: u x v == n
		c := face.n.MulScalar(half)
		u := face.u.MulScalar(half)
		v := face.n.Cross(face.u).MulScalar(half)
		mesh.Positions = append(mesh.Positions,
			c.Sub(u).Sub(v),
			c.Add(u).Sub(v),
			c.Add(u).Add(v),
			c.Sub(u).Add(v),
		)
		base := uint32(4 * f)
		mesh.Indices = append(mesh.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	mesh.SetColour(colour)
	// the faces are well formed, this cannot fail
	_ = GenerateNormals(mesh)
	return mesh
}

/**
 * @brief Generates a wireframe sphere: the two poles plus stacks-1 rings of
 * slices points each. Lines join neighbours on each ring and along each
 * meridian.
 *
 * @param radius The sphere radius.
 * @param slices The number of points per ring. Must be >= 3.
 * @param stacks The number of bands between the poles. Must be >= 2.
 * @return The mesh, or an error wrapping ErrInvalidGeometry.
 */
func FrameSphere(radius float64, slices, stacks uint32, colour math.Vec4) (*Mesh, error) {
	if err := checkSlicesStacks(slices, stacks); err != nil {
		return nil, err
	}
	mesh := newMesh("frame-sphere", Lines)
	mesh.Positions = make([]math.Vec3, 0, 2+slices*(stacks-1))
	mesh.Indices = make([]uint32, 0, 2*(slices*(stacks-1)+slices*stacks))

	north := uint32(0)
	south := 1 + slices*(stacks-1)
	ring := func(j, i uint32) uint32 { return 1 + slices*(j-1) + i%slices }

	mesh.Positions = append(mesh.Positions, math.NewVec3(0, 0, radius))
	for j := uint32(1); j < stacks; j++ {
		theta := math.K_PI * float64(j) / float64(stacks)
		for i := uint32(0); i < slices; i++ {
			phi := 2.0 * math.K_PI * float64(i) / float64(slices)
			mesh.Positions = append(mesh.Positions, spherePoint(radius, theta, phi))
		}
		for i := uint32(0); i < slices; i++ {
			mesh.Indices = append(mesh.Indices, ring(j, i), ring(j, i+1))
		}
	}
	mesh.Positions = append(mesh.Positions, math.NewVec3(0, 0, -radius))

	for j := uint32(0); j < stacks; j++ {
		for i := uint32(0); i < slices; i++ {
			switch j {
			case 0:
				mesh.Indices = append(mesh.Indices, north, ring(1, i))
			case stacks - 1:
				mesh.Indices = append(mesh.Indices, ring(stacks-1, i), south)
			default:
				mesh.Indices = append(mesh.Indices, ring(j, i), ring(j+1, i))
			}
		}
	}
	mesh.SetColour(colour)
	return mesh, nil
}

/**
 * @brief Generates a solid UV sphere with (stacks+1)*(slices+1) vertices. The
 * seam column is duplicated. Normals point outwards.
 */
func Sphere(radius float64, slices, stacks uint32, colour math.Vec4) (*Mesh, error) {
	if err := checkSlicesStacks(slices, stacks); err != nil {
		return nil, err
	}
	mesh := newMesh("sphere", Triangles)
	count := (stacks + 1) * (slices + 1)
	mesh.Positions = make([]math.Vec3, 0, count)
	mesh.Normals = make([]math.Vec3, 0, count)
	for j := uint32(0); j <= stacks; j++ {
		theta := math.K_PI * float64(j) / float64(stacks)
		for i := uint32(0); i <= slices; i++ {
			phi := 2.0 * math.K_PI * float64(i) / float64(slices)
			mesh.Positions = append(mesh.Positions, spherePoint(radius, theta, phi))
			mesh.Normals = append(mesh.Normals, spherePoint(1.0, theta, phi))
		}
	}

	mesh.Indices = make([]uint32, 0, 6*slices*stacks)
	for j := uint32(0); j < stacks; j++ {
		k1 := j * (slices + 1)
		k2 := k1 + slices + 1
		for i := uint32(0); i < slices; i++ {
			mesh.Indices = append(mesh.Indices,
				k1+i, k2+i, k1+1+i,
				k1+1+i, k2+i, k2+1+i,
			)
		}
	}
	mesh.SetColour(colour)
	return mesh, nil
}

// CoordinateAxes draws the x, y and z axes from -length to +length, each
// fading from its colour (red, green, blue) on the positive side to black.
func CoordinateAxes(length float64) *Mesh {
	mesh := newMesh("coordinate-axes", Lines)
	mesh.Positions = []math.Vec3{
		{X: length}, {X: -length},
		{Y: length}, {Y: -length},
		{Z: length}, {Z: -length},
	}
	mesh.Colours = []math.Vec4{
		ColourRed, ColourBlack,
		ColourGreen, ColourBlack,
		ColourBlue, ColourBlack,
	}
	mesh.Indices = []uint32{0, 1, 2, 3, 4, 5}
	return mesh
}

// GenerateNormals assigns each triangle's face normal to its three vertices.
// Shared vertices end up with the normal of the last triangle using them.
func GenerateNormals(mesh *Mesh) error {
	if mesh.Mode != Triangles {
		return fmt.Errorf("%w: normals need a triangle mesh, %q is %s", core.ErrInvalidGeometry, mesh.Name, mesh.Mode)
	}
	mesh.Normals = make([]math.Vec3, len(mesh.Positions))
	if err := mesh.Validate(); err != nil {
		return err
	}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		i0 := mesh.Indices[i+0]
		i1 := mesh.Indices[i+1]
		i2 := mesh.Indices[i+2]

		edge1 := mesh.Positions[i1].Sub(mesh.Positions[i0])
		edge2 := mesh.Positions[i2].Sub(mesh.Positions[i0])

		normal := edge1.Cross(edge2).Normalize()
		mesh.Normals[i0] = normal
		mesh.Normals[i1] = normal
		mesh.Normals[i2] = normal
	}
	return nil
}
