package geometry

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/math"
)

// DrawMode is the primitive the indices of a mesh describe.
type DrawMode int

const (
	Points DrawMode = iota
	Lines
	LineLoop
	Triangles
)

func (d DrawMode) String() string {
	switch d {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case LineLoop:
		return "line-loop"
	case Triangles:
		return "triangles"
	}
	return fmt.Sprintf("DrawMode(%d)", int(d))
}

// arity is the number of indices per primitive.
func (d DrawMode) arity() int {
	switch d {
	case Lines:
		return 2
	case Triangles:
		return 3
	}
	return 1
}

/**
 * @brief A procedurally generated mesh, stored as parallel attribute arrays.
 * Normals and Colours are optional, but when present they hold one entry
 * per position.
 */
type Mesh struct {
	/** @brief Unique identifier, used as the key of uploaded GPU resources. */
	ID uuid.UUID
	/** @brief Human readable name. */
	Name string
	/** @brief How Indices are assembled into primitives. */
	Mode DrawMode
	/** @brief The vertex positions. */
	Positions []math.Vec3
	/** @brief Per-vertex normals. Can be empty. */
	Normals []math.Vec3
	/** @brief Per-vertex RGBA colours. Can be empty. */
	Colours []math.Vec4
	/** @brief Indices into the attribute arrays. */
	Indices []uint32
}

func newMesh(name string, mode DrawMode) *Mesh {
	return &Mesh{
		ID:   uuid.New(),
		Name: name,
		Mode: mode,
	}
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// SetColour paints every vertex with c.
func (m *Mesh) SetColour(c math.Vec4) {
	m.Colours = make([]math.Vec4, len(m.Positions))
	for i := range m.Colours {
		m.Colours[i] = c
	}
}

// Validate checks that the attribute arrays line up and every index points
// at an existing vertex.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if n == 0 {
		return fmt.Errorf("%w: mesh %q has no vertices", core.ErrInvalidGeometry, m.Name)
	}
	if len(m.Normals) != 0 && len(m.Normals) != n {
		return fmt.Errorf("%w: mesh %q has %d normals for %d vertices", core.ErrInvalidGeometry, m.Name, len(m.Normals), n)
	}
	if len(m.Colours) != 0 && len(m.Colours) != n {
		return fmt.Errorf("%w: mesh %q has %d colours for %d vertices", core.ErrInvalidGeometry, m.Name, len(m.Colours), n)
	}
	if len(m.Indices) == 0 || len(m.Indices)%m.Mode.arity() != 0 {
		return fmt.Errorf("%w: mesh %q has %d indices, not a multiple of %d for %s",
			core.ErrInvalidGeometry, m.Name, len(m.Indices), m.Mode.arity(), m.Mode)
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: mesh %q index %d is %d, vertex count is %d", core.ErrInvalidGeometry, m.Name, i, idx, n)
		}
	}
	return nil
}

// Extents returns the axis aligned bounds of the mesh and their center.
func (m *Mesh) Extents() (lo, hi, center math.Vec3) {
	if len(m.Positions) == 0 {
		return
	}
	lo, hi = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		lo = math.NewVec3(min(lo.X, p.X), min(lo.Y, p.Y), min(lo.Z, p.Z))
		hi = math.NewVec3(max(hi.X, p.X), max(hi.Y, p.Y), max(hi.Z, p.Z))
	}
	center = lo.Add(hi).MulScalar(0.5)
	return
}

// PositionsF32 flattens the positions as x, y, z triples for upload.
func (m *Mesh) PositionsF32() []float32 {
	out := make([]float32, 0, 3*len(m.Positions))
	for _, p := range m.Positions {
		f := p.SerializeF32()
		out = append(out, f[:]...)
	}
	return out
}

// NormalsF32 flattens the normals as x, y, z triples for upload.
func (m *Mesh) NormalsF32() []float32 {
	out := make([]float32, 0, 3*len(m.Normals))
	for _, n := range m.Normals {
		f := n.SerializeF32()
		out = append(out, f[:]...)
	}
	return out
}

// ColoursF32 flattens the colours as r, g, b, a quadruples for upload.
func (m *Mesh) ColoursF32() []float32 {
	out := make([]float32, 0, 4*len(m.Colours))
	for _, c := range m.Colours {
		f := c.SerializeF32()
		out = append(out, f[:]...)
	}
	return out
}
