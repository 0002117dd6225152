package components

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/graphic"
	"github.com/spaghettifunk/sketchbook/engine/math"
)

type ProjectionKind int

const (
	PROJECTION_PERSPECTIVE ProjectionKind = iota
	PROJECTION_FRUSTUM
	PROJECTION_ORTHOGONAL
)

func (k ProjectionKind) String() string {
	switch k {
	case PROJECTION_PERSPECTIVE:
		return "perspective"
	case PROJECTION_FRUSTUM:
		return "frustum"
	case PROJECTION_ORTHOGONAL:
		return "orthogonal"
	}
	return fmt.Sprintf("ProjectionKind(%d)", int(k))
}

// ParseProjectionKind maps a config name to its kind. "projection" is
// accepted as another name for frustum.
func ParseProjectionKind(name string) (ProjectionKind, error) {
	switch name {
	case "perspective":
		return PROJECTION_PERSPECTIVE, nil
	case "frustum", "projection":
		return PROJECTION_FRUSTUM, nil
	case "orthogonal", "orthographic":
		return PROJECTION_ORTHOGONAL, nil
	}
	return 0, fmt.Errorf("%w: unknown projection kind %q", core.ErrInvalidProjection, name)
}

/**
 * @brief Describes how camera space is mapped to clip space. Perspective
 * uses FovY (degrees), Aspect, Near and Far. Frustum and Orthogonal use the
 * Left/Right/Bottom/Top planes with Near and Far.
 */
type Projection struct {
	Kind   ProjectionKind
	FovY   float64
	Aspect float64
	Near   float64
	Far    float64
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
}

// DefaultProjection is the perspective used by the 3D sketches.
func DefaultProjection() Projection {
	return Projection{
		Kind:   PROJECTION_PERSPECTIVE,
		FovY:   30.0,
		Aspect: 1.0,
		Near:   1.0,
		Far:    11.0,
		Left:   -1.0,
		Right:  1.0,
		Bottom: -1.0,
		Top:    1.0,
	}
}

// Matrix builds the projection matrix. Invalid parameters produce
// non-finite elements; call Validate first when the values come from users.
func (p Projection) Matrix() math.Mat4 {
	switch p.Kind {
	case PROJECTION_FRUSTUM:
		return graphic.Frustum(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
	case PROJECTION_ORTHOGONAL:
		return graphic.Orthogonal(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
	}
	return graphic.Perspective(p.FovY, p.Aspect, p.Near, p.Far)
}

// Validate rejects parameters that would divide by zero.
func (p Projection) Validate() error {
	values := []float64{p.FovY, p.Aspect, p.Near, p.Far, p.Left, p.Right, p.Bottom, p.Top}
	for _, v := range values {
		if !math.IsFinite(v) {
			return fmt.Errorf("%w: non-finite parameter", core.ErrInvalidProjection)
		}
	}
	if p.Near == p.Far {
		return fmt.Errorf("%w: near and far are both %g", core.ErrInvalidProjection, p.Near)
	}
	switch p.Kind {
	case PROJECTION_PERSPECTIVE:
		if p.Aspect == 0 {
			return fmt.Errorf("%w: aspect is zero", core.ErrInvalidProjection)
		}
		if p.FovY <= 0 || p.FovY >= 180 {
			return fmt.Errorf("%w: fovy %g not in (0, 180)", core.ErrInvalidProjection, p.FovY)
		}
	case PROJECTION_FRUSTUM, PROJECTION_ORTHOGONAL:
		if p.Left == p.Right || p.Bottom == p.Top {
			return fmt.Errorf("%w: zero sized view volume", core.ErrInvalidProjection)
		}
	default:
		return fmt.Errorf("%w: %s", core.ErrInvalidProjection, p.Kind)
	}
	return nil
}

// withAspect returns p adjusted to a new aspect ratio. Frustum and orthogonal
// volumes keep their height and stretch horizontally.
func (p Projection) withAspect(aspect float64) Projection {
	p.Aspect = aspect
	if p.Kind != PROJECTION_PERSPECTIVE {
		halfHeight := (p.Top - p.Bottom) / 2
		centerX := (p.Right + p.Left) / 2
		halfWidth := m.Abs(halfHeight * aspect)
		p.Left = centerX - halfWidth
		p.Right = centerX + halfWidth
	}
	return p
}
