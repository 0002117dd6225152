package graphic

import "github.com/spaghettifunk/sketchbook/engine/math"

/**
 * @brief Represents the transform of an object in the world.
 * Transforms can have a parent whose own transform is then
 * taken into account. NOTE: The properties should not be edited
 * directly, but through the methods below so the local matrix is
 * regenerated.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position math.Vec3
	/** @brief The axis the object is rotated around. */
	Axis math.Vec3
	/** @brief The rotation around Axis, in degrees. */
	Angle float64
	/** @brief The scale in the world. */
	Scale math.Vec3
	/**
	 * @brief Indicates if the position, rotation or scale have changed,
	 * indicating that the local matrix needs to be recalculated.
	 */
	IsDirty bool
	/** @brief The cached local matrix, T * R * S. */
	Local math.Mat4
	/** @brief The parent transform, if any. */
	Parent *Transform
}

func NewTransform() *Transform {
	return NewTransformFromPositionRotationScale(math.NewVec3Zero(), math.NewVec3Up(), 0, math.NewVec3One())
}

func NewTransformFromPosition(position math.Vec3) *Transform {
	return NewTransformFromPositionRotationScale(position, math.NewVec3Up(), 0, math.NewVec3One())
}

func NewTransformFromPositionRotationScale(position, axis math.Vec3, angleDegrees float64, scale math.Vec3) *Transform {
	t := &Transform{
		Local: math.NewMat4Identity(),
	}
	t.SetPositionRotationScale(position, axis, angleDegrees, scale)
	return t
}

func (t *Transform) SetPosition(position math.Vec3) {
	t.Position = position
	t.IsDirty = true
}

func (t *Transform) Translate(translation math.Vec3) {
	t.Position = t.Position.Add(translation)
	t.IsDirty = true
}

func (t *Transform) SetRotation(axis math.Vec3, angleDegrees float64) {
	t.Axis = axis
	t.Angle = angleDegrees
	t.IsDirty = true
}

// Rotate adds angleDegrees to the current rotation around the current axis.
func (t *Transform) Rotate(angleDegrees float64) {
	t.Angle = math.Wrap(t.Angle+angleDegrees, 0, 360)
	t.IsDirty = true
}

func (t *Transform) SetScale(scale math.Vec3) {
	t.Scale = scale
	t.IsDirty = true
}

func (t *Transform) SetPositionRotationScale(position, axis math.Vec3, angleDegrees float64, scale math.Vec3) {
	t.Position = position
	t.Axis = axis
	t.Angle = angleDegrees
	t.Scale = scale
	t.IsDirty = true
}

// GetLocal returns T * R * S, recomputing it only after a change. A nil
// transform is the identity.
func (t *Transform) GetLocal() math.Mat4 {
	if t == nil {
		return math.NewMat4Identity()
	}
	if t.IsDirty {
		t.Local = Translate(t.Position).Mul(Rotate(t.Axis, t.Angle)).Mul(Scale(t.Scale))
		t.IsDirty = false
	}
	return t.Local
}

// GetWorld returns parent.World * Local.
func (t *Transform) GetWorld() math.Mat4 {
	if t == nil {
		return math.NewMat4Identity()
	}
	l := t.GetLocal()
	if t.Parent != nil {
		return t.Parent.GetWorld().Mul(l)
	}
	return l
}
