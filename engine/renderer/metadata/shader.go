package metadata

import (
	"fmt"

	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/math"
)

// ShaderName identifies one of the built-in shader programs.
type ShaderName string

const (
	/** @brief mvp * position, with the vertex colour passed through. */
	ShaderSimple ShaderName = "simple"
	/** @brief Per-fragment diffuse and specular lighting from one point light. */
	ShaderLighting ShaderName = "lighting"
)

// BuiltinShaders lists every shader a backend has to provide.
var BuiltinShaders = []ShaderName{ShaderSimple, ShaderLighting}

// RequiredUniforms returns the uniforms a draw call with this shader must set.
func (s ShaderName) RequiredUniforms() []string {
	switch s {
	case ShaderSimple:
		return []string{"mvp"}
	case ShaderLighting:
		return []string{"model", "view", "projection", "normal_matrix", "light_position"}
	}
	return nil
}

func (s ShaderName) IsBuiltin() bool {
	for _, b := range BuiltinShaders {
		if b == s {
			return true
		}
	}
	return false
}

type ShaderUniformType uint

const (
	ShaderUniformTypeFloat32   ShaderUniformType = 0
	ShaderUniformTypeFloat32_2 ShaderUniformType = 1
	ShaderUniformTypeFloat32_3 ShaderUniformType = 2
	ShaderUniformTypeFloat32_4 ShaderUniformType = 3
	ShaderUniformTypeMatrix3   ShaderUniformType = 4
	ShaderUniformTypeMatrix4   ShaderUniformType = 10
)

// Size is the number of float32 values a uniform of this type holds.
func (t ShaderUniformType) Size() int {
	switch t {
	case ShaderUniformTypeFloat32:
		return 1
	case ShaderUniformTypeFloat32_2:
		return 2
	case ShaderUniformTypeFloat32_3:
		return 3
	case ShaderUniformTypeFloat32_4:
		return 4
	case ShaderUniformTypeMatrix3:
		return 9
	case ShaderUniformTypeMatrix4:
		return 16
	}
	return 0
}

/**
 * @brief A named uniform value. Matrices are stored row-major, as produced by
 * SerializeF32, and must be uploaded with transpose enabled.
 */
type Uniform struct {
	Name string
	Type ShaderUniformType
	Data []float32
}

func (u Uniform) Validate() error {
	if u.Name == "" {
		return fmt.Errorf("%w: uniform without a name", core.ErrInvalidUniform)
	}
	if size := u.Type.Size(); size == 0 || len(u.Data) != size {
		return fmt.Errorf("%w: uniform %s has %d values, type %d wants %d",
			core.ErrInvalidUniform, u.Name, len(u.Data), u.Type, size)
	}
	return nil
}

func Mat4Uniform(name string, mat math.Mat4) Uniform {
	data := mat.SerializeF32()
	return Uniform{Name: name, Type: ShaderUniformTypeMatrix4, Data: data[:]}
}

func Mat3Uniform(name string, mat math.Mat3) Uniform {
	data := mat.SerializeF32()
	return Uniform{Name: name, Type: ShaderUniformTypeMatrix3, Data: data[:]}
}

func Vec3Uniform(name string, v math.Vec3) Uniform {
	data := v.SerializeF32()
	return Uniform{Name: name, Type: ShaderUniformTypeFloat32_3, Data: data[:]}
}

func Vec4Uniform(name string, v math.Vec4) Uniform {
	data := v.SerializeF32()
	return Uniform{Name: name, Type: ShaderUniformTypeFloat32_4, Data: data[:]}
}

func FloatUniform(name string, f float32) Uniform {
	return Uniform{Name: name, Type: ShaderUniformTypeFloat32, Data: []float32{f}}
}
