package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/graphic"
	"github.com/spaghettifunk/sketchbook/engine/math"
)

func TestMat4UniformIsRowMajor(t *testing.T) {
	u := Mat4Uniform("mvp", graphic.Translate(math.NewVec3(1, 2, 3)))
	require.NoError(t, u.Validate())
	assert.Equal(t, ShaderUniformTypeMatrix4, u.Type)
	// the translation sits at the end of the first three rows
	assert.Equal(t, float32(1), u.Data[3])
	assert.Equal(t, float32(2), u.Data[7])
	assert.Equal(t, float32(3), u.Data[11])
	assert.Equal(t, float32(1), u.Data[15])
}

func TestUniformConstructors(t *testing.T) {
	uniforms := []Uniform{
		Mat3Uniform("normal_matrix", math.NewMat3Identity()),
		Vec3Uniform("light_position", math.NewVec3(4, 4, 4)),
		Vec4Uniform("colour", math.NewVec4(1, 1, 0, 1)),
		FloatUniform("shininess", 32),
	}
	sizes := []int{9, 3, 4, 1}
	for i, u := range uniforms {
		require.NoError(t, u.Validate(), u.Name)
		assert.Len(t, u.Data, sizes[i])
		assert.Equal(t, sizes[i], u.Type.Size())
	}
}

func TestUniformValidate(t *testing.T) {
	u := Vec3Uniform("", math.NewVec3Zero())
	assert.ErrorIs(t, u.Validate(), core.ErrInvalidUniform)

	u = Uniform{Name: "mvp", Type: ShaderUniformTypeMatrix4, Data: make([]float32, 9)}
	assert.ErrorIs(t, u.Validate(), core.ErrInvalidUniform)

	u = Uniform{Name: "odd", Type: ShaderUniformType(99), Data: nil}
	assert.ErrorIs(t, u.Validate(), core.ErrInvalidUniform)
}

func TestShaderNames(t *testing.T) {
	assert.True(t, ShaderSimple.IsBuiltin())
	assert.True(t, ShaderLighting.IsBuiltin())
	assert.False(t, ShaderName("toon").IsBuiltin())
	assert.Equal(t, []string{"mvp"}, ShaderSimple.RequiredUniforms())
	assert.Contains(t, ShaderLighting.RequiredUniforms(), "normal_matrix")
	assert.Nil(t, ShaderName("toon").RequiredUniforms())
}

func TestRenderPacket(t *testing.T) {
	p := NewRenderPacket(0.016, 800, 600)
	assert.Equal(t, DefaultClearColour, p.ClearColour)
	p.Add(DrawCall{Shader: ShaderSimple})
	p.Add(DrawCall{Shader: ShaderLighting})
	require.Len(t, p.DrawCalls, 2)
	assert.Equal(t, ShaderLighting, p.DrawCalls[1].Shader)
}
