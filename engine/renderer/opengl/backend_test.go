package opengl

import (
	"strings"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/sketchbook/engine/core"
	"github.com/spaghettifunk/sketchbook/engine/geometry"
	"github.com/spaghettifunk/sketchbook/engine/renderer/metadata"
)

func TestBuiltinShadersAreEmbedded(t *testing.T) {
	for _, name := range metadata.BuiltinShaders {
		for _, ext := range []string{".vert", ".frag"} {
			src, err := shaderSource(name, ext)
			require.NoError(t, err, string(name)+ext)
			assert.True(t, strings.HasPrefix(src, "#version 410 core"))
			assert.True(t, strings.HasSuffix(src, "\x00"))
		}
	}
	_, err := shaderSource("toon", ".vert")
	assert.ErrorIs(t, err, core.ErrUnknownShader)
}

func TestShadersDeclareRequiredUniforms(t *testing.T) {
	for _, name := range metadata.BuiltinShaders {
		vert, err := shaderSource(name, ".vert")
		require.NoError(t, err)
		for _, uniform := range name.RequiredUniforms() {
			assert.Contains(t, vert, " "+uniform+";", "%s.vert misses %s", name, uniform)
		}
	}
}

func TestPrimitive(t *testing.T) {
	assert.Equal(t, uint32(gl.POINTS), primitive(geometry.Points))
	assert.Equal(t, uint32(gl.LINES), primitive(geometry.Lines))
	assert.Equal(t, uint32(gl.LINE_LOOP), primitive(geometry.LineLoop))
	assert.Equal(t, uint32(gl.TRIANGLES), primitive(geometry.Triangles))
}
