package shader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maspe36/webgl-cube-demo/gles"
	"github.com/maspe36/webgl-cube-demo/glestest"
)

func TestCompile(t *testing.T) {
	glctx := glestest.New()
	s, err := Compile(glctx, gles.VERTEX_SHADER, VertexSource)
	require.NoError(t, err)
	assert.True(t, s.IsValid())
	assert.Equal(t, VertexSource, glctx.Shaders[s.Value].Source)
	assert.False(t, glctx.Shaders[s.Value].Deleted)
}

func TestCompileInvalidSource(t *testing.T) {
	glctx := glestest.New()
	s, err := Compile(glctx, gles.FRAGMENT_SHADER, "this is not glsl")
	require.Error(t, err)
	assert.False(t, s.IsValid())

	var cerr *CompileError
	require.True(t, errors.As(err, &cerr))
	assert.NotEmpty(t, cerr.Log)
	assert.Equal(t, gles.FRAGMENT_SHADER, cerr.Kind)
	assert.Contains(t, err.Error(), "fragment")

	shaders, _, _ := glctx.Live()
	assert.Equal(t, 1, glctx.Count("DeleteShader"))
	assert.Equal(t, 0, shaders)
}

func TestCompileEmptyLog(t *testing.T) {
	glctx := glestest.New()
	glctx.CompileFunc = func(gles.Enum, string) (bool, string) { return false, "" }
	_, err := Compile(glctx, gles.VERTEX_SHADER, VertexSource)
	var cerr *CompileError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "unknown error creating shader", cerr.Log)
}

func TestCompileRefused(t *testing.T) {
	glctx := glestest.New()
	glctx.RefuseShaders = true
	_, err := Compile(glctx, gles.VERTEX_SHADER, VertexSource)
	assert.ErrorIs(t, err, errNoShader)
	assert.Equal(t, 0, glctx.Count("CompileShader"))
}

func TestLinkFailure(t *testing.T) {
	glctx := glestest.New()
	glctx.LinkFunc = func(*glestest.Program) (bool, string) {
		return false, "ERROR: Varyings vColor not declared in vertex shader"
	}
	vs, err := Compile(glctx, gles.VERTEX_SHADER, VertexSource)
	require.NoError(t, err)
	fs, err := Compile(glctx, gles.FRAGMENT_SHADER, FragmentSource)
	require.NoError(t, err)

	p, err := Link(glctx, vs, fs)
	assert.False(t, p.IsValid())
	var lerr *LinkError
	require.True(t, errors.As(err, &lerr))
	assert.Contains(t, lerr.Log, "vColor")
	assert.Equal(t, 1, glctx.Count("DeleteProgram"))
}

func TestBuild(t *testing.T) {
	glctx := glestest.New()
	prog, err := Build(glctx, VertexSource, FragmentSource)
	require.NoError(t, err)

	assert.True(t, prog.Program.IsValid())
	assert.True(t, prog.Position.IsValid())
	assert.True(t, prog.Color.IsValid())
	assert.NotEqual(t, prog.Position, prog.Color)
	assert.True(t, prog.ModelView.IsValid())
	assert.True(t, prog.Projection.IsValid())
	assert.NotEqual(t, prog.ModelView, prog.Projection)

	assert.Equal(t, 2, glctx.Count("CreateShader"))
	assert.Equal(t, 1, glctx.Count("CreateProgram"))
	assert.Equal(t, 2, glctx.Count("AttachShader"))
	assert.Equal(t, 2, glctx.Count("DeleteShader"))
}

func TestBuildFragmentFailureReleasesVertex(t *testing.T) {
	glctx := glestest.New()
	_, err := Build(glctx, VertexSource, "void")
	var cerr *CompileError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, gles.FRAGMENT_SHADER, cerr.Kind)

	shaders, programs, _ := glctx.Live()
	assert.Equal(t, 0, shaders)
	assert.Equal(t, 0, programs)
}

func TestBuildMissingUniform(t *testing.T) {
	const vsrc = `
attribute vec4 aVertexPosition;
attribute vec4 aVertexColor;
uniform mat4 uModelViewMatrix;
void main(void) {
	gl_Position = uModelViewMatrix * aVertexPosition;
}`
	glctx := glestest.New()
	_, err := Build(glctx, vsrc, FragmentSource)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ProjectionUniform)

	_, programs, _ := glctx.Live()
	assert.Equal(t, 0, programs)
}

func TestKindName(t *testing.T) {
	assert.Equal(t, "vertex", KindName(gles.VERTEX_SHADER))
	assert.Equal(t, "fragment", KindName(gles.FRAGMENT_SHADER))
	assert.Equal(t, "unknown(0x1)", KindName(1))
}
