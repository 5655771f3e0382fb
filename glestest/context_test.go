package glestest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maspe36/webgl-cube-demo/gles"
)

const vsrc = `
attribute vec4 pos;
uniform mat4 mvp;
void main(void) {
	gl_Position = mvp * pos;
}`

const fsrc = `
uniform lowp vec4 tint;
void main(void) {
	gl_FragColor = tint;
}`

func build(t *testing.T, c *Context) gles.Program {
	t.Helper()
	vs := c.CreateShader(gles.VERTEX_SHADER)
	c.ShaderSource(vs, vsrc)
	c.CompileShader(vs)
	fs := c.CreateShader(gles.FRAGMENT_SHADER)
	c.ShaderSource(fs, fsrc)
	c.CompileShader(fs)
	p := c.CreateProgram()
	c.AttachShader(p, vs)
	c.AttachShader(p, fs)
	c.LinkProgram(p)
	require.Equal(t, gles.TRUE, c.GetProgrami(p, gles.LINK_STATUS))
	return p
}

func TestLocations(t *testing.T) {
	c := New()
	p := build(t, c)
	assert.Equal(t, gles.Attrib{Value: 0}, c.GetAttribLocation(p, "pos"))
	assert.False(t, c.GetAttribLocation(p, "color").IsValid())
	assert.Equal(t, gles.Uniform{Value: 0}, c.GetUniformLocation(p, "mvp"))
	assert.Equal(t, gles.Uniform{Value: 1}, c.GetUniformLocation(p, "tint"))
	assert.False(t, c.GetUniformLocation(p, "missing").IsValid())
}

func TestLinkNeedsBothStages(t *testing.T) {
	c := New()
	vs := c.CreateShader(gles.VERTEX_SHADER)
	c.ShaderSource(vs, vsrc)
	c.CompileShader(vs)
	p := c.CreateProgram()
	c.AttachShader(p, vs)
	c.LinkProgram(p)
	assert.Equal(t, gles.FALSE, c.GetProgrami(p, gles.LINK_STATUS))
	assert.NotEmpty(t, c.GetProgramInfoLog(p))
}

func TestBufferData(t *testing.T) {
	c := New()
	b := c.CreateBuffer()
	c.BindBuffer(gles.ARRAY_BUFFER, b)
	c.BufferData(gles.ARRAY_BUFFER, []byte{1, 2, 3}, gles.STATIC_DRAW)
	assert.Equal(t, []byte{1, 2, 3}, c.Buffers[b.Value].Data)

	call, ok := c.Last("BufferData")
	require.True(t, ok)
	assert.Equal(t, "BufferData[34962 3 35044]", call.String())
}

func TestBufferLimit(t *testing.T) {
	c := New()
	c.BufferLimit = 1
	assert.True(t, c.CreateBuffer().IsValid())
	assert.False(t, c.CreateBuffer().IsValid())
}

func TestLinkUnknownShader(t *testing.T) {
	c := New()
	c.LinkFunc = func(*Program) (bool, string) { return true, "" }
	p := c.CreateProgram()
	c.AttachShader(p, gles.Shader{Value: 999})
	assert.NotPanics(t, func() { c.LinkProgram(p) })
	assert.Equal(t, gles.TRUE, c.GetProgrami(p, gles.LINK_STATUS))
	assert.False(t, c.GetAttribLocation(p, "pos").IsValid())
}
