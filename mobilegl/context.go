//go:build darwin || linux || windows

// Package mobilegl adapts a golang.org/x/mobile/gl.Context to gles.Context so
// the cube renderer can run under golang.org/x/mobile/app on desktop and
// mobile platforms.
package mobilegl

import (
	"golang.org/x/mobile/gl"

	"github.com/maspe36/webgl-cube-demo/gles"
)

// Context forwards every call to the wrapped x/mobile context.
type Context struct {
	gl.Context
}

// New wraps glctx.
func New(glctx gl.Context) *Context {
	return &Context{Context: glctx}
}

var _ gles.Context = (*Context)(nil)

func shader(s gles.Shader) gl.Shader {
	return gl.Shader{Value: s.Value}
}

func program(p gles.Program) gl.Program {
	return gl.Program{Init: p.IsValid(), Value: p.Value}
}

func (c *Context) CreateShader(ty gles.Enum) gles.Shader {
	return gles.Shader{Value: c.Context.CreateShader(gl.Enum(ty)).Value}
}

func (c *Context) ShaderSource(s gles.Shader, src string) {
	c.Context.ShaderSource(shader(s), src)
}

func (c *Context) CompileShader(s gles.Shader) {
	c.Context.CompileShader(shader(s))
}

func (c *Context) GetShaderi(s gles.Shader, pname gles.Enum) int {
	return c.Context.GetShaderi(shader(s), gl.Enum(pname))
}

func (c *Context) GetShaderInfoLog(s gles.Shader) string {
	return c.Context.GetShaderInfoLog(shader(s))
}

func (c *Context) DeleteShader(s gles.Shader) {
	c.Context.DeleteShader(shader(s))
}

func (c *Context) CreateProgram() gles.Program {
	return gles.Program{Value: c.Context.CreateProgram().Value}
}

func (c *Context) AttachShader(p gles.Program, s gles.Shader) {
	c.Context.AttachShader(program(p), shader(s))
}

func (c *Context) LinkProgram(p gles.Program) {
	c.Context.LinkProgram(program(p))
}

func (c *Context) GetProgrami(p gles.Program, pname gles.Enum) int {
	return c.Context.GetProgrami(program(p), gl.Enum(pname))
}

func (c *Context) GetProgramInfoLog(p gles.Program) string {
	return c.Context.GetProgramInfoLog(program(p))
}

func (c *Context) DeleteProgram(p gles.Program) {
	c.Context.DeleteProgram(program(p))
}

func (c *Context) UseProgram(p gles.Program) {
	c.Context.UseProgram(program(p))
}

// GetAttribLocation keeps the driver's -1 for unknown names, which x/mobile
// returns wrapped into an unsigned value.
func (c *Context) GetAttribLocation(p gles.Program, name string) gles.Attrib {
	a := c.Context.GetAttribLocation(program(p), name)
	return gles.Attrib{Value: int32(uint32(a.Value))}
}

func (c *Context) GetUniformLocation(p gles.Program, name string) gles.Uniform {
	return gles.Uniform{Value: c.Context.GetUniformLocation(program(p), name).Value}
}

func (c *Context) CreateBuffer() gles.Buffer {
	return gles.Buffer{Value: c.Context.CreateBuffer().Value}
}

func (c *Context) BindBuffer(target gles.Enum, b gles.Buffer) {
	c.Context.BindBuffer(gl.Enum(target), gl.Buffer{Value: b.Value})
}

func (c *Context) BufferData(target gles.Enum, src []byte, usage gles.Enum) {
	c.Context.BufferData(gl.Enum(target), src, gl.Enum(usage))
}

func (c *Context) DeleteBuffer(b gles.Buffer) {
	c.Context.DeleteBuffer(gl.Buffer{Value: b.Value})
}

func (c *Context) VertexAttribPointer(dst gles.Attrib, size int, ty gles.Enum, normalized bool, stride, offset int) {
	c.Context.VertexAttribPointer(gl.Attrib{Value: uint(dst.Value)}, size, gl.Enum(ty), normalized, stride, offset)
}

func (c *Context) EnableVertexAttribArray(a gles.Attrib) {
	c.Context.EnableVertexAttribArray(gl.Attrib{Value: uint(a.Value)})
}

func (c *Context) UniformMatrix4fv(dst gles.Uniform, src []float32) {
	c.Context.UniformMatrix4fv(gl.Uniform{Value: dst.Value}, src)
}

func (c *Context) ClearColor(red, green, blue, alpha float32) {
	c.Context.ClearColor(red, green, blue, alpha)
}

func (c *Context) ClearDepthf(d float32) {
	c.Context.ClearDepthf(d)
}

func (c *Context) Clear(mask gles.Enum) {
	c.Context.Clear(gl.Enum(mask))
}

func (c *Context) Enable(capability gles.Enum) {
	c.Context.Enable(gl.Enum(capability))
}

func (c *Context) DepthFunc(fn gles.Enum) {
	c.Context.DepthFunc(gl.Enum(fn))
}

func (c *Context) DrawElements(mode gles.Enum, count int, ty gles.Enum, offset int) {
	c.Context.DrawElements(gl.Enum(mode), count, gl.Enum(ty), offset)
}
