//go:build js && wasm

package webgl

import (
	"encoding/binary"
	"syscall/js"

	"golang.org/x/mobile/exp/f32"

	"github.com/maspe36/webgl-cube-demo/gles"
)

// objects maps handles to JavaScript values.  Handle 0 is never issued.
type objects struct {
	vals []js.Value
}

func newObjects() *objects {
	return &objects{vals: []js.Value{js.Null()}}
}

func (o *objects) put(v js.Value) uint32 {
	if v.IsNull() || v.IsUndefined() {
		return 0
	}
	o.vals = append(o.vals, v)
	return uint32(len(o.vals) - 1)
}

func (o *objects) get(h uint32) js.Value {
	if h == 0 || int(h) >= len(o.vals) {
		return js.Null()
	}
	return o.vals[h]
}

// drop forgets h; the slot is not reused.
func (o *objects) drop(h uint32) {
	if h != 0 && int(h) < len(o.vals) {
		o.vals[h] = js.Null()
	}
}

// Context is a gles.Context backed by a WebGL 1 rendering context.
type Context struct {
	gl js.Value

	shaders  *objects
	programs *objects
	buffers  *objects
	uniforms *objects

	uint8Array   js.Value
	float32Array js.Value
}

var _ gles.Context = (*Context)(nil)

// NewContext wraps a WebGLRenderingContext value.
func NewContext(gl js.Value) *Context {
	return &Context{
		gl:           gl,
		shaders:      newObjects(),
		programs:     newObjects(),
		buffers:      newObjects(),
		uniforms:     newObjects(),
		uint8Array:   js.Global().Get("Uint8Array"),
		float32Array: js.Global().Get("Float32Array"),
	}
}

// bytes copies src into a new Uint8Array.
func (c *Context) bytes(src []byte) js.Value {
	arr := c.uint8Array.New(len(src))
	js.CopyBytesToJS(arr, src)
	return arr
}

// floats copies src into a new Float32Array.  Typed arrays use the host's
// byte order, which is little endian in every browser that runs wasm.
func (c *Context) floats(src []float32) js.Value {
	buf := c.bytes(f32.Bytes(binary.LittleEndian, src...))
	return c.float32Array.New(buf.Get("buffer"))
}

func paramInt(v js.Value) int {
	switch v.Type() {
	case js.TypeBoolean:
		if v.Bool() {
			return gles.TRUE
		}
		return gles.FALSE
	case js.TypeNumber:
		return v.Int()
	}
	return 0
}

func (c *Context) CreateShader(ty gles.Enum) gles.Shader {
	return gles.Shader{Value: c.shaders.put(c.gl.Call("createShader", int(ty)))}
}

func (c *Context) ShaderSource(s gles.Shader, src string) {
	c.gl.Call("shaderSource", c.shaders.get(s.Value), src)
}

func (c *Context) CompileShader(s gles.Shader) {
	c.gl.Call("compileShader", c.shaders.get(s.Value))
}

func (c *Context) GetShaderi(s gles.Shader, pname gles.Enum) int {
	return paramInt(c.gl.Call("getShaderParameter", c.shaders.get(s.Value), int(pname)))
}

func (c *Context) GetShaderInfoLog(s gles.Shader) string {
	v := c.gl.Call("getShaderInfoLog", c.shaders.get(s.Value))
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}

func (c *Context) DeleteShader(s gles.Shader) {
	c.gl.Call("deleteShader", c.shaders.get(s.Value))
	c.shaders.drop(s.Value)
}

func (c *Context) CreateProgram() gles.Program {
	return gles.Program{Value: c.programs.put(c.gl.Call("createProgram"))}
}

func (c *Context) AttachShader(p gles.Program, s gles.Shader) {
	c.gl.Call("attachShader", c.programs.get(p.Value), c.shaders.get(s.Value))
}

func (c *Context) LinkProgram(p gles.Program) {
	c.gl.Call("linkProgram", c.programs.get(p.Value))
}

func (c *Context) GetProgrami(p gles.Program, pname gles.Enum) int {
	return paramInt(c.gl.Call("getProgramParameter", c.programs.get(p.Value), int(pname)))
}

func (c *Context) GetProgramInfoLog(p gles.Program) string {
	v := c.gl.Call("getProgramInfoLog", c.programs.get(p.Value))
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}

func (c *Context) DeleteProgram(p gles.Program) {
	c.gl.Call("deleteProgram", c.programs.get(p.Value))
	c.programs.drop(p.Value)
}

func (c *Context) UseProgram(p gles.Program) {
	c.gl.Call("useProgram", c.programs.get(p.Value))
}

func (c *Context) GetAttribLocation(p gles.Program, name string) gles.Attrib {
	return gles.Attrib{Value: int32(c.gl.Call("getAttribLocation", c.programs.get(p.Value), name).Int())}
}

// GetUniformLocation returns a handle into the uniform table; WebGL uniform
// locations are opaque objects rather than integers.
func (c *Context) GetUniformLocation(p gles.Program, name string) gles.Uniform {
	h := c.uniforms.put(c.gl.Call("getUniformLocation", c.programs.get(p.Value), name))
	if h == 0 {
		return gles.Uniform{Value: -1}
	}
	return gles.Uniform{Value: int32(h)}
}

func (c *Context) CreateBuffer() gles.Buffer {
	return gles.Buffer{Value: c.buffers.put(c.gl.Call("createBuffer"))}
}

func (c *Context) BindBuffer(target gles.Enum, b gles.Buffer) {
	c.gl.Call("bindBuffer", int(target), c.buffers.get(b.Value))
}

func (c *Context) BufferData(target gles.Enum, src []byte, usage gles.Enum) {
	c.gl.Call("bufferData", int(target), c.bytes(src), int(usage))
}

func (c *Context) DeleteBuffer(b gles.Buffer) {
	c.gl.Call("deleteBuffer", c.buffers.get(b.Value))
	c.buffers.drop(b.Value)
}

func (c *Context) VertexAttribPointer(dst gles.Attrib, size int, ty gles.Enum, normalized bool, stride, offset int) {
	c.gl.Call("vertexAttribPointer", int(dst.Value), size, int(ty), normalized, stride, offset)
}

func (c *Context) EnableVertexAttribArray(a gles.Attrib) {
	c.gl.Call("enableVertexAttribArray", int(a.Value))
}

func (c *Context) UniformMatrix4fv(dst gles.Uniform, src []float32) {
	loc := js.Null()
	if dst.Value > 0 {
		loc = c.uniforms.get(uint32(dst.Value))
	}
	c.gl.Call("uniformMatrix4fv", loc, false, c.floats(src))
}

func (c *Context) ClearColor(red, green, blue, alpha float32) {
	c.gl.Call("clearColor", red, green, blue, alpha)
}

func (c *Context) ClearDepthf(d float32) {
	c.gl.Call("clearDepth", d)
}

func (c *Context) Clear(mask gles.Enum) {
	c.gl.Call("clear", int(mask))
}

func (c *Context) Enable(capability gles.Enum) {
	c.gl.Call("enable", int(capability))
}

func (c *Context) DepthFunc(fn gles.Enum) {
	c.gl.Call("depthFunc", int(fn))
}

func (c *Context) DrawElements(mode gles.Enum, count int, ty gles.Enum, offset int) {
	c.gl.Call("drawElements", int(mode), count, int(ty), offset)
}
