/*
Package gles describes the small slice of the OpenGL ES 2 / WebGL 1 API that
the cube renderer needs.  The method set mirrors golang.org/x/mobile/gl so an
x/mobile context can be wrapped with almost no translation, while the browser
implementation in package webgl forwards to a JavaScript WebGLRenderingContext.

Object handles are plain values.  A zero Shader, Program or Buffer means the
context refused to create the object; a negative Attrib or Uniform means the
name was not found in the linked program.
*/
package gles

// Enum is a GL enumerant.  WebGL and GLES share the same numeric values.
type Enum uint32

// Shader is a shader object handle.
type Shader struct {
	Value uint32
}

// IsValid reports whether s refers to a created shader object.
func (s Shader) IsValid() bool { return s.Value != 0 }

// Program is a program object handle.
type Program struct {
	Value uint32
}

// IsValid reports whether p refers to a created program object.
func (p Program) IsValid() bool { return p.Value != 0 }

// Buffer is a buffer object handle.
type Buffer struct {
	Value uint32
}

// IsValid reports whether b refers to a created buffer object.
func (b Buffer) IsValid() bool { return b.Value != 0 }

// Attrib is the location of a vertex attribute.
type Attrib struct {
	Value int32
}

// IsValid reports whether the attribute was found in its program.
func (a Attrib) IsValid() bool { return a.Value >= 0 }

// Uniform is the location of a uniform variable.
type Uniform struct {
	Value int32
}

// IsValid reports whether the uniform was found in its program.
func (u Uniform) IsValid() bool { return u.Value >= 0 }

// Context is the set of graphics calls issued by the shader, cube and render
// packages.  Implementations are not safe for concurrent use.
type Context interface {
	CreateShader(ty Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)

	GetAttribLocation(p Program, name string) Attrib
	GetUniformLocation(p Program, name string) Uniform

	CreateBuffer() Buffer
	BindBuffer(target Enum, b Buffer)
	BufferData(target Enum, src []byte, usage Enum)
	DeleteBuffer(b Buffer)

	VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int)
	EnableVertexAttribArray(a Attrib)
	UniformMatrix4fv(dst Uniform, src []float32)

	ClearColor(red, green, blue, alpha float32)
	ClearDepthf(d float32)
	Clear(mask Enum)
	Enable(capability Enum)
	DepthFunc(fn Enum)

	DrawElements(mode Enum, count int, ty Enum, offset int)
}
