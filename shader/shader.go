// Package shader compiles and links the cube's GLSL program.
package shader

import (
	"errors"
	"fmt"

	"github.com/maspe36/webgl-cube-demo/gles"
)

// CompileError is returned when a shader fails to compile.  Log holds the
// driver's diagnostic output.
type CompileError struct {
	Kind gles.Enum
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader: %s shader compile failed: %s", KindName(e.Kind), e.Log)
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader: program link failed: %s", e.Log)
}

var (
	errNoShader  = errors.New("shader: unable to create shader object")
	errNoProgram = errors.New("shader: unable to create program object")
)

// KindName returns a readable name for a shader kind.
func KindName(kind gles.Enum) string {
	switch kind {
	case gles.VERTEX_SHADER:
		return "vertex"
	case gles.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("unknown(0x%x)", uint32(kind))
}

// Compile creates a shader of the given kind from src.  On failure the shader
// object is deleted and a *CompileError carrying the info log is returned.
func Compile(glctx gles.Context, kind gles.Enum, src string) (gles.Shader, error) {
	s := glctx.CreateShader(kind)
	if !s.IsValid() {
		return gles.Shader{}, errNoShader
	}
	glctx.ShaderSource(s, src)
	glctx.CompileShader(s)
	if glctx.GetShaderi(s, gles.COMPILE_STATUS) == gles.FALSE {
		log := glctx.GetShaderInfoLog(s)
		if log == "" {
			log = "unknown error creating shader"
		}
		glctx.DeleteShader(s)
		return gles.Shader{}, &CompileError{Kind: kind, Log: log}
	}
	return s, nil
}

// Link links vs and fs into a new program.  On failure the program object is
// deleted and a *LinkError carrying the info log is returned.
func Link(glctx gles.Context, vs, fs gles.Shader) (gles.Program, error) {
	p := glctx.CreateProgram()
	if !p.IsValid() {
		return gles.Program{}, errNoProgram
	}
	glctx.AttachShader(p, vs)
	glctx.AttachShader(p, fs)
	glctx.LinkProgram(p)
	if glctx.GetProgrami(p, gles.LINK_STATUS) == gles.FALSE {
		log := glctx.GetProgramInfoLog(p)
		if log == "" {
			log = "unknown error creating program object"
		}
		glctx.DeleteProgram(p)
		return gles.Program{}, &LinkError{Log: log}
	}
	return p, nil
}

// Program is the linked cube program with its resolved input locations.
type Program struct {
	Program gles.Program

	Position gles.Attrib
	Color    gles.Attrib

	ModelView  gles.Uniform
	Projection gles.Uniform
}

// Build compiles both sources, links them and resolves the attribute and
// uniform locations.  The shader objects are flagged for deletion once linked;
// the driver keeps them alive for as long as the program references them.
func Build(glctx gles.Context, vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := Compile(glctx, gles.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return nil, err
	}
	fs, err := Compile(glctx, gles.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		glctx.DeleteShader(vs)
		return nil, err
	}
	p, err := Link(glctx, vs, fs)
	glctx.DeleteShader(vs)
	glctx.DeleteShader(fs)
	if err != nil {
		return nil, err
	}

	prog := &Program{
		Program:    p,
		Position:   glctx.GetAttribLocation(p, PositionAttrib),
		Color:      glctx.GetAttribLocation(p, ColorAttrib),
		ModelView:  glctx.GetUniformLocation(p, ModelViewUniform),
		Projection: glctx.GetUniformLocation(p, ProjectionUniform),
	}
	var missing string
	switch {
	case !prog.Position.IsValid():
		missing = PositionAttrib
	case !prog.Color.IsValid():
		missing = ColorAttrib
	case !prog.ModelView.IsValid():
		missing = ModelViewUniform
	case !prog.Projection.IsValid():
		missing = ProjectionUniform
	}
	if missing != "" {
		glctx.DeleteProgram(p)
		return nil, fmt.Errorf("shader: program has no active input %q", missing)
	}
	return prog, nil
}

// Release deletes the program object.
func (p *Program) Release(glctx gles.Context) {
	glctx.DeleteProgram(p.Program)
}
