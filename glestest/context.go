// Package glestest provides a recording gles.Context for tests.
//
// The fake keeps just enough object state to behave like a real driver for the
// renderer: shaders hold their source and compile status, programs resolve
// attribute and uniform names declared in their attached sources, and buffers
// keep the bytes last uploaded to them.
package glestest

import (
	"fmt"
	"strings"

	"github.com/maspe36/webgl-cube-demo/gles"
)

// Call is one recorded method invocation.
type Call struct {
	Name string
	Args []interface{}
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Shader is the fake driver state of a shader object.
type Shader struct {
	Kind     gles.Enum
	Source   string
	Compiled bool
	Log      string
	Deleted  bool
}

// Program is the fake driver state of a program object.
type Program struct {
	Shaders  []gles.Shader
	Linked   bool
	Log      string
	Deleted  bool
	Attribs  map[string]int32
	Uniforms map[string]int32
}

// Buffer is the fake driver state of a buffer object.
type Buffer struct {
	Target  gles.Enum
	Data    []byte
	Usage   gles.Enum
	Deleted bool
}

// Context records every call made through the gles.Context interface.
type Context struct {
	// CompileFunc decides whether a shader compiles.  The default rejects
	// sources without a main function.
	CompileFunc func(kind gles.Enum, src string) (ok bool, log string)

	// LinkFunc decides whether a program links.  The default accepts any
	// program with one compiled vertex and one compiled fragment shader.
	LinkFunc func(p *Program) (ok bool, log string)

	// BufferLimit, when positive, makes CreateBuffer refuse objects once
	// that many buffers exist.
	BufferLimit int

	// RefuseShaders and RefusePrograms make the matching Create call return
	// a zero handle.
	RefuseShaders  bool
	RefusePrograms bool

	Calls    []Call
	Shaders  map[uint32]*Shader
	Programs map[uint32]*Program
	Buffers  map[uint32]*Buffer

	// Bindings of the last BindBuffer per target and the active program.
	Bound   map[gles.Enum]gles.Buffer
	Current gles.Program
	Enabled map[gles.Enum]bool
	Arrays  map[int32]bool

	// Uniform values last uploaded, by location.
	UniformValues map[int32][]float32

	next uint32
}

// New returns an empty fake context.
func New() *Context {
	return &Context{
		Shaders:       make(map[uint32]*Shader),
		Programs:      make(map[uint32]*Program),
		Buffers:       make(map[uint32]*Buffer),
		Bound:         make(map[gles.Enum]gles.Buffer),
		Enabled:       make(map[gles.Enum]bool),
		Arrays:        make(map[int32]bool),
		UniformValues: make(map[int32][]float32),
	}
}

var _ gles.Context = (*Context)(nil)

func (c *Context) record(name string, args ...interface{}) {
	c.Calls = append(c.Calls, Call{Name: name, Args: args})
}

func (c *Context) id() uint32 {
	c.next++
	return c.next
}

// Count returns the number of recorded calls with the given name.
func (c *Context) Count(name string) int {
	n := 0
	for _, call := range c.Calls {
		if call.Name == name {
			n++
		}
	}
	return n
}

// Last returns the most recent call with the given name.
func (c *Context) Last(name string) (Call, bool) {
	for i := len(c.Calls) - 1; i >= 0; i-- {
		if c.Calls[i].Name == name {
			return c.Calls[i], true
		}
	}
	return Call{}, false
}

// Names returns the recorded call names, in order, starting at call index from.
func (c *Context) Names(from int) []string {
	if from > len(c.Calls) {
		from = len(c.Calls)
	}
	names := make([]string, 0, len(c.Calls)-from)
	for _, call := range c.Calls[from:] {
		names = append(names, call.Name)
	}
	return names
}

// Live returns the number of shaders, programs and buffers not yet deleted.
func (c *Context) Live() (shaders, programs, buffers int) {
	for _, s := range c.Shaders {
		if !s.Deleted {
			shaders++
		}
	}
	for _, p := range c.Programs {
		if !p.Deleted {
			programs++
		}
	}
	for _, b := range c.Buffers {
		if !b.Deleted {
			buffers++
		}
	}
	return shaders, programs, buffers
}

func defaultCompile(kind gles.Enum, src string) (bool, string) {
	if !strings.Contains(src, "main(") {
		return false, "ERROR: 0:1: '' : No precision specified or missing entry point main"
	}
	return true, ""
}

func (c *Context) defaultLink(p *Program) (bool, string) {
	var vs, fs bool
	for _, h := range p.Shaders {
		s := c.Shaders[h.Value]
		if s == nil || !s.Compiled {
			return false, "ERROR: attached shader not compiled"
		}
		switch s.Kind {
		case gles.VERTEX_SHADER:
			vs = true
		case gles.FRAGMENT_SHADER:
			fs = true
		}
	}
	if !vs || !fs {
		return false, "ERROR: missing vertex or fragment shader"
	}
	return true, ""
}

func (c *Context) CreateShader(ty gles.Enum) gles.Shader {
	c.record("CreateShader", ty)
	if c.RefuseShaders {
		return gles.Shader{}
	}
	id := c.id()
	c.Shaders[id] = &Shader{Kind: ty}
	return gles.Shader{Value: id}
}

func (c *Context) ShaderSource(s gles.Shader, src string) {
	c.record("ShaderSource", s, src)
	if sh := c.Shaders[s.Value]; sh != nil {
		sh.Source = src
	}
}

func (c *Context) CompileShader(s gles.Shader) {
	c.record("CompileShader", s)
	sh := c.Shaders[s.Value]
	if sh == nil {
		return
	}
	compile := c.CompileFunc
	if compile == nil {
		compile = defaultCompile
	}
	sh.Compiled, sh.Log = compile(sh.Kind, sh.Source)
}

func (c *Context) GetShaderi(s gles.Shader, pname gles.Enum) int {
	c.record("GetShaderi", s, pname)
	sh := c.Shaders[s.Value]
	if sh == nil {
		return 0
	}
	switch pname {
	case gles.COMPILE_STATUS:
		if sh.Compiled {
			return gles.TRUE
		}
		return gles.FALSE
	case gles.INFO_LOG_LENGTH:
		return len(sh.Log)
	}
	return 0
}

func (c *Context) GetShaderInfoLog(s gles.Shader) string {
	c.record("GetShaderInfoLog", s)
	if sh := c.Shaders[s.Value]; sh != nil {
		return sh.Log
	}
	return ""
}

func (c *Context) DeleteShader(s gles.Shader) {
	c.record("DeleteShader", s)
	if sh := c.Shaders[s.Value]; sh != nil {
		sh.Deleted = true
	}
}

func (c *Context) CreateProgram() gles.Program {
	c.record("CreateProgram")
	if c.RefusePrograms {
		return gles.Program{}
	}
	id := c.id()
	c.Programs[id] = &Program{}
	return gles.Program{Value: id}
}

func (c *Context) AttachShader(p gles.Program, s gles.Shader) {
	c.record("AttachShader", p, s)
	if prog := c.Programs[p.Value]; prog != nil {
		prog.Shaders = append(prog.Shaders, s)
	}
}

func (c *Context) LinkProgram(p gles.Program) {
	c.record("LinkProgram", p)
	prog := c.Programs[p.Value]
	if prog == nil {
		return
	}
	link := c.LinkFunc
	if link == nil {
		link = c.defaultLink
	}
	prog.Linked, prog.Log = link(prog)
	if !prog.Linked {
		return
	}
	prog.Attribs = make(map[string]int32)
	prog.Uniforms = make(map[string]int32)
	var nextUniform int32
	for _, h := range prog.Shaders {
		sh := c.Shaders[h.Value]
		if sh == nil {
			continue
		}
		for _, line := range strings.Split(sh.Source, "\n") {
			fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ";"))
			if len(fields) < 3 {
				continue
			}
			name := fields[len(fields)-1]
			switch fields[0] {
			case "attribute":
				prog.Attribs[name] = int32(len(prog.Attribs))
			case "uniform":
				if _, ok := prog.Uniforms[name]; !ok {
					prog.Uniforms[name] = nextUniform
					nextUniform++
				}
			}
		}
	}
}

func (c *Context) GetProgrami(p gles.Program, pname gles.Enum) int {
	c.record("GetProgrami", p, pname)
	prog := c.Programs[p.Value]
	if prog == nil {
		return 0
	}
	switch pname {
	case gles.LINK_STATUS:
		if prog.Linked {
			return gles.TRUE
		}
		return gles.FALSE
	case gles.INFO_LOG_LENGTH:
		return len(prog.Log)
	}
	return 0
}

func (c *Context) GetProgramInfoLog(p gles.Program) string {
	c.record("GetProgramInfoLog", p)
	if prog := c.Programs[p.Value]; prog != nil {
		return prog.Log
	}
	return ""
}

func (c *Context) DeleteProgram(p gles.Program) {
	c.record("DeleteProgram", p)
	if prog := c.Programs[p.Value]; prog != nil {
		prog.Deleted = true
	}
}

func (c *Context) UseProgram(p gles.Program) {
	c.record("UseProgram", p)
	c.Current = p
}

func (c *Context) GetAttribLocation(p gles.Program, name string) gles.Attrib {
	c.record("GetAttribLocation", p, name)
	prog := c.Programs[p.Value]
	if prog == nil || !prog.Linked {
		return gles.Attrib{Value: -1}
	}
	loc, ok := prog.Attribs[name]
	if !ok {
		return gles.Attrib{Value: -1}
	}
	return gles.Attrib{Value: loc}
}

func (c *Context) GetUniformLocation(p gles.Program, name string) gles.Uniform {
	c.record("GetUniformLocation", p, name)
	prog := c.Programs[p.Value]
	if prog == nil || !prog.Linked {
		return gles.Uniform{Value: -1}
	}
	loc, ok := prog.Uniforms[name]
	if !ok {
		return gles.Uniform{Value: -1}
	}
	return gles.Uniform{Value: loc}
}

func (c *Context) CreateBuffer() gles.Buffer {
	c.record("CreateBuffer")
	if c.BufferLimit > 0 {
		_, _, live := c.Live()
		if live >= c.BufferLimit {
			return gles.Buffer{}
		}
	}
	id := c.id()
	c.Buffers[id] = &Buffer{}
	return gles.Buffer{Value: id}
}

func (c *Context) BindBuffer(target gles.Enum, b gles.Buffer) {
	c.record("BindBuffer", target, b)
	c.Bound[target] = b
	if buf := c.Buffers[b.Value]; buf != nil && buf.Target == 0 {
		buf.Target = target
	}
}

func (c *Context) BufferData(target gles.Enum, src []byte, usage gles.Enum) {
	c.record("BufferData", target, len(src), usage)
	if buf := c.Buffers[c.Bound[target].Value]; buf != nil {
		buf.Data = append([]byte(nil), src...)
		buf.Usage = usage
	}
}

func (c *Context) DeleteBuffer(b gles.Buffer) {
	c.record("DeleteBuffer", b)
	if buf := c.Buffers[b.Value]; buf != nil {
		buf.Deleted = true
	}
}

func (c *Context) VertexAttribPointer(dst gles.Attrib, size int, ty gles.Enum, normalized bool, stride, offset int) {
	c.record("VertexAttribPointer", dst, size, ty, normalized, stride, offset)
}

func (c *Context) EnableVertexAttribArray(a gles.Attrib) {
	c.record("EnableVertexAttribArray", a)
	c.Arrays[a.Value] = true
}

func (c *Context) UniformMatrix4fv(dst gles.Uniform, src []float32) {
	c.record("UniformMatrix4fv", dst, append([]float32(nil), src...))
	c.UniformValues[dst.Value] = append([]float32(nil), src...)
}

func (c *Context) ClearColor(red, green, blue, alpha float32) {
	c.record("ClearColor", red, green, blue, alpha)
}

func (c *Context) ClearDepthf(d float32) {
	c.record("ClearDepthf", d)
}

func (c *Context) Clear(mask gles.Enum) {
	c.record("Clear", mask)
}

func (c *Context) Enable(capability gles.Enum) {
	c.record("Enable", capability)
	c.Enabled[capability] = true
}

func (c *Context) DepthFunc(fn gles.Enum) {
	c.record("DepthFunc", fn)
}

func (c *Context) DrawElements(mode gles.Enum, count int, ty gles.Enum, offset int) {
	c.record("DrawElements", mode, count, ty, offset)
}
