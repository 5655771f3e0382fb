/*
Package render draws the rotating cube.

A Renderer owns every GPU object of the scene: one program and three static
buffers created by New.  Each call to Tick clears the frame, recomputes the
projection and model-view matrices, draws the cube and advances the rotation by
a fixed step.  The step is per frame, not per unit of time, so the cube spins
faster on displays that refresh faster.

	r, err := render.New(glctx, surface, render.DefaultConfig())
	if err != nil {
		log.Printf("error creating renderer: %v", err)
		return
	}
	render.Run(scheduler, r)
*/
package render

import (
	"fmt"

	"github.com/maspe36/webgl-cube-demo/cube"
	"github.com/maspe36/webgl-cube-demo/gles"
	"github.com/maspe36/webgl-cube-demo/shader"
	"github.com/maspe36/webgl-cube-demo/xform"
)

// Surface reports the current size of the drawing area in pixels.
type Surface interface {
	Size() (width, height int)
}

// Renderer holds the scene's GPU objects and animation state.
type Renderer struct {
	glctx   gles.Context
	surface Surface
	cfg     Config

	program *shader.Program
	buffers *cube.Buffers

	rotation float32
	frames   uint64
}

// New builds the shader program and uploads the cube geometry.  Any failure
// is returned and leaves no GPU objects behind.
func New(glctx gles.Context, surface Surface, cfg Config) (*Renderer, error) {
	prog, err := shader.Build(glctx, cfg.VertexSource, cfg.FragmentSource)
	if err != nil {
		return nil, fmt.Errorf("render: build program: %w", err)
	}
	bufs, err := cube.NewBuffers(glctx)
	if err != nil {
		prog.Release(glctx)
		return nil, fmt.Errorf("render: init buffers: %w", err)
	}
	return &Renderer{
		glctx:   glctx,
		surface: surface,
		cfg:     cfg,
		program: prog,
		buffers: bufs,
	}, nil
}

// Rotation returns the current cube angle in radians.
func (r *Renderer) Rotation() float32 { return r.rotation }

// Frames returns the number of completed ticks.
func (r *Renderer) Frames() uint64 { return r.frames }

// Tick draws one frame and advances the rotation.
func (r *Renderer) Tick() {
	glctx := r.glctx

	glctx.ClearColor(r.cfg.clearColor())
	glctx.ClearDepthf(r.cfg.ClearDepth)
	glctx.Enable(gles.DEPTH_TEST)
	glctx.DepthFunc(gles.LEQUAL) // near things obscure far things
	glctx.Clear(gles.COLOR_BUFFER_BIT | gles.DEPTH_BUFFER_BIT)

	width, height := r.surface.Size()
	projection := xform.Projection(r.cfg.FieldOfView, width, height, r.cfg.Near, r.cfg.Far)
	modelView := xform.ModelView(r.rotation, r.cfg.YRotationRatio, r.cfg.Translation)

	glctx.BindBuffer(gles.ARRAY_BUFFER, r.buffers.Position)
	glctx.VertexAttribPointer(r.program.Position, cube.PositionSize, gles.FLOAT, false, 0, 0)
	glctx.EnableVertexAttribArray(r.program.Position)

	glctx.BindBuffer(gles.ARRAY_BUFFER, r.buffers.Color)
	glctx.VertexAttribPointer(r.program.Color, cube.ColorSize, gles.FLOAT, false, 0, 0)
	glctx.EnableVertexAttribArray(r.program.Color)

	glctx.BindBuffer(gles.ELEMENT_ARRAY_BUFFER, r.buffers.Indices)

	glctx.UseProgram(r.program.Program)
	glctx.UniformMatrix4fv(r.program.Projection, projection[:])
	glctx.UniformMatrix4fv(r.program.ModelView, modelView[:])
	if r.cfg.Log != nil {
		r.cfg.Log.Printf("projection_matrix: %s", xform.Format(projection))
		r.cfg.Log.Printf("model_view_matrix: %s", xform.Format(modelView))
	}

	glctx.DrawElements(gles.TRIANGLES, cube.IndexCount, gles.UNSIGNED_SHORT, 0)

	r.rotation += r.cfg.RotationStep
	r.frames++
}

// Release deletes the program and buffers.  The Renderer must not be used
// afterwards.
func (r *Renderer) Release() {
	r.program.Release(r.glctx)
	r.buffers.Release(r.glctx)
}
