package render

import (
	"image/color"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/maspe36/webgl-cube-demo/shader"
)

// Logger receives the per-frame matrix dumps.  *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Config holds the fixed identifiers and scene parameters of the demo.
type Config struct {
	CanvasID    string // DOM id of the canvas element
	ContextKind string // argument to canvas.getContext

	VertexSource   string
	FragmentSource string

	FieldOfView float32 // vertical, in radians
	Near        float32
	Far         float32

	Translation    mgl32.Vec3
	RotationStep   float32 // radians added per frame
	YRotationRatio float32 // Y rotation relative to Z rotation

	ClearColor color.NRGBA
	ClearDepth float32

	// Log receives each frame's matrices.  Nil disables the dumps.
	Log Logger
}

// DefaultConfig returns the demo scene: a canvas named "viewer" with a WebGL
// context, a 45 degree camera six units from the cube, and a black background.
func DefaultConfig() Config {
	return Config{
		CanvasID:       "viewer",
		ContextKind:    "webgl",
		VertexSource:   shader.VertexSource,
		FragmentSource: shader.FragmentSource,
		FieldOfView:    45 * math.Pi / 180,
		Near:           0.1,
		Far:            100.0,
		Translation:    mgl32.Vec3{0, 0, -6},
		RotationStep:   0.006,
		YRotationRatio: 0.7,
		ClearColor:     color.NRGBA{A: 0xff},
		ClearDepth:     1.0,
		Log:            log.Default(),
	}
}

func (c *Config) clearColor() (r, g, b, a float32) {
	cc := c.ClearColor
	return float32(cc.R) / 0xff, float32(cc.G) / 0xff, float32(cc.B) / 0xff, float32(cc.A) / 0xff
}
