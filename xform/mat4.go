// Package xform builds the cube's projection and model-view matrices.
//
// All functions return new matrices and never modify their arguments.
// Matrices are column-major, so m[:] can be handed directly to
// UniformMatrix4fv.
package xform

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Rotation axes used by ModelView.
var (
	YAxis = mgl32.Vec3{0, 1, 0}
	ZAxis = mgl32.Vec3{0, 0, 1}
)

// Translate returns m followed by a translation by v, that is m * T(v).
func Translate(m mgl32.Mat4, v mgl32.Vec3) mgl32.Mat4 {
	return m.Mul4(mgl32.Translate3D(v[0], v[1], v[2]))
}

// Rotate returns m followed by a rotation of angle radians about axis.
// axis need not be normalized.  A zero axis leaves m unchanged.
func Rotate(m mgl32.Mat4, angle float32, axis mgl32.Vec3) mgl32.Mat4 {
	if axis.Len() == 0 {
		return m
	}
	return m.Mul4(mgl32.HomogRotate3D(angle, axis.Normalize()))
}

// Perspective returns a perspective projection with vertical field of view
// fovy radians.
func Perspective(fovy, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(fovy, aspect, near, far)
}

// Projection is the per-frame projection for a surface of the given size.
// The aspect ratio is width/height in floating point; a zero height is not
// guarded against.
func Projection(fovy float32, width, height int, near, far float32) mgl32.Mat4 {
	aspect := float32(width) / float32(height)
	return Perspective(fovy, aspect, near, far)
}

// ModelView positions the cube: translate by t, rotate by angle about Z, then
// by angle*yRatio about Y.  Each step multiplies into the previous result.
func ModelView(angle, yRatio float32, t mgl32.Vec3) mgl32.Mat4 {
	m := Translate(mgl32.Ident4(), t)
	m = Rotate(m, angle, ZAxis)
	m = Rotate(m, angle*yRatio, YAxis)
	return m
}

// Format returns the 16 column-major values of m as a bracketed list.
func Format(m mgl32.Mat4) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range m {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", v)
	}
	b.WriteByte(']')
	return b.String()
}
