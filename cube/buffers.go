package cube

import (
	"fmt"

	"github.com/maspe36/webgl-cube-demo/gles"
)

// Buffers are the GPU copies of the cube geometry.  They are filled once and
// never updated.
type Buffers struct {
	Position gles.Buffer
	Color    gles.Buffer
	Indices  gles.Buffer
}

// NewBuffers allocates the position, color and index buffers and uploads the
// static cube data with STATIC_DRAW usage.  If the context refuses a buffer,
// the ones already created are deleted.
func NewBuffers(glctx gles.Context) (*Buffers, error) {
	uploads := []struct {
		name   string
		target gles.Enum
		data   []byte
	}{
		{"position", gles.ARRAY_BUFFER, positionData},
		{"color", gles.ARRAY_BUFFER, colorData},
		{"index", gles.ELEMENT_ARRAY_BUFFER, indexData},
	}

	var created [3]gles.Buffer
	for i, u := range uploads {
		buf := glctx.CreateBuffer()
		if !buf.IsValid() {
			for _, b := range created[:i] {
				glctx.DeleteBuffer(b)
			}
			return nil, fmt.Errorf("cube: failed to create %s buffer", u.name)
		}
		glctx.BindBuffer(u.target, buf)
		glctx.BufferData(u.target, u.data, gles.STATIC_DRAW)
		created[i] = buf
	}

	return &Buffers{
		Position: created[0],
		Color:    created[1],
		Indices:  created[2],
	}, nil
}

// Release deletes the three buffers.
func (b *Buffers) Release(glctx gles.Context) {
	glctx.DeleteBuffer(b.Position)
	glctx.DeleteBuffer(b.Color)
	glctx.DeleteBuffer(b.Indices)
}
