package cube

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maspe36/webgl-cube-demo/gles"
	"github.com/maspe36/webgl-cube-demo/glestest"
)

func TestIndicesInRange(t *testing.T) {
	assert.Len(t, Indices, IndexCount)
	assert.Equal(t, 12, len(Indices)/3)
	for i, idx := range Indices {
		assert.Less(t, int(idx), VertexCount, "index %d", i)
	}
}

func TestFacesArePlanar(t *testing.T) {
	for i, face := range Faces() {
		// every triangle of the face only uses the face's own corners
		for _, idx := range Indices[6*i : 6*i+6] {
			assert.Contains(t, face.Corner[:], idx, face.Name)
		}

		// all four corners share one coordinate at +1 or -1
		var axis = -1
		for a := 0; a < 3; a++ {
			v0 := Vertex(face.Corner[0])[a]
			same := true
			for _, c := range face.Corner[1:] {
				if Vertex(c)[a] != v0 {
					same = false
				}
			}
			if same {
				require.Equal(t, -1, axis, "%s lies in more than one plane", face.Name)
				axis = a
				assert.Equal(t, float32(1), float32(math.Abs(float64(v0))), face.Name)
			}
		}
		assert.NotEqual(t, -1, axis, "%s is not planar", face.Name)
	}
}

func TestPositionsOnUnitCube(t *testing.T) {
	seen := make(map[[3]float32]int)
	for i := uint16(0); i < VertexCount; i++ {
		v := Vertex(i)
		for _, c := range v {
			assert.True(t, c == 1 || c == -1)
		}
		seen[v]++
	}
	// eight corners, each shared by three faces
	assert.Len(t, seen, 8)
	for _, n := range seen {
		assert.Equal(t, 3, n)
	}
}

func TestColors(t *testing.T) {
	colors := Colors()
	want := [6][4]float32{
		{1, 1, 1, 1}, // front: white
		{1, 0, 0, 1}, // back: red
		{0, 1, 0, 1}, // top: green
		{0, 0, 1, 1}, // bottom: blue
		{1, 1, 0, 1}, // right: yellow
		{1, 0, 1, 1}, // left: purple
	}
	for f := range want {
		for v := 0; v < 4; v++ {
			off := ColorSize * (4*f + v)
			assert.Equal(t, want[f][:], colors[off:off+ColorSize], "face %d vertex %d", f, v)
		}
	}
}

func TestByteEncoding(t *testing.T) {
	assert.Len(t, positionData, 4*VertexCount*PositionSize)
	assert.Len(t, colorData, 4*VertexCount*ColorSize)
	require.Len(t, indexData, 2*IndexCount)
	for i := range Indices {
		assert.Equal(t, Indices[i], binary.LittleEndian.Uint16(indexData[2*i:]))
	}
	assert.Equal(t, math.Float32bits(Positions[5]), binary.LittleEndian.Uint32(positionData[4*5:]))
}

func TestNewBuffers(t *testing.T) {
	glctx := glestest.New()
	bufs, err := NewBuffers(glctx)
	require.NoError(t, err)

	assert.Equal(t, 3, glctx.Count("CreateBuffer"))
	_, _, live := glctx.Live()
	assert.Equal(t, 3, live)

	pos := glctx.Buffers[bufs.Position.Value]
	assert.Equal(t, gles.ARRAY_BUFFER, pos.Target)
	assert.Equal(t, positionData, pos.Data)
	assert.Equal(t, gles.STATIC_DRAW, pos.Usage)

	col := glctx.Buffers[bufs.Color.Value]
	assert.Equal(t, gles.ARRAY_BUFFER, col.Target)
	assert.Equal(t, colorData, col.Data)

	idx := glctx.Buffers[bufs.Indices.Value]
	assert.Equal(t, gles.ELEMENT_ARRAY_BUFFER, idx.Target)
	assert.Equal(t, indexData, idx.Data)

	bufs.Release(glctx)
	_, _, live = glctx.Live()
	assert.Equal(t, 0, live)
}

func TestNewBuffersRefused(t *testing.T) {
	for limit, name := range map[int]string{1: "color", 2: "index"} {
		glctx := glestest.New()
		glctx.BufferLimit = limit
		bufs, err := NewBuffers(glctx)
		assert.Nil(t, bufs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create "+name+" buffer")

		_, _, live := glctx.Live()
		assert.Equal(t, 0, live, name)
	}
}
