/*
Package cube holds the static geometry of a unit cube and uploads it into GPU
buffers.

Each face has its own four vertices so that it can carry a single flat color,
giving 24 vertices and 36 triangle indices.
*/
package cube

import (
	"encoding/binary"
	"image/color"

	"golang.org/x/mobile/exp/f32"
)

const (
	VertexCount  = 24
	IndexCount   = 36
	PositionSize = 3 // floats per position
	ColorSize    = 4 // floats per color
)

// Positions are the corner coordinates of every face, four vertices per face,
// in the order front, back, top, bottom, right, left.
var Positions = [VertexCount * PositionSize]float32{
	// front
	-1.0, -1.0, 1.0,
	1.0, -1.0, 1.0,
	1.0, 1.0, 1.0,
	-1.0, 1.0, 1.0,

	// back
	-1.0, -1.0, -1.0,
	-1.0, 1.0, -1.0,
	1.0, 1.0, -1.0,
	1.0, -1.0, -1.0,

	// top
	-1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0,
	1.0, 1.0, 1.0,
	1.0, 1.0, -1.0,

	// bottom
	-1.0, -1.0, -1.0,
	1.0, -1.0, -1.0,
	1.0, -1.0, 1.0,
	-1.0, -1.0, 1.0,

	// right
	1.0, -1.0, -1.0,
	1.0, 1.0, -1.0,
	1.0, 1.0, 1.0,
	1.0, -1.0, 1.0,

	// left
	-1.0, -1.0, -1.0,
	-1.0, -1.0, 1.0,
	-1.0, 1.0, 1.0,
	-1.0, 1.0, -1.0,
}

// Indices split each face into two triangles.
var Indices = [IndexCount]uint16{
	0, 1, 2, 0, 2, 3, // front
	4, 5, 6, 4, 6, 7, // back
	8, 9, 10, 8, 10, 11, // top
	12, 13, 14, 12, 14, 15, // bottom
	16, 17, 18, 16, 18, 19, // right
	20, 21, 22, 20, 22, 23, // left
}

// Face is one side of the cube.
type Face struct {
	Name   string
	Color  color.NRGBA
	Corner [4]uint16 // indices into Positions, in winding order
}

var faces = [6]Face{
	{"front", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, [4]uint16{0, 1, 2, 3}},
	{"back", color.NRGBA{R: 255, A: 255}, [4]uint16{4, 5, 6, 7}},
	{"top", color.NRGBA{G: 255, A: 255}, [4]uint16{8, 9, 10, 11}},
	{"bottom", color.NRGBA{B: 255, A: 255}, [4]uint16{12, 13, 14, 15}},
	{"right", color.NRGBA{R: 255, G: 255, A: 255}, [4]uint16{16, 17, 18, 19}},
	{"left", color.NRGBA{R: 255, B: 255, A: 255}, [4]uint16{20, 21, 22, 23}},
}

// Faces returns the six faces in vertex order.
func Faces() [6]Face {
	return faces
}

// Colors returns the RGBA components of every vertex, each face's color
// repeated for its four corners.
func Colors() [VertexCount * ColorSize]float32 {
	var p [VertexCount * ColorSize]float32
	for i, face := range faces {
		r, g, b, a := face.Color.RGBA()
		for j := 0; j < 4; j++ {
			v := ColorSize * (4*i + j)
			p[v+0] = float32(r) / float32(uint16(0xffff))
			p[v+1] = float32(g) / float32(uint16(0xffff))
			p[v+2] = float32(b) / float32(uint16(0xffff))
			p[v+3] = float32(a) / float32(uint16(0xffff))
		}
	}
	return p
}

// Vertex returns the position of vertex i.
func Vertex(i uint16) [3]float32 {
	v := PositionSize * int(i)
	return [3]float32{Positions[v], Positions[v+1], Positions[v+2]}
}

var (
	positionData = f32.Bytes(binary.LittleEndian, Positions[:]...)
	colorData    = colorBytes()
	indexData    = indexBytes()
)

func colorBytes() []byte {
	p := Colors()
	return f32.Bytes(binary.LittleEndian, p[:]...)
}

func indexBytes() []byte {
	data := make([]byte, 0, 2*IndexCount)
	var buf [2]byte
	for _, i := range Indices {
		binary.LittleEndian.PutUint16(buf[:], i)
		data = append(data, buf[:]...)
	}
	return data
}
