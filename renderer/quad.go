package renderer

import "github.com/go-gl/gl/v2.1/gl"

// Interleaved vertex data for a quad covering all of clip space, with
// texture coordinates mapping each corner to the unit square.
var quadVertices = []float32{
	// Positions    // Texture Coords
	-1.0, 1.0, 0.0, 1.0, // Top-left corner
	-1.0, -1.0, 0.0, 0.0, // Bottom-left corner
	1.0, -1.0, 1.0, 0.0, // Bottom-right corner
	1.0, 1.0, 1.0, 1.0, // Top-right corner
}

// Two triangles sharing the diagonal.
var quadIndices = []uint32{
	0, 1, 2,
	0, 2, 3,
}

const (
	// Bytes between consecutive vertices: two vec2s of float32.
	vertexStride = 4 * 4
	// Byte offset of the texture coordinates within a vertex.
	texCoordOffset = 2 * 4
)

// Quad owns the vertex and element buffers of the full-screen quad. The
// data is uploaded once and never rewritten.
type Quad struct {
	vbo uint32
	ebo uint32
}

// NewQuad uploads the quad geometry to GPU buffers and leaves them bound.
func NewQuad() *Quad {
	q := &Quad{}

	gl.GenBuffers(1, &q.vbo)
	gl.GenBuffers(1, &q.ebo)

	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, q.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quadIndices)*4, gl.Ptr(quadIndices), gl.STATIC_DRAW)

	return q
}

// IndexCount returns the number of indices in the element buffer.
func (q *Quad) IndexCount() int32 {
	return int32(len(quadIndices))
}

// Unload releases the buffer objects.
func (q *Quad) Unload() {
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
		q.vbo = 0
	}
	if q.ebo != 0 {
		gl.DeleteBuffers(1, &q.ebo)
		q.ebo = 0
	}
}
