package renderer

import (
	"github.com/go-gl/gl/v2.1/gl"

	"github.com/pthm-cable/heatfield/field"
)

// FieldTexture is the GPU-resident copy of a scalar field: a single-channel
// float texture sampled by the fragment shader. The CPU-side grid is not
// retained.
type FieldTexture struct {
	ID     uint32
	Width  int
	Height int
}

// NewFieldTexture uploads the grid as a red-channel float texture with
// clamp-to-edge wrapping and bilinear filtering.
func NewFieldTexture(g *field.Grid) *FieldTexture {
	t := &FieldTexture{Width: g.Width, Height: g.Height}

	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(g.Width), int32(g.Height), 0,
		gl.RED, gl.FLOAT, gl.Ptr(g.Data))

	// Out-of-range texture coordinates reuse the edge texels
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	return t
}

// Bind makes the texture current on texture unit 0.
func (t *FieldTexture) Bind() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Unload releases the texture object.
func (t *FieldTexture) Unload() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
