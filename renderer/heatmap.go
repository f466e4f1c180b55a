// Package renderer owns the GPU resources and draw path for the heatmap.
package renderer

import (
	"github.com/go-gl/gl/v2.1/gl"

	"github.com/pthm-cable/heatfield/field"
)

// Heatmap ties the shader program, quad geometry, and field texture into
// one drawable scene. All GPU objects are created once here and released
// once in Unload.
type Heatmap struct {
	program *Program
	quad    *Quad
	texture *FieldTexture
}

// NewHeatmap builds the complete pipeline for a generated field: program
// first, then geometry, then the texture upload, mirroring the draw
// dependencies. Requires a current GL context.
func NewHeatmap(grid *field.Grid, vertexPath, fragmentPath string) *Heatmap {
	h := &Heatmap{}

	h.program = LoadProgram(vertexPath, fragmentPath)
	h.quad = NewQuad()
	h.texture = NewFieldTexture(grid)

	// The sampler binding never changes, set it once up front
	h.program.Use()

	return h
}

// Draw renders the textured quad. Per frame: bind the texture, describe the
// interleaved attribute layout, issue the indexed draw, then disable the
// attribute arrays again.
func (h *Heatmap) Draw() {
	h.texture.Bind()

	gl.EnableVertexAttribArray(h.program.PosAttrib)
	gl.VertexAttribPointer(h.program.PosAttrib, 2, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))

	gl.EnableVertexAttribArray(h.program.TexAttrib)
	gl.VertexAttribPointer(h.program.TexAttrib, 2, gl.FLOAT, false, vertexStride, gl.PtrOffset(texCoordOffset))

	gl.DrawElements(gl.TRIANGLES, h.quad.IndexCount(), gl.UNSIGNED_INT, gl.PtrOffset(0))

	gl.DisableVertexAttribArray(h.program.PosAttrib)
	gl.DisableVertexAttribArray(h.program.TexAttrib)
}

// Ready reports whether the shader program linked and the scene can render
// meaningfully.
func (h *Heatmap) Ready() bool {
	return h.program.Linked()
}

// Unload releases all GPU resources: buffers, then texture, then program.
func (h *Heatmap) Unload() {
	h.quad.Unload()
	h.texture.Unload()
	h.program.Unload()
}
