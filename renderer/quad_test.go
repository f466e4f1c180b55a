package renderer

import "testing"

func TestQuadVertexData(t *testing.T) {
	// 4 vertices, each a vec2 position and a vec2 texture coordinate
	if len(quadVertices) != 16 {
		t.Fatalf("expected 16 floats of vertex data, got %d", len(quadVertices))
	}
	if len(quadIndices) != 6 {
		t.Fatalf("expected 6 indices, got %d", len(quadIndices))
	}

	// Every index must address one of the 4 vertices
	for i, idx := range quadIndices {
		if idx > 3 {
			t.Errorf("index %d out of range at position %d", idx, i)
		}
	}
}

func TestQuadCoversClipSpace(t *testing.T) {
	corners := map[[2]float32]bool{
		{-1, 1}:  false,
		{-1, -1}: false,
		{1, -1}:  false,
		{1, 1}:   false,
	}

	for v := 0; v < 4; v++ {
		pos := [2]float32{quadVertices[v*4], quadVertices[v*4+1]}
		if _, ok := corners[pos]; !ok {
			t.Errorf("vertex %d position %v is not a clip-space corner", v, pos)
			continue
		}
		corners[pos] = true
	}

	for corner, seen := range corners {
		if !seen {
			t.Errorf("clip-space corner %v not covered by any vertex", corner)
		}
	}
}

func TestQuadTexCoordsMatchCorners(t *testing.T) {
	// Texture coordinates must map each position corner to the same corner
	// of the unit square.
	for v := 0; v < 4; v++ {
		px, py := quadVertices[v*4], quadVertices[v*4+1]
		tx, ty := quadVertices[v*4+2], quadVertices[v*4+3]

		if tx != (px+1)/2 {
			t.Errorf("vertex %d: texcoord u %f does not match position x %f", v, tx, px)
		}
		if ty != (py+1)/2 {
			t.Errorf("vertex %d: texcoord v %f does not match position y %f", v, ty, py)
		}
	}
}

func TestQuadAttributeLayout(t *testing.T) {
	if vertexStride != 16 {
		t.Errorf("expected 16-byte vertex stride, got %d", vertexStride)
	}
	if texCoordOffset != 8 {
		t.Errorf("expected texture coordinates at byte offset 8, got %d", texCoordOffset)
	}
}
