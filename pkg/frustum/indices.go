package frustum

import "github.com/Faultbox/frustum/pkg/geometry"

// triangulate emits the counter-clockwise (outward) triangle list: the
// lateral quads, then the bottom and top cap fans.
func triangulate(slices int) *geometry.IndexBuffer {
	ib := geometry.NewIndexBuffer(VertexCount(slices), IndexCount(slices))
	n := 0
	tri := func(a, b, c int) {
		ib.Set(n, uint32(a))
		ib.Set(n+1, uint32(b))
		ib.Set(n+2, uint32(c))
		n += 3
	}

	// Lateral quads. Vertex 2k is bottom and 2k+1 top at slice k.
	twoSlices := 2 * slices
	for k := 0; k < slices-1; k++ {
		j := lateralRing*slices + 2*k
		tri(j, j+2, j+3)
		tri(j, j+3, j+1)
	}
	// The quad closing the ring wraps from the last slice back to slice 0.
	tri(twoSlices-2, 0, 1)
	tri(twoSlices-2, 1, twoSlices-1)

	// Bottom cap faces -Z, so its fan runs clockwise seen from above.
	bottom := bottomCapRing * slices
	for i := 1; i < slices-1; i++ {
		tri(bottom+i+1, bottom+i, bottom)
	}

	top := topCapRing * slices
	for i := 1; i < slices-1; i++ {
		tri(top, top+i, top+i+1)
	}

	assertf(n == ib.Len(), "emitted %d indices, want %d", n, ib.Len())
	return ib
}
