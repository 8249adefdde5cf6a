package frustum

import "github.com/Faultbox/frustum/pkg/geometry"

// applyOffset marks the vertices a height offset should move: none, all, or
// only those on the top ring.
func applyOffset(mode OffsetAttribute, slices int) *geometry.Attribute {
	a := geometry.NewUint8Attribute(1, VertexCount(slices))
	switch mode {
	case OffsetAll:
		for v := range a.Uint8 {
			a.Uint8[v] = 1
		}
	case OffsetTop:
		for i := range slices {
			a.Uint8[lateralRing*slices+2*i+1] = 1
			a.Uint8[topCapRing*slices+i] = 1
		}
	}
	return a
}
