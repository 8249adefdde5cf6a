package frustum

import "math"

// ring caches the unit circle sampled at slices equal angles. Each build
// owns its own ring.
type ring struct {
	cos, sin []float64
}

func newRing(slices int) ring {
	r := ring{cos: make([]float64, slices), sin: make([]float64, slices)}
	for i := range slices {
		angle := float64(i) / float64(slices) * 2 * math.Pi
		r.cos[i] = math.Cos(angle)
		r.sin[i] = math.Sin(angle)
	}
	return r
}

func (r ring) slices() int {
	return len(r.cos)
}

// positions writes every vertex position into one buffer: the interleaved
// lateral ring, then the bottom and top cap rings.
func (r ring) positions(bottomRadius, topRadius, height float64) []float64 {
	s := r.slices()
	pos := make([]float64, 3*VertexCount(s))
	bottomZ := -height / 2
	topZ := height / 2

	for i := range s {
		bx, by := r.cos[i]*bottomRadius, r.sin[i]*bottomRadius
		tx, ty := r.cos[i]*topRadius, r.sin[i]*topRadius

		setVec3(pos, lateralRing*s+2*i, bx, by, bottomZ)
		setVec3(pos, lateralRing*s+2*i+1, tx, ty, topZ)
		setVec3(pos, bottomCapRing*s+i, bx, by, bottomZ)
		setVec3(pos, topCapRing*s+i, tx, ty, topZ)
	}
	return pos
}

func setVec3(buf []float64, vertex int, x, y, z float64) {
	j := 3 * vertex
	buf[j] = x
	buf[j+1] = y
	buf[j+2] = z
}
