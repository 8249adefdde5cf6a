package frustum

import "github.com/Faultbox/frustum/pkg/geometry"

// mapST projects every vertex straight down onto the square circumscribing
// the larger ring, so all four rings share one texture region keyed by plan
// position.
func mapST(positions []float64, radius float64) *geometry.Attribute {
	assertf(radius > 0, "texture radius %v must be positive", radius)

	n := len(positions) / 3
	st := geometry.NewFloat32Attribute(2, n)
	diameter := 2 * radius
	for v := range n {
		x, y := positions[3*v], positions[3*v+1]
		st.Float32[2*v] = float32((x + radius) / diameter)
		st.Float32[2*v+1] = float32((y + radius) / diameter)
	}
	return st
}
