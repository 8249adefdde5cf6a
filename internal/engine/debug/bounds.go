// Package debug provides debug visualization utilities.
package debug

import (
	gomath "math"

	"github.com/Faultbox/frustum/pkg/geometry"
)

// DefaultCircleSegments is the number of line segments per great circle.
const DefaultCircleSegments = 48

// SphereWireframeVertexCount returns the number of line vertices produced by
// SphereWireframe: three circles of segments lines, two endpoints each.
func SphereWireframeVertexCount(segments int) int {
	return 3 * segments * 2
}

// SphereWireframe creates line vertices for the three axis-aligned great
// circles of a bounding sphere. Format: [x, y, z] per vertex, GL_LINES.
func SphereWireframe(bs geometry.BoundingSphere, segments int) []float32 {
	verts := make([]float32, 0, 3*SphereWireframeVertexCount(segments))
	c := bs.Center
	r := bs.Radius

	// point returns point k of the circle spanned by axes a and b.
	point := func(k int, a, b int) [3]float64 {
		angle := float64(k) / float64(segments) * 2 * gomath.Pi
		p := [3]float64{c.X, c.Y, c.Z}
		p[a] += r * gomath.Cos(angle)
		p[b] += r * gomath.Sin(angle)
		return p
	}

	for _, plane := range [3][2]int{{0, 1}, {1, 2}, {0, 2}} {
		for k := 0; k < segments; k++ {
			p0 := point(k, plane[0], plane[1])
			p1 := point(k+1, plane[0], plane[1])
			verts = append(verts,
				float32(p0[0]), float32(p0[1]), float32(p0[2]),
				float32(p1[0]), float32(p1[1]), float32(p1[2]),
			)
		}
	}
	return verts
}

// NormalLines creates one line per vertex from its position along its normal,
// scaled by length. Returns nil when the mesh lacks positions or normals.
func NormalLines(m *geometry.Mesh, length float32) []float32 {
	pos := m.Attribute(geometry.Position)
	nrm := m.Attribute(geometry.Normal)
	if pos == nil || nrm == nil {
		return nil
	}

	verts := make([]float32, 0, 6*m.VertexCount())
	for v := 0; v < m.VertexCount(); v++ {
		p := m.Position(v).Float32()
		n := nrm.Vec3f(v)
		verts = append(verts,
			p[0], p[1], p[2],
			p[0]+n[0]*length, p[1]+n[1]*length, p[2]+n[2]*length,
		)
	}
	return verts
}
