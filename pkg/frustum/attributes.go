package frustum

import (
	"github.com/Faultbox/frustum/pkg/geometry"
	"github.com/Faultbox/frustum/pkg/math"
)

// Constant cap frames.
var (
	bottomCapNormal    = math.Vec3d{X: 0, Y: 0, Z: -1}
	bottomCapTangent   = math.Vec3d{X: 1, Y: 0, Z: 0}
	bottomCapBitangent = math.Vec3d{X: 0, Y: -1, Z: 0}

	topCapNormal    = math.Vec3d{X: 0, Y: 0, Z: 1}
	topCapTangent   = math.Vec3d{X: 1, Y: 0, Z: 0}
	topCapBitangent = math.Vec3d{X: 0, Y: 1, Z: 0}
)

// frames holds the per-vertex shading frame buffers. Buffers the plan does
// not need stay nil.
type frames struct {
	normals, tangents, bitangents *geometry.Attribute
}

// frames computes normals, and tangents and bitangents when the plan asks
// for them.
//
// The lateral normal is the radial direction (cos, sin, 0) for both rings.
// It ignores the slant of a cone, which existing consumers rely on.
func (r ring) frames(p plan) frames {
	s := r.slices()
	n := VertexCount(s)

	fr := frames{normals: geometry.NewFloat32Attribute(3, n)}
	if p.computeTangent {
		fr.tangents = geometry.NewFloat32Attribute(3, n)
	}
	if p.bitangent {
		fr.bitangents = geometry.NewFloat32Attribute(3, n)
	}

	for i := range s {
		normal := math.Vec3d{X: r.cos[i], Y: r.sin[i]}
		fr.set(lateralRing*s+2*i, 2, normal, p)
	}
	for i := range s {
		fr.setCap(bottomCapRing*s+i, bottomCapNormal, bottomCapTangent, bottomCapBitangent)
		fr.setCap(topCapRing*s+i, topCapNormal, topCapTangent, topCapBitangent)
	}
	return fr
}

// set derives the frame of a lateral normal and writes it to count
// consecutive vertices starting at first.
func (fr frames) set(first, count int, normal math.Vec3d, p plan) {
	var tangent, bitangent math.Vec3d
	if p.computeTangent {
		tangent = math.UnitZ.Cross(normal).Normalize()
	}
	if p.bitangent {
		bitangent = normal.Cross(tangent).Normalize()
	}
	for v := first; v < first+count; v++ {
		putVec3(fr.normals, v, normal)
		if fr.tangents != nil {
			putVec3(fr.tangents, v, tangent)
		}
		if fr.bitangents != nil {
			putVec3(fr.bitangents, v, bitangent)
		}
	}
}

func (fr frames) setCap(v int, normal, tangent, bitangent math.Vec3d) {
	putVec3(fr.normals, v, normal)
	if fr.tangents != nil {
		putVec3(fr.tangents, v, tangent)
	}
	if fr.bitangents != nil {
		putVec3(fr.bitangents, v, bitangent)
	}
}

func putVec3(a *geometry.Attribute, vertex int, v math.Vec3d) {
	f := v.Float32()
	copy(a.Float32[3*vertex:3*vertex+3], f[:])
}
