package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/frustum/pkg/geometry"
)

// GLIndexType maps an index datatype to its GL element type.
func GLIndexType(d geometry.IndexDatatype) uint32 {
	if d == geometry.Uint16 {
		return gl.UNSIGNED_SHORT
	}
	return gl.UNSIGNED_INT
}

// Float32Components returns the attribute's values as float32, converting
// float64 and uint8 storage. Float32 storage is returned without copying.
func Float32Components(a *geometry.Attribute) []float32 {
	switch a.Datatype {
	case geometry.Float32:
		return a.Float32
	case geometry.Float64:
		out := make([]float32, len(a.Float64))
		for i, v := range a.Float64 {
			out[i] = float32(v)
		}
		return out
	default:
		out := make([]float32, len(a.Uint8))
		for i, v := range a.Uint8 {
			out[i] = float32(v)
		}
		return out
	}
}
