// Package geometry holds the generic mesh container filled by shape builders:
// named vertex attribute buffers, a pre-sized index buffer, the primitive
// topology and a bounding sphere.
package geometry

import "fmt"

// Attribute semantic names.
const (
	Position    = "position"
	Normal      = "normal"
	Tangent     = "tangent"
	Bitangent   = "bitangent"
	ST          = "st"
	ApplyOffset = "applyOffset"
)

// ComponentDatatype is the scalar type of an attribute buffer.
type ComponentDatatype int

const (
	Float64 ComponentDatatype = iota
	Float32
	Uint8
)

// Size returns the size of one component in bytes.
func (d ComponentDatatype) Size() int {
	switch d {
	case Float64:
		return 8
	case Float32:
		return 4
	case Uint8:
		return 1
	default:
		panic(fmt.Sprintf("geometry: unknown component datatype %d", int(d)))
	}
}

func (d ComponentDatatype) String() string {
	switch d {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Uint8:
		return "uint8"
	default:
		return fmt.Sprintf("ComponentDatatype(%d)", int(d))
	}
}

// Attribute is one per-vertex buffer. Exactly one of the value slices is
// populated, matching Datatype.
type Attribute struct {
	Datatype               ComponentDatatype
	ComponentsPerAttribute int

	Float64 []float64
	Float32 []float32
	Uint8   []uint8
}

// NewFloat64Attribute allocates a zeroed float64 buffer for count vertices.
func NewFloat64Attribute(components, count int) *Attribute {
	return &Attribute{Datatype: Float64, ComponentsPerAttribute: components, Float64: make([]float64, components*count)}
}

// NewFloat32Attribute allocates a zeroed float32 buffer for count vertices.
func NewFloat32Attribute(components, count int) *Attribute {
	return &Attribute{Datatype: Float32, ComponentsPerAttribute: components, Float32: make([]float32, components*count)}
}

// NewUint8Attribute allocates a zeroed uint8 buffer for count vertices.
func NewUint8Attribute(components, count int) *Attribute {
	return &Attribute{Datatype: Uint8, ComponentsPerAttribute: components, Uint8: make([]uint8, components*count)}
}

// Len returns the number of scalar components stored.
func (a *Attribute) Len() int {
	switch a.Datatype {
	case Float64:
		return len(a.Float64)
	case Float32:
		return len(a.Float32)
	default:
		return len(a.Uint8)
	}
}

// Count returns the number of vertices the buffer covers.
func (a *Attribute) Count() int {
	if a.ComponentsPerAttribute == 0 {
		return 0
	}
	return a.Len() / a.ComponentsPerAttribute
}

// Vec3f returns the i-th vertex of a 3-component float32 attribute.
func (a *Attribute) Vec3f(i int) [3]float32 {
	j := 3 * i
	return [3]float32{a.Float32[j], a.Float32[j+1], a.Float32[j+2]}
}
