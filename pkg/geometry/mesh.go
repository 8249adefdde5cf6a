package geometry

import (
	"fmt"

	"github.com/Faultbox/frustum/pkg/math"
)

// PrimitiveType is the topology the index buffer describes.
type PrimitiveType int

const (
	Triangles PrimitiveType = iota
)

func (p PrimitiveType) String() string {
	if p == Triangles {
		return "triangles"
	}
	return fmt.Sprintf("PrimitiveType(%d)", int(p))
}

// BoundingSphere encloses every position of a mesh.
type BoundingSphere struct {
	Center math.Vec3d
	Radius float64
}

// Contains reports whether p lies inside the sphere, allowing eps of slack
// for rounding.
func (s BoundingSphere) Contains(p math.Vec3d, eps float64) bool {
	return p.Distance(s.Center) <= s.Radius+eps
}

// Mesh is a finished geometry. Builders never touch a Mesh after returning
// it; the caller owns every buffer.
type Mesh struct {
	Attributes     map[string]*Attribute
	Indices        *IndexBuffer
	PrimitiveType  PrimitiveType
	BoundingSphere BoundingSphere

	vertexCount int
}

// NewMesh assembles a mesh over numVertices vertices.
func NewMesh(numVertices int, attrs map[string]*Attribute, indices *IndexBuffer, pt PrimitiveType, bs BoundingSphere) *Mesh {
	return &Mesh{
		Attributes:     attrs,
		Indices:        indices,
		PrimitiveType:  pt,
		BoundingSphere: bs,
		vertexCount:    numVertices,
	}
}

// VertexCount returns the number of vertices, whether or not positions were
// emitted.
func (m *Mesh) VertexCount() int {
	return m.vertexCount
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return m.Indices.Len() / 3
}

// Triangle returns the three vertex indices of triangle i.
func (m *Mesh) Triangle(i int) [3]uint32 {
	j := 3 * i
	return [3]uint32{m.Indices.At(j), m.Indices.At(j + 1), m.Indices.At(j + 2)}
}

// Attribute returns the named attribute, or nil when it was not emitted.
func (m *Mesh) Attribute(name string) *Attribute {
	return m.Attributes[name]
}

// Position returns the position of vertex i. The mesh must carry positions.
func (m *Mesh) Position(i int) math.Vec3d {
	p := m.Attributes[Position].Float64
	j := 3 * i
	return math.Vec3d{X: p[j], Y: p[j+1], Z: p[j+2]}
}
