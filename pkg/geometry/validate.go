package geometry

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/frustum/pkg/math"
)

// ProblemKind classifies a validation failure.
type ProblemKind int

const (
	BadIndexCount ProblemKind = iota
	BadAttributeCount
	IndexOutOfRange
	DegenerateTriangle
	InwardTriangle
	NonUnitNormal
	NonOrthogonalFrame
	OutsideBounds
)

var problemNames = map[ProblemKind]string{
	BadIndexCount:      "bad index count",
	BadAttributeCount:  "bad attribute count",
	IndexOutOfRange:    "index out of range",
	DegenerateTriangle: "degenerate triangle",
	InwardTriangle:     "inward triangle",
	NonUnitNormal:      "non-unit normal",
	NonOrthogonalFrame: "non-orthogonal frame",
	OutsideBounds:      "outside bounds",
}

func (k ProblemKind) String() string {
	if s, ok := problemNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ProblemKind(%d)", int(k))
}

// Problem is one validation failure. Index is the triangle or vertex the
// problem was found at, or -1 for whole-mesh problems.
type Problem struct {
	Kind   ProblemKind
	Index  int
	Detail string
}

func (p Problem) Error() string {
	if p.Index < 0 {
		return fmt.Sprintf("%s: %s", p.Kind, p.Detail)
	}
	return fmt.Sprintf("%s at %d: %s", p.Kind, p.Index, p.Detail)
}

// Validate checks structural and geometric consistency of a triangle mesh:
// index range and distinctness, attribute lengths, unit normals, orthogonal
// tangent frames, containment in the bounding sphere, and agreement of each
// non-collapsed triangle's winding with its vertex normals. tol bounds the
// floating-point slack of every numeric check.
func Validate(m *Mesh, tol float64) []Problem {
	var problems []Problem
	report := func(kind ProblemKind, index int, format string, args ...any) {
		problems = append(problems, Problem{Kind: kind, Index: index, Detail: fmt.Sprintf(format, args...)})
	}

	n := m.VertexCount()
	for name, attr := range m.Attributes {
		if attr.Count() != n {
			report(BadAttributeCount, -1, "%s covers %d vertices, mesh has %d", name, attr.Count(), n)
		}
	}
	if len(problems) > 0 {
		return problems
	}

	if m.Indices.Len()%3 != 0 {
		report(BadIndexCount, -1, "%d indices is not a whole number of triangles", m.Indices.Len())
		return problems
	}

	positions := m.Attribute(Position)
	normals := m.Attribute(Normal)

	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		inRange := true
		for _, idx := range tri {
			if int(idx) >= n {
				report(IndexOutOfRange, t, "index %d >= %d vertices", idx, n)
				inRange = false
			}
		}
		if !inRange {
			continue
		}
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[0] == tri[2] {
			report(DegenerateTriangle, t, "indices %v", tri)
			continue
		}
		if positions == nil || normals == nil {
			continue
		}

		p0, p1, p2 := m.Position(int(tri[0])), m.Position(int(tri[1])), m.Position(int(tri[2]))
		e1, e2 := p1.Sub(p0), p2.Sub(p0)
		face := e1.Cross(e2)
		if face.Length() <= tol*e1.Length()*e2.Length() {
			// Collapsed (e.g. an apex cap); valid but has no orientation.
			continue
		}
		face = face.Normalize()
		for _, idx := range tri {
			vn := toVec3d(normals.Vec3f(int(idx)))
			if face.Dot(vn) < -tol {
				report(InwardTriangle, t, "face normal %v opposes vertex %d normal %v", face, idx, vn)
				break
			}
		}
	}

	if normals != nil {
		tangents := m.Attribute(Tangent)
		bitangents := m.Attribute(Bitangent)
		for v := 0; v < n; v++ {
			nv := toVec3d(normals.Vec3f(v))
			if gomath.Abs(nv.Length()-1) > tol {
				report(NonUnitNormal, v, "|n| = %g", nv.Length())
			}
			if tangents != nil {
				if d := nv.Dot(toVec3d(tangents.Vec3f(v))); gomath.Abs(d) > tol {
					report(NonOrthogonalFrame, v, "n·t = %g", d)
				}
			}
			if bitangents != nil {
				if d := nv.Dot(toVec3d(bitangents.Vec3f(v))); gomath.Abs(d) > tol {
					report(NonOrthogonalFrame, v, "n·b = %g", d)
				}
			}
		}
	}

	if positions != nil {
		for v := 0; v < n; v++ {
			p := m.Position(v)
			if !m.BoundingSphere.Contains(p, tol) {
				report(OutsideBounds, v, "%v is %g from center, radius %g", p, p.Distance(m.BoundingSphere.Center), m.BoundingSphere.Radius)
			}
		}
	}

	return problems
}

func toVec3d(v [3]float32) math.Vec3d {
	return math.Vec3d{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}
