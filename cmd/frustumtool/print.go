package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/Faultbox/frustum/pkg/frustum"
	"github.com/Faultbox/frustum/pkg/geometry"
)

// attributeOrder lists semantics in display order.
var attributeOrder = []string{
	geometry.Position,
	geometry.Normal,
	geometry.Tangent,
	geometry.Bitangent,
	geometry.ST,
	geometry.ApplyOffset,
}

func printInfo(w io.Writer, opts frustum.Options, m *geometry.Mesh) {
	fmt.Fprintf(w, "Shape:     height=%g top=%g bottom=%g slices=%d\n",
		opts.Height, opts.TopRadius, opts.BottomRadius, opts.Slices)
	fmt.Fprintf(w, "Format:    %s\n", opts.VertexFormat)
	if opts.OffsetAttribute != frustum.OffsetUnset {
		fmt.Fprintf(w, "Offset:    %s\n", opts.OffsetAttribute)
	}
	fmt.Fprintf(w, "Primitive: %s\n", m.PrimitiveType)
	fmt.Fprintf(w, "Vertices:  %d\n", m.VertexCount())
	fmt.Fprintf(w, "Indices:   %d (%d triangles, %s)\n", m.Indices.Len(), m.TriangleCount(), m.Indices.Datatype())
	fmt.Fprintf(w, "Bounds:    center=(%g, %g, %g) radius=%g\n",
		m.BoundingSphere.Center.X, m.BoundingSphere.Center.Y, m.BoundingSphere.Center.Z, m.BoundingSphere.Radius)

	fmt.Fprintln(w, "\nAttributes:")
	var total int
	for _, name := range attributeOrder {
		a := m.Attribute(name)
		if a == nil {
			continue
		}
		size := a.Len() * a.Datatype.Size()
		total += size
		fmt.Fprintf(w, "  %-12s %-8s x%d  %10d bytes\n", name, a.Datatype, a.ComponentsPerAttribute, size)
	}
	indexBytes := m.Indices.Len() * m.Indices.Datatype().Size()
	fmt.Fprintf(w, "  %-12s %-8s x1  %10d bytes\n", "indices", m.Indices.Datatype(), indexBytes)
	fmt.Fprintf(w, "  %-12s %13s %10d bytes\n", "total", "", total+indexBytes)
}

func printDump(w io.Writer, sliceCount int, m *geometry.Mesh, limit int) {
	n := m.VertexCount()
	if limit <= 0 {
		limit = max(n, m.TriangleCount())
	}

	fmt.Fprintf(w, "Vertices (%d):\n", n)
	for v := 0; v < min(n, limit); v++ {
		switch v {
		case 0:
			fmt.Fprintln(w, "  # lateral (bottom, top interleaved)")
		case 2 * sliceCount:
			fmt.Fprintln(w, "  # bottom cap")
		case 3 * sliceCount:
			fmt.Fprintln(w, "  # top cap")
		}
		fmt.Fprintf(w, "  %6d  %s\n", v, formatVertex(m, v))
	}
	if n > limit {
		fmt.Fprintf(w, "  ... %d more\n", n-limit)
	}

	tc := m.TriangleCount()
	fmt.Fprintf(w, "Triangles (%d):\n", tc)
	for i := 0; i < min(tc, limit); i++ {
		t := m.Triangle(i)
		fmt.Fprintf(w, "  %6d  %d %d %d\n", i, t[0], t[1], t[2])
	}
	if tc > limit {
		fmt.Fprintf(w, "  ... %d more\n", tc-limit)
	}
}

func formatVertex(m *geometry.Mesh, v int) string {
	var s string
	if m.Attribute(geometry.Position) != nil {
		p := m.Position(v)
		s += fmt.Sprintf("p=(%.4f, %.4f, %.4f)", p.X, p.Y, p.Z)
	}
	for _, name := range []string{geometry.Normal, geometry.Tangent, geometry.Bitangent} {
		if a := m.Attribute(name); a != nil {
			f := a.Vec3f(v)
			s += fmt.Sprintf(" %c=(%.3f, %.3f, %.3f)", name[0], f[0], f[1], f[2])
		}
	}
	if a := m.Attribute(geometry.ST); a != nil {
		s += fmt.Sprintf(" st=(%.4f, %.4f)", a.Float32[2*v], a.Float32[2*v+1])
	}
	if a := m.Attribute(geometry.ApplyOffset); a != nil {
		s += fmt.Sprintf(" offset=%d", a.Uint8[v])
	}
	return s
}

// verify prints every problem and returns errProblems when any are found.
func verify(w io.Writer, m *geometry.Mesh, tol float64) error {
	problems := geometry.Validate(m, tol)
	if len(problems) == 0 {
		fmt.Fprintf(w, "OK: %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())
		return nil
	}

	counts := make(map[geometry.ProblemKind]int)
	for _, p := range problems {
		counts[p.Kind]++
		fmt.Fprintln(w, p.Error())
	}
	kinds := make([]geometry.ProblemKind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	for _, k := range kinds {
		fmt.Fprintf(w, "%-20s %d\n", k, counts[k])
	}
	return fmt.Errorf("%w: %d found", errProblems, len(problems))
}
