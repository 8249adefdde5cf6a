// Package frustum builds the triangle mesh of a frustum: a cylinder whose top
// and bottom radii differ, centred on the origin with its axis along +Z.
//
// The vertex buffer holds four rings of slices vertices each. The first 2*slices
// vertices are the lateral surface with bottom and top interleaved (even
// indices bottom, odd indices top), followed by a bottom cap ring and a top
// cap ring. Positions repeat across the rings because the caps need their own
// flat normals.
package frustum

import (
	"fmt"

	"github.com/Faultbox/frustum/pkg/geometry"
)

// Ring offsets, in units of slices.
const (
	lateralRing   = 0
	bottomCapRing = 2
	topCapRing    = 3
	ringCount     = 4
)

// VertexCount returns the number of vertices of a frustum with the given
// number of slices.
func VertexCount(slices int) int {
	return ringCount * slices
}

// IndexCount returns the number of indices of a frustum with the given number
// of slices: 2*slices lateral triangles plus slices-2 triangles per cap.
func IndexCount(slices int) int {
	return 3*2*slices + 2*3*(slices-2)
}

// Frustum is a validated set of shape parameters. It is immutable, so Build
// may be called concurrently.
type Frustum struct {
	opts Options
}

// New validates opts and returns a Frustum ready to build.
func New(opts Options) (*Frustum, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Frustum{opts: opts.withDefaults()}, nil
}

// Build validates opts and builds the mesh in one step.
func Build(opts Options) (*geometry.Mesh, error) {
	f, err := New(opts)
	if err != nil {
		return nil, err
	}
	return f.Build(), nil
}

// Options returns the effective parameters, defaults applied.
func (f *Frustum) Options() Options {
	return f.opts
}

// plan is the set of stages a build runs, derived once from the vertex
// format. Frames are computed whenever any frame vector is emitted, even if
// the normal buffer itself is not.
type plan struct {
	position, normal, tangent, bitangent, st bool

	computeNormal  bool
	computeTangent bool
}

func newPlan(f VertexFormat) plan {
	p := plan{
		position:  f.Has(Position),
		normal:    f.Has(Normal),
		tangent:   f.Has(Tangent),
		bitangent: f.Has(Bitangent),
		st:        f.Has(ST),
	}
	p.computeTangent = p.tangent || p.bitangent
	p.computeNormal = p.normal || p.computeTangent
	return p
}

// Build computes the mesh. All working storage is local to the call.
func (f *Frustum) Build() *geometry.Mesh {
	o := f.opts
	p := newPlan(o.VertexFormat)
	numVertices := VertexCount(o.Slices)

	r := newRing(o.Slices)
	positions := r.positions(o.BottomRadius, o.TopRadius, o.Height)

	attrs := make(map[string]*geometry.Attribute)
	if p.position {
		attrs[geometry.Position] = &geometry.Attribute{
			Datatype:               geometry.Float64,
			ComponentsPerAttribute: 3,
			Float64:                positions,
		}
	}
	if p.computeNormal {
		fr := r.frames(p)
		if p.normal {
			attrs[geometry.Normal] = fr.normals
		}
		if p.tangent {
			attrs[geometry.Tangent] = fr.tangents
		}
		if p.bitangent {
			attrs[geometry.Bitangent] = fr.bitangents
		}
	}
	if p.st {
		attrs[geometry.ST] = mapST(positions, maxRadius(o))
	}
	if o.OffsetAttribute != OffsetUnset {
		attrs[geometry.ApplyOffset] = applyOffset(o.OffsetAttribute, o.Slices)
	}

	for name, a := range attrs {
		assertf(a.Count() == numVertices, "%s covers %d vertices, want %d", name, a.Count(), numVertices)
	}

	return geometry.NewMesh(numVertices, attrs, triangulate(o.Slices), geometry.Triangles, boundingSphere(o))
}

func maxRadius(o Options) float64 {
	return max(o.TopRadius, o.BottomRadius)
}

// assertf panics on a broken internal invariant. These are defects, never
// input errors.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("frustum: invariant violated: "+format, args...))
	}
}
