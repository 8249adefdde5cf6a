// Package picking provides ray casting against meshes.
package picking

import (
	gomath "math"

	"github.com/Faultbox/frustum/pkg/geometry"
	"github.com/Faultbox/frustum/pkg/math"
)

// Ray represents a ray with origin and normalized direction.
type Ray struct {
	Origin    math.Vec3d
	Direction math.Vec3d
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) math.Vec3d {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToRay converts pixel coordinates to a ray in the space that
// invMVP maps clip space back into. Pass the inverse of
// projection*view*model to get a ray in mesh space.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invMVP math.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH

	near := invMVP.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: -1}).Vec3d()
	far := invMVP.TransformVec3(math.Vec3{X: ndcX, Y: ndcY, Z: 1}).Vec3d()

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

// IntersectSphere returns the nearest non-negative hit distance.
func (r Ray) IntersectSphere(s geometry.BoundingSphere) (t float64, hit bool) {
	oc := r.Origin.Sub(s.Center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := gomath.Sqrt(disc)
	t = -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

const epsilon = 1e-12

// IntersectTriangle tests the ray against triangle p0 p1 p2 from either
// side, returning the hit distance.
func (r Ray) IntersectTriangle(p0, p1, p2 math.Vec3d) (t float64, hit bool) {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	h := r.Direction.Cross(e2)
	det := e1.Dot(h)
	if gomath.Abs(det) < epsilon {
		return 0, false
	}

	inv := 1 / det
	s := r.Origin.Sub(p0)
	u := inv * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := inv * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = inv * e2.Dot(q)
	if t < 0 {
		return 0, false
	}
	return t, true
}

// Hit describes the nearest triangle a ray struck.
type Hit struct {
	Triangle int
	Distance float64
	Point    math.Vec3d
}

// PickTriangle returns the nearest triangle of m along r. The bounding
// sphere rejects misses before any triangle is tested.
func PickTriangle(r Ray, m *geometry.Mesh) (Hit, bool) {
	if m.Attribute(geometry.Position) == nil {
		return Hit{}, false
	}
	if _, ok := r.IntersectSphere(m.BoundingSphere); !ok {
		return Hit{}, false
	}

	best := Hit{Triangle: -1, Distance: gomath.Inf(1)}
	for i := range m.TriangleCount() {
		tri := m.Triangle(i)
		t, ok := r.IntersectTriangle(m.Position(int(tri[0])), m.Position(int(tri[1])), m.Position(int(tri[2])))
		if ok && t < best.Distance {
			best.Triangle = i
			best.Distance = t
		}
	}
	if best.Triangle < 0 {
		return Hit{}, false
	}
	best.Point = r.At(best.Distance)
	return best, true
}
