package math

import "math"

// UnitZ is the +Z axis, the frustum's axis of symmetry.
var UnitZ = Vec3d{0, 0, 1}

// Vec3d is a double-precision 3D vector. Mesh positions are built in
// double precision; derived directions are narrowed with Float32.
type Vec3d struct {
	X, Y, Z float64
}

// Add returns v + other.
func (v Vec3d) Add(other Vec3d) Vec3d {
	return Vec3d{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3d) Sub(other Vec3d) Vec3d {
	return Vec3d{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * s.
func (v Vec3d) Scale(s float64) Vec3d {
	return Vec3d{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3d) Dot(other Vec3d) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product v × other.
func (v Vec3d) Cross(other Vec3d) Vec3d {
	return Vec3d{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3d) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector, or the zero vector for a zero input.
func (v Vec3d) Normalize() Vec3d {
	l := v.Length()
	if l == 0 {
		return Vec3d{}
	}
	return Vec3d{v.X / l, v.Y / l, v.Z / l}
}

// Distance returns the distance to another point.
func (v Vec3d) Distance(other Vec3d) float64 {
	return v.Sub(other).Length()
}

// Float32 narrows v into the [3]float32 layout of GPU attribute buffers.
func (v Vec3d) Float32() [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Vec3 narrows v to single precision.
func (v Vec3d) Vec3() Vec3 {
	return Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
