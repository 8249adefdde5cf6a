package math

import "math"

// Vec2d is a double-precision 2D vector.
type Vec2d struct {
	X, Y float64
}

// Sub returns v - other.
func (v Vec2d) Sub(other Vec2d) Vec2d {
	return Vec2d{v.X - other.X, v.Y - other.Y}
}

// Dot returns the dot product.
func (v Vec2d) Dot(other Vec2d) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude.
func (v Vec2d) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector, or the zero vector for a zero input.
func (v Vec2d) Normalize() Vec2d {
	l := v.Length()
	if l == 0 {
		return Vec2d{}
	}
	return Vec2d{v.X / l, v.Y / l}
}
