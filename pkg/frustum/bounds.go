package frustum

import (
	"github.com/Faultbox/frustum/pkg/geometry"
	"github.com/Faultbox/frustum/pkg/math"
)

// boundingSphere is the sphere around the origin through both rims of the
// wider ring.
func boundingSphere(o Options) geometry.BoundingSphere {
	return geometry.BoundingSphere{
		Radius: math.Vec2d{X: o.Height / 2, Y: maxRadius(o)}.Length(),
	}
}
