// Package lighting provides lighting utilities for 3D rendering.
package lighting

import "github.com/chewxy/math32"

// SunDirection converts azimuth and elevation angles in degrees to a unit
// vector pointing towards the light in Y-up view space. Azimuth rotates
// around Y starting from +Z, elevation rises from the horizon.
func SunDirection(azimuth, elevation float32) [3]float32 {
	az := azimuth * math32.Pi / 180
	el := elevation * math32.Pi / 180

	sinEl, cosEl := math32.Sincos(el)
	sinAz, cosAz := math32.Sincos(az)
	return [3]float32{cosEl * sinAz, sinEl, cosEl * cosAz}
}
