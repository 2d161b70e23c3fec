// Package lighting provides the directional light used by the lit mesh shader.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/dirlight/pkg/math"
)

// Directional is a light with parallel rays coming from a fixed direction.
// Direction points from the surface towards the light and need not be
// normalized.
type Directional struct {
	Direction math.Vec3
}

// NewDirectional creates a directional light shining from dir.
func NewDirectional(dir [3]float32) Directional {
	return Directional{Direction: math.V3(dir)}
}

// FromAngles builds a light from an azimuth around Y and an elevation above
// the horizon, both in degrees.
func FromAngles(azimuth, elevation float32) Directional {
	az := float64(math.DegToRad(azimuth))
	el := float64(math.DegToRad(elevation))

	return Directional{Direction: math.Vec3{
		X: float32(gomath.Cos(el) * gomath.Sin(az)),
		Y: float32(gomath.Sin(el)),
		Z: float32(gomath.Cos(el) * gomath.Cos(az)),
	}}
}

// Reverse returns the unit vector towards the light, as uploaded to
// u_reverseLightDirection.
func (d Directional) Reverse() math.Vec3 {
	return d.Direction.Normalize()
}

// Intensity returns the diffuse term for a surface normal, matching the
// fragment shader: dot(normalize(n), reverse) with no clamping, so faces
// turned away from the light go black.
func (d Directional) Intensity(normal math.Vec3) float32 {
	return normal.Normalize().Dot(d.Reverse())
}

// Shade applies the diffuse term to an RGBA colour. Alpha is untouched.
func (d Directional) Shade(color [4]float32, normal math.Vec3) [4]float32 {
	l := d.Intensity(normal)
	return [4]float32{color[0] * l, color[1] * l, color[2] * l, color[3]}
}
