package math

import "math"

// DegToRad converts degrees to radians.
func DegToRad(d float32) float32 {
	return d * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(r float32) float32 {
	return r * 180 / math.Pi
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
