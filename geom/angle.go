package geom

import "math"

// NormalizeDegrees wraps an angle in degrees to [0, 360).
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// math.Mod can hand back -0 or a tiny negative that rounds up to 360.
	if a >= 360 {
		a -= 360
	}
	return a
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// DirectionDegrees returns the heading from one point to another in [0, 360).
func DirectionDegrees(dx, dy float64) float64 {
	return NormalizeDegrees(Degrees(math.Atan2(dy, dx)))
}
