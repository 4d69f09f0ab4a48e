package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/dogfight/geom"
)

// Bearing returns the direction from pos to target in degrees, in [0, 360).
func Bearing(pos, target r2.Vec) float64 {
	return geom.DirectionDegrees(target.X-pos.X, target.Y-pos.Y)
}

// Steer returns the signed turn, in degrees, that brings heading toward the
// bearing from pos to target. Positive turns increase the angle. The magnitude
// is capped by turningRate and never carries the heading past the bearing.
func Steer(pos r2.Vec, heading float64, target r2.Vec, turningRate float64) float64 {
	heading = geom.NormalizeDegrees(heading)
	bearing := Bearing(pos, target)
	if math.Round(heading) == math.Round(bearing) {
		return 0
	}

	// The half circle ending at the bearing, starting opposite it, is where
	// turning with increasing angle is the short way round.
	start := geom.NormalizeDegrees(bearing - 180)
	var increase bool
	if start < bearing {
		increase = heading > start && heading < bearing
	} else {
		increase = heading > start || heading < bearing
	}

	if increase {
		return math.Min(turningRate, geom.NormalizeDegrees(bearing-heading))
	}
	return -math.Min(turningRate, geom.NormalizeDegrees(heading-bearing))
}
