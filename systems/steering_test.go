package systems

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/dogfight/geom"
)

func TestSteer(t *testing.T) {
	origin := r2.Vec{X: 0, Y: 0}
	tests := []struct {
		name    string
		heading float64
		target  r2.Vec
		want    float64
	}{
		{"already facing", 0, r2.Vec{X: 10, Y: 0}, 0},
		{"within rounding", 45.3, r2.Vec{X: 10, Y: 10}, 0},
		{"turn left", 0, r2.Vec{X: 0, Y: 10}, 6},
		{"turn right", 90, r2.Vec{X: 10, Y: 0}, -6},
		{"small left no overshoot", 87, r2.Vec{X: 0, Y: 10}, 3},
		{"small right no overshoot", 92, r2.Vec{X: 0, Y: 10}, -2},
		{"left across zero", 350, r2.Vec{X: 10, Y: 1.7632698}, 6},
		{"right across zero", 5, r2.Vec{X: 10, Y: -1.7632698}, -6},
		{"short left across zero", 358, r2.Vec{X: 10, Y: 0.3492077}, 4},
		{"unnormalized heading", -10, r2.Vec{X: 10, Y: 0}, 6},
		{"directly behind turns right", 180, r2.Vec{X: 10, Y: 0}, -6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Steer(origin, tt.heading, tt.target, 6)
			if math.Abs(got-tt.want) > 1e-4 {
				t.Errorf("Steer(heading=%v, target=%v) = %v, want %v", tt.heading, tt.target, got, tt.want)
			}
		})
	}
}

func TestSteerBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 5000; i++ {
		pos := r2.Vec{X: rng.Float64() * 500, Y: rng.Float64() * 500}
		target := r2.Vec{X: rng.Float64() * 500, Y: rng.Float64() * 500}
		heading := rng.Float64()*1080 - 360
		rate := 0.5 + rng.Float64()*10

		turn := Steer(pos, heading, target, rate)
		if math.Abs(turn) > rate+1e-9 {
			t.Fatalf("turn %v exceeds rate %v", turn, rate)
		}

		// The turn never takes the heading further than 180 from the bearing
		// and never past it.
		before := angularDistance(heading, Bearing(pos, target))
		after := angularDistance(heading+turn, Bearing(pos, target))
		if after > before+1e-9 {
			t.Fatalf("turn %v moved heading %v away from bearing %v", turn, heading, Bearing(pos, target))
		}
	}
}

func TestSteerConverges(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		pos := r2.Vec{X: 250, Y: 250}
		target := r2.Vec{X: rng.Float64() * 500, Y: rng.Float64() * 500}
		heading := rng.Float64() * 360
		bearing := Bearing(pos, target)

		var sign float64
		for step := 0; step < 40; step++ {
			turn := Steer(pos, heading, target, 6)
			if turn == 0 {
				continue
			}
			s := math.Copysign(1, turn)
			if sign != 0 && s != sign {
				t.Fatalf("turn direction flipped at step %d (heading %v, bearing %v)", step, heading, bearing)
			}
			sign = s
			heading = geom.NormalizeDegrees(heading + turn)
		}
		// Steering stops once the rounded heading matches the rounded bearing.
		if d := angularDistance(heading, bearing); d >= 1 {
			t.Errorf("heading %v did not converge to bearing %v (distance %v)", heading, bearing, d)
		}
	}
}

// angularDistance returns the unsigned shortest distance between two angles.
func angularDistance(a, b float64) float64 {
	d := geom.NormalizeDegrees(a - b)
	return math.Min(d, 360-d)
}
