package components

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/dogfight/config"
	"github.com/pthm-cable/dogfight/geom"
)

// Projectile marks a missile body and records who fired it.
type Projectile struct {
	Owner Kind
}

// NewMissile creates a missile body heading along angle.
func NewMissile(pos r2.Vec, angle float64, mc config.MissileConfig) Body {
	limits := Limits{MinSpeed: mc.Speed, MaxSpeed: mc.Speed}
	// Narrow hitbox: half the icon length, a quarter of its height.
	body := NewBody(KindMissile, pos, angle, mc.Speed, limits, mc.HitPoints,
		float64(mc.IconWidth/4), float64(mc.IconHeight/8))
	body.IconWidth = mc.IconWidth
	body.IconHeight = mc.IconHeight
	return body
}

// MissileOrigin returns where a missile fired by b appears: ahead of the firer
// by twice (speed + clearance), rounded per axis, so it clears the firer's hitbox.
func MissileOrigin(b *Body, clearance float64) r2.Vec {
	rad := geom.Radians(b.Angle)
	reach := b.Speed + clearance
	off := r2.Vec{
		X: math.Round(math.Cos(rad)*reach) * 2,
		Y: math.Round(math.Sin(rad)*reach) * 2,
	}
	return r2.Add(b.Pos, off)
}
