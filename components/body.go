// Package components defines the entity data shared by the arena and its ECS world.
package components

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/dogfight/geom"
)

// Kind identifies what an entity is, which selects its icon and its role in
// collision handling.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindMissile
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindMissile:
		return "missile"
	}
	return "unknown"
}

// Limits holds the per-class kinematic constants of a body.
type Limits struct {
	MinSpeed     float64
	MaxSpeed     float64
	Acceleration float64 // Speed change per Accelerate/Decelerate
	TurningRate  float64 // Degrees per RotateLeft/RotateRight
}

// Body is the kinematic state and hitbox shared by ships and missiles.
// Hitbox always reflects the current Pos and Angle.
type Body struct {
	Kind   Kind
	Pos    r2.Vec
	Angle  float64 // Degrees in [0, 360)
	Speed  float64
	Limits Limits
	HP     int

	// Hitbox half extents along the heading and across it.
	HalfLength float64
	HalfWidth  float64
	// Footprint of the icon the hitbox was derived from.
	IconWidth  int
	IconHeight int

	Hitbox geom.Quad
}

// NewBody creates a body and derives its hitbox.
func NewBody(kind Kind, pos r2.Vec, angle, speed float64, limits Limits, hp int, halfLength, halfWidth float64) Body {
	b := Body{
		Kind:       kind,
		Pos:        pos,
		Angle:      geom.NormalizeDegrees(angle),
		Speed:      clampFloat(speed, limits.MinSpeed, limits.MaxSpeed),
		Limits:     limits,
		HP:         hp,
		HalfLength: halfLength,
		HalfWidth:  halfWidth,
	}
	b.syncHitbox()
	return b
}

// syncHitbox re-derives the hitbox from the current pose.
func (b *Body) syncHitbox() {
	b.Hitbox = geom.OrientedRect(b.Pos, b.HalfLength, b.HalfWidth, b.Angle)
}

// Move advances the body by its speed along its heading.
func (b *Body) Move() {
	rad := geom.Radians(b.Angle)
	b.Pos.X += math.Cos(rad) * b.Speed
	b.Pos.Y += math.Sin(rad) * b.Speed
	b.syncHitbox()
}

// Rotate turns the body by delta degrees (positive is counter-clockwise).
func (b *Body) Rotate(delta float64) {
	b.Angle = geom.NormalizeDegrees(b.Angle + delta)
	b.syncHitbox()
}

// RotateLeft turns counter-clockwise by the turning rate.
func (b *Body) RotateLeft() {
	b.Rotate(b.Limits.TurningRate)
}

// RotateRight turns clockwise by the turning rate.
func (b *Body) RotateRight() {
	b.Rotate(-b.Limits.TurningRate)
}

// Accelerate raises speed by one step, up to MaxSpeed.
func (b *Body) Accelerate() {
	b.Speed = clampFloat(b.Speed+b.Limits.Acceleration, b.Limits.MinSpeed, b.Limits.MaxSpeed)
}

// Decelerate lowers speed by one step, down to MinSpeed.
func (b *Body) Decelerate() {
	b.Speed = clampFloat(b.Speed-b.Limits.Acceleration, b.Limits.MinSpeed, b.Limits.MaxSpeed)
}

// DecreaseHP removes one hit point.
func (b *Body) DecreaseHP() {
	if b.HP > 0 {
		b.HP--
	}
}

// Alive reports whether the body has hit points left.
func (b *Body) Alive() bool {
	return b.HP > 0
}

// clampFloat clamps a value between min and max.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
