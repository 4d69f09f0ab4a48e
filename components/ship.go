package components

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/dogfight/config"
)

// Gun is a cooldown gate. Counter counts ticks since the last granted shot.
type Gun struct {
	Counter   int
	Threshold int
}

// Tick advances the cooldown by one tick.
func (g *Gun) Tick() {
	g.Counter++
}

// CanFire grants a shot once more than Threshold ticks have passed since the
// last grant, resetting the cooldown. The caller decides whether to spawn.
func (g *Gun) CanFire() bool {
	if g.Counter > g.Threshold {
		g.Counter = 0
		return true
	}
	return false
}

// Ship is a body with a gun. The player is held as a Ship; enemies store the
// same two parts as separate ECS components and advance through AdvanceShip.
type Ship struct {
	Body
	Gun
}

// NewShip creates a ship of the given class.
func NewShip(kind Kind, pos r2.Vec, angle, speed float64, sc config.ShipConfig) Ship {
	limits := Limits{
		MinSpeed:     sc.MinSpeed,
		MaxSpeed:     sc.MaxSpeed,
		Acceleration: sc.Acceleration,
		TurningRate:  sc.TurningRate,
	}
	// Hitbox spans the full icon length and half its height.
	body := NewBody(kind, pos, angle, speed, limits, sc.HitPoints,
		float64(sc.IconWidth/2), float64(sc.IconHeight/4))
	body.IconWidth = sc.IconWidth
	body.IconHeight = sc.IconHeight
	return Ship{
		Body: body,
		Gun:  Gun{Threshold: sc.MissileCooldown},
	}
}

// Move advances the ship and its cooldown.
func (s *Ship) Move() {
	AdvanceShip(&s.Body, &s.Gun)
}

// AdvanceShip moves a body and ticks its gun.
func AdvanceShip(b *Body, g *Gun) {
	b.Move()
	g.Tick()
}
