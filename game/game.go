// Package game implements the arena simulation and the environment contract
// built on it.
package game

import (
	"image"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/dogfight/components"
	"github.com/pthm-cable/dogfight/config"
	"github.com/pthm-cable/dogfight/geom"
	"github.com/pthm-cable/dogfight/renderer"
)

// Player start pose.
const (
	PlayerStartAngle = 90
	PlayerStartSpeed = 0
)

// Arena holds the complete simulation state. It is not safe for concurrent use.
type Arena struct {
	cfg    *config.Config
	bounds geom.Quad

	// Enemies and missiles live in an ECS world that is rebuilt on reset.
	// Enemies carry Body+Gun, missiles Body+Projectile.
	world         *ecs.World
	enemyMapper   *ecs.Map2[components.Body, components.Gun]
	missileMapper *ecs.Map2[components.Body, components.Projectile]
	enemyFilter   *ecs.Filter2[components.Body, components.Gun]
	missileFilter *ecs.Filter2[components.Body, components.Projectile]

	player components.Ship

	// State
	tick     int
	done     bool
	cause    Cause
	counters Counters

	// Rendering
	compositor  *renderer.Compositor
	drawList    []components.Body
	observation *image.Gray
}

// NewArena creates an arena and resets it, so it is ready for Step.
func NewArena(cfg *config.Config) *Arena {
	a := &Arena{
		cfg:        cfg,
		bounds:     geom.Bounds(cfg.Derived.WidthF, cfg.Derived.HeightF),
		compositor: renderer.NewCompositor(cfg),
	}
	a.Reset()
	return a
}

// Reset starts a new episode: a fresh player at the arena center, no enemies
// or missiles, tick zero. It returns the first observation.
func (a *Arena) Reset() *image.Gray {
	a.world = ecs.NewWorld()
	a.enemyMapper = ecs.NewMap2[components.Body, components.Gun](a.world)
	a.missileMapper = ecs.NewMap2[components.Body, components.Projectile](a.world)
	a.enemyFilter = ecs.NewFilter2[components.Body, components.Gun](a.world)
	a.missileFilter = ecs.NewFilter2[components.Body, components.Projectile](a.world)

	center := r2.Vec{X: a.cfg.Derived.CenterX, Y: a.cfg.Derived.CenterY}
	a.player = components.NewShip(components.KindPlayer, center, PlayerStartAngle, PlayerStartSpeed, a.cfg.Player)

	a.tick = 0
	a.done = false
	a.cause = CauseNone
	a.counters = Counters{}

	a.redraw()
	return a.observation
}

// Config returns the arena configuration.
func (a *Arena) Config() *config.Config {
	return a.cfg
}

// Tick returns the number of ticks since the last reset.
func (a *Arena) Tick() int {
	return a.tick
}

// Done reports whether the episode has terminated.
func (a *Arena) Done() bool {
	return a.done
}

// Cause returns why the episode terminated, or CauseNone.
func (a *Arena) Cause() Cause {
	return a.cause
}

// Counters returns the events recorded since the last reset.
func (a *Arena) Counters() Counters {
	return a.counters
}

// Bounds returns the arena outline.
func (a *Arena) Bounds() geom.Quad {
	return a.bounds
}

// Player returns a copy of the player ship.
func (a *Arena) Player() components.Ship {
	return a.player
}

// PlacePlayer moves the player to a pose. Used to set up scenarios.
func (a *Arena) PlacePlayer(x, y, angle, speed float64) {
	a.player = components.NewShip(components.KindPlayer, r2.Vec{X: x, Y: y}, angle, speed, a.cfg.Player)
	a.redraw()
}

// Enemies returns copies of the live enemy bodies.
func (a *Arena) Enemies() []components.Body {
	var out []components.Body
	query := a.enemyFilter.Query()
	for query.Next() {
		body, _ := query.Get()
		out = append(out, *body)
	}
	return out
}

// Missiles returns copies of the live missile bodies.
func (a *Arena) Missiles() []components.Body {
	var out []components.Body
	query := a.missileFilter.Query()
	for query.Next() {
		body, _ := query.Get()
		out = append(out, *body)
	}
	return out
}
