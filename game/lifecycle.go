package game

import (
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/dogfight/components"
	"github.com/pthm-cable/dogfight/geom"
)

// spawnEnemyPair creates two enemies on the side margins, facing each other.
func (a *Arena) spawnEnemyPair() {
	cfg := a.cfg
	y := cfg.Derived.CenterY
	a.SpawnEnemy(cfg.Arena.EnemyMargin, y, 0, cfg.Arena.EnemySpeed)
	a.SpawnEnemy(cfg.Derived.WidthF-cfg.Arena.EnemyMargin, y, 180, cfg.Arena.EnemySpeed)
	slog.Debug("enemies spawned", "tick", a.tick)
}

// SpawnEnemy adds an enemy ship.
func (a *Arena) SpawnEnemy(x, y, angle, speed float64) {
	ship := components.NewShip(components.KindEnemy, r2.Vec{X: x, Y: y}, angle, speed, a.cfg.Enemy)
	a.enemyMapper.NewEntity(&ship.Body, &ship.Gun)
	a.counters.EnemiesSpawned++
}

// SpawnMissile adds a missile heading along angle.
func (a *Arena) SpawnMissile(x, y, angle float64, owner components.Kind) {
	body := components.NewMissile(r2.Vec{X: x, Y: y}, angle, a.cfg.Missile)
	proj := components.Projectile{Owner: owner}
	a.missileMapper.NewEntity(&body, &proj)
}

// fire launches a missile from a ship whose gun already granted the shot.
func (a *Arena) fire(shooter *components.Body) {
	origin := components.MissileOrigin(shooter, a.cfg.Missile.SpawnClearance)
	a.SpawnMissile(origin.X, origin.Y, shooter.Angle, shooter.Kind)
	a.counters.MissilesFired++
	if shooter.Kind == components.KindPlayer {
		a.counters.PlayerMissiles++
	}
}

// hitPlayer costs the player one hit point.
func (a *Arena) hitPlayer() {
	a.player.DecreaseHP()
	a.counters.PlayerHits++
}

// removals collects entities to destroy once a pass is over. Each entity is
// kept once, in the order it was first marked.
type removals struct {
	order []ecs.Entity
	seen  map[ecs.Entity]struct{}
}

// mark records e for removal and bumps counter the first time e is marked.
// It reports whether e was newly marked.
func (r *removals) mark(e ecs.Entity, counter *int) bool {
	if r.seen == nil {
		r.seen = make(map[ecs.Entity]struct{})
	}
	if _, ok := r.seen[e]; ok {
		return false
	}
	r.seen[e] = struct{}{}
	r.order = append(r.order, e)
	if counter != nil {
		*counter++
	}
	return true
}

// remove destroys the marked entities.
func (a *Arena) remove(r *removals) {
	for _, e := range r.order {
		a.world.RemoveEntity(e)
	}
}

// enemySnapshot lists the live enemies. Passes iterate the returned slice so
// that entities can be created and removed without holding a query open.
func (a *Arena) enemySnapshot() []ecs.Entity {
	var out []ecs.Entity
	query := a.enemyFilter.Query()
	for query.Next() {
		out = append(out, query.Entity())
	}
	return out
}

// missileSnapshot lists the live missiles.
func (a *Arena) missileSnapshot() []ecs.Entity {
	var out []ecs.Entity
	query := a.missileFilter.Query()
	for query.Next() {
		out = append(out, query.Entity())
	}
	return out
}

// departed reports whether a body is wholly beyond one of the arena edges and
// not moving back toward it. Such a missile can never touch anything again.
func (a *Arena) departed(b *components.Body) bool {
	box := b.Hitbox.Box()
	rad := geom.Radians(b.Angle)
	vx, vy := math.Cos(rad)*b.Speed, math.Sin(rad)*b.Speed
	w, h := a.cfg.Derived.WidthF, a.cfg.Derived.HeightF
	return (box.Max.X < 0 && vx <= 0) ||
		(box.Min.X > w && vx >= 0) ||
		(box.Max.Y < 0 && vy <= 0) ||
		(box.Min.Y > h && vy >= 0)
}
