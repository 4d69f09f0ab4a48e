package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/dogfight/components"
	"github.com/pthm-cable/dogfight/geom"
	"github.com/pthm-cable/dogfight/systems"
)

// Step advances the arena by one tick. An invalid action is rejected without
// touching any state. Once the episode is done, Step keeps returning the final
// observation with zero reward until Reset.
func (a *Arena) Step(action Action) (StepResult, error) {
	if !action.Valid() {
		return StepResult{}, fmt.Errorf("step: %w: %d", ErrInvalidAction, int(action))
	}
	if a.done {
		return StepResult{Observation: a.observation, Done: true}, nil
	}

	a.tick++
	a.applyAction(action)
	a.player.Move()

	if a.tick%a.cfg.Arena.SpawnInterval == 0 {
		a.spawnEnemyPair()
	}

	a.updateEnemies()
	a.updateMissiles()
	a.redraw()

	reward := a.cfg.Reward.Survival
	if cause := a.terminationCause(); cause != CauseNone {
		a.done = true
		a.cause = cause
		reward = a.cfg.Reward.Penalty
	}
	a.counters.Ticks = a.tick
	a.counters.Return += reward

	if a.done {
		slog.Debug("episode terminated", "tick", a.tick, "cause", a.cause.String(), "counters", a.counters)
	}

	return StepResult{Observation: a.observation, Reward: reward, Done: a.done}, nil
}

// applyAction applies the agent's action to the player. A fire request the
// cooldown denies does nothing.
func (a *Arena) applyAction(action Action) {
	switch action {
	case ActionTurnLeft:
		a.player.RotateLeft()
	case ActionTurnRight:
		a.player.RotateRight()
	case ActionAccelerate:
		a.player.Accelerate()
	case ActionDecelerate:
		a.player.Decelerate()
	case ActionFireMissile:
		if a.player.CanFire() {
			a.fire(&a.player.Body)
		}
	}
}

// updateEnemies steers, moves and fires every enemy, then resolves enemy
// collisions against the moved positions. Destroyed enemies are removed after
// the collision pass.
func (a *Arena) updateEnemies() {
	enemies := a.enemySnapshot()
	if len(enemies) == 0 {
		return
	}
	target := a.player.Pos

	bodies := make([]components.Body, len(enemies))
	var shooters []int
	for i, e := range enemies {
		body, gun := a.enemyMapper.Get(e)
		body.Rotate(systems.Steer(body.Pos, body.Angle, target, body.Limits.TurningRate))
		components.AdvanceShip(body, gun)
		if gun.CanFire() {
			shooters = append(shooters, i)
		}
		bodies[i] = *body
	}
	for _, i := range shooters {
		a.fire(&bodies[i])
	}

	var dead removals
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			if geom.Intersects(bodies[i].Hitbox, bodies[j].Hitbox) {
				dead.mark(enemies[i], &a.counters.EnemiesCrashed)
				dead.mark(enemies[j], &a.counters.EnemiesCrashed)
			}
		}
		if !a.bounds.Covers(bodies[i].Hitbox) {
			dead.mark(enemies[i], &a.counters.EnemiesEscaped)
		}
		// Ramming costs the player a hit point; the enemy survives it.
		if geom.Intersects(a.player.Hitbox, bodies[i].Hitbox) {
			a.hitPlayer()
		}
	}
	a.remove(&dead)
}

// updateMissiles moves every missile, including ones fired this tick, then
// resolves missile collisions against the moved positions and the enemies
// that survived updateEnemies.
func (a *Arena) updateMissiles() {
	missiles := a.missileSnapshot()
	if len(missiles) == 0 {
		return
	}

	bodies := make([]components.Body, len(missiles))
	owners := make([]components.Kind, len(missiles))
	for i, m := range missiles {
		body, proj := a.missileMapper.Get(m)
		body.Move()
		bodies[i] = *body
		owners[i] = proj.Owner
	}

	enemies := a.enemySnapshot()
	targets := make([]components.Body, len(enemies))
	for i, e := range enemies {
		body, _ := a.enemyMapper.Get(e)
		targets[i] = *body
	}

	var dead removals
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			if geom.Intersects(bodies[i].Hitbox, bodies[j].Hitbox) {
				dead.mark(missiles[i], &a.counters.MissilesIntercepted)
				dead.mark(missiles[j], &a.counters.MissilesIntercepted)
			}
		}
		for k := range targets {
			if !geom.Intersects(targets[k].Hitbox, bodies[i].Hitbox) {
				continue
			}
			if dead.mark(enemies[k], &a.counters.EnemiesShot) && owners[i] == components.KindPlayer {
				a.counters.PlayerKills++
			}
			dead.mark(missiles[i], nil)
		}
		if geom.Intersects(a.player.Hitbox, bodies[i].Hitbox) {
			a.hitPlayer()
			dead.mark(missiles[i], nil)
		}
		if a.departed(&bodies[i]) {
			dead.mark(missiles[i], &a.counters.MissilesExpired)
		}
	}
	a.remove(&dead)
}

// terminationCause checks whether the player has left the arena or run out of
// hit points.
func (a *Arena) terminationCause() Cause {
	switch {
	case !a.bounds.Covers(a.player.Hitbox):
		return CauseOutOfBounds
	case !a.player.Alive():
		return CauseDestroyed
	}
	return CauseNone
}
