package game

import "image"

// redraw composites the player, enemies and missiles, in that order, and
// refreshes the observation.
func (a *Arena) redraw() {
	a.drawList = append(a.drawList[:0], a.player.Body)

	enemies := a.enemyFilter.Query()
	for enemies.Next() {
		body, _ := enemies.Get()
		a.drawList = append(a.drawList, *body)
	}
	missiles := a.missileFilter.Query()
	for missiles.Next() {
		body, _ := missiles.Get()
		a.drawList = append(a.drawList, *body)
	}

	a.compositor.Draw(a.drawList)
	a.observation = a.compositor.Observe()
}

// Observation returns the current grayscale observation.
func (a *Arena) Observation() *image.Gray {
	return a.observation
}

// Canvas returns the live RGB canvas. It is overwritten by the next tick.
func (a *Arena) Canvas() *image.RGBA {
	return a.compositor.Canvas()
}

// Snapshot returns a copy of the RGB canvas.
func (a *Arena) Snapshot() *image.RGBA {
	return a.compositor.Snapshot()
}
