package game

import "log/slog"

// Cause records why an episode ended.
type Cause uint8

const (
	CauseNone Cause = iota
	CauseOutOfBounds
	CauseDestroyed
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseOutOfBounds:
		return "out_of_bounds"
	case CauseDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// Counters accumulate per-episode events. They are reset by Reset.
type Counters struct {
	Ticks  int
	Return float64

	EnemiesSpawned int
	EnemiesShot    int // destroyed by any missile
	PlayerKills    int // destroyed by a player missile
	EnemiesCrashed int // destroyed colliding with another enemy
	EnemiesEscaped int // destroyed leaving the arena

	MissilesFired       int
	PlayerMissiles      int
	MissilesIntercepted int // destroyed colliding with another missile
	MissilesExpired     int // dropped after leaving the arena for good

	PlayerHits int // hit points lost by the player
}

// LogValue implements slog.LogValuer for structured logging.
func (c Counters) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("ticks", c.Ticks),
		slog.Float64("return", c.Return),
		slog.Int("enemies_spawned", c.EnemiesSpawned),
		slog.Int("enemies_shot", c.EnemiesShot),
		slog.Int("player_kills", c.PlayerKills),
		slog.Int("enemies_crashed", c.EnemiesCrashed),
		slog.Int("enemies_escaped", c.EnemiesEscaped),
		slog.Int("missiles_fired", c.MissilesFired),
		slog.Int("player_missiles", c.PlayerMissiles),
		slog.Int("missiles_intercepted", c.MissilesIntercepted),
		slog.Int("missiles_expired", c.MissilesExpired),
		slog.Int("player_hits", c.PlayerHits),
	)
}
