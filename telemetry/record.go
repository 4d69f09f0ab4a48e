// Package telemetry records per-episode outcomes, rollout summaries and
// driver timing, and writes them as CSV.
package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/dogfight/game"
)

// EpisodeRecord is one finished episode.
type EpisodeRecord struct {
	Episode     int     `csv:"episode"`
	Seed        int64   `csv:"seed"`
	Ticks       int     `csv:"ticks"`
	TotalReward float64 `csv:"total_reward"`
	Cause       string  `csv:"cause"`

	// Enemies
	EnemiesSpawned  int `csv:"enemies_spawned"`
	EnemiesShot     int `csv:"enemies_shot"`
	PlayerKills     int `csv:"player_kills"`
	EnemyCollisions int `csv:"enemy_collisions"`
	EnemiesEscaped  int `csv:"enemies_escaped"`

	// Missiles
	MissilesFired       int `csv:"missiles_fired"`
	PlayerMissiles      int `csv:"player_missiles"`
	MissilesIntercepted int `csv:"missiles_intercepted"`

	PlayerHits int `csv:"player_hits"`
}

// NewEpisodeRecord builds a record from the arena's counters at episode end.
func NewEpisodeRecord(episode int, seed int64, cause game.Cause, c game.Counters) EpisodeRecord {
	return EpisodeRecord{
		Episode:             episode,
		Seed:                seed,
		Ticks:               c.Ticks,
		TotalReward:         c.Return,
		Cause:               cause.String(),
		EnemiesSpawned:      c.EnemiesSpawned,
		EnemiesShot:         c.EnemiesShot,
		PlayerKills:         c.PlayerKills,
		EnemyCollisions:     c.EnemiesCrashed,
		EnemiesEscaped:      c.EnemiesEscaped,
		MissilesFired:       c.MissilesFired,
		PlayerMissiles:      c.PlayerMissiles,
		MissilesIntercepted: c.MissilesIntercepted,
		PlayerHits:          c.PlayerHits,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (r EpisodeRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("episode", r.Episode),
		slog.Int64("seed", r.Seed),
		slog.Int("ticks", r.Ticks),
		slog.Float64("total_reward", r.TotalReward),
		slog.String("cause", r.Cause),
		slog.Int("enemies_spawned", r.EnemiesSpawned),
		slog.Int("enemies_shot", r.EnemiesShot),
		slog.Int("player_kills", r.PlayerKills),
		slog.Int("enemy_collisions", r.EnemyCollisions),
		slog.Int("enemies_escaped", r.EnemiesEscaped),
		slog.Int("missiles_fired", r.MissilesFired),
		slog.Int("player_missiles", r.PlayerMissiles),
		slog.Int("missiles_intercepted", r.MissilesIntercepted),
		slog.Int("player_hits", r.PlayerHits),
	)
}
