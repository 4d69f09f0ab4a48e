package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/dogfight/game"
)

// Distribution summarizes one per-episode quantity.
type Distribution struct {
	Mean float64
	Std  float64
	Min  float64
	Max  float64
	P10  float64
	P50  float64
	P90  float64
}

// Summary aggregates a batch of episodes.
type Summary struct {
	Episodes int `csv:"episodes"`

	ReturnMean float64 `csv:"return_mean"`
	ReturnStd  float64 `csv:"return_std"`
	ReturnMin  float64 `csv:"return_min"`
	ReturnMax  float64 `csv:"return_max"`
	ReturnP10  float64 `csv:"return_p10"`
	ReturnP50  float64 `csv:"return_p50"`
	ReturnP90  float64 `csv:"return_p90"`

	TicksMean float64 `csv:"ticks_mean"`
	TicksStd  float64 `csv:"ticks_std"`
	TicksP50  float64 `csv:"ticks_p50"`

	OutOfBounds int `csv:"out_of_bounds"`
	Destroyed   int `csv:"destroyed"`

	PlayerKills     int     `csv:"player_kills"`
	KillsPerEpisode float64 `csv:"kills_per_episode"`
}

// Describe computes the distribution of values. The sample standard deviation
// is used; it is 0 for fewer than two values. An empty input yields zeros.
func Describe(values []float64) Distribution {
	n := len(values)
	if n == 0 {
		return Distribution{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	d := Distribution{
		Min: floats.Min(sorted),
		Max: floats.Max(sorted),
		P10: stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50: stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90: stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
	if n == 1 {
		d.Mean = sorted[0]
		return d
	}
	d.Mean, d.Std = stat.MeanStdDev(sorted, nil)
	return d
}

// Summarize aggregates episode records.
func Summarize(records []EpisodeRecord) Summary {
	s := Summary{Episodes: len(records)}
	if len(records) == 0 {
		return s
	}

	returns := make([]float64, len(records))
	ticks := make([]float64, len(records))
	for i, r := range records {
		returns[i] = r.TotalReward
		ticks[i] = float64(r.Ticks)
		switch r.Cause {
		case game.CauseOutOfBounds.String():
			s.OutOfBounds++
		case game.CauseDestroyed.String():
			s.Destroyed++
		}
		s.PlayerKills += r.PlayerKills
	}

	ret := Describe(returns)
	s.ReturnMean, s.ReturnStd = ret.Mean, ret.Std
	s.ReturnMin, s.ReturnMax = ret.Min, ret.Max
	s.ReturnP10, s.ReturnP50, s.ReturnP90 = ret.P10, ret.P50, ret.P90

	tk := Describe(ticks)
	s.TicksMean, s.TicksStd, s.TicksP50 = tk.Mean, tk.Std, tk.P50

	s.KillsPerEpisode = float64(s.PlayerKills) / float64(len(records))
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("episodes", s.Episodes),
		slog.Float64("return_mean", s.ReturnMean),
		slog.Float64("return_std", s.ReturnStd),
		slog.Float64("return_min", s.ReturnMin),
		slog.Float64("return_max", s.ReturnMax),
		slog.Float64("return_p50", s.ReturnP50),
		slog.Float64("ticks_mean", s.TicksMean),
		slog.Float64("ticks_p50", s.TicksP50),
		slog.Int("out_of_bounds", s.OutOfBounds),
		slog.Int("destroyed", s.Destroyed),
		slog.Float64("kills_per_episode", s.KillsPerEpisode),
	)
}
