package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/dogfight/game"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Distribution
	}{
		{"empty", nil, Distribution{}},
		{"single", []float64{5}, Distribution{Mean: 5, Min: 5, Max: 5, P10: 5, P50: 5, P90: 5}},
		{
			"unsorted ten",
			[]float64{10, 1, 9, 2, 8, 3, 7, 4, 6, 5},
			Distribution{Mean: 5.5, Std: 3.02765, Min: 1, Max: 10, P10: 1, P50: 5, P90: 9},
		},
		{
			"four",
			[]float64{1, 2, 3, 4},
			Distribution{Mean: 2.5, Std: 1.29099, Min: 1, Max: 4, P10: 1, P50: 2, P90: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Describe(tt.values)
			check := func(field string, got, want float64) {
				if math.Abs(got-want) > 0.001 {
					t.Errorf("%s = %v, want %v", field, got, want)
				}
			}
			check("mean", got.Mean, tt.want.Mean)
			check("std", got.Std, tt.want.Std)
			check("min", got.Min, tt.want.Min)
			check("max", got.Max, tt.want.Max)
			check("p10", got.P10, tt.want.P10)
			check("p50", got.P50, tt.want.P50)
			check("p90", got.P90, tt.want.P90)
		})
	}
}

func TestDescribeLeavesInputUntouched(t *testing.T) {
	values := []float64{3, 1, 2}
	Describe(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered: %v", values)
	}
}

func TestSummarize(t *testing.T) {
	records := []EpisodeRecord{
		NewEpisodeRecord(0, 1, game.CauseOutOfBounds, game.Counters{Ticks: 28, Return: 17, PlayerKills: 1}),
		NewEpisodeRecord(1, 2, game.CauseDestroyed, game.Counters{Ticks: 101, Return: 90, PlayerKills: 2}),
		NewEpisodeRecord(2, 3, game.CauseDestroyed, game.Counters{Ticks: 11, Return: 0}),
	}

	s := Summarize(records)
	if s.Episodes != 3 || s.OutOfBounds != 1 || s.Destroyed != 2 {
		t.Fatalf("counts wrong: %+v", s)
	}
	if math.Abs(s.ReturnMean-107.0/3) > 1e-9 {
		t.Errorf("ReturnMean = %v", s.ReturnMean)
	}
	if s.ReturnMin != 0 || s.ReturnMax != 90 || s.ReturnP50 != 17 {
		t.Errorf("return range/median = %v %v %v", s.ReturnMin, s.ReturnMax, s.ReturnP50)
	}
	if s.TicksP50 != 28 {
		t.Errorf("TicksP50 = %v", s.TicksP50)
	}
	if s.PlayerKills != 3 || s.KillsPerEpisode != 1 {
		t.Errorf("kills = %d, per episode %v", s.PlayerKills, s.KillsPerEpisode)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Errorf("empty summary = %+v", s)
	}
}
