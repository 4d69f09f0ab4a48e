package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/dogfight/config"
	"github.com/pthm-cable/dogfight/game"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v", om, err)
	}
	// All methods are no-ops on a nil manager.
	if err := om.WriteEpisode(EpisodeRecord{}); err != nil {
		t.Error(err)
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Error(err)
	}
	if err := om.WriteSummary(Summary{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" {
		t.Error("nil manager has a directory")
	}
}

func TestOutputManagerEpisodes(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	want := []EpisodeRecord{
		NewEpisodeRecord(0, 42, game.CauseOutOfBounds, game.Counters{Ticks: 28, Return: 17, MissilesFired: 1}),
		NewEpisodeRecord(1, 43, game.CauseDestroyed, game.Counters{Ticks: 140, Return: 129, EnemiesSpawned: 2, PlayerHits: 1}),
	}
	for _, r := range want {
		if err := om.WriteEpisode(r); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "episodes.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "episode,seed"); n != 1 {
		t.Fatalf("header written %d times", n)
	}

	var got []EpisodeRecord
	if err := gocsv.UnmarshalBytes(data, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("read %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot does not load: %v", err)
	}
}

func TestOutputManagerSummary(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	if err := om.WriteSummary(Summary{Episodes: 4, ReturnMean: 12.5}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "summary.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "episodes,return_mean") || !strings.HasPrefix(lines[1], "4,12.5") {
		t.Errorf("unexpected summary.csv:\n%s", data)
	}
}
