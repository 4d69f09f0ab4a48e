package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/dogfight/agent"
	"github.com/pthm-cable/dogfight/config"
	"github.com/pthm-cable/dogfight/display"
	"github.com/pthm-cable/dogfight/game"
	"github.com/pthm-cable/dogfight/input"
	"github.com/pthm-cable/dogfight/rollout"
	"github.com/pthm-cable/dogfight/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run random-policy rollouts without graphics")
	episodes := flag.Int("episodes", 10, "Number of headless episodes")
	seed := flag.Int64("seed", 0, "RNG seed for the random policy (0 = time-based)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	maxTicks := flag.Int("max-ticks", 0, "Truncate each episode after N ticks (0 = unlimited)")
	workers := flag.Int("workers", 0, "Parallel headless environments (0 = GOMAXPROCS)")
	debug := flag.Bool("debug", false, "Log arena events at debug level")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *headless {
		opts := rollout.Options{
			Seed:     rngSeed,
			Workers:  *workers,
			MaxTicks: *maxTicks,
		}
		if err := runHeadless(cfg, opts, *episodes, *outputDir); err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}
	if err := runManual(cfg); err != nil {
		slog.Error("manual play failed", "error", err)
		os.Exit(1)
	}
}

// runHeadless plays episodes with seeded random policies and records each one.
func runHeadless(cfg *config.Config, opts rollout.Options, episodes int, outputDir string) error {
	om, err := telemetry.NewOutputManager(outputDir)
	if err != nil {
		return err
	}
	defer om.Close()
	if err := om.WriteConfig(cfg); err != nil {
		return err
	}

	runner := rollout.NewRunner(cfg, opts)
	slog.Info("starting headless rollouts",
		"seed", opts.Seed,
		"episodes", episodes,
		"workers", opts.Workers,
		"max_ticks", opts.MaxTicks,
		"output_dir", om.Dir(),
	)

	results, err := runner.Run(episodes, func(r rollout.Result) error {
		if err := om.WriteEpisode(r.Record); err != nil {
			return err
		}
		if err := om.WritePerf(r.Perf, r.Record.Episode); err != nil {
			return err
		}
		if every := cfg.Telemetry.LogEvery; every > 0 && r.Record.Episode%every == 0 {
			slog.Info("episode", "record", r.Record, "perf", r.Perf)
		}
		return nil
	})
	if err != nil {
		return err
	}

	records := make([]telemetry.EpisodeRecord, len(results))
	for i, r := range results {
		records[i] = r.Record
	}
	summary := telemetry.Summarize(records)
	slog.Info("rollouts complete", "summary", summary)
	return om.WriteSummary(summary)
}

// runManual opens a window and plays with the keyboard.
func runManual(cfg *config.Config) error {
	window := display.Open(cfg.Arena.Width, cfg.Arena.Height, cfg.Display.Title, int32(cfg.Display.TargetFPS))
	env := game.NewEnv(cfg, game.WithDisplay(window))
	defer env.Close()

	mailbox := input.NewMailbox()
	policy := agent.ManualPolicy{Next: mailbox.Take}
	perf := telemetry.NewPerfCollector(cfg.Display.TargetFPS * 10)
	obs := env.Reset()

	for !window.ShouldClose() {
		if window.ResetRequested() {
			obs = env.Reset()
		}
		perf.StartTick()
		perf.StartPhase(telemetry.PhasePolicy)
		window.PollKeys(mailbox)
		action := policy.Act(obs)

		perf.StartPhase(telemetry.PhaseStep)
		res, err := env.Step(action)
		if err != nil {
			return err
		}
		obs = res.Observation

		arena := env.Arena()
		c := arena.Counters()
		status := fmt.Sprintf("tick %d  return %.0f  kills %d  hp %d", arena.Tick(), c.Return, c.PlayerKills, arena.Player().HP)
		if res.Done {
			status = fmt.Sprintf("%s  [%s]", status, arena.Cause())
		}
		window.SetStatus(status)

		perf.StartPhase(telemetry.PhaseRender)
		if _, err := env.Render(game.RenderHuman); err != nil {
			return err
		}
		perf.EndTick()
	}

	slog.Info("manual play ended", "counters", env.Arena().Counters(), "perf", perf.Stats())
	return nil
}
