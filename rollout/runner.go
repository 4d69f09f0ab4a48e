// Package rollout plays batches of headless episodes with baseline policies,
// spreading episodes over a pool of workers that each own an environment.
package rollout

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/pthm-cable/dogfight/agent"
	"github.com/pthm-cable/dogfight/config"
	"github.com/pthm-cable/dogfight/game"
	"github.com/pthm-cable/dogfight/telemetry"
)

// PolicyFactory builds the policy for one episode from its seed.
type PolicyFactory func(seed int64) agent.Policy

// RandomPolicies plays every episode with a seeded random policy.
func RandomPolicies(seed int64) agent.Policy {
	return agent.NewRandomPolicy(seed)
}

// Options configures a Runner.
type Options struct {
	Seed     int64 // Episode i is seeded with Seed+i
	Workers  int   // 0 = GOMAXPROCS
	MaxTicks int   // Truncate episodes after this many ticks (0 = unlimited)
	Policies PolicyFactory
}

// Result is the outcome of one episode.
type Result struct {
	Record telemetry.EpisodeRecord
	Perf   telemetry.PerfStats
}

// Runner plays episodes. Results do not depend on the number of workers.
type Runner struct {
	cfg  *config.Config
	opts Options
}

// NewRunner creates a runner.
func NewRunner(cfg *config.Config, opts Options) *Runner {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Policies == nil {
		opts.Policies = RandomPolicies
	}
	return &Runner{cfg: cfg, opts: opts}
}

// Run plays episodes and returns their results in episode order. onResult, if
// non-nil, is called from the calling goroutine as each result becomes final
// in that order.
func (r *Runner) Run(episodes int, onResult func(Result) error) ([]Result, error) {
	if episodes <= 0 {
		return nil, nil
	}
	workers := min(r.opts.Workers, episodes)

	work := make(chan int, episodes)
	for ep := 0; ep < episodes; ep++ {
		work <- ep
	}
	close(work)

	type done struct {
		episode int
		result  Result
		err     error
	}
	doneChan := make(chan done, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			env := game.NewEnv(r.cfg)
			defer env.Close()
			for ep := range work {
				res, err := r.play(env, ep)
				doneChan <- done{episode: ep, result: res, err: err}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(doneChan)
	}()

	// Reorder so callers see episodes in sequence.
	results := make([]Result, episodes)
	ready := make([]bool, episodes)
	next := 0
	var firstErr error
	for d := range doneChan {
		if d.err != nil {
			if firstErr == nil {
				firstErr = d.err
			}
			continue
		}
		results[d.episode] = d.result
		ready[d.episode] = true
		for next < episodes && ready[next] && firstErr == nil {
			if onResult != nil {
				if err := onResult(results[next]); err != nil {
					firstErr = err
				}
			}
			next++
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// play runs one episode to termination or truncation.
func (r *Runner) play(env *game.Env, episode int) (Result, error) {
	seed := r.opts.Seed + int64(episode)
	policy := r.opts.Policies(seed)
	perf := telemetry.NewPerfCollector(1000)

	obs := env.Reset()
	for r.opts.MaxTicks <= 0 || env.Arena().Tick() < r.opts.MaxTicks {
		perf.StartTick()
		perf.StartPhase(telemetry.PhasePolicy)
		action := policy.Act(obs)

		perf.StartPhase(telemetry.PhaseStep)
		res, err := env.Step(action)
		perf.EndTick()
		if err != nil {
			return Result{}, fmt.Errorf("episode %d: %w", episode, err)
		}
		obs = res.Observation
		if res.Done {
			break
		}
	}

	arena := env.Arena()
	return Result{
		Record: telemetry.NewEpisodeRecord(episode, seed, arena.Cause(), arena.Counters()),
		Perf:   perf.Stats(),
	}, nil
}
