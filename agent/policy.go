// Package agent holds baseline policies for driving the environment without a
// learner attached.
package agent

import (
	"image"
	"math/rand"

	"github.com/pthm-cable/dogfight/game"
)

// Policy chooses an action from an observation.
type Policy interface {
	Act(obs *image.Gray) game.Action
}

// RandomPolicy picks actions uniformly at random. The same seed yields the same
// action sequence.
type RandomPolicy struct {
	rng *rand.Rand
}

// NewRandomPolicy creates a random policy.
func NewRandomPolicy(seed int64) *RandomPolicy {
	return &RandomPolicy{rng: rand.New(rand.NewSource(seed))}
}

// Act ignores the observation.
func (p *RandomPolicy) Act(*image.Gray) game.Action {
	return game.Action(p.rng.Intn(game.NumActions))
}

// ManualPolicy replays actions from a source such as the keyboard mailbox.
type ManualPolicy struct {
	Next func() game.Action
}

// Act returns the next queued action.
func (p ManualPolicy) Act(*image.Gray) game.Action {
	return p.Next()
}
