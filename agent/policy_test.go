package agent

import (
	"testing"

	"github.com/pthm-cable/dogfight/game"
	"github.com/pthm-cable/dogfight/input"
)

func TestRandomPolicyDeterministic(t *testing.T) {
	a, b := NewRandomPolicy(5), NewRandomPolicy(5)
	seen := make(map[game.Action]bool)
	for i := 0; i < 500; i++ {
		x, y := a.Act(nil), b.Act(nil)
		if x != y {
			t.Fatalf("step %d: %v != %v", i, x, y)
		}
		if !x.Valid() {
			t.Fatalf("invalid action %d", int(x))
		}
		seen[x] = true
	}
	if len(seen) != game.NumActions {
		t.Errorf("only %d distinct actions in 500 draws", len(seen))
	}
}

func TestManualPolicyReadsMailbox(t *testing.T) {
	m := input.NewMailbox()
	var p Policy = ManualPolicy{Next: m.Take}

	m.Publish(game.ActionTurnLeft)
	if got := p.Act(nil); got != game.ActionTurnLeft {
		t.Errorf("Act = %v", got)
	}
	if got := p.Act(nil); got != game.ActionNoop {
		t.Errorf("Act on empty mailbox = %v", got)
	}
}
