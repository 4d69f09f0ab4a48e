// Package input carries manual-play actions from the keyboard to the
// simulation loop.
package input

import "github.com/pthm-cable/dogfight/game"

// Mailbox is a single-slot action channel. A newer action replaces one that
// has not been taken yet; taking from an empty mailbox yields NOOP.
type Mailbox struct {
	ch chan game.Action
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{ch: make(chan game.Action, 1)}
}

// Publish stores a, replacing any pending action. It never blocks.
func (m *Mailbox) Publish(a game.Action) {
	for {
		select {
		case m.ch <- a:
			return
		default:
		}
		// Slot full: drop the stale action and retry.
		select {
		case <-m.ch:
		default:
		}
	}
}

// Take removes and returns the pending action, or ActionNoop if there is none.
func (m *Mailbox) Take() game.Action {
	select {
	case a := <-m.ch:
		return a
	default:
		return game.ActionNoop
	}
}

// keyActions is the manual-play key table.
var keyActions = map[rune]game.Action{
	'w': game.ActionAccelerate,
	's': game.ActionDecelerate,
	'a': game.ActionTurnLeft,
	'd': game.ActionTurnRight,
	'm': game.ActionFireMissile,
}

// ActionForKey maps a key to its action. Unbound keys report false.
func ActionForKey(key rune) (game.Action, bool) {
	a, ok := keyActions[key]
	return a, ok
}

// Keys returns the bound keys in a fixed order.
func Keys() []rune {
	return []rune{'w', 's', 'a', 'd', 'm'}
}
