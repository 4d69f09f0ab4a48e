package game

import "fmt"

// Action is one of the six discrete agent actions. The numeric values are
// part of the environment contract.
type Action int

const (
	ActionNoop Action = iota
	ActionAccelerate
	ActionDecelerate
	ActionTurnLeft
	ActionTurnRight
	ActionFireMissile

	NumActions = 6
)

var actionNames = [NumActions]string{
	"noop",
	"accelerate",
	"decelerate",
	"turn_left",
	"turn_right",
	"fire_missile",
}

// Valid reports whether a is inside the action enumeration.
func (a Action) Valid() bool {
	return a >= 0 && a < NumActions
}

func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}
