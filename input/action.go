// Package input turns platform key events into a fixed set of game actions.
package input

import "github.com/rotisserie/eris"

// Action is a game-level control. The set is fixed so lookups are array
// indexed rather than keyed by string.
type Action uint8

const (
	RotateLeft Action = iota
	RotateRight
	Thrust
	Fire
	ToggleInvincible
	SpawnMany

	numActions
)

// ErrUnknownAction is returned when a name does not match any action.
var ErrUnknownAction = eris.New("unknown input action")

var actionNames = [numActions]string{
	RotateLeft:       "rotate_left",
	RotateRight:      "rotate_right",
	Thrust:           "thrust",
	Fire:             "fire",
	ToggleInvincible: "toggle_invincible",
	SpawnMany:        "spawn_many",
}

func (a Action) String() string {
	if a < numActions {
		return actionNames[a]
	}
	return "unknown"
}

// Actions returns every action in declaration order.
func Actions() []Action {
	actions := make([]Action, numActions)
	for i := range actions {
		actions[i] = Action(i)
	}
	return actions
}

// ParseAction resolves a configuration name such as "thrust" to its Action.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, eris.Wrapf(ErrUnknownAction, "parsing %q", name)
}
