package input

import "github.com/lixenwraith/bulletsinair/engine"

// Action is a semantic input, independent of the key or button that produced it
type Action uint8

const (
	ActionNone Action = iota

	// Gameplay actions, per side
	ActionP1Up
	ActionP1Down
	ActionP1Shoot
	ActionP2Up
	ActionP2Down
	ActionP2Shoot

	// Lifecycle actions, accepted in every phase
	ActionPause
	ActionRestart
	ActionQuit

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "none",
	ActionP1Up:    "p1_up",
	ActionP1Down:  "p1_down",
	ActionP1Shoot: "p1_shoot",
	ActionP2Up:    "p2_up",
	ActionP2Down:  "p2_down",
	ActionP2Shoot: "p2_shoot",
	ActionPause:   "pause",
	ActionRestart: "restart",
	ActionQuit:    "quit",
}

// String returns the config name of the action
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name && Action(i) != ActionNone {
			return Action(i), true
		}
	}
	return ActionNone, false
}

// Side returns the actor a gameplay action belongs to
func (a Action) Side() (engine.Side, bool) {
	switch a {
	case ActionP1Up, ActionP1Down, ActionP1Shoot:
		return engine.SideLeft, true
	case ActionP2Up, ActionP2Down, ActionP2Shoot:
		return engine.SideRight, true
	default:
		return 0, false
	}
}

// IsMovement reports level-triggered actions
func (a Action) IsMovement() bool {
	switch a {
	case ActionP1Up, ActionP1Down, ActionP2Up, ActionP2Down:
		return true
	default:
		return false
	}
}

// IsShoot reports edge-triggered fire actions
func (a Action) IsShoot() bool {
	return a == ActionP1Shoot || a == ActionP2Shoot
}

// opposite returns the reverse movement of the same side
func (a Action) opposite() Action {
	switch a {
	case ActionP1Up:
		return ActionP1Down
	case ActionP1Down:
		return ActionP1Up
	case ActionP2Up:
		return ActionP2Down
	case ActionP2Down:
		return ActionP2Up
	default:
		return ActionNone
	}
}

// movementFor returns the up and down actions of a side
func movementFor(side engine.Side) (up, down Action) {
	if side == engine.SideLeft {
		return ActionP1Up, ActionP1Down
	}
	return ActionP2Up, ActionP2Down
}

// Command is a lifecycle request produced by input
type Command uint8

const (
	CommandNone Command = iota
	CommandTogglePause
	CommandRestart
	CommandQuit
)

// String returns the command name used in logs
func (c Command) String() string {
	switch c {
	case CommandTogglePause:
		return "toggle_pause"
	case CommandRestart:
		return "restart"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}

// commandFor maps lifecycle actions to commands
func commandFor(a Action) Command {
	switch a {
	case ActionPause:
		return CommandTogglePause
	case ActionRestart:
		return CommandRestart
	case ActionQuit:
		return CommandQuit
	default:
		return CommandNone
	}
}
