package core

import (
	"fmt"
	"strings"
)

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // Up arrow, W
	ActionDown         // Down arrow, S
	ActionLeft         // Left arrow, A
	ActionRight        // Right arrow, D
	ActionStart        // Enter - start the game or resume after game over
	ActionPause        // P - pause a running game
	ActionQuit         // Escape, Q - end the session
)

var actionNames = map[Action]string{
	ActionNone:  "none",
	ActionUp:    "up",
	ActionDown:  "down",
	ActionLeft:  "left",
	ActionRight: "right",
	ActionStart: "start",
	ActionPause: "pause",
	ActionQuit:  "quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// IsDirection reports whether the action steers the snake.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// ParseAction converts a name produced by Action.String back to an Action.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name && a != ActionNone {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("core: unknown action %q", name)
}

// InputFrame collects the actions triggered between two simulation ticks.
// Order is preserved: when several directions arrive in one frame the last
// one wins, matching how key events are replayed.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Actions returns a copy of the queued actions in arrival order.
func (f InputFrame) Actions() []Action {
	out := make([]Action, len(f.actions))
	copy(out, f.actions)
	return out
}

// Drain returns the queued actions and empties the frame.
func (f *InputFrame) Drain() []Action {
	out := f.Actions()
	f.Clear()
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = nil
}
