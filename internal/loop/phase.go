// Package loop drives a snake session: it consumes input batches, advances the
// engine once per tick, dispatches presentation and audio side effects, and
// walks the Startup/Running/Paused/GameOver/Terminated state machine.
package loop

// Phase is the controller state.
type Phase int

const (
	PhaseStartup    Phase = iota // Waiting for the first start input
	PhaseRunning                 // Ticking at the session interval
	PhasePaused                  // Suspended by the player
	PhaseGameOver                // Summary shown, fresh session waiting for resume
	PhaseTerminated              // Quit requested; no further ticks
)

var phaseNames = [...]string{
	PhaseStartup:    "startup",
	PhaseRunning:    "running",
	PhasePaused:     "paused",
	PhaseGameOver:   "game over",
	PhaseTerminated: "terminated",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Active reports whether the engine steps in this phase.
func (p Phase) Active() bool {
	return p == PhaseRunning
}
