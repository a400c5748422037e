package game

// Phase is the engine-level lifecycle state
type Phase uint8

const (
	// PhaseReady waits for a start action
	PhaseReady Phase = iota
	// PhaseRunning accepts input and, for timed engines, ticks
	PhaseRunning
	// PhasePaused keeps state with the cadence cancelled
	PhasePaused
	// PhaseOver is terminal until a restart
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "Ready"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Controls describes which host controls are shown for an engine
type Controls struct {
	Start bool
	Pause bool
}

// Engine is the uniform capability interface the host drives
// Every method is called from the event loop
type Engine interface {
	Kind() Kind
	Session() *Session
	Phase() Phase
	Controls() Controls

	// Start begins a fresh round (restart when over)
	Start()
	// Pause cancels the cadence but keeps state
	Pause()
	// Resume re-arms the cadence after Pause
	Resume()
	// Stop is the teardown hook: cancels cadence and delayed callbacks and releases input
	Stop()

	// HandleInput applies one input event; invalid input is silently dropped
	HandleInput(in Input)
}
