package studio

// State is the studio's coarse UI mode. Exactly one value is active at a
// time; it changes only through Controller intent methods.
type State int

const (
	// StateNoSolution is the initial state: nothing is open.
	StateNoSolution State = iota
	// StateSolutionLoaded means a solution is open and idle.
	StateSolutionLoaded
	// StateRecordingRunning means a recording session is capturing events.
	StateRecordingRunning
	// StateRecordingPaused means a recording session exists but capture is
	// suspended.
	StateRecordingPaused
	// StateInspecting means the element inspector overlay is shown.
	StateInspecting
)

// String returns the lowercase token for the state.
func (s State) String() string {
	switch s {
	case StateNoSolution:
		return "no-solution"
	case StateSolutionLoaded:
		return "solution-loaded"
	case StateRecordingRunning:
		return "recording-running"
	case StateRecordingPaused:
		return "recording-paused"
	case StateInspecting:
		return "inspecting"
	default:
		return "unknown"
	}
}

// Transition describes one actual state change. UIReady carries the
// controller's ready flag at the time of the change so listeners can decide
// whether to drive visible UI updates during initialization.
type Transition struct {
	From    State
	To      State
	UIReady bool
}

// Listener receives every actual state change. Same-state transitions are
// suppressed and never reach the listener.
type Listener func(Transition)

// Controller is the finite-state machine behind the studio's UI modes. All
// intent methods are total: an intent that is not valid for the current
// state is a no-op, never an error. Not safe for concurrent use.
type Controller struct {
	state    State
	uiReady  bool
	listener Listener
}

// NewController returns a controller in StateNoSolution with the UI marked
// not ready.
func NewController() *Controller {
	return &Controller{}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// UIReady reports whether the UI has been marked ready.
func (c *Controller) UIReady() bool {
	return c.uiReady
}

// SetUIReady updates the ready flag. It never changes state and never
// invokes the listener.
func (c *Controller) SetUIReady(ready bool) {
	c.uiReady = ready
}

// SetListener registers the transition listener, replacing any previous
// one. A nil listener disables notifications.
func (c *Controller) SetListener(fn Listener) {
	c.listener = fn
}

// setState moves to next and invokes the listener. Moving to the current
// state is suppressed entirely: no state write, no notification.
func (c *Controller) setState(next State) {
	if c.state == next {
		return
	}
	prev := c.state
	c.state = next
	if c.listener != nil {
		c.listener(Transition{From: prev, To: next, UIReady: c.uiReady})
	}
}

// SolutionLoaded records that a solution was opened. Valid from any state.
func (c *Controller) SolutionLoaded() {
	c.setState(StateSolutionLoaded)
}

// SolutionClosed records that the open solution was closed. Valid from any
// state.
func (c *Controller) SolutionClosed() {
	c.setState(StateNoSolution)
}

// RecordStartStop toggles recording. From StateSolutionLoaded it starts a
// recording; from a running or paused recording it stops one, returning to
// StateSolutionLoaded. Any other state is a no-op.
func (c *Controller) RecordStartStop() {
	switch c.state {
	case StateSolutionLoaded:
		c.setState(StateRecordingRunning)
	case StateRecordingRunning, StateRecordingPaused:
		c.setState(StateSolutionLoaded)
	}
}

// RecordPause toggles between running and paused while a recording is
// active. Any other state is a no-op.
func (c *Controller) RecordPause() {
	switch c.state {
	case StateRecordingRunning:
		c.setState(StateRecordingPaused)
	case StateRecordingPaused:
		c.setState(StateRecordingRunning)
	}
}

// InspectorToggle switches the inspector overlay: shown enters
// StateInspecting from any state, hidden returns to StateSolutionLoaded
// from any state.
func (c *Controller) InspectorToggle(shown bool) {
	if shown {
		c.setState(StateInspecting)
	} else {
		c.setState(StateSolutionLoaded)
	}
}
