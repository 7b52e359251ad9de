// Package summary tracks the weekly AI summary pane's state machine.
package summary

// State is the pane's lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateDone
)

// Model holds the summary pane state. A new generation cannot start while
// one is already in flight.
type Model struct {
	state State
	text  string
}

// New returns an idle pane.
func New() Model {
	return Model{state: StateIdle}
}

// State returns the current phase.
func (m *Model) State() State { return m.state }

// Text returns the generated summary, empty until done.
func (m *Model) Text() string { return m.text }

// Trigger moves the pane to loading. It returns false when a generation is
// already in flight, in which case the caller must not start another.
func (m *Model) Trigger() bool {
	if m.state == StateLoading {
		return false
	}
	m.state = StateLoading
	return true
}

// SetResult records the generated text and completes the cycle. Results
// arriving while idle are stale and dropped.
func (m *Model) SetResult(text string) {
	if m.state != StateLoading {
		return
	}
	m.text = text
	m.state = StateDone
}

// Reset returns the pane to idle, clearing any previous result.
func (m *Model) Reset() {
	m.state = StateIdle
	m.text = ""
}
