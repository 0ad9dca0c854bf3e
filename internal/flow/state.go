package flow

import "sync"

type State int

const (
	Idle State = iota
	Validating
	Rejected
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Rejected:
		return "rejected"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Busy reports whether an attempt is in flight.
func (s State) Busy() bool {
	return s == Validating || s == Submitting
}

// machine tracks a flow's state. Its busy check is the only guard against
// a second submission while one is outstanding.
type machine struct {
	mu           sync.Mutex
	state        State
	onTransition func(from, to State)
}

func (m *machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *machine) begin() error {
	m.mu.Lock()
	from := m.state
	if from.Busy() {
		m.mu.Unlock()
		return ErrSubmitInProgress
	}
	m.state = Validating
	m.mu.Unlock()

	m.notify(from, Validating)
	return nil
}

func (m *machine) to(next State) {
	m.mu.Lock()
	from := m.state
	m.state = next
	m.mu.Unlock()

	m.notify(from, next)
}

// finish moves to a terminal state. Rejected and Failed fall back to Idle
// so the form can be resubmitted.
func (m *machine) finish(terminal State) {
	m.to(terminal)
	if terminal == Rejected || terminal == Failed {
		m.to(Idle)
	}
}

func (m *machine) notify(from, to State) {
	if m.onTransition != nil {
		m.onTransition(from, to)
	}
}
