package handlers

import (
	"errors"
	"sync"
)

// DashboardState is the submit lifecycle state of the single-session UI.
type DashboardState string

// The dashboard moves idle -> submitting -> rendered; any failure returns it
// to idle with a user-visible message.
const (
	StateIdle       DashboardState = "idle"
	StateSubmitting DashboardState = "submitting"
	StateRendered   DashboardState = "rendered"
)

// ErrBusy is returned when a submission arrives while one is in flight.
var ErrBusy = errors.New("a submission is already in progress")

// Dashboard owns the state machine for the generation cycle. It guards
// against concurrent submissions: only one generation runs at a time.
type Dashboard struct {
	mu          sync.Mutex
	state       DashboardState
	lastError   string
	lastEntryID string
}

func NewDashboard() *Dashboard {
	return &Dashboard{state: StateIdle}
}

// Begin transitions to submitting. Returns ErrBusy while a submission is
// already in flight; a new submission from idle or rendered is accepted.
func (d *Dashboard) Begin() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateSubmitting {
		return ErrBusy
	}
	d.state = StateSubmitting
	d.lastError = ""
	return nil
}

// Complete records a successful render.
func (d *Dashboard) Complete(entryID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = StateRendered
	d.lastEntryID = entryID
	d.lastError = ""
}

// Fail returns the dashboard to idle with an error message for the UI.
func (d *Dashboard) Fail(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state = StateIdle
	d.lastError = message
}

// DashboardStatus is the UI-facing snapshot of the state machine.
type DashboardStatus struct {
	State       DashboardState `json:"state"`
	Error       string         `json:"error,omitempty"`
	LastEntryID string         `json:"last_entry_id,omitempty"`
}

// Snapshot returns the current state.
func (d *Dashboard) Snapshot() DashboardStatus {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DashboardStatus{
		State:       d.state,
		Error:       d.lastError,
		LastEntryID: d.lastEntryID,
	}
}
