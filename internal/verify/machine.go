package verify

import (
	"errors"
	"sync"
	"time"
)

// State is a display state of the verification machine.
type State string

// Machine states. Idle -> Scanning -> {Succeeded, Failed}; a failed scan
// may be retried (Failed -> Scanning); Succeeded is terminal.
const (
	StateIdle      State = "idle"
	StateScanning  State = "scanning"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Timing controls the scan pacing. Progress advances by Step (out of 100)
// every Tick; on success the completion handler fires after Delay so the
// result stays visible first.
type Timing struct {
	Tick  time.Duration
	Step  int
	Delay time.Duration
}

// DefaultTiming matches the fingerprint scanner UI: 5% per 150 ms tick
// (20 ticks to completion) and a 1.5 s success display delay.
var DefaultTiming = Timing{
	Tick:  150 * time.Millisecond,
	Step:  5,
	Delay: 1500 * time.Millisecond,
}

var (
	// ErrScanInProgress rejects operations while a scan is running.
	ErrScanInProgress = errors.New("scan in progress")
	// ErrAlreadySucceeded rejects operations on a finished verification.
	ErrAlreadySucceeded = errors.New("verification already succeeded")
)

// Machine runs one item's verification scan. A single timer goroutine
// advances progress; all observable state is behind the mutex. The machine
// never touches persistence: data effects belong to the onSuccess handler.
type Machine struct {
	itemID    string
	decider   Decider
	timing    Timing
	onSuccess func()

	mu       sync.Mutex
	state    State
	progress int
	outcome  bool
}

// Snapshot is a point-in-time view of the machine.
type Snapshot struct {
	State    State `json:"state"`
	Progress int   `json:"progress"`
}

// NewMachine creates an idle verification machine for an item identifier.
// onSuccess may be nil.
func NewMachine(itemID string, decider Decider, timing Timing, onSuccess func()) *Machine {
	return &Machine{
		itemID:    itemID,
		decider:   decider,
		timing:    timing,
		onSuccess: onSuccess,
		state:     StateIdle,
	}
}

// Start begins a scan from Idle, or retries from Failed. The outcome is
// decided once here, not re-rolled per tick, so repeated scans of the same
// item always end the same way.
func (m *Machine) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateScanning:
		return ErrScanInProgress
	case StateSucceeded:
		return ErrAlreadySucceeded
	}

	m.state = StateScanning
	m.progress = 0
	m.outcome = m.decider.Verify(m.itemID)

	go m.run()
	return nil
}

// Cancel aborts a verification that has not started or has failed.
// Cancelling mid-scan is rejected.
func (m *Machine) Cancel() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateScanning:
		return ErrScanInProgress
	case StateSucceeded:
		return ErrAlreadySucceeded
	}
	return nil
}

// Snapshot returns the current state and progress.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{State: m.state, Progress: m.progress}
}

// Done reports whether the machine has reached a terminal or retryable end
// state (anything but an active scan counts once a scan has run).
func (m *Machine) Done() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == StateSucceeded || m.state == StateFailed
}

// run drives the scan to completion. It exits after at most
// 100/Step ticks, so the goroutine never outlives the scan.
func (m *Machine) run() {
	ticker := time.NewTicker(m.timing.Tick)
	defer ticker.Stop()

	for range ticker.C {
		if m.advance() {
			return
		}
	}
}

// advance applies one tick and reports whether the scan finished.
func (m *Machine) advance() bool {
	m.mu.Lock()

	if m.state != StateScanning {
		m.mu.Unlock()
		return true
	}

	m.progress += m.timing.Step
	if m.progress < 100 {
		m.mu.Unlock()
		return false
	}

	m.progress = 100
	succeeded := m.outcome
	if succeeded {
		m.state = StateSucceeded
	} else {
		m.state = StateFailed
	}
	m.mu.Unlock()

	if succeeded && m.onSuccess != nil {
		time.AfterFunc(m.timing.Delay, m.onSuccess)
	}
	return true
}
