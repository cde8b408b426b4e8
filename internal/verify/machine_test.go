package verify

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastTiming keeps scans in the low-millisecond range for tests.
var fastTiming = Timing{
	Tick:  time.Millisecond,
	Step:  50,
	Delay: 5 * time.Millisecond,
}

func TestChecksumDecider(t *testing.T) {
	d := ChecksumDecider{}

	// '3' is 51, 51 % 10 == 1.
	assert.True(t, d.Verify("3"))
	// '!' is 33, 33 % 10 == 3.
	assert.False(t, d.Verify("!"))
	// Outcome depends only on the identifier, never on chance.
	for range 10 {
		assert.True(t, d.Verify("3"))
		assert.False(t, d.Verify("!"))
	}
}

func TestMachineSucceeds(t *testing.T) {
	var fired atomic.Bool
	m := NewMachine("3", ChecksumDecider{}, fastTiming, func() { fired.Store(true) })

	snap := m.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, 0, snap.Progress)

	require.NoError(t, m.Start())
	assert.Eventually(t, m.Done, time.Second, time.Millisecond)

	snap = m.Snapshot()
	assert.Equal(t, StateSucceeded, snap.State)
	assert.Equal(t, 100, snap.Progress)

	// The success handler fires after the display delay, not immediately.
	assert.Eventually(t, fired.Load, time.Second, time.Millisecond)
}

func TestMachineFailsAndRetries(t *testing.T) {
	m := NewMachine("!", ChecksumDecider{}, fastTiming, func() {
		t.Error("success handler fired for a failing item")
	})

	require.NoError(t, m.Start())
	assert.Eventually(t, m.Done, time.Second, time.Millisecond)
	assert.Equal(t, StateFailed, m.Snapshot().State)

	// Retrying a failed scan is allowed, and fails again.
	require.NoError(t, m.Start())
	assert.Eventually(t, m.Done, time.Second, time.Millisecond)
	assert.Equal(t, StateFailed, m.Snapshot().State)
}

func TestMachineRejectsConcurrentScan(t *testing.T) {
	// A slow tick keeps the scan running long enough to observe.
	slow := Timing{Tick: 50 * time.Millisecond, Step: 5, Delay: time.Millisecond}
	m := NewMachine("3", ChecksumDecider{}, slow, nil)

	require.NoError(t, m.Start())
	assert.ErrorIs(t, m.Start(), ErrScanInProgress)
	assert.ErrorIs(t, m.Cancel(), ErrScanInProgress)
}

func TestMachineRejectsRestartAfterSuccess(t *testing.T) {
	m := NewMachine("3", ChecksumDecider{}, fastTiming, nil)

	require.NoError(t, m.Start())
	assert.Eventually(t, m.Done, time.Second, time.Millisecond)
	require.Equal(t, StateSucceeded, m.Snapshot().State)

	assert.ErrorIs(t, m.Start(), ErrAlreadySucceeded)
	assert.ErrorIs(t, m.Cancel(), ErrAlreadySucceeded)
}

func TestMachineCancelBeforeScan(t *testing.T) {
	m := NewMachine("3", ChecksumDecider{}, fastTiming, nil)
	assert.NoError(t, m.Cancel())

	require.NoError(t, m.Start())
	assert.Eventually(t, m.Done, time.Second, time.Millisecond)
}
