// Package verify implements the claim verification flow: a four-state scan
// machine driven by a fixed-interval timer, with the pass/fail decision
// isolated behind the Decider interface so a real authorization check can
// replace the scripted one without touching the transition logic.
package verify

// Decider determines the outcome of a verification scan for an item
// identifier. Implementations must be pure: the same identifier always
// produces the same result.
type Decider interface {
	Verify(itemID string) bool
}

// ChecksumDecider is the scripted stand-in for a real ownership check.
// It sums the byte values of the identifier and fails only when the sum
// modulo 10 equals 3, so roughly nine in ten items verify successfully
// and every item verifies the same way on every attempt.
type ChecksumDecider struct{}

// Verify reports whether a scan of itemID should succeed.
func (ChecksumDecider) Verify(itemID string) bool {
	sum := 0
	for i := 0; i < len(itemID); i++ {
		sum += int(itemID[i])
	}
	return sum%10 != 3
}
