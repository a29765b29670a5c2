package review

import "time"

// DefaultLeaseDuration bounds how long a claim holds an item before it
// becomes eligible for other reviewers again.
const DefaultLeaseDuration = 5 * time.Minute

// DefaultMaxEnrollBatch caps how many object references a single Enroll call
// will attempt to insert.
const DefaultMaxEnrollBatch = 500

// defaultClaimAttempts bounds how often ClaimNext re-selects after losing the
// conditional lease update to a rival claimer.
const defaultClaimAttempts = 3

// LeaseExpired reports whether a lease taken at started has lapsed at now.
// A nil start means the item was never leased and is trivially not held.
// The boundary is inclusive: a lease is expired once now-started reaches the
// duration exactly.
func LeaseExpired(started *time.Time, now time.Time, leaseDuration time.Duration) bool {
	if started == nil {
		return true
	}
	return now.Sub(*started) >= leaseDuration
}
