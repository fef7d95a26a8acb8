package util

import "time"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Expired reports whether ts is set and already in the past relative to now.
func Expired(ts, now time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return !ts.After(now)
}
