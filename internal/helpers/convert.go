// Package helpers provides small numeric utilities shared across driftdns.
//
// The clamp helpers keep operator-supplied tunables (TTL seconds, iteration
// counts) inside the ranges the rest of the code assumes.
package helpers

// ClampInt restricts v to the range [lowerLimit, upperLimit].
func ClampInt(v, lowerLimit, upperLimit int) int {
	if v < lowerLimit {
		return lowerLimit
	}
	if v > upperLimit {
		return upperLimit
	}
	return v
}

// ClampInt64 restricts v to the range [lowerLimit, upperLimit].
func ClampInt64(v, lowerLimit, upperLimit int64) int64 {
	if v < lowerLimit {
		return lowerLimit
	}
	if v > upperLimit {
		return upperLimit
	}
	return v
}
