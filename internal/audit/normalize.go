package audit

import "strings"

// Normalize maps raw prompt text to its canonical comparable form: lowercase,
// surrounding whitespace stripped, and every internal run of whitespace
// (including newlines and tabs) collapsed to a single ASCII space.
//
// Normalize is idempotent. Every call site that produces a fingerprint and
// every later verifier must go through this one implementation; any drift
// between producer and verifier breaks all comparisons.
func Normalize(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}
