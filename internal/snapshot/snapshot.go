// Package snapshot defines the immutable configuration snapshot in force for
// a deployment and its canonical serialization used for audit hashing.
package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// Config is a record of the operational limits and version tags a decision
// ran under. It is fixed at build time and never mutated at runtime; all
// fields are required, numeric fields are non-negative, version fields are
// non-empty. Callers must pass a fully populated value — canonicalizing a
// partially built Config produces a canonical form for a snapshot that never
// existed, which corrupts the audit trail.
type Config struct {
	GhostConfigVersion     string
	GateDefinitionsVersion string
	MaxRounds              int
	MaxCalls               int
	MaxTokens              int
	SynthesisReserve       int
	TimeoutMS              int
}

// Current is the snapshot this build was deployed with.
var Current = Config{
	GhostConfigVersion:     "1.0.0",
	GateDefinitionsVersion: "1.0.0",
	MaxRounds:              2,
	MaxCalls:               6,
	MaxTokens:              4000,
	SynthesisReserve:       1000,
	TimeoutMS:              90000,
}

// Canonicalize renders cfg as a single-line JSON object with keys in a fixed
// alphabetical order. The order is a literal field list, never derived from
// the in-memory representation, so the byte sequence is stable across
// platforms and refactors. The same Config always yields the identical
// bytes.
func Canonicalize(cfg Config) string {
	var b strings.Builder
	b.WriteString(`{"gate_definitions_version":`)
	b.WriteString(strconv.Quote(cfg.GateDefinitionsVersion))
	b.WriteString(`,"ghost_config_version":`)
	b.WriteString(strconv.Quote(cfg.GhostConfigVersion))
	b.WriteString(`,"max_calls":`)
	b.WriteString(strconv.Itoa(cfg.MaxCalls))
	b.WriteString(`,"max_rounds":`)
	b.WriteString(strconv.Itoa(cfg.MaxRounds))
	b.WriteString(`,"max_tokens":`)
	b.WriteString(strconv.Itoa(cfg.MaxTokens))
	b.WriteString(`,"synthesis_reserve":`)
	b.WriteString(strconv.Itoa(cfg.SynthesisReserve))
	b.WriteString(`,"timeout_ms":`)
	b.WriteString(strconv.Itoa(cfg.TimeoutMS))
	b.WriteString(`}`)
	return b.String()
}

// Digest returns the SHA-256 digest of the canonical string's UTF-8 bytes as
// 64 lowercase hex characters.
func Digest(canonical string) string {
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}
