// Package audit computes tamper-evident fingerprints binding a prompt to the
// template version and configuration snapshot that produced a decision.
package audit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrEmptySecret is returned when a fingerprint is requested without secret
// key material. A fingerprint keyed by an empty secret would look valid while
// providing no tamper evidence, so this is a hard failure, never a default.
var ErrEmptySecret = errors.New("audit secret is empty")

// Fingerprint computes the HMAC-SHA-256 fingerprint of a decision as 64
// lowercase hex characters.
//
// The message is the pipe-delimited concatenation of the normalized prompt,
// templateVersion and snapshotHash. The delimiter is not escaped: callers
// guarantee templateVersion and snapshotHash never contain a pipe character,
// which holds by construction (snapshotHash is hex, templateVersion a
// controlled version string).
func Fingerprint(prompt, templateVersion, snapshotHash, secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	msg := Normalize(prompt) + "|" + templateVersion + "|" + snapshotHash
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(msg))
	return hex.EncodeToString(mac.Sum(nil)), nil
}
