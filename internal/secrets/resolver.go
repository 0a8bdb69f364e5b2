// Package secrets resolves versioned audit-signing secrets.
package secrets

import (
	"errors"
	"fmt"
	"sort"
)

// CurrentKeyVersion is the key version new fingerprints are produced under.
const CurrentKeyVersion = "v1"

var (
	// ErrUnknownKeyVersion indicates a key version tag with no entry in the
	// resolver table.
	ErrUnknownKeyVersion = errors.New("unknown audit key version")

	// ErrSecretNotConfigured indicates a recognized key version whose secret
	// value was never supplied by the environment. This is a deployment
	// misconfiguration, not a transient fault.
	ErrSecretNotConfigured = errors.New("audit secret not configured")
)

// Resolver maps key version tags to secret values. The table is built once at
// startup from configuration and never mutated, so concurrent reads need no
// synchronization. Retired versions stay in the table so fingerprints
// produced under them remain verifiable until explicitly deprecated.
type Resolver struct {
	byVersion map[string]string
}

// NewResolver builds a resolver from a version->secret table. Entries with
// empty values are kept, so Resolve can distinguish a recognized-but-unset
// version from an unknown one.
func NewResolver(table map[string]string) *Resolver {
	byVersion := make(map[string]string, len(table))
	for version, secret := range table {
		byVersion[version] = secret
	}
	return &Resolver{byVersion: byVersion}
}

// Resolve returns the secret for keyVersion. An unrecognized tag fails with
// ErrUnknownKeyVersion; a recognized tag with an empty configured value fails
// with ErrSecretNotConfigured. It never returns an empty secret.
func (r *Resolver) Resolve(keyVersion string) (string, error) {
	secret, ok := r.byVersion[keyVersion]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKeyVersion, keyVersion)
	}
	if secret == "" {
		return "", fmt.Errorf("%w: %q", ErrSecretNotConfigured, keyVersion)
	}
	return secret, nil
}

// Versions returns the recognized key version tags in sorted order. Secret
// values are never exposed; this exists for startup logging and diagnostics.
func (r *Resolver) Versions() []string {
	versions := make([]string, 0, len(r.byVersion))
	for version := range r.byVersion {
		versions = append(versions, version)
	}
	sort.Strings(versions)
	return versions
}
