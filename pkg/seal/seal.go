// Package seal provides the public API for embedding the fingerprint
// pipeline. This is the stable API for external consumers.
package seal

import (
	"github.com/ghostgate/ghostseal/internal/audit"
	"github.com/ghostgate/ghostseal/internal/secrets"
	"github.com/ghostgate/ghostseal/internal/snapshot"
)

// SnapshotConfig is the immutable operational configuration snapshot.
type SnapshotConfig = snapshot.Config

// Resolver maps key version tags to audit-signing secrets.
type Resolver = secrets.Resolver

// CurrentSnapshot is the snapshot this build was deployed with.
var CurrentSnapshot = snapshot.Current

// CurrentKeyVersion is the key version new fingerprints are produced under.
const CurrentKeyVersion = secrets.CurrentKeyVersion

// Core pipeline operations. See the internal packages for full documentation.
var (
	// Canonicalize renders a snapshot as its deterministic canonical string.
	Canonicalize = snapshot.Canonicalize

	// Digest hashes a canonical string to 64 lowercase hex characters.
	Digest = snapshot.Digest

	// Normalize maps raw prompt text to its canonical comparable form.
	Normalize = audit.Normalize

	// Fingerprint computes the keyed decision fingerprint.
	Fingerprint = audit.Fingerprint

	// NewResolver builds a Resolver from a version->secret table.
	NewResolver = secrets.NewResolver
)

// Sentinel errors surfaced by the pipeline.
var (
	ErrEmptySecret         = audit.ErrEmptySecret
	ErrUnknownKeyVersion   = secrets.ErrUnknownKeyVersion
	ErrSecretNotConfigured = secrets.ErrSecretNotConfigured
)
