package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ghostgate/ghostseal/internal/audit"
	"github.com/ghostgate/ghostseal/internal/budget"
	"github.com/ghostgate/ghostseal/internal/secrets"
	"github.com/ghostgate/ghostseal/internal/snapshot"
)

// FingerprintRequest is the body of POST /v1/fingerprints.
type FingerprintRequest struct {
	Prompt string `json:"prompt"`

	// TemplateVersion overrides the configured template version. Optional.
	TemplateVersion string `json:"template_version,omitempty"`

	// KeyVersion selects the signing-secret generation. Defaults to the
	// current generation.
	KeyVersion string `json:"key_version,omitempty"`
}

// FingerprintResponse echoes the fingerprint and every input an auditor needs
// to recompute it (except the secret).
type FingerprintResponse struct {
	Fingerprint      string `json:"fingerprint"`
	KeyVersion       string `json:"key_version"`
	TemplateVersion  string `json:"template_version"`
	SnapshotHash     string `json:"snapshot_hash"`
	NormalizedPrompt string `json:"normalized_prompt"`
	PromptTokens     int    `json:"prompt_tokens"`
}

// SnapshotResponse is the body of GET /v1/snapshot.
type SnapshotResponse struct {
	GhostConfigVersion     string `json:"ghost_config_version"`
	GateDefinitionsVersion string `json:"gate_definitions_version"`
	Canonical              string `json:"canonical"`
	Hash                   string `json:"hash"`
}

// HandleFingerprint computes the decision fingerprint for a prompt under the
// current configuration snapshot.
func (s *Server) HandleFingerprint(w http.ResponseWriter, r *http.Request) {
	var req FingerprintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &APIError{Type: ErrorTypeInvalidRequest, Message: "invalid JSON body"})
		return
	}
	if req.Prompt == "" {
		writeError(w, &APIError{Type: ErrorTypeInvalidRequest, Message: "prompt is required"})
		return
	}

	templateVersion := req.TemplateVersion
	if templateVersion == "" {
		templateVersion = s.templateVersion
	}
	keyVersion := req.KeyVersion
	if keyVersion == "" {
		keyVersion = secrets.CurrentKeyVersion
	}

	tokens, err := s.checker.Check(req.Prompt)
	if err != nil {
		AddError(r.Context(), err)
		if errors.Is(err, budget.ErrOverBudget) {
			writeError(w, &APIError{Type: ErrorTypeContextLength, Message: err.Error()})
			return
		}
		writeError(w, &APIError{Type: ErrorTypeServer, Message: "token counting failed"})
		return
	}

	secret, err := s.resolver.Resolve(keyVersion)
	if err != nil {
		AddError(r.Context(), err)
		switch {
		case errors.Is(err, secrets.ErrUnknownKeyVersion):
			writeError(w, &APIError{Type: ErrorTypeInvalidRequest, Message: err.Error()})
		case errors.Is(err, secrets.ErrSecretNotConfigured):
			writeError(w, &APIError{Type: ErrorTypeConfiguration, Message: err.Error()})
		default:
			writeError(w, &APIError{Type: ErrorTypeServer, Message: "secret resolution failed"})
		}
		return
	}

	snapshotHash := snapshot.Digest(snapshot.Canonicalize(s.snapshot))
	fingerprint, err := audit.Fingerprint(req.Prompt, templateVersion, snapshotHash, secret)
	if err != nil {
		// Reaching this with a resolved secret means the resolver let an
		// empty value through; surface it, never fall back to a placeholder.
		AddError(r.Context(), err)
		writeError(w, &APIError{Type: ErrorTypeConfiguration, Message: err.Error()})
		return
	}

	AddLogField(r.Context(), "key_version", keyVersion)
	AddLogField(r.Context(), "fingerprint", fingerprint)

	writeJSON(w, http.StatusOK, FingerprintResponse{
		Fingerprint:      fingerprint,
		KeyVersion:       keyVersion,
		TemplateVersion:  templateVersion,
		SnapshotHash:     snapshotHash,
		NormalizedPrompt: audit.Normalize(req.Prompt),
		PromptTokens:     tokens,
	})
}

// HandleSnapshot reports the deployed snapshot's canonical form and digest so
// auditors can verify which configuration fingerprints were bound to.
func (s *Server) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	canonical := snapshot.Canonicalize(s.snapshot)
	writeJSON(w, http.StatusOK, SnapshotResponse{
		GhostConfigVersion:     s.snapshot.GhostConfigVersion,
		GateDefinitionsVersion: s.snapshot.GateDefinitionsVersion,
		Canonical:              canonical,
		Hash:                   snapshot.Digest(canonical),
	})
}

// HandleHealth is a liveness probe.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
