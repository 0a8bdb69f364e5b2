package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("GHOSTSEAL_SERVER__PORT")
	os.Unsetenv("GHOSTSEAL_AUDIT__SECRETS__V1")
	os.Unsetenv("GHOSTSEAL_AUDIT__TEMPLATE_VERSION")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Load() port = %v, want 8080", cfg.Server.Port)
	}
	if cfg.Audit.TemplateVersion != "1.0.0" {
		t.Errorf("Load() template version = %v, want 1.0.0", cfg.Audit.TemplateVersion)
	}
	// v1 is always recognized, even when no secret was supplied.
	if _, ok := cfg.Audit.Secrets["v1"]; !ok {
		t.Error("Load() did not seed the v1 secret slot")
	}
	if cfg.Audit.Secrets["v1"] != "" {
		t.Errorf("Load() v1 secret = %q, want empty", cfg.Audit.Secrets["v1"])
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GHOSTSEAL_SERVER__PORT", "9000")
	t.Setenv("GHOSTSEAL_AUDIT__SECRETS__V1", "env-secret")
	t.Setenv("GHOSTSEAL_AUDIT__TEMPLATE_VERSION", "2.0.0")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Load() port = %v, want 9000", cfg.Server.Port)
	}
	if cfg.Audit.Secrets["v1"] != "env-secret" {
		t.Errorf("Load() v1 secret = %q, want env-secret", cfg.Audit.Secrets["v1"])
	}
	if cfg.Audit.TemplateVersion != "2.0.0" {
		t.Errorf("Load() template version = %v, want 2.0.0", cfg.Audit.TemplateVersion)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("server:\n  port: 7070\naudit:\n  template_version: \"3.1.0\"\n  secrets:\n    v1: file-secret\n    v0: retired-secret\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Load() port = %v, want 7070", cfg.Server.Port)
	}
	if cfg.Audit.Secrets["v0"] != "retired-secret" {
		t.Errorf("Load() v0 secret = %q, want retired-secret", cfg.Audit.Secrets["v0"])
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7070\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("GHOSTSEAL_SERVER__PORT", "9100")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("Load() port = %v, want 9100", cfg.Server.Port)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load() with missing file succeeded, want error")
	}
}
