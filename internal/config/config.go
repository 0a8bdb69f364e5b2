// Package config loads service configuration from an optional YAML file and
// the process environment.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ghostgate/ghostseal/internal/secrets"
)

// envPrefix namespaces ghostseal environment variables. Double underscores
// map to koanf path separators: GHOSTSEAL_AUDIT__SECRETS__V1 -> audit.secrets.v1.
const envPrefix = "GHOSTSEAL_"

type Config struct {
	Server ServerConfig `koanf:"server"`
	Audit  AuditConfig  `koanf:"audit"`
}

type ServerConfig struct {
	Port int `koanf:"port"`
}

type AuditConfig struct {
	// TemplateVersion identifies the prompt template bound into each
	// fingerprint. Bump alongside template changes.
	TemplateVersion string `koanf:"template_version"`

	// Secrets maps key version tags to signing-secret values. Retired
	// versions keep their entries so old fingerprints stay verifiable.
	Secrets map[string]string `koanf:"secrets"`
}

// Load reads configuration from path (skipped when empty) and then overlays
// environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	// Defaults
	if !k.Exists("server.port") {
		k.Set("server.port", 8080)
	}
	if !k.Exists("audit.template_version") {
		k.Set("audit.template_version", "1.0.0")
	}
	// The current key version is always recognized; an empty value means the
	// deployment never configured the secret, which the resolver rejects at
	// use time rather than silently signing with an empty key.
	if !k.Exists("audit.secrets." + secrets.CurrentKeyVersion) {
		k.Set("audit.secrets."+secrets.CurrentKeyVersion, "")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
