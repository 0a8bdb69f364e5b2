package secrets

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(map[string]string{
		"v1": "current-secret",
		"v0": "retired-secret",
		"v2": "",
	})

	tests := []struct {
		name       string
		keyVersion string
		want       string
		wantErr    error
	}{
		{
			name:       "current version",
			keyVersion: "v1",
			want:       "current-secret",
		},
		{
			name:       "retired version stays resolvable",
			keyVersion: "v0",
			want:       "retired-secret",
		},
		{
			name:       "unknown version",
			keyVersion: "v99",
			wantErr:    ErrUnknownKeyVersion,
		},
		{
			name:       "recognized but unset version",
			keyVersion: "v2",
			wantErr:    ErrSecretNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.keyVersion)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve(%q) error = %v, want %v", tt.keyVersion, err, tt.wantErr)
				}
				if got != "" {
					t.Errorf("Resolve(%q) returned secret %q alongside error", tt.keyVersion, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.keyVersion, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.keyVersion, got, tt.want)
			}
		})
	}
}

func TestResolver_Versions(t *testing.T) {
	r := NewResolver(map[string]string{
		"v2":  "b",
		"v1":  "a",
		"v10": "c",
	})

	got := r.Versions()
	want := []string{"v1", "v10", "v2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Versions() = %v, want %v", got, want)
	}
}

func TestResolver_Empty(t *testing.T) {
	r := NewResolver(nil)
	if _, err := r.Resolve(CurrentKeyVersion); !errors.Is(err, ErrUnknownKeyVersion) {
		t.Errorf("Resolve on empty resolver error = %v, want ErrUnknownKeyVersion", err)
	}
}
