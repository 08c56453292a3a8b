package service

import (
	"testing"

	"github.com/venus98/AuthMeReloaded/internal/core/domain"
	"github.com/venus98/AuthMeReloaded/internal/settings"
)

func TestIsUnrestricted(t *testing.T) {
	cfg := settings.Default()
	cfg.Restriction.UnrestrictedNames = []string{"Bedrock", "CameraBot"}

	v := NewValidationService(cfg)

	tests := []struct {
		key  string
		want bool
	}{
		{"bedrock", true},
		{"camerabot", true},
		{"bobby", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := v.IsUnrestricted(domain.Key(tt.key)); got != tt.want {
			t.Errorf("IsUnrestricted(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestIsUnrestrictedCaseInsensitiveConfig(t *testing.T) {
	cfg := settings.Default()
	cfg.Restriction.UnrestrictedNames = []string{"BEDROCK"}

	v := NewValidationService(cfg)

	// Configured casing is irrelevant: keys are always normalized.
	if !v.IsUnrestricted("bedrock") {
		t.Error("IsUnrestricted(bedrock) = false, want true")
	}
}

func TestReload(t *testing.T) {
	cfg := settings.Default()
	cfg.Restriction.UnrestrictedNames = []string{"Bedrock"}
	v := NewValidationService(cfg)

	updated := settings.Default()
	updated.Restriction.UnrestrictedNames = []string{"CameraBot"}
	v.Reload(updated)

	if v.IsUnrestricted("bedrock") {
		t.Error("old allow-list entry survived Reload")
	}
	if !v.IsUnrestricted("camerabot") {
		t.Error("new allow-list entry missing after Reload")
	}
}

func TestValidateName(t *testing.T) {
	v := NewValidationService(settings.Default())

	tests := []struct {
		name    string
		wantErr bool
	}{
		{"Bobby", false},
		{"xX_Slayer_Xx", false},
		{"abc", false},
		{"ab", true},                 // too short
		{"seventeencharslong", true}, // too long
		{"bad name", true},           // space
		{"émile", true},              // non-ascii
		{"", true},
	}

	for _, tt := range tests {
		err := v.ValidateName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
