package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.FaceHeight != 300 {
		t.Errorf("face height = %d, want 300", cfg.FaceHeight)
	}
	if cfg.MinBlobArea != 100 {
		t.Errorf("min blob area = %g, want 100", cfg.MinBlobArea)
	}
	if cfg.BackgroundColor != "white" {
		t.Errorf("background color = %q, want white", cfg.BackgroundColor)
	}

	z := cfg.BorderZones
	if z.EdgeNear != 0.2 || z.SpanLow != 0.3 || z.SpanHigh != 0.7 || z.EdgeFar != 0.8 {
		t.Errorf("border zones = %+v, want 0.2/0.3/0.7/0.8", z)
	}

	if len(cfg.ColorProfiles) != 9 {
		t.Errorf("profile count = %d, want 9", len(cfg.ColorProfiles))
	}

	green, ok := cfg.ColorProfiles["green"]
	if !ok {
		t.Fatal("green profile missing")
	}
	if green.Lower[0] != 60 || green.Upper[0] != 75 {
		t.Errorf("green hue bounds = %g..%g, want 60..75", green.Lower[0], green.Upper[0])
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "face_height: 150\nmin_blob_area: 50\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.FaceHeight != 150 {
		t.Errorf("face height = %d, want 150", cfg.FaceHeight)
	}
	if cfg.MinBlobArea != 50 {
		t.Errorf("min blob area = %g, want 50", cfg.MinBlobArea)
	}
	// Untouched settings keep their defaults.
	if len(cfg.ColorProfiles) != 9 {
		t.Errorf("profile count = %d, want 9", len(cfg.ColorProfiles))
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"negative face height", "face_height: -1\n"},
		{"unknown background", "background_color: chartreuse\n"},
		{"inverted zones", "border_zone_thresholds:\n  edge_near: 0.9\n"},
		{"malformed profile", "color_profiles:\n  green:\n    lower: [60, 0]\n    upper: [75, 255, 255]\n"},
	}

	for _, tc := range cases {
		path := writeConfig(t, tc.content)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestSwatchRendersHex(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for name, profile := range cfg.ColorProfiles {
		swatch := profile.Swatch()
		if !strings.HasPrefix(swatch, "#") || len(swatch) != 7 {
			t.Errorf("profile %s: swatch %q is not a hex color", name, swatch)
		}
	}
}
