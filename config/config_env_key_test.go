package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"viewport": map[string]any{
			"width":          948,
			"longitudeRange": []any{-121.78, -122.50},
		},
		"data": map[string]any{
			"markersPath": "",
		},
		"output": map[string]any{
			"logFrames": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "VIEWPORT_WIDTH", want: "viewport.width"},
		{envKey: "VIEWPORT_LONGITUDERANGE", want: "viewport.longitudeRange"},
		{envKey: "DATA_MARKERSPATH", want: "data.markersPath"},
		{envKey: "OUTPUT_LOGFRAMES", want: "output.logFrames"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
