package core

import "testing"

func TestParseRenderMode(t *testing.T) {
	tests := []struct {
		input       string
		expected    RenderMode
		expectError bool
	}{
		{"full", ModeFull, false},
		{"render", ModeFull, false},
		{"preview", ModePreview, false},
		{"view", ModePreview, false},
		{"bogus", ModeFull, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseRenderMode(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if mode != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, mode)
			}
		})
	}

	if ModePreview.String() != "preview" || ModeFull.String() != "full" {
		t.Errorf("Unexpected mode names %q, %q", ModeFull, ModePreview)
	}
}
