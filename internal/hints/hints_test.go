package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains []string
	}{
		{
			name:     "no searched paths gives base hint",
			paths:    nil,
			contains: []string{"hint:", "--config"},
		},
		{
			name: "user config dir surfaces in hint",
			paths: []string{
				"conv.yaml",
				"/home/u/.config/obsidian2tex/conv.yaml",
			},
			contains: []string{"--config", "/home/u/.config/obsidian2tex/conv.yaml"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ForConfigNotFound(tt.paths)
			if !strings.HasPrefix(got, "\n  hint: ") {
				t.Errorf("hint format = %q, want leading newline and indent", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("hint missing %q in %q", want, got)
				}
			}
		})
	}
}

func TestHintFormat(t *testing.T) {
	t.Parallel()

	for name, got := range map[string]string{
		"unresolved image": ForUnresolvedImage(),
		"skipped output":   ForSkippedOutput(),
	} {
		if !strings.HasPrefix(got, "\n  hint: ") {
			t.Errorf("%s hint = %q, want standard format", name, got)
		}
	}
}
