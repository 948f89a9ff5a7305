package obsidian2tex

import "testing"

func TestRewriteEmphasis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold",
			input:    "this is **important** text",
			expected: `this is \textbf{important} text`,
		},
		{
			name:     "italic",
			input:    "an *emphasized* word",
			expected: `an \textit{emphasized} word`,
		},
		{
			name:     "strikethrough",
			input:    "~~removed~~ content",
			expected: `\sout{removed} content`,
		},
		{
			name:     "bold and italic on one line",
			input:    "**bold** and *italic*",
			expected: `\textbf{bold} and \textit{italic}`,
		},
		{
			name:     "bold consumed before italic",
			input:    "**not italic**",
			expected: `\textbf{not italic}`,
		},
		{
			name:     "nested italic inside bold",
			input:    "**outer *inner* outer**",
			expected: `\textbf{outer \textit{inner} outer}`,
		},
		{
			name:     "no emphasis unchanged",
			input:    "plain text with no markers",
			expected: "plain text with no markers",
		},
		{
			name:     "lone asterisk unchanged",
			input:    "2 * 3 = 6 and nothing closes",
			expected: "2 * 3 = 6 and nothing closes",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := rewriteEmphasis(tt.input)
			if got != tt.expected {
				t.Errorf("rewriteEmphasis() = %q, want %q", got, tt.expected)
			}
		})
	}
}
