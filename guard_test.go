package obsidian2tex

import (
	"errors"
	"strings"
	"testing"
)

func TestGuardSpansClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		kinds []spanKind
		spans []string
	}{
		{
			name:  "inline math",
			input: "energy is $E=mc^2$ here",
			kinds: []spanKind{kindInlineMath},
			spans: []string{"$E=mc^2$"},
		},
		{
			name:  "display math",
			input: "$$\\int_0^1 x\\,dx$$",
			kinds: []spanKind{kindDisplayMath},
			spans: []string{"$$\\int_0^1 x\\,dx$$"},
		},
		{
			name:  "inline code",
			input: "run `go vet` first",
			kinds: []spanKind{kindInlineCode},
			spans: []string{"`go vet`"},
		},
		{
			name:  "fenced code block",
			input: "```go\nfmt.Println(1)\n```",
			kinds: []spanKind{kindFencedCode},
			spans: []string{"```go\nfmt.Println(1)\n```"},
		},
		{
			name:  "fence wins over inline backticks",
			input: "```\ncode with `ticks` inside\n```",
			kinds: []spanKind{kindFencedCode},
			spans: []string{"```\ncode with `ticks` inside\n```"},
		},
		{
			name:  "display math wins over inline math",
			input: "$$a$$ and $b$",
			kinds: []spanKind{kindDisplayMath, kindInlineMath},
			spans: []string{"$$a$$", "$b$"},
		},
		{
			name:  "dollar inside inline code is not math",
			input: "price is `$5` today",
			kinds: []spanKind{kindInlineCode},
			spans: []string{"`$5`"},
		},
		{
			name:  "document order preserved",
			input: "$x$ then `y` then $$z$$",
			kinds: []spanKind{kindInlineMath, kindInlineCode, kindDisplayMath},
			spans: []string{"$x$", "`y`", "$$z$$"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			guarded, table, err := guardSpans(tt.input)
			if err != nil {
				t.Fatalf("guardSpans() error = %v", err)
			}
			if len(table.entries) != len(tt.kinds) {
				t.Fatalf("guarded %d spans, want %d", len(table.entries), len(tt.kinds))
			}
			for i, p := range table.entries {
				if p.kind != tt.kinds[i] {
					t.Errorf("entry %d kind = %v, want %v", i, p.kind, tt.kinds[i])
				}
				if p.span != tt.spans[i] {
					t.Errorf("entry %d span = %q, want %q", i, p.span, tt.spans[i])
				}
			}
			for _, span := range tt.spans {
				if strings.Contains(guarded, span) {
					t.Errorf("guarded buffer still contains span %q", span)
				}
			}
		})
	}
}

func TestGuardRestoreRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"plain paragraph with no protected spans",
		"inline $a+b$ math",
		"$$\\frac{1}{2}$$\n\ntext\n\n`code` and $x$",
		"```python\nprint('hi')\n```\nafter",
		"mixed `a` $b$ $$c$$ ```\nd\n``` end",
		"",
	}

	for _, input := range inputs {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			guarded, table, err := guardSpans(input)
			if err != nil {
				t.Fatalf("guardSpans() error = %v", err)
			}
			restored, err := table.restoreVerbatim(guarded)
			if err != nil {
				t.Fatalf("restoreVerbatim() error = %v", err)
			}
			if restored != input {
				t.Errorf("round trip = %q, want %q", restored, input)
			}
		})
	}
}

func TestGuardSpansCollision(t *testing.T) {
	t.Parallel()

	_, _, err := guardSpans("text with sentinel  embedded")
	if !errors.Is(err, ErrPlaceholderCollision) {
		t.Errorf("error = %v, want ErrPlaceholderCollision", err)
	}

	_, _, err = guardSpans("closing sentinel  too")
	if !errors.Is(err, ErrPlaceholderCollision) {
		t.Errorf("error = %v, want ErrPlaceholderCollision", err)
	}
}

func TestRestoreDanglingPlaceholder(t *testing.T) {
	t.Parallel()

	guarded, table, err := guardSpans("keep $x$ safe")
	if err != nil {
		t.Fatalf("guardSpans() error = %v", err)
	}

	// Simulate a stage that mangled the token.
	corrupted := strings.ReplaceAll(guarded, placeholderStart, "")

	_, err = table.restoreVerbatim(corrupted)
	if !errors.Is(err, ErrDanglingPlaceholder) {
		t.Errorf("error = %v, want ErrDanglingPlaceholder", err)
	}
}

func TestTruncateSpan(t *testing.T) {
	t.Parallel()

	short := "short span"
	if got := truncateSpan(short); got != short {
		t.Errorf("truncateSpan(%q) = %q, want unchanged", short, got)
	}

	long := strings.Repeat("x", 100)
	got := truncateSpan(long)
	if len(got) != 43 || !strings.HasSuffix(got, "...") {
		t.Errorf("truncateSpan(long) = %q, want 40 chars plus ellipsis", got)
	}
}
