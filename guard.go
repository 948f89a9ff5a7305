package obsidian2tex

import (
	"fmt"
	"regexp"
	"strings"
)

// Placeholder sentinels use Unicode Private Use Area characters, so they
// cannot collide with any text a markdown author would type. Tokens are the
// start sentinel, a table index, and the end sentinel. The original document
// is scanned for the sentinels before guarding; a hit aborts the conversion
// rather than risking a corrupted restore.
const (
	placeholderStart = "\uE000"
	placeholderEnd   = "\uE001"
)

// spanKind classifies a protected span.
type spanKind int

const (
	kindFencedCode spanKind = iota
	kindInlineCode
	kindDisplayMath
	kindInlineMath
)

// String returns the kind name for error messages.
func (k spanKind) String() string {
	switch k {
	case kindFencedCode:
		return "fenced code"
	case kindInlineCode:
		return "inline code"
	case kindDisplayMath:
		return "display math"
	default:
		return "inline math"
	}
}

// placeholder maps one token to its captured span.
type placeholder struct {
	token string
	span  string
	kind  spanKind
}

// placeholderTable records guarded spans in document order.
type placeholderTable struct {
	entries []placeholder
}

// guardedSpan matches protected spans leftmost-first. Alternation order is
// the tie-break: fenced blocks before inline backticks (code bodies are
// never read as math), and $$ before $ so display math wins over two
// adjacent inline delimiters.
var guardedSpan = regexp.MustCompile("(?s)```[^\\n]*\\n.*?```|`[^`\\n]+`|\\$\\$.*?\\$\\$|\\$[^$\\n]+\\$")

// guardSpans replaces every math and code span with a unique placeholder
// token and records the original in the table.
func guardSpans(buf string) (string, *placeholderTable, error) {
	if strings.ContainsAny(buf, placeholderStart+placeholderEnd) {
		return "", nil, ErrPlaceholderCollision
	}

	table := &placeholderTable{}
	guarded := guardedSpan.ReplaceAllStringFunc(buf, func(span string) string {
		token := fmt.Sprintf("%s%d%s", placeholderStart, len(table.entries), placeholderEnd)
		table.entries = append(table.entries, placeholder{
			token: token,
			span:  span,
			kind:  classifySpan(span),
		})
		return token
	})

	return guarded, table, nil
}

// classifySpan determines the kind from the opening delimiter.
func classifySpan(span string) spanKind {
	switch {
	case strings.HasPrefix(span, "```"):
		return kindFencedCode
	case strings.HasPrefix(span, "`"):
		return kindInlineCode
	case strings.HasPrefix(span, "$$"):
		return kindDisplayMath
	default:
		return kindInlineMath
	}
}

// restore substitutes every recorded token with render(p). Each token must
// appear exactly once in the buffer; a missing token means an earlier stage
// corrupted it, which is an invariant violation and fails the conversion.
func (t *placeholderTable) restore(buf string, render func(placeholder) string) (string, error) {
	for _, p := range t.entries {
		if !strings.Contains(buf, p.token) {
			return "", fmt.Errorf("%w: %s span %q", ErrDanglingPlaceholder, p.kind, truncateSpan(p.span))
		}
		buf = strings.Replace(buf, p.token, render(p), 1)
	}
	return buf, nil
}

// restoreVerbatim substitutes every token with its original span unchanged.
// Guard followed by restoreVerbatim is byte-identical to the input.
func (t *placeholderTable) restoreVerbatim(buf string) (string, error) {
	return t.restore(buf, func(p placeholder) string { return p.span })
}

// truncateSpan keeps error messages readable for long spans.
func truncateSpan(span string) string {
	const max = 40
	if len(span) <= max {
		return span
	}
	return span[:max] + "..."
}
