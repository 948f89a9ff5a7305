package obsidian2tex

import "regexp"

// Emphasis patterns. Bold runs before italic so ** is consumed first.
var (
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*\n]+)\*`)
	strikePattern = regexp.MustCompile(`~~(.+?)~~`)
)

// rewriteEmphasis converts markdown text formatting to LaTeX. Runs after
// the list rewriter so leading * markers are already consumed, and after
// guarding so math and code bodies are untouched.
func rewriteEmphasis(buf string) string {
	buf = boldPattern.ReplaceAllString(buf, `\textbf{$1}`)
	buf = italicPattern.ReplaceAllString(buf, `\textit{$1}`)
	buf = strikePattern.ReplaceAllString(buf, `\sout{$1}`)
	return buf
}
