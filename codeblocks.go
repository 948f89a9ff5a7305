package obsidian2tex

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// renderSpan expands a guarded placeholder into its final LaTeX form.
// Math spans are restored byte-identical; code spans are re-rendered.
func (s *Service) renderSpan(p placeholder) string {
	switch p.kind {
	case kindFencedCode:
		return s.renderFence(p.span)
	case kindInlineCode:
		return renderInlineCode(p.span)
	default:
		return p.span
	}
}

// renderFence converts a fenced code block into a listings environment
// carrying the language tag, or plain verbatim when the fence is untagged.
// The body is emitted unmodified; escaping LaTeX specials inside code is
// left to the listings machinery.
func (s *Service) renderFence(span string) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(span, "```"), "```")

	nl := strings.IndexByte(inner, '\n')
	lang := strings.TrimSpace(inner[:nl])
	body := strings.TrimSuffix(inner[nl+1:], "\n")

	if lang == "" {
		return "\\begin{verbatim}\n" + body + "\n\\end{verbatim}"
	}
	return "\\begin{lstlisting}[language=" + s.normalizeLang(lang) + "]\n" + body + "\n\\end{lstlisting}"
}

// renderInlineCode wraps an inline code span in \texttt.
func renderInlineCode(span string) string {
	return `\texttt{` + strings.Trim(span, "`") + `}`
}

// normalizeLanguage resolves a fence tag through the chroma lexer registry,
// mapping aliases like "golang" or "py" to the canonical lexer name.
// Unknown tags pass through unchanged.
func normalizeLanguage(tag string) string {
	lex := lexers.Get(tag)
	if lex == nil {
		return tag
	}
	return lex.Config().Name
}
