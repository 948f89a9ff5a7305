package obsidian2tex

import "regexp"

// Precompiled patterns for link rewriting.
var (
	// Wiki-link with display text: [[target|display]]
	wikiLinkDisplay = regexp.MustCompile(`\[\[([^\[\]|]+)\|([^\[\]]+)\]\]`)

	// Bare wiki-link: [[target]]
	wikiLink = regexp.MustCompile(`\[\[([^\[\]]+)\]\]`)

	// Standard markdown link: [text](url)
	markdownLink = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
)

// rewriteLinks converts wiki-links to emphasized text and markdown links to
// \href. The wiki-link target is discarded: Obsidian's internal linking has
// no addressable equivalent in a flat LaTeX fragment.
func rewriteLinks(buf string) string {
	buf = wikiLinkDisplay.ReplaceAllString(buf, `\textit{$2}`)
	buf = wikiLink.ReplaceAllString(buf, `\textit{$1}`)
	buf = markdownLink.ReplaceAllString(buf, `\href{$2}{$1}`)
	return buf
}
