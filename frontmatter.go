package obsidian2tex

import (
	"strings"

	"github.com/alnah/go-obsidian2tex/internal/yamlutil"
)

// frontmatterOpen is the delimiter line starting a YAML frontmatter block.
const frontmatterOpen = "---\n"

// splitFrontmatter strips a leading YAML frontmatter block and parses title
// and tags from it. Documents without frontmatter (or with an unterminated
// block) pass through untouched. Unparseable YAML still strips the block;
// the parse failure becomes a warning, never an error.
func splitFrontmatter(buf string) (body string, meta DocumentMeta, warning string) {
	if !strings.HasPrefix(buf, frontmatterOpen) {
		return buf, DocumentMeta{}, ""
	}

	rest := buf[len(frontmatterOpen):]

	// Empty frontmatter: the closing delimiter immediately follows.
	if strings.HasPrefix(rest, "---\n") {
		return rest[len("---\n"):], DocumentMeta{}, ""
	}

	const closing = "\n---\n"
	var raw string
	switch idx := strings.Index(rest, closing); {
	case idx >= 0:
		raw, body = rest[:idx], rest[idx+len(closing):]
	case strings.HasSuffix(rest, "\n---"):
		raw, body = strings.TrimSuffix(rest, "\n---"), ""
	default:
		// No closing delimiter: not frontmatter, leave the buffer alone.
		return buf, DocumentMeta{}, ""
	}

	if strings.TrimSpace(raw) == "" {
		return body, DocumentMeta{}, ""
	}
	if err := yamlutil.Unmarshal([]byte(raw), &meta); err != nil {
		return body, DocumentMeta{}, "frontmatter: " + err.Error()
	}
	return body, meta, ""
}

// headerComment builds the auto-generated banner prepended to the output,
// carrying provenance and frontmatter metadata.
func headerComment(sourceName string, meta DocumentMeta) string {
	var b strings.Builder
	b.WriteString("% Auto-generated from Obsidian markdown\n")
	if sourceName != "" {
		b.WriteString("% Source: " + sourceName + "\n")
	}
	if meta.Title != "" {
		b.WriteString("% Title: " + meta.Title + "\n")
	}
	if len(meta.Tags) > 0 {
		b.WriteString("% Tags: " + strings.Join(meta.Tags, ", ") + "\n")
	}
	b.WriteString("%\n\n")
	return b.String()
}
