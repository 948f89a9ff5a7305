package obsidian2tex

import (
	"regexp"
	"strings"
)

// sectioning is the supported LaTeX sectioning ladder. A # heading lands on
// \section at offset 0; negative offsets climb toward \part, positive ones
// descend toward \paragraph. Out-of-range results clamp, never error.
var sectioning = []string{
	`\part`,
	`\chapter`,
	`\section`,
	`\subsection`,
	`\subsubsection`,
	`\paragraph`,
}

// sectionIndex is the ladder position of \section.
const sectionIndex = 2

// headerLine matches an ATX heading: a run of # followed by whitespace.
var headerLine = regexp.MustCompile(`(?m)^(#{1,6})\s+(.*)$`)

// rewriteHeaders maps heading depth plus the configured offset onto the
// sectioning ladder. Each heading is independent; no state crosses lines.
func rewriteHeaders(buf string, offset int) string {
	return headerLine.ReplaceAllStringFunc(buf, func(line string) string {
		m := headerLine.FindStringSubmatch(line)
		level := len(m[1])
		idx := clampLevel(sectionIndex + level - 1 + offset)
		return sectioning[idx] + "{" + strings.TrimSpace(m[2]) + "}"
	})
}

// clampLevel bounds a ladder index to the supported range.
func clampLevel(idx int) int {
	if idx < 0 {
		return 0
	}
	if idx >= len(sectioning) {
		return len(sectioning) - 1
	}
	return idx
}
