package obsidian2tex

import (
	"regexp"
	"strings"
)

// listKind identifies the environment a list run maps to.
type listKind int

const (
	listNone listKind = iota
	listUnordered
	listOrdered
)

// envName returns the LaTeX environment for a kind.
func (k listKind) envName() string {
	if k == listOrdered {
		return "enumerate"
	}
	return "itemize"
}

// List item patterns. The marker must be followed by whitespace so rules
// (---) and bold markers (**) never match.
var (
	bulletItem   = regexp.MustCompile(`^(\s*)[-*+]\s+(.*)$`)
	numberedItem = regexp.MustCompile(`^(\s*)[0-9]+\.\s+(.*)$`)
)

// rewriteLists converts contiguous runs of list items into itemize and
// enumerate environments. It walks the buffer line by line with an explicit
// stack of open environment kinds: indentation maps to nesting depth via
// indentWidth, a kind change at the same depth swaps environments, and the
// first non-item line (or end of buffer) closes everything still open.
// Every opened environment is closed exactly once, in LIFO order, by
// construction.
func rewriteLists(buf string, indentWidth int) string {
	lines := strings.Split(buf, "\n")
	out := make([]string, 0, len(lines))
	var stack []listKind

	closeTo := func(depth int) {
		for len(stack) > depth {
			out = append(out, `\end{`+stack[len(stack)-1].envName()+`}`)
			stack = stack[:len(stack)-1]
		}
	}

	for _, line := range lines {
		kind, depth, text := matchListItem(line, indentWidth)
		if kind == listNone {
			closeTo(0)
			out = append(out, line)
			continue
		}

		// Shallower item: close inner environments first.
		closeTo(depth + 1)

		// Same depth, different kind: swap the environment.
		if len(stack) == depth+1 && stack[len(stack)-1] != kind {
			closeTo(depth)
		}

		// Deeper item (or fresh list): open environments down to depth.
		for len(stack) < depth+1 {
			out = append(out, `\begin{`+kind.envName()+`}`)
			stack = append(stack, kind)
		}

		out = append(out, `\item `+text)
	}
	closeTo(0)

	return strings.Join(out, "\n")
}

// matchListItem classifies a line and computes its nesting depth.
func matchListItem(line string, indentWidth int) (listKind, int, string) {
	if m := bulletItem.FindStringSubmatch(line); m != nil {
		return listUnordered, indentDepth(m[1], indentWidth), m[2]
	}
	if m := numberedItem.FindStringSubmatch(line); m != nil {
		return listOrdered, indentDepth(m[1], indentWidth), m[2]
	}
	return listNone, 0, ""
}

// indentDepth maps leading whitespace to a depth. Tabs count as one level.
func indentDepth(indent string, indentWidth int) int {
	spaces := 0
	for _, r := range indent {
		if r == '\t' {
			spaces += indentWidth
		} else {
			spaces++
		}
	}
	return spaces / indentWidth
}
