// Package mdscan inventories a markdown document before conversion:
// headings, standard links, standard images, and code fences. The CLI uses
// it for the verbose preflight summary; it never rewrites anything.
package mdscan

import (
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one ATX heading with its source level.
type Heading struct {
	Level int
	Text  string
}

// Inventory summarizes the document structure.
type Inventory struct {
	Headings   []Heading
	Links      []string // standard [text](url) destinations
	Images     []string // standard ![alt](path) destinations
	CodeFences int
}

// Scan parses the body (frontmatter already removed) with goldmark and
// walks the AST collecting structure. Obsidian wiki-links and embeds are
// not CommonMark and do not appear here; the converter reports those
// separately from its own pass.
func Scan(body []byte) *Inventory {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	inv := &Inventory{}
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.Heading:
			inv.Headings = append(inv.Headings, Heading{
				Level: node.Level,
				Text:  headingText(node, body),
			})
		case *gmast.Link:
			inv.Links = append(inv.Links, string(node.Destination))
		case *gmast.AutoLink:
			inv.Links = append(inv.Links, string(node.URL(body)))
		case *gmast.Image:
			inv.Images = append(inv.Images, string(node.Destination))
		case *gmast.FencedCodeBlock:
			inv.CodeFences++
		}
		return gmast.WalkContinue, nil
	})

	return inv
}

// headingText concatenates the text segments under a heading node.
func headingText(h *gmast.Heading, body []byte) string {
	var out []byte
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*gmast.Text); ok {
			out = append(out, t.Segment.Value(body)...)
		}
	}
	return string(out)
}
