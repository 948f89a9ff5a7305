package obsidian2tex

import (
	"context"
	"fmt"
	"regexp"
)

// crlfOrCR normalizes Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Service orchestrates the markdown-to-LaTeX pipeline. Safe for concurrent
// use: all per-conversion state lives in the conversion struct.
type Service struct {
	normalizeLang func(string) string
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithLanguageNormalizer).
func New(opts ...Option) *Service {
	s := &Service{normalizeLang: normalizeLanguage}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert runs the full pipeline over one document. Stages run strictly in
// order on the whole buffer; math and code are guarded before any rewriting
// stage and restored at the end. The context is checked between stage
// groups for cancellation.
func (s *Service) Convert(ctx context.Context, input Input) (*Output, error) {
	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}
	opts := input.Options.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := &conversion{opts: opts}

	buf := normalizeLineEndings(input.Markdown)

	buf, meta, fmWarning := splitFrontmatter(buf)
	if fmWarning != "" {
		c.warnings = append(c.warnings, fmWarning)
	}

	buf = stripComments(buf)

	buf, table, err := guardSpans(buf)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buf = rewriteHeaders(buf, opts.HeaderLevelOffset)
	buf = c.rewriteImages(buf)
	buf = rewriteLinks(buf)
	buf = rewriteLists(buf, opts.IndentWidth)
	buf = rewriteEmphasis(buf)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buf, err = table.restore(buf, s.renderSpan)
	if err != nil {
		return nil, fmt.Errorf("restoring protected spans: %w", err)
	}

	return &Output{
		Latex:    headerComment(input.SourceName, meta) + buf,
		Images:   c.images,
		Meta:     meta,
		Warnings: c.warnings,
	}, nil
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
