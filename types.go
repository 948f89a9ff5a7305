package obsidian2tex

import "fmt"

// Option defaults.
const (
	// DefaultImageWidth sizes figures without an explicit width hint.
	DefaultImageWidth = `0.8\textwidth`

	// DefaultWidthUnit is appended to numeric width hints from embeds.
	DefaultWidthUnit = "pt"

	// DefaultIndentWidth is the number of spaces per list nesting level,
	// matching the Obsidian editor default.
	DefaultIndentWidth = 2

	// DefaultFiguresDir is where \includegraphics paths point.
	DefaultFiguresDir = "figures"
)

// Options configures a single conversion.
// The zero value is usable: zero-valued fields fall back to defaults.
type Options struct {
	// HeaderLevelOffset shifts every heading by this many levels before
	// mapping onto LaTeX sectioning commands. May be negative.
	// The result is clamped to the \part..\paragraph range.
	HeaderLevelOffset int

	// DefaultImageWidth is the \includegraphics width used when an embed
	// carries no width hint (default 0.8\textwidth).
	DefaultImageWidth string

	// WidthUnit is appended to numeric width hints, e.g. "300" + "pt".
	WidthUnit string

	// IndentWidth is the number of spaces per list nesting level
	// (default 2). Must be >= 1 if set.
	IndentWidth int

	// FiguresDir is the directory prefix for \includegraphics paths
	// (default "figures"). The core only emits the path; it never copies
	// files.
	FiguresDir string
}

// withDefaults returns a copy with zero-valued fields filled in.
func (o Options) withDefaults() Options {
	if o.DefaultImageWidth == "" {
		o.DefaultImageWidth = DefaultImageWidth
	}
	if o.WidthUnit == "" {
		o.WidthUnit = DefaultWidthUnit
	}
	if o.IndentWidth == 0 {
		o.IndentWidth = DefaultIndentWidth
	}
	if o.FiguresDir == "" {
		o.FiguresDir = DefaultFiguresDir
	}
	return o
}

// validate checks option values after defaulting.
func (o Options) validate() error {
	if o.IndentWidth < 1 {
		return fmt.Errorf("%w: %d (must be >= 1)", ErrInvalidIndentWidth, o.IndentWidth)
	}
	return nil
}

// Input contains conversion parameters.
type Input struct {
	Markdown   string  // Obsidian markdown content (required)
	SourceName string  // Source file name for the generated header comment (optional)
	Options    Options // Conversion options (zero value = defaults)
}

// Output is the result of a conversion.
type Output struct {
	// Latex is the converted fragment, ready to be saved and \input.
	Latex string

	// Images lists every embed found in the document, in document order.
	// The caller is responsible for materializing them into FiguresDir.
	Images []ImageRef

	// Meta carries frontmatter metadata (title, tags) when present.
	Meta DocumentMeta

	// Warnings collects recoverable issues (malformed embeds, unparseable
	// frontmatter). They never abort the conversion.
	Warnings []string
}

// ImageRef records one image embed for external materialization.
// Created by the image rewriter, never mutated by later stages.
type ImageRef struct {
	RawTarget    string // target exactly as written in the embed
	FileName     string // sanitized basename used in the \includegraphics path
	WidthHint    int    // numeric width from ![[name|300]], 0 when absent
	Caption      string // caption derived from the filename or alt text
	Label        string // LaTeX label, deterministic per distinct filename
	ResolvedPath string // set by the materializer once the file is located
}

// DocumentMeta holds metadata extracted from YAML frontmatter.
type DocumentMeta struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
}

// Option configures a Service.
type Option func(*Service)

// WithLanguageNormalizer overrides how fenced-code language tags are mapped
// to listings language names. The default resolves tags through the chroma
// lexer registry.
func WithLanguageNormalizer(fn func(string) string) Option {
	if fn == nil {
		panic("obsidian2tex: WithLanguageNormalizer requires a non-nil func")
	}
	return func(s *Service) {
		s.normalizeLang = fn
	}
}
