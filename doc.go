// Package obsidian2tex converts Obsidian-flavored Markdown into LaTeX
// fragments suitable for \input into a larger LaTeX project.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc := obsidian2tex.New()
//
//	out, err := svc.Convert(ctx, obsidian2tex.Input{
//	    Markdown:   "# Stiffness\n\nSee ![[beam.png|300]]",
//	    SourceName: "stiffness.md",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("stiffness.tex", []byte(out.Latex), 0644)
//
// The result contains the LaTeX text (out.Latex), the image references that
// must be copied into the figures directory (out.Images), frontmatter
// metadata (out.Meta), and any non-fatal warnings collected along the way.
//
// # Conversion Pipeline
//
// The conversion runs a fixed sequence of rewrite stages over one buffer:
//
//  1. Frontmatter split (YAML metadata captured, block removed)
//  2. Obsidian %%comment%% stripping
//  3. Math and code guarding (spans swapped for placeholder tokens)
//  4. Header rewriting (# depth plus offset onto LaTeX sectioning)
//  5. Image embeds into figure environments
//  6. Wiki-links into emphasized text, markdown links into \href
//  7. List runs into itemize/enumerate environments
//  8. Emphasis (bold, italic, strikethrough)
//  9. Placeholder restore (math verbatim, fences into lstlisting)
//
// Math and code are guarded before any other rewrite touches the buffer, so
// their contents pass through byte-identical (math) or wrapped verbatim in a
// listings environment (code).
//
// # Configuration
//
// Per-conversion options are passed via Input.Options:
//
//	out, err := svc.Convert(ctx, obsidian2tex.Input{
//	    Markdown: content,
//	    Options: obsidian2tex.Options{
//	        HeaderLevelOffset: 1,
//	        FiguresDir:        "figures",
//	        DefaultImageWidth: `0.8\textwidth`,
//	    },
//	})
//
// Zero-valued options fall back to documented defaults.
//
// # Image Materialization
//
// The core never touches the filesystem. Each ![[embed]] produces an
// ImageRef record; callers (the obsidian2tex CLI, or the figures package)
// are responsible for locating the physical file and copying it into the
// figures directory.
package obsidian2tex
