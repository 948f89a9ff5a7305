package obsidian2tex

import (
	"path"
	"regexp"
	"strconv"
	"strings"
)

// Precompiled patterns for image rewriting.
var (
	// Obsidian embed: ![[target]] or ![[target|width]]
	embedPattern = regexp.MustCompile(`!\[\[([^\[\]]*)\]\]`)

	// Standard markdown image: ![alt](path)
	markdownImage = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)\)`)

	// Label characters outside [A-Za-z0-9] are collapsed to underscores.
	unsafeLabelRun = regexp.MustCompile(`[^A-Za-z0-9]+`)

	// Filename characters outside [\w.-] are replaced for safe
	// \includegraphics paths.
	unsafeFileRune = regexp.MustCompile(`[^\w.-]`)

	numericWidth = regexp.MustCompile(`^[0-9]+$`)
)

// conversion carries per-invocation state across stages: options plus the
// image references and warnings accumulated along the way. Discarded when
// Convert returns.
type conversion struct {
	opts     Options
	images   []ImageRef
	warnings []string
}

// rewriteImages converts Obsidian embeds and standard markdown images into
// figure environments, recording an ImageRef per match. Embeds run first so
// the leading ![[ is consumed before the link rewriter sees the buffer.
func (c *conversion) rewriteImages(buf string) string {
	buf = embedPattern.ReplaceAllStringFunc(buf, c.rewriteEmbed)
	buf = markdownImage.ReplaceAllStringFunc(buf, c.rewriteMarkdownImage)
	return buf
}

// rewriteEmbed handles one ![[target|width]] match.
func (c *conversion) rewriteEmbed(match string) string {
	inner := embedPattern.FindStringSubmatch(match)[1]

	target, widthHint := splitWidthHint(inner)
	if target == "" {
		c.warnings = append(c.warnings, "skipping malformed embed "+match)
		return match
	}

	ref := c.newImageRef(target, widthHint, "")
	c.images = append(c.images, ref)
	return c.figureEnv(ref)
}

// rewriteMarkdownImage handles one ![alt](path) match. The alt text becomes
// the caption when present.
func (c *conversion) rewriteMarkdownImage(match string) string {
	m := markdownImage.FindStringSubmatch(match)
	alt, target := m[1], m[2]

	ref := c.newImageRef(target, 0, alt)
	c.images = append(c.images, ref)
	return c.figureEnv(ref)
}

// splitWidthHint separates "name.png|300" into target and numeric width.
// Non-numeric suffixes are ignored, matching the original embed semantics.
func splitWidthHint(inner string) (target string, width int) {
	parts := strings.SplitN(inner, "|", 2)
	target = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		hint := strings.TrimSpace(parts[1])
		if numericWidth.MatchString(hint) {
			width, _ = strconv.Atoi(hint)
		}
	}
	return target, width
}

// newImageRef derives the filename, caption, and label for a target.
// Two embeds of the same filename produce the same label; distinct files
// that sanitize to the same label are not disambiguated here.
func (c *conversion) newImageRef(target string, widthHint int, caption string) ImageRef {
	fileName := path.Base(strings.ReplaceAll(target, `\`, "/"))
	cleanName := unsafeFileRune.ReplaceAllString(fileName, "_")

	if caption == "" {
		base := strings.TrimSuffix(fileName, path.Ext(fileName))
		caption = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	}

	return ImageRef{
		RawTarget: target,
		FileName:  cleanName,
		WidthHint: widthHint,
		Caption:   caption,
		Label:     "fig:" + unsafeLabelRun.ReplaceAllString(fileName, "_"),
	}
}

// figureEnv renders a centered figure environment for one reference.
func (c *conversion) figureEnv(ref ImageRef) string {
	width := c.opts.DefaultImageWidth
	if ref.WidthHint > 0 {
		width = strconv.Itoa(ref.WidthHint) + c.opts.WidthUnit
	}

	return "\n\\begin{figure}[htbp]\n" +
		"    \\centering\n" +
		"    \\includegraphics[width=" + width + "]{" + c.opts.FiguresDir + "/" + ref.FileName + "}\n" +
		"    \\caption{" + ref.Caption + "}\n" +
		"    \\label{" + ref.Label + "}\n" +
		"\\end{figure}\n"
}
