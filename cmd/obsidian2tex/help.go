package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: obsidian2tex <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Obsidian markdown into LaTeX fragments for \\input into a")
	fmt.Fprintln(w, "multi-file LaTeX project.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .tex file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers for directory input (0 = auto)")
	fmt.Fprintln(w, "      --overwrite <s>       Existing file policy: overwrite, backup, skip")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "  -l, --level-adjust <n>    Shift header levels (negative climbs toward \\part)")
	fmt.Fprintln(w, "      --image-width <s>     Default figure width (default: 0.8\\textwidth)")
	fmt.Fprintln(w, "      --indent-width <n>    Spaces per list nesting level (default: 2)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Figures:")
	fmt.Fprintln(w, "  -f, --figures <dir>       Figures directory (default: figures)")
	fmt.Fprintln(w, "      --no-figures          Skip copying images")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show document summary and timing")
	fmt.Fprintln(w, "      --log-file <path>     Append a conversion log to this file")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  obsidian2tex note.md -o sections/note.tex")
	fmt.Fprintln(w, "  obsidian2tex note.md -o sections/note.tex -l 1 -f figs")
	fmt.Fprintln(w, "  obsidian2tex vault/ -o sections/ --overwrite backup")
}
