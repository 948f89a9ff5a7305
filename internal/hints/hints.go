// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/obsidian2tex/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/obsidian2tex") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUnresolvedImage returns a hint for images the materializer could not
// locate in any candidate directory.
func ForUnresolvedImage() string {
	return format("place the file in attachments/, assets/, or images/ next to the note")
}

// ForSkippedOutput returns a hint when the save policy skipped an existing file.
func ForSkippedOutput() string {
	return format("use --overwrite overwrite or --overwrite backup to replace it")
}

// format renders a single hint line.
func format(hint string) string {
	return "\n  hint: " + hint
}
