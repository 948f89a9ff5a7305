// Package figures materializes image references: it locates the physical
// files behind Obsidian embeds and copies them into the figures directory.
// The core transformation never touches the filesystem; this package is its
// external collaborator.
package figures

import (
	"fmt"
	"os"
	"path/filepath"

	obsidian2tex "github.com/alnah/go-obsidian2tex"
	"github.com/alnah/go-obsidian2tex/internal/fileutil"
)

// attachmentDirs are searched, in order, relative to the note's directory.
// The last entry looks one level up, matching the common vault layout where
// a shared attachments folder sits beside the note folders.
var attachmentDirs = []string{
	"attachments",
	"assets",
	"images",
	filepath.Join("..", "attachments"),
}

// Result describes the outcome for a single reference.
type Result struct {
	Ref    obsidian2tex.ImageRef
	Copied bool
	Err    error // wraps obsidian2tex.ErrImageNotFound on misses
}

// CandidateDirs returns the directories searched for a note's attachments,
// in search order.
func CandidateDirs(sourceDir string) []string {
	dirs := make([]string, 0, len(attachmentDirs))
	for _, d := range attachmentDirs {
		dirs = append(dirs, filepath.Join(sourceDir, d))
	}
	return dirs
}

// Materialize locates each reference under the candidate directories and
// copies the first hit into figuresDir, under the reference's sanitized
// FileName. Misses are reported per reference and never abort the batch:
// a figure pointing at an uncopied file is still valid LaTeX to fix later.
func Materialize(refs []obsidian2tex.ImageRef, sourceDir, figuresDir string) ([]Result, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(figuresDir, fileutil.DirPermissions); err != nil {
		return nil, fmt.Errorf("creating figures directory: %w", err)
	}

	dirs := CandidateDirs(sourceDir)
	results := make([]Result, 0, len(refs))
	copied := make(map[string]bool) // dedupe by destination name

	for _, ref := range refs {
		if copied[ref.FileName] {
			results = append(results, Result{Ref: ref, Copied: true})
			continue
		}

		src := locate(dirs, sourceDir, ref.RawTarget)
		if src == "" {
			results = append(results, Result{
				Ref: ref,
				Err: fmt.Errorf("%w: %s (searched %d directories)", obsidian2tex.ErrImageNotFound, ref.RawTarget, len(dirs)+1),
			})
			continue
		}

		ref.ResolvedPath = src
		dst := filepath.Join(figuresDir, ref.FileName)
		if err := copyFile(src, dst); err != nil {
			results = append(results, Result{Ref: ref, Err: err})
			continue
		}

		copied[ref.FileName] = true
		results = append(results, Result{Ref: ref, Copied: true})
	}

	return results, nil
}

// locate searches for the target: first as written relative to the note,
// then by basename in each candidate attachment directory.
func locate(dirs []string, sourceDir, rawTarget string) string {
	direct := filepath.Join(sourceDir, filepath.FromSlash(rawTarget))
	if fileutil.FileExists(direct) {
		return direct
	}

	base := filepath.Base(filepath.FromSlash(rawTarget))
	for _, dir := range dirs {
		candidate := filepath.Join(dir, base)
		if fileutil.FileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// copyFile copies src to dst, replacing any existing file.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src) // #nosec G304 -- located under the vault
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	if err := os.WriteFile(dst, data, fileutil.FilePermissions); err != nil {
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	return nil
}
