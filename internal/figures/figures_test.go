package figures

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	obsidian2tex "github.com/alnah/go-obsidian2tex"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("png-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCandidateDirs(t *testing.T) {
	t.Parallel()

	dirs := CandidateDirs(filepath.Join("vault", "notes"))
	want := []string{
		filepath.Join("vault", "notes", "attachments"),
		filepath.Join("vault", "notes", "assets"),
		filepath.Join("vault", "notes", "images"),
		filepath.Join("vault", "attachments"),
	}

	if len(dirs) != len(want) {
		t.Fatalf("CandidateDirs() = %v, want %v", dirs, want)
	}
	for i := range dirs {
		if dirs[i] != want[i] {
			t.Errorf("dirs[%d] = %q, want %q", i, dirs[i], want[i])
		}
	}
}

func TestMaterializeEmpty(t *testing.T) {
	t.Parallel()

	results, err := Materialize(nil, t.TempDir(), filepath.Join(t.TempDir(), "figures"))
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if results != nil {
		t.Errorf("Materialize() = %v, want nil", results)
	}
}

func TestMaterializeDirectTarget(t *testing.T) {
	t.Parallel()

	sourceDir := t.TempDir()
	figuresDir := filepath.Join(t.TempDir(), "figures")
	writeFile(t, filepath.Join(sourceDir, "img.png"))

	refs := []obsidian2tex.ImageRef{{RawTarget: "img.png", FileName: "img.png"}}
	results, err := Materialize(refs, sourceDir, figuresDir)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if len(results) != 1 || !results[0].Copied || results[0].Err != nil {
		t.Fatalf("results = %+v, want one copied entry", results)
	}

	if _, err := os.Stat(filepath.Join(figuresDir, "img.png")); err != nil {
		t.Errorf("copied file missing: %v", err)
	}
}

func TestMaterializeAttachmentLookup(t *testing.T) {
	t.Parallel()

	sourceDir := t.TempDir()
	figuresDir := filepath.Join(t.TempDir(), "figures")
	writeFile(t, filepath.Join(sourceDir, "attachments", "chart.png"))

	refs := []obsidian2tex.ImageRef{{RawTarget: "chart.png", FileName: "chart.png"}}
	results, err := Materialize(refs, sourceDir, figuresDir)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if !results[0].Copied {
		t.Errorf("result = %+v, want copied from attachments dir", results[0])
	}
}

func TestMaterializeParentAttachments(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	sourceDir := filepath.Join(vault, "notes")
	writeFile(t, filepath.Join(vault, "attachments", "shared.png"))
	if err := os.MkdirAll(sourceDir, 0o750); err != nil {
		t.Fatal(err)
	}

	refs := []obsidian2tex.ImageRef{{RawTarget: "shared.png", FileName: "shared.png"}}
	results, err := Materialize(refs, sourceDir, filepath.Join(t.TempDir(), "figures"))
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if !results[0].Copied {
		t.Errorf("result = %+v, want copied from parent attachments", results[0])
	}
}

func TestMaterializeMissingImage(t *testing.T) {
	t.Parallel()

	refs := []obsidian2tex.ImageRef{{RawTarget: "ghost.png", FileName: "ghost.png"}}
	results, err := Materialize(refs, t.TempDir(), filepath.Join(t.TempDir(), "figures"))
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if results[0].Copied {
		t.Error("result Copied = true, want false")
	}
	if !errors.Is(results[0].Err, obsidian2tex.ErrImageNotFound) {
		t.Errorf("result Err = %v, want ErrImageNotFound", results[0].Err)
	}
}

func TestMaterializeMissDoesNotAbortBatch(t *testing.T) {
	t.Parallel()

	sourceDir := t.TempDir()
	writeFile(t, filepath.Join(sourceDir, "found.png"))

	refs := []obsidian2tex.ImageRef{
		{RawTarget: "ghost.png", FileName: "ghost.png"},
		{RawTarget: "found.png", FileName: "found.png"},
	}
	results, err := Materialize(refs, sourceDir, filepath.Join(t.TempDir(), "figures"))
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %+v, want two entries", results)
	}
	if results[0].Err == nil || !results[1].Copied {
		t.Errorf("results = %+v, want miss then hit", results)
	}
}

func TestMaterializeDedupesByFileName(t *testing.T) {
	t.Parallel()

	sourceDir := t.TempDir()
	writeFile(t, filepath.Join(sourceDir, "dup.png"))

	refs := []obsidian2tex.ImageRef{
		{RawTarget: "dup.png", FileName: "dup.png"},
		{RawTarget: "dup.png", FileName: "dup.png"},
	}
	results, err := Materialize(refs, sourceDir, filepath.Join(t.TempDir(), "figures"))
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	for i, r := range results {
		if !r.Copied || r.Err != nil {
			t.Errorf("results[%d] = %+v, want copied", i, r)
		}
	}
}

func TestMaterializeSubdirectoryTarget(t *testing.T) {
	t.Parallel()

	sourceDir := t.TempDir()
	figuresDir := filepath.Join(t.TempDir(), "figures")
	writeFile(t, filepath.Join(sourceDir, "media", "deep", "pic.png"))

	refs := []obsidian2tex.ImageRef{{RawTarget: "media/deep/pic.png", FileName: "pic.png"}}
	results, err := Materialize(refs, sourceDir, figuresDir)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	if !results[0].Copied {
		t.Errorf("result = %+v, want copied via direct relative path", results[0])
	}
	if _, err := os.Stat(filepath.Join(figuresDir, "pic.png")); err != nil {
		t.Errorf("copied file missing: %v", err)
	}
}
