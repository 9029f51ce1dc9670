package archive_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"romshelf/internal/archive"
)

func writeZip(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create zip: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range entries {
		entry, err := w.Create(name)
		if err != nil {
			t.Fatalf("create entry %s: %v", name, err)
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return path
}

func TestExtractZip(t *testing.T) {
	path := writeZip(t, map[string]string{
		"VERSION.NFO":    "Name: Demo\nGenre: Puzzle\n",
		"disks/demo.d64": "disk image",
	})

	extraction, cleanup, err := archive.ExtractZip(path)
	if err != nil {
		t.Fatalf("ExtractZip: %v", err)
	}
	defer cleanup()

	if len(extraction.PayloadFiles) != 2 {
		t.Fatalf("payload files = %v", extraction.PayloadFiles)
	}
	for _, file := range extraction.PayloadFiles {
		if _, err := os.Stat(file); err != nil {
			t.Errorf("payload file missing: %v", err)
		}
	}
	content, err := os.ReadFile(filepath.Join(extraction.Root, "VERSION.NFO"))
	if err != nil {
		t.Fatalf("read extracted descriptor: %v", err)
	}
	if string(content) != "Name: Demo\nGenre: Puzzle\n" {
		t.Fatalf("descriptor content = %q", content)
	}
}

func TestExtractZipCleanupRemovesRoot(t *testing.T) {
	path := writeZip(t, map[string]string{"file.prg": "x"})
	extraction, cleanup, err := archive.ExtractZip(path)
	if err != nil {
		t.Fatalf("ExtractZip: %v", err)
	}
	cleanup()
	if _, err := os.Stat(extraction.Root); !os.IsNotExist(err) {
		t.Fatalf("extraction root survived cleanup: %v", err)
	}
}

func TestExtractZipRejectsEscapingEntries(t *testing.T) {
	path := writeZip(t, map[string]string{"../evil.txt": "x"})
	if _, _, err := archive.ExtractZip(path); err == nil {
		t.Fatal("expected error for entry escaping the extraction root")
	}
}

func TestExtractZipMissingArchive(t *testing.T) {
	if _, _, err := archive.ExtractZip(filepath.Join(t.TempDir(), "nope.zip")); err == nil {
		t.Fatal("expected error for missing archive")
	}
}
