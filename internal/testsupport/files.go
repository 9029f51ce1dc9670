package testsupport

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteZip builds a zip archive at path from a name-to-content map.
func WriteZip(t testing.TB, path string, entries map[string]string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer file.Close()

	writer := zip.NewWriter(file)
	for name, content := range entries {
		entry, err := writer.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("finalize zip %s: %v", path, err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("close zip %s: %v", path, err)
	}
}

// Descriptor renders a VERSION.NFO document from field lines. Lines are
// emitted inside the GAME INFO section in map-independent sorted order after
// Name and Genre, which lead.
func Descriptor(name, genre string, extra map[string]string) string {
	var b strings.Builder
	b.WriteString("*** GAME INFO ***\n")
	fmt.Fprintf(&b, "Name:      %s\n", name)
	fmt.Fprintf(&b, "Genre:     %s\n", genre)
	keys := make([]string, 0, len(extra))
	for key := range extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(&b, "%s: %s\n", key, extra[key])
	}
	b.WriteString("\n*** GAME HISTORY ***\nSome history text.\n")
	return b.String()
}
