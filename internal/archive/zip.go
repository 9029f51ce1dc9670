package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extraction is one archive unpacked into a temporary directory. Cleanup
// removes the directory; callers defer it as soon as extraction succeeds.
type Extraction struct {
	Root         string
	PayloadFiles []string
}

// ExtractZip unpacks the archive at zipPath into a fresh temporary directory
// and enumerates the extracted files in sorted order. Source archives are
// never mutated. Entries that would escape the extraction root are rejected.
func ExtractZip(zipPath string) (*Extraction, func(), error) {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open archive %s: %w", filepath.Base(zipPath), err)
	}
	defer reader.Close()

	root, err := os.MkdirTemp("", "romshelf-game-")
	if err != nil {
		return nil, nil, fmt.Errorf("create extraction dir: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(root) }

	var payload []string
	for _, entry := range reader.File {
		target, err := secureJoin(root, entry.Name)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("create dir %s: %w", entry.Name, err)
			}
			continue
		}
		if err := extractEntry(entry, target); err != nil {
			cleanup()
			return nil, nil, err
		}
		payload = append(payload, target)
	}

	// zip central directories are not guaranteed sorted; the payload order
	// feeds deterministic downstream planning.
	sort.Strings(payload)

	return &Extraction{Root: root, PayloadFiles: payload}, cleanup, nil
}

func extractEntry(entry *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", entry.Name, err)
	}
	in, err := entry.Open()
	if err != nil {
		return fmt.Errorf("open entry %s: %w", entry.Name, err)
	}
	defer in.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", entry.Name, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("extract %s: %w", entry.Name, err)
	}
	return out.Close()
}

func secureJoin(root, name string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || cleaned == ".." {
		return "", fmt.Errorf("archive entry %q escapes extraction root", name)
	}
	return filepath.Join(root, cleaned), nil
}
