package diskfiles

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions is the recognized multi-disk media extension set for
// Commodore-era images, lowercase without dots.
var DefaultExtensions = []string{"d64", "d71", "d81", "g64", "x64", "t64", "tap", "prg", "p00", "lnx"}

// ExtensionSet normalizes a list of extensions into a lookup set. Entries are
// lowercased and stripped of a leading dot; empty entries are dropped.
func ExtensionSet(extensions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			continue
		}
		set[ext] = struct{}{}
	}
	return set
}

// Rename is one entry of a rename plan: the payload file at OldPath should be
// renamed, in place, to NewName.
type Rename struct {
	OldPath string
	NewName string
}

// PlanRenames produces the deterministic renaming scheme for a game's
// multi-disk media: recognized files sorted case-insensitively by original
// name and assigned sequential disk indices as "{base}_d{N}.{ext}", original
// extension preserved (lowercased). Files outside the recognized set are not
// part of the plan and pass through unchanged. The plan only describes
// renames; applying it is the caller's job.
func PlanRenames(payloadFiles []string, baseName string, extensions map[string]struct{}) []Rename {
	recognized := make([]string, 0, len(payloadFiles))
	for _, path := range payloadFiles {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if _, ok := extensions[ext]; ok {
			recognized = append(recognized, path)
		}
	}

	// Case-insensitive ordering keeps the plan independent of filesystem
	// enumeration order; the original name breaks ties.
	sort.SliceStable(recognized, func(i, j int) bool {
		a, b := strings.ToLower(recognized[i]), strings.ToLower(recognized[j])
		if a != b {
			return a < b
		}
		return recognized[i] < recognized[j]
	})

	plan := make([]Rename, 0, len(recognized))
	for index, path := range recognized {
		ext := strings.ToLower(filepath.Ext(path))
		plan = append(plan, Rename{
			OldPath: path,
			NewName: fmt.Sprintf("%s_d%d%s", baseName, index+1, ext),
		})
	}
	return plan
}
