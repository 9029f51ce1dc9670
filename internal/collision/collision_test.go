package collision_test

import (
	"os"
	"path/filepath"
	"testing"

	"romshelf/internal/collision"
)

func TestFinalizeNoCollision(t *testing.T) {
	tree := collision.NewTree(t.TempDir())
	rel := filepath.Join("Action", "Shooter", "English", "Galaxian")
	final, version := collision.Finalize(tree, rel)
	if final != rel {
		t.Fatalf("final = %q, want %q", final, rel)
	}
	if version != 1 {
		t.Fatalf("version = %d, want 1", version)
	}
}

func TestFinalizeVersionsAgainstDisk(t *testing.T) {
	root := t.TempDir()
	rel := filepath.Join("Action", "Shooter", "English", "Galaxian")
	if err := os.MkdirAll(filepath.Join(root, rel), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, rel+" [v2]"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	tree := collision.NewTree(root)
	final, version := collision.Finalize(tree, rel)
	if want := rel + " [v3]"; final != want {
		t.Fatalf("final = %q, want %q", final, want)
	}
	if version != 3 {
		t.Fatalf("version = %d, want 3", version)
	}
}

func TestFinalizeVersionsAgainstRecordedPlacements(t *testing.T) {
	tree := collision.NewTree(t.TempDir())
	rel := filepath.Join("Puzzle", "Other", "(No Text)", "Tetris")

	final, version := collision.Finalize(tree, rel)
	if final != rel || version != 1 {
		t.Fatalf("first placement: %q v%d", final, version)
	}
	tree.Record(final)

	final, version = collision.Finalize(tree, rel)
	if want := rel + " [v2]"; final != want || version != 2 {
		t.Fatalf("second placement: %q v%d, want %q v2", final, version, want)
	}
	tree.Record(final)

	final, version = collision.Finalize(tree, rel)
	if want := rel + " [v3]"; final != want || version != 3 {
		t.Fatalf("third placement: %q v%d, want %q v3", final, version, want)
	}
}

func TestFinalizeSmallestFreeIntegerWins(t *testing.T) {
	tree := collision.NewTree(t.TempDir())
	tree.Record("Galaxian")
	tree.Record("Galaxian [v3]")

	final, version := collision.Finalize(tree, "Galaxian")
	if final != "Galaxian [v2]" || version != 2 {
		t.Fatalf("final = %q v%d, want gap filled at v2", final, version)
	}
}

func TestFinalizeSuffixOnLeafOnly(t *testing.T) {
	tree := collision.NewTree(t.TempDir())
	rel := filepath.Join("Adventure", "Text", "English", "Zork")
	tree.Record(rel)

	final, _ := collision.Finalize(tree, rel)
	if want := filepath.Join("Adventure", "Text", "English", "Zork [v2]"); final != want {
		t.Fatalf("final = %q, want %q", final, want)
	}
}
