package collision

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Tree tracks the destination directory structure observed during one run.
// It answers "is this relative path already taken?" against both the
// destination filesystem and the placements recorded so far, so two games
// resolving to the same base path within a batch cannot race to the same
// version suffix. A mutex guards the recorded set; the finalize/record pair
// must not interleave across goroutines for overlapping subtrees, which the
// single-threaded batch driver guarantees anyway.
type Tree struct {
	root string

	mu       sync.Mutex
	recorded map[string]struct{}
}

// NewTree observes the destination rooted at root.
func NewTree(root string) *Tree {
	return &Tree{root: root, recorded: make(map[string]struct{})}
}

// Root returns the destination root the tree observes.
func (t *Tree) Root() string {
	return t.root
}

// Contains reports whether rel is occupied, either by a recorded placement
// from this run or by an existing entry on disk.
func (t *Tree) Contains(rel string) bool {
	t.mu.Lock()
	_, ok := t.recorded[rel]
	t.mu.Unlock()
	if ok {
		return true
	}
	_, err := os.Stat(filepath.Join(t.root, rel))
	return err == nil
}

// Record marks rel as occupied for the remainder of the run. Callers record
// every path returned by Finalize before processing the next game.
func (t *Tree) Record(rel string) {
	t.mu.Lock()
	t.recorded[rel] = struct{}{}
	t.mu.Unlock()
}

// Finalize produces a unique relative path for a proposed destination.
// When the proposal is free it is returned with version 1. Otherwise a
// " [vN]" suffix is appended to the leaf segment, N counting up from 2 until
// the first unoccupied candidate; the smallest free integer wins. Versions
// greater than 1 are collisions the caller reports for audit. Finalize
// mutates nothing; recording the result is the caller's job.
func Finalize(tree *Tree, rel string) (string, int) {
	if !tree.Contains(rel) {
		return rel, 1
	}
	dir, leaf := filepath.Split(rel)
	for version := 2; ; version++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s [v%d]", leaf, version))
		if !tree.Contains(candidate) {
			return candidate, version
		}
	}
}
