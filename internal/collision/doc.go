// Package collision guarantees that no two games occupy the same destination
// directory.
//
// A Tree captures the destination state visible to one run: what already
// exists on disk plus what the run has placed so far. Finalize turns a
// proposed relative path into a unique one by appending " [vN]" to the leaf
// segment, and the caller records the result before the next game so the
// uniqueness invariant holds batch-wide.
package collision
