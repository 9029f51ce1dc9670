// Package services defines the sentinel error taxonomy shared across stages.
//
// Errors are tagged with a marker (validation, configuration, transient)
// via Wrap so callers can classify failures without string
// matching. Configuration errors are the only fatal class: a bad template or
// unusable destination aborts the batch before any game is processed, while
// per-game failures are collected as events and the batch continues.
package services
