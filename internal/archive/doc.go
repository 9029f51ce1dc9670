// Package archive unpacks game archives into temporary directories for the
// organizer. Source archives are read-only; extraction is always into a fresh
// temp dir that the caller cleans up after the game has been placed.
package archive
