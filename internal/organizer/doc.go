// Package organizer drives a batch run over the source archives.
//
// For every zip in the source directory it extracts the payload, resolves
// metadata (database, descriptor, then filename), applies the configured
// filters, expands the path template, settles destination collisions with
// version suffixes, renames multi-disk media, and copies or moves the game
// into the library. Each run holds an advisory lock on the library, records
// its placements in the optional game database, and appends an audit trail to
// organization_log.txt. Plan performs the same pipeline without touching the
// library.
package organizer
