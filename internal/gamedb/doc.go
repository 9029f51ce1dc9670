// Package gamedb stores resolved game metadata and placement history in a
// local SQLite database.
//
// The games table acts as a metadata cache keyed by archive name; its Lookup
// method plugs directly into the metadata resolver as the highest-priority
// source. The placements table records where each game landed on every run,
// which backs the history command.
package gamedb
