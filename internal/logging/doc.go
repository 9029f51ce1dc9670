// Package logging wraps log/slog with the handlers and attribute helpers the
// rest of the repository uses.
//
// Two output formats exist: a console handler that renders timestamped
// component-prefixed key=value lines, and a JSON handler for machine
// consumption. Components obtain loggers via NewComponentLogger so every line
// identifies its origin uniformly.
package logging
