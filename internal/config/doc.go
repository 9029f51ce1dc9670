// Package config loads, normalizes, and validates the TOML configuration.
//
// Load resolves the file (explicit flag, ~/.config/romshelf/config.toml, or a
// project-local romshelf.toml), decodes it over repository defaults, expands
// ~ in path fields, and validates everything — including the path template,
// so placeholder typos surface before any game is processed.
package config
