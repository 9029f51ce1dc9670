package testsupport

import (
	"path/filepath"
	"testing"

	"romshelf/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.SourceDir = filepath.Join(base, "source")
	cfg.Paths.LibraryDir = filepath.Join(base, "library")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.GameDB.Path = filepath.Join(base, "gamedb.sqlite")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithTemplate overrides the path template on the test config.
func WithTemplate(template string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.Template = template
	}
}

// WithGameDB enables the metadata database on the test config.
func WithGameDB() ConfigOption {
	return func(cfg *config.Config) {
		cfg.GameDB.Enabled = true
	}
}
