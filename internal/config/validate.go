package config

import (
	"errors"
	"fmt"

	"romshelf/internal/diskfiles"
	"romshelf/internal/pathtemplate"
)

// Validate ensures the configuration is usable. Template validation runs
// here, once, before any game is processed: an unknown placeholder is a
// global configuration defect that fails the whole batch up front.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateOrganize(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.SourceDir == "" {
		return errors.New("paths.source_dir must be set")
	}
	if c.Paths.LibraryDir == "" {
		return errors.New("paths.library_dir must be set")
	}
	if c.Paths.SourceDir == c.Paths.LibraryDir {
		return errors.New("paths.source_dir and paths.library_dir must differ")
	}
	return nil
}

func (c *Config) validateOrganize() error {
	if err := pathtemplate.Check(c.Organize.Template); err != nil {
		return fmt.Errorf("organize.template: %w", err)
	}
	if len(diskfiles.ExtensionSet(c.Organize.DiskExtensions)) == 0 {
		return errors.New("organize.disk_extensions must contain at least one extension")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
