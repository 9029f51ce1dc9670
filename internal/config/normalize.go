package config

import (
	"strings"

	"romshelf/internal/diskfiles"
	"romshelf/internal/pathtemplate"
)

// normalize expands paths, fills empty fields with defaults, and trims
// whitespace so validation sees canonical values.
func (c *Config) normalize() error {
	var err error
	if c.Paths.SourceDir, err = expandPath(strings.TrimSpace(c.Paths.SourceDir)); err != nil {
		return err
	}
	if c.Paths.LibraryDir, err = expandPath(strings.TrimSpace(c.Paths.LibraryDir)); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return err
	}
	if c.GameDB.Path, err = expandPath(strings.TrimSpace(c.GameDB.Path)); err != nil {
		return err
	}

	c.Organize.Template = strings.TrimSpace(c.Organize.Template)
	if c.Organize.Template == "" {
		c.Organize.Template = pathtemplate.Default
	}
	if len(c.Organize.DiskExtensions) == 0 {
		c.Organize.DiskExtensions = append([]string{}, diskfiles.DefaultExtensions...)
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
