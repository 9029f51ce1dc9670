package config

import (
	"romshelf/internal/diskfiles"
	"romshelf/internal/pathtemplate"
)

const (
	defaultSourceDir  = "~/gamebase/archives"
	defaultLibraryDir = "~/gamebase/library"
	defaultLogDir     = "~/.local/share/romshelf/logs"
	defaultGameDBPath = "~/.local/share/romshelf/gamedb.sqlite"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SourceDir:  defaultSourceDir,
			LibraryDir: defaultLibraryDir,
			LogDir:     defaultLogDir,
		},
		Organize: Organize{
			Template:       pathtemplate.Default,
			DiskExtensions: append([]string{}, diskfiles.DefaultExtensions...),
		},
		GameDB: GameDB{
			Enabled: false,
			Path:    defaultGameDBPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
