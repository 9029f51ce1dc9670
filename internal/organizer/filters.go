package organizer

import (
	"strings"

	"romshelf/internal/config"
	"romshelf/internal/metadata"
)

// languageIncluded applies the english_only filter. Games whose language
// mentions English pass; with include_no_text the "(No Text)" default passes
// too. With english_only off everything passes.
func languageIncluded(language string, org config.Organize) bool {
	if !org.EnglishOnly {
		return true
	}
	if strings.Contains(strings.ToLower(language), "english") {
		return true
	}
	return org.IncludeNoText && strings.EqualFold(strings.TrimSpace(language), metadata.DefaultLanguage)
}

// collapsePublisher trims a publisher credit at the first separator, so
// "Ocean / Imagine" collapses to "Ocean" instead of producing a joined
// directory name.
func collapsePublisher(value string) string {
	if idx := strings.IndexAny(value, "/\\"); idx >= 0 {
		value = value[:idx]
	}
	return strings.TrimSpace(value)
}
