package pathtemplate

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"romshelf/internal/metadata"
	"romshelf/internal/textutil"
)

// Default is used when no template is configured.
const Default = "{primary_genre}/{secondary_genre}/{language}/{name}"

var placeholderPattern = regexp.MustCompile(`\{([^{}/]*)\}`)

// ValidationError reports unknown placeholders in a template. It is a global
// configuration defect: nothing is processed while it stands.
type ValidationError struct {
	Template string
	Unknown  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("template %q: unknown placeholders %s (valid fields: %s)",
		e.Template, strings.Join(e.Unknown, ", "), strings.Join(fieldNames(), ", "))
}

// ErrEmptyExpansion reports a template that expanded to zero path segments
// for a particular game's fields.
type ErrEmptyExpansion struct {
	Template string
}

func (e *ErrEmptyExpansion) Error() string {
	return fmt.Sprintf("template %q expanded to an empty path", e.Template)
}

// Validate returns the literal text of every unknown placeholder in the
// template, in order of appearance without duplicates. An empty result means
// the template is valid. Run once at startup, never per game.
func Validate(template string) []string {
	var unknown []string
	seen := map[string]struct{}{}
	for _, match := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		if metadata.Known(match[1]) {
			continue
		}
		if _, dup := seen[match[0]]; dup {
			continue
		}
		seen[match[0]] = struct{}{}
		unknown = append(unknown, match[0])
	}
	return unknown
}

// Check wraps Validate into an error for configuration plumbing.
func Check(template string) error {
	if unknown := Validate(template); len(unknown) > 0 {
		return &ValidationError{Template: template, Unknown: unknown}
	}
	return nil
}

// Expand substitutes field values into the template and returns the relative
// destination path. The template is split on its literal slashes before
// substitution and each placeholder value is sanitized per segment, so a
// separator inside a field value can never create an extra path level.
// Empty segments are dropped; a fully empty expansion is an error.
func Expand(template string, fields metadata.Fields) (string, error) {
	segments := make([]string, 0, strings.Count(template, "/")+1)
	for _, raw := range strings.Split(template, "/") {
		segment := expandSegment(raw, fields)
		if segment == "" {
			continue
		}
		segments = append(segments, segment)
	}
	if len(segments) == 0 {
		return "", &ErrEmptyExpansion{Template: template}
	}
	return filepath.Join(segments...), nil
}

// EndsWithName reports whether the template's final segment is exactly the
// name placeholder, in which case the expansion already is the game directory
// and no extra name segment should be appended.
func EndsWithName(template string) bool {
	trimmed := strings.ReplaceAll(strings.TrimSpace(template), " ", "")
	return strings.HasSuffix(trimmed, "{"+string(metadata.FieldName)+"}")
}

func expandSegment(raw string, fields metadata.Fields) string {
	expanded := placeholderPattern.ReplaceAllStringFunc(raw, func(match string) string {
		name := match[1 : len(match)-1]
		return textutil.SanitizeSegment(fields.Get(metadata.Field(name)))
	})
	return strings.TrimSpace(expanded)
}

func fieldNames() []string {
	fields := metadata.AllFields()
	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = string(field)
	}
	return names
}
