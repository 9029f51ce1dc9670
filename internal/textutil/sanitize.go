package textutil

import "strings"

// SegmentFallback is substituted when sanitization would otherwise produce an
// empty path segment.
const SegmentFallback = "Unknown"

// segmentReplacer maps path separators to dashes so multi-valued fields like
// "English \ Italian" keep their structure, and removes the remaining
// characters that are illegal in portable path segments. Square brackets are
// removed as well; publisher values in descriptor files frequently carry them.
var segmentReplacer = strings.NewReplacer(
	"\\", "-",
	"/", "-",
	"<", "",
	">", "",
	":", "",
	"\"", "",
	"|", "",
	"?", "",
	"*", "",
	"[", "",
	"]", "",
)

// SanitizeSegment converts raw field text into a filesystem-safe path segment.
// Separators become dashes, illegal characters are dropped, whitespace runs
// collapse to a single space, and leading/trailing spaces and dots are
// trimmed. The result is never empty; SegmentFallback stands in when nothing
// survives.
func SanitizeSegment(value string) string {
	cleaned := segmentReplacer.Replace(value)
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	cleaned = strings.Trim(cleaned, ". ")
	if cleaned == "" {
		return SegmentFallback
	}
	return cleaned
}
