// Package textutil sanitizes raw metadata text into filesystem-safe path
// segments.
//
// Sanitization is pure and idempotent: path separators become dashes so
// multi-valued fields keep their structure, characters that are illegal in
// portable directory names are removed, and a fixed fallback guarantees the
// result is never empty. Every value that ends up in a destination path goes
// through SanitizeSegment exactly once per template segment.
package textutil
