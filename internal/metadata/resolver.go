package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"romshelf/internal/logging"
)

// Source identifies which strategy produced a resolution.
type Source string

const (
	SourceDatabase   Source = "database"
	SourceDescriptor Source = "descriptor"
	SourceFilename   Source = "filename"
)

// ResolutionError reports a game for which no strategy yielded usable fields.
// The caller records it and continues with the rest of the batch.
type ResolutionError struct {
	Key    string
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve metadata for %s: %s", e.Key, e.Reason)
}

// LookupFunc is the structured database collaborator: given an archive key it
// returns a field mapping and whether the record was populated.
type LookupFunc func(ctx context.Context, key string) (Fields, bool, error)

// Resolution carries the outcome of a successful resolve: the populated
// record, the winning source, the descriptor path when one was parsed, and a
// non-fatal warning when the descriptor was present but unusable.
type Resolution struct {
	Record         *Record
	Source         Source
	DescriptorPath string
	Warning        error
}

// Resolver merges metadata sources into one normalized field set per game.
// Strategies are tried in precedence order and the first populated result
// wins wholesale; the filename fallback covers only the name field.
type Resolver struct {
	lookup LookupFunc
	logger *slog.Logger
}

// NewResolver constructs a resolver. lookup may be nil when no metadata
// database is configured.
func NewResolver(lookup LookupFunc, logger *slog.Logger) *Resolver {
	return &Resolver{lookup: lookup, logger: logging.NewComponentLogger(logger, "resolver")}
}

// Resolve determines the canonical field set for one extracted archive.
// Resolving the same inputs twice yields byte-identical field values.
func (r *Resolver) Resolve(ctx context.Context, key, extractedRoot string) (Resolution, error) {
	if fields, ok := r.lookupFields(ctx, key); ok {
		return Resolution{
			Record: &Record{Key: key, Fields: fields.Clone()},
			Source: SourceDatabase,
		}, nil
	}

	var warning error
	var descriptorPath string
	if extractedRoot != "" {
		if path, ok := FindDescriptor(extractedRoot); ok {
			descriptorPath = path
			fields, err := ParseDescriptor(path)
			if err == nil {
				return Resolution{
					Record:         &Record{Key: key, Fields: fields},
					Source:         SourceDescriptor,
					DescriptorPath: path,
				}, nil
			}
			warning = err
			r.logger.Warn("descriptor unusable, falling back to filename",
				logging.String("key", key),
				logging.Error(err),
			)
		}
	}

	name := nameFromKey(key)
	if name == "" {
		return Resolution{}, &ResolutionError{Key: key, Reason: "no usable fields from any source"}
	}
	fields := Fields{FieldName: name}
	return Resolution{
		Record:         &Record{Key: key, Fields: fields.Clone()},
		Source:         SourceFilename,
		DescriptorPath: descriptorPath,
		Warning:        warning,
	}, nil
}

func (r *Resolver) lookupFields(ctx context.Context, key string) (Fields, bool) {
	if r.lookup == nil {
		return nil, false
	}
	fields, ok, err := r.lookup(ctx, key)
	if err != nil {
		r.logger.Warn("metadata database lookup failed",
			logging.String("key", key),
			logging.Error(err),
		)
		return nil, false
	}
	if !ok || strings.TrimSpace(fields[FieldName]) == "" {
		return nil, false
	}
	return fields, true
}

// nameFromKey derives a best-effort game name from the archive filename.
func nameFromKey(key string) string {
	base := filepath.Base(strings.TrimSpace(key))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
