package gamedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"romshelf/internal/metadata"
)

// fieldColumns lists the games table columns in insert order, paired with the
// metadata field they carry.
var fieldColumns = []struct {
	column string
	field  metadata.Field
}{
	{"name", metadata.FieldName},
	{"primary_genre", metadata.FieldPrimaryGenre},
	{"secondary_genre", metadata.FieldSecondaryGenre},
	{"language", metadata.FieldLanguage},
	{"published_year", metadata.FieldPublishedYear},
	{"publisher", metadata.FieldPublisher},
	{"developer", metadata.FieldDeveloper},
	{"players", metadata.FieldPlayers},
	{"control", metadata.FieldControl},
	{"pal_ntsc", metadata.FieldPalNTSC},
	{"unique_id", metadata.FieldUniqueID},
	{"coding", metadata.FieldCoding},
	{"graphics", metadata.FieldGraphics},
	{"music", metadata.FieldMusic},
	{"comment", metadata.FieldComment},
}

// Lookup fetches cached metadata for a game key. The bool reports whether a
// row existed. Lookup satisfies metadata.LookupFunc.
func (s *Store) Lookup(ctx context.Context, key string) (metadata.Fields, bool, error) {
	ctx = ensureContext(ctx)

	query := "SELECT "
	for i, fc := range fieldColumns {
		if i > 0 {
			query += ", "
		}
		query += fc.column
	}
	query += " FROM games WHERE game_key = ?"

	values := make([]string, len(fieldColumns))
	dest := make([]any, len(fieldColumns))
	for i := range values {
		dest[i] = &values[i]
	}

	err := s.db.QueryRowContext(ctx, query, key).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("lookup game %q: %w", key, err)
	}

	fields := make(metadata.Fields, len(fieldColumns))
	for i, fc := range fieldColumns {
		if values[i] != "" {
			fields[fc.field] = values[i]
		}
	}
	return fields, true, nil
}

// Put stores or replaces the metadata cached for a game key.
func (s *Store) Put(ctx context.Context, key string, fields metadata.Fields) error {
	ctx = ensureContext(ctx)

	query := "INSERT OR REPLACE INTO games (game_key"
	for _, fc := range fieldColumns {
		query += ", " + fc.column
	}
	query += ", updated_at) VALUES (?"
	for range fieldColumns {
		query += ", ?"
	}
	query += ", ?)"

	args := make([]any, 0, len(fieldColumns)+2)
	args = append(args, key)
	for _, fc := range fieldColumns {
		args = append(args, fields[fc.field])
	}
	args = append(args, time.Now().UTC().Format(time.RFC3339))

	if err := s.execWithRetry(ctx, query, args...); err != nil {
		return fmt.Errorf("store game %q: %w", key, err)
	}
	return nil
}
