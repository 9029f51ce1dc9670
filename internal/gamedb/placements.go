package gamedb

import (
	"context"
	"fmt"
	"time"
)

// Placement is one recorded library placement.
type Placement struct {
	ID        int64
	RunID     string
	GameKey   string
	FinalPath string
	Version   int
	Source    string
	CreatedAt time.Time
}

// RecordPlacement appends a placement to the history.
func (s *Store) RecordPlacement(ctx context.Context, runID, gameKey, finalPath string, version int, source string) error {
	ctx = ensureContext(ctx)
	err := s.execWithRetry(ctx,
		`INSERT INTO placements (run_id, game_key, final_path, version, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, gameKey, finalPath, version, source, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("record placement for %q: %w", gameKey, err)
	}
	return nil
}

// History returns the most recent placements, newest first. A limit of zero
// or less returns everything.
func (s *Store) History(ctx context.Context, limit int) ([]Placement, error) {
	ctx = ensureContext(ctx)

	query := `SELECT id, run_id, game_key, final_path, version, source, created_at
		  FROM placements ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query placements: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var placements []Placement
	for rows.Next() {
		var p Placement
		var created string
		if err := rows.Scan(&p.ID, &p.RunID, &p.GameKey, &p.FinalPath, &p.Version, &p.Source, &created); err != nil {
			return nil, fmt.Errorf("scan placement: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339, created); parseErr == nil {
			p.CreatedAt = ts
		}
		placements = append(placements, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate placements: %w", err)
	}
	return placements, nil
}
