package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"healthai/internal/models"
)

// AddLookupCounts upserts a batch of lookup counter deltas in one transaction.
func (d *DB) AddLookupCounts(ctx context.Context, deltas map[models.LookupKey]int64) error {
	if len(deltas) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for k, n := range deltas {
		if k.Operation == "" || k.Outcome == "" || n <= 0 {
			return fmt.Errorf("%w: %+v += %d", ErrInvalidStat, k, n)
		}
		batch.Queue(`
			INSERT INTO lookup_stats (operation, key, outcome, count, last_seen_at)
			VALUES ($1, $2, $3, $4, NOW())
			ON CONFLICT (operation, key, outcome) DO UPDATE
			SET count = lookup_stats.count + EXCLUDED.count, last_seen_at = NOW()
		`, k.Operation, k.Key, k.Outcome, n)
	}

	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert lookup stats: %w", err)
	}
	return tx.Commit(ctx)
}

// GetAllLookupStats returns all lookup counters for metrics export.
func (d *DB) GetAllLookupStats(ctx context.Context) ([]models.LookupStat, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT operation, key, outcome, count, last_seen_at
		FROM lookup_stats
		ORDER BY operation, key, outcome
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.LookupStat
	for rows.Next() {
		var s models.LookupStat
		if err := rows.Scan(&s.Operation, &s.Key, &s.Outcome, &s.Count, &s.LastSeenAt); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// ResetLookupStats deletes all lookup counters.
func (d *DB) ResetLookupStats(ctx context.Context) error {
	_, err := d.Pool.Exec(ctx, `DELETE FROM lookup_stats`)
	return err
}
