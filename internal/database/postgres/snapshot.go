package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TavstalDev/MineCoreLib/internal/domain"
	"github.com/TavstalDev/MineCoreLib/internal/repository"
)

// SnapshotRepository implements repository.Snapshot
type SnapshotRepository struct {
	db *pgxpool.Pool
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(db *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save inserts or replaces the snapshot stored under snap.Name
func (r *SnapshotRepository) Save(ctx context.Context, snap *domain.Snapshot) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO snapshots (snapshot_name, yaml_doc, blob, item_count)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (snapshot_name) DO UPDATE SET
			yaml_doc = EXCLUDED.yaml_doc,
			blob = EXCLUDED.blob,
			item_count = EXCLUDED.item_count,
			updated_at = NOW()`,
		snap.Name, snap.YAML, snap.Blob, snap.ItemCount,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Get retrieves a snapshot by name (returns nil, nil if not found)
func (r *SnapshotRepository) Get(ctx context.Context, name string) (*domain.Snapshot, error) {
	var snap domain.Snapshot
	err := r.db.QueryRow(ctx, `
		SELECT snapshot_name, yaml_doc, blob, item_count
		FROM snapshots
		WHERE snapshot_name = $1`,
		name,
	).Scan(&snap.Name, &snap.YAML, &snap.Blob, &snap.ItemCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return &snap, nil
}

// List returns all stored snapshots, newest first, without payloads
func (r *SnapshotRepository) List(ctx context.Context) ([]repository.SnapshotListEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT snapshot_name, item_count, updated_at
		FROM snapshots
		ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var entries []repository.SnapshotListEntry
	for rows.Next() {
		var entry repository.SnapshotListEntry
		if err := rows.Scan(&entry.Name, &entry.ItemCount, &entry.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshot rows: %w", err)
	}
	return entries, nil
}

// Delete removes a snapshot by name
func (r *SnapshotRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM snapshots WHERE snapshot_name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSnapshotNotFound
	}
	return nil
}
