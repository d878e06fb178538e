package repository

import (
	"context"
	"time"

	"github.com/TavstalDev/MineCoreLib/internal/domain"
)

// SnapshotListEntry is one row of a snapshot listing, without the payloads
type SnapshotListEntry struct {
	Name      string    `json:"name"`
	ItemCount int       `json:"item_count"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot defines the interface for snapshot persistence
type Snapshot interface {
	// Save inserts or replaces the snapshot stored under snap.Name
	Save(ctx context.Context, snap *domain.Snapshot) error
	// Get retrieves a snapshot by name (returns nil, nil if not found)
	Get(ctx context.Context, name string) (*domain.Snapshot, error)
	// List returns all stored snapshots, newest first, without payloads
	List(ctx context.Context) ([]SnapshotListEntry, error)
	// Delete removes a snapshot by name (returns domain.ErrSnapshotNotFound if absent)
	Delete(ctx context.Context, name string) error
}
