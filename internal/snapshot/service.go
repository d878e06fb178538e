package snapshot

import (
	"context"
	"fmt"

	"github.com/TavstalDev/MineCoreLib/internal/domain"
	"github.com/TavstalDev/MineCoreLib/internal/item"
	"github.com/TavstalDev/MineCoreLib/internal/logger"
	"github.com/TavstalDev/MineCoreLib/internal/metrics"
	"github.com/TavstalDev/MineCoreLib/internal/repository"
)

// Service defines the snapshot service interface. A snapshot is a named
// loadout of items, persisted in both encodings: the binary blob is the
// source of truth for restore, the YAML document is kept for inspection.
type Service interface {
	// Save encodes the items and stores them under name, replacing any
	// existing snapshot with that name
	Save(ctx context.Context, name string, items []domain.Item) (*domain.Snapshot, []item.Diagnostic, error)

	// Load restores the items of a named snapshot from its binary blob
	Load(ctx context.Context, name string) ([]domain.Item, []item.Diagnostic, error)

	// List returns all stored snapshots, newest first
	List(ctx context.Context) ([]repository.SnapshotListEntry, error)

	// Delete removes a named snapshot
	Delete(ctx context.Context, name string) error
}

type service struct {
	repo  repository.Snapshot
	codec item.Codec
}

// NewService creates a snapshot service backed by the given repository
func NewService(repo repository.Snapshot, codec item.Codec) Service {
	return &service{repo: repo, codec: codec}
}

func (s *service) Save(ctx context.Context, name string, items []domain.Item) (*domain.Snapshot, []item.Diagnostic, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		return nil, nil, fmt.Errorf("%w: snapshot name is required", domain.ErrInvalidInput)
	}

	doc, diags, err := s.codec.SerializeItemListToYAML(items)
	if err != nil {
		return nil, diags, fmt.Errorf("failed to encode snapshot document: %w", err)
	}
	blob, blobDiags, err := s.codec.SerializeItemListToBytes(items)
	if err != nil {
		return nil, diags, fmt.Errorf("failed to encode snapshot blob: %w", err)
	}
	// Both encodings run the same handlers; keep one set of diagnostics.
	if len(diags) == 0 {
		diags = blobDiags
	}

	snap := &domain.Snapshot{
		Name:      name,
		YAML:      doc,
		Blob:      blob,
		ItemCount: len(items),
	}
	if err := s.repo.Save(ctx, snap); err != nil {
		return nil, diags, err
	}

	metrics.SnapshotsSaved.Inc()
	log.Info("Snapshot saved", "name", name, "items", snap.ItemCount, "diagnostics", len(diags))
	return snap, diags, nil
}

func (s *service) Load(ctx context.Context, name string) ([]domain.Item, []item.Diagnostic, error) {
	log := logger.FromContext(ctx)

	snap, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	if snap == nil {
		return nil, nil, domain.ErrSnapshotNotFound
	}

	items, diags, err := s.codec.DeserializeItemListFromBytes(snap.Blob)
	if err != nil {
		return nil, diags, fmt.Errorf("failed to decode snapshot blob: %w", err)
	}

	metrics.SnapshotsLoaded.Inc()
	log.Info("Snapshot loaded", "name", name, "items", len(items), "diagnostics", len(diags))
	return items, diags, nil
}

func (s *service) List(ctx context.Context) ([]repository.SnapshotListEntry, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, name string) error {
	return s.repo.Delete(ctx, name)
}
