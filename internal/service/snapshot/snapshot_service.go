package snapshot

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/domain/models"
)

// EntrySource provides the current audit trail contents.
type EntrySource interface {
	ReadEntries(ctx context.Context) ([]models.Entry, error)
}

// Store persists finished snapshots.
type Store interface {
	SaveSnapshot(ctx context.Context, snapshot models.AuditSnapshot) error
}

// Service aggregates the audit trail into periodic snapshots.
type Service struct {
	source EntrySource
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new snapshot service instance.
func NewService(source EntrySource, store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, store: store, logger: logger, now: time.Now}
}

// TakeSnapshot reads the full audit trail, aggregates it and persists the
// result. The returned snapshot is the persisted document.
func (s *Service) TakeSnapshot(ctx context.Context, at time.Time) (models.AuditSnapshot, error) {
	entries, err := s.source.ReadEntries(ctx)
	if err != nil {
		return models.AuditSnapshot{}, fmt.Errorf("load audit entries: %w", err)
	}

	snapshot := BuildSnapshot(entries, at)
	snapshot.CreatedAt = s.now().UTC()

	if s.store != nil {
		if err := s.store.SaveSnapshot(ctx, snapshot); err != nil {
			return models.AuditSnapshot{}, fmt.Errorf("persist snapshot: %w", err)
		}
	}

	s.logger.Info("audit snapshot taken",
		zap.Time("taken_at", snapshot.TakenAt),
		zap.Int("entry_count", snapshot.EntryCount),
		zap.Float64("total_value", snapshot.TotalValue))

	return snapshot, nil
}

// BuildSnapshot aggregates entries into a snapshot dated at the given time.
func BuildSnapshot(entries []models.Entry, at time.Time) models.AuditSnapshot {
	snapshot := models.AuditSnapshot{
		TakenAt:      at.UTC(),
		EntryCount:   len(entries),
		ActionCounts: make(map[string]int),
	}

	for _, entry := range entries {
		snapshot.TotalValue += entry.Value
		if entry.Action != "" {
			snapshot.ActionCounts[entry.Action]++
		}
	}

	return snapshot
}
