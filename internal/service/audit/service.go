package audit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/domain/models"
	repo "github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/repository/sheets"
)

// Archiver preserves deleted entries in a secondary store.
type Archiver interface {
	ArchiveDeletedEntry(ctx context.Context, archived models.ArchivedEntry) error
}

// Notifier publishes audit trail change events to an external consumer.
type Notifier interface {
	PublishEvent(ctx context.Context, event models.EntryEvent) error
}

// Gateway describes the audit trail operations exposed to the HTTP layer.
type Gateway interface {
	ReadEntries(ctx context.Context) ([]models.Entry, error)
	CreateEntry(ctx context.Context, entry models.Entry) (int, error)
	DeleteEntry(ctx context.Context, rowNumber int) (models.Entry, error)
}

// Service implements the Gateway interface against a row-indexed store.
//
// Operations run one backing-store call at a time with no locking or retry;
// concurrent writers can observe stale last-row counts, and serialization is
// left to the store itself.
type Service struct {
	repo     repo.Repository
	archiver Archiver
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

// NewService constructs the audit gateway. The archiver and notifier are
// optional; pass nil to disable them.
func NewService(repository repo.Repository, archiver Archiver, notifier Notifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:     repository,
		archiver: archiver,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// ReadEntries returns every entry in sheet order, each tagged with its current
// row number. A sheet holding only the header yields an empty slice.
func (s *Service) ReadEntries(ctx context.Context) ([]models.Entry, error) {
	rows, err := s.repo.ReadRows(ctx)
	if err != nil {
		return nil, classifyStoreErr(err)
	}

	if len(rows) <= 1 {
		return []models.Entry{}, nil
	}

	header := rows[0]
	entries := make([]models.Entry, 0, len(rows)-1)
	for i, row := range rows[1:] {
		entries = append(entries, models.EntryFromRow(header, row, i+2))
	}

	s.logger.Debug("entries read", zap.Int("count", len(entries)))
	return entries, nil
}

// CreateEntry validates required fields, appends the entry as a new last row
// and returns the row number it landed on.
func (s *Service) CreateEntry(ctx context.Context, entry models.Entry) (int, error) {
	if missing := missingRequired(entry); len(missing) > 0 {
		return 0, &ValidationError{Missing: missing}
	}

	rowNumber, err := s.repo.AppendRow(ctx, entry.ToRow(s.now()))
	if err != nil {
		return 0, classifyStoreErr(err)
	}

	s.logger.Info("entry created", zap.Int("row", rowNumber), zap.String("asset_code", entry.AssetCode))
	s.publish(ctx, models.EventEntryCreated, rowNumber, entry.AssetCode)
	return rowNumber, nil
}

// DeleteEntry removes the entry at the given row number and returns what was
// there, read before deletion for the confirmation echo. Rows below the
// deleted one shift up by one, so their identifiers change.
func (s *Service) DeleteEntry(ctx context.Context, rowNumber int) (models.Entry, error) {
	if rowNumber < 2 {
		return models.Entry{}, &InvalidIdentifierError{Value: strconv.Itoa(rowNumber), LastRow: -1}
	}

	rows, err := s.repo.ReadRows(ctx)
	if err != nil {
		return models.Entry{}, classifyStoreErr(err)
	}

	if rowNumber > len(rows) {
		return models.Entry{}, &InvalidIdentifierError{Value: strconv.Itoa(rowNumber), LastRow: len(rows)}
	}

	entry := models.EntryFromRow(rows[0], rows[rowNumber-1], rowNumber)

	if err := s.repo.DeleteRow(ctx, rowNumber); err != nil {
		return models.Entry{}, classifyStoreErr(err)
	}

	s.logger.Info("entry deleted", zap.Int("row", rowNumber), zap.String("asset_code", entry.AssetCode))
	s.archive(ctx, entry, rowNumber)
	s.publish(ctx, models.EventEntryDeleted, rowNumber, entry.AssetCode)
	return entry, nil
}

// archive hands the deleted entry to the secondary store. Archive failures are
// logged and never fail the delete itself.
func (s *Service) archive(ctx context.Context, entry models.Entry, rowNumber int) {
	if s.archiver == nil {
		return
	}

	archived := models.ArchivedEntry{
		Entry:     entry,
		RowNumber: rowNumber,
		DeletedAt: s.now().UTC(),
	}

	if err := s.archiver.ArchiveDeletedEntry(ctx, archived); err != nil {
		s.logger.Warn("failed to archive deleted entry", zap.Int("row", rowNumber), zap.Error(err))
	}
}

// publish emits a change event, best-effort.
func (s *Service) publish(ctx context.Context, eventType models.EventType, rowNumber int, assetCode string) {
	if s.notifier == nil {
		return
	}

	event := models.EntryEvent{
		ID:         s.newID(),
		Type:       eventType,
		RowNumber:  rowNumber,
		AssetCode:  assetCode,
		OccurredAt: s.now().UTC(),
	}

	if err := s.notifier.PublishEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish audit event", zap.String("type", string(eventType)), zap.Error(err))
	}
}

func missingRequired(entry models.Entry) []string {
	var missing []string
	if entry.Timestamp == "" {
		missing = append(missing, "timestamp")
	}
	if entry.AssetCode == "" {
		missing = append(missing, "assetCode")
	}
	if entry.Action == "" {
		missing = append(missing, "action")
	}
	return missing
}

func classifyStoreErr(err error) error {
	if errors.Is(err, repo.ErrSheetNotFound) {
		return fmt.Errorf("%w: create the audit tab with its header row before using the API (%v)", ErrStoreNotFound, err)
	}
	return err
}
