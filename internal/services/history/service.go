package history

import (
	"fmt"

	"go.uber.org/zap"

	"cipherbox/internal/domain"
	"cipherbox/internal/logging"
)

// Service holds history records in insertion order.
type Service struct {
	store   domain.HistoryStore
	logger  *zap.Logger
	records []domain.HistoryRecord
	dirty   bool
}

// New constructs a history Service backed by store.
func New(store domain.HistoryStore, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logging.OrNop(logger)}
}

// Load appends the persisted records to the in-memory sequence.
func (s *Service) Load() error {
	recs, err := s.store.LoadHistory()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}
	s.records = append(s.records, recs...)
	s.logger.Debug("history loaded", zap.Int("records", len(recs)))
	return nil
}

// Add records a conversion and returns the stored record.
func (s *Service) Add(input, output, converterName string) domain.HistoryRecord {
	r := domain.NewHistoryRecord(input, output, converterName)
	s.records = append(s.records, r)
	s.dirty = true
	s.logger.Debug("history record added", zap.String("converter", converterName))
	return r
}

// Records returns a copy of the records in insertion order.
func (s *Service) Records() []domain.HistoryRecord {
	out := make([]domain.HistoryRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Clear drops every record; Flush persists the empty history.
func (s *Service) Clear() {
	s.records = nil
	s.dirty = true
}

// Flush writes the records back to the store if anything changed.
func (s *Service) Flush() error {
	if !s.dirty {
		return nil
	}
	if err := s.store.SaveHistory(s.records); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	s.dirty = false
	s.logger.Debug("history saved", zap.Int("records", len(s.records)))
	return nil
}

var _ domain.HistoryService = (*Service)(nil)
