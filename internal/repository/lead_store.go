package repository

import (
	"context"

	"go.uber.org/zap"

	"scorecast/internal/models"
)

// AppendResult is the explicit outcome of a lead write. The store never
// raises on unavailability; callers surface Saved=false to the user.
type AppendResult struct {
	Saved  bool   `json:"saved"`
	Reason string `json:"reason,omitempty"`
}

// LeadStore is the gateway to the append-only lead log. Appends have no
// retry, no batching and no idempotency key: duplicate submissions produce
// duplicate rows. ListAll returns records in append order, or an empty slice
// when the store is unreachable.
type LeadStore interface {
	Append(ctx context.Context, lead models.Lead) AppendResult
	ListAll(ctx context.Context) []models.Lead
}

// unavailableStore stands in when no backend could be configured (missing
// credentials, bad path). Writes report not-saved, reads come back empty.
type unavailableStore struct {
	reason string
	logger *zap.Logger
}

// NewUnavailableStore returns a LeadStore that degrades every operation
// gracefully with the given reason.
func NewUnavailableStore(reason string, logger *zap.Logger) LeadStore {
	return &unavailableStore{reason: reason, logger: logger}
}

func (s *unavailableStore) Append(ctx context.Context, lead models.Lead) AppendResult {
	s.logger.Warn("lead dropped, store unavailable",
		zap.String("reason", s.reason),
		zap.String("name", lead.Name))
	return AppendResult{Saved: false, Reason: s.reason}
}

func (s *unavailableStore) ListAll(ctx context.Context) []models.Lead {
	s.logger.Warn("lead listing unavailable", zap.String("reason", s.reason))
	return []models.Lead{}
}
