package repository

import (
	"context"
	"sync"

	"scorecast/internal/models"
)

// memoryStore is an in-process lead log. Used by tests and by the "memory"
// store type for local development; contents vanish on restart.
type memoryStore struct {
	mu    sync.Mutex
	leads []models.Lead
}

func NewMemoryStore() LeadStore {
	return &memoryStore{}
}

func (s *memoryStore) Append(ctx context.Context, lead models.Lead) AppendResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append(s.leads, lead)
	return AppendResult{Saved: true}
}

func (s *memoryStore) ListAll(ctx context.Context) []models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}
