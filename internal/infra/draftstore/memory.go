package draftstore

import (
	"context"
	"sync"
	"time"

	"care-booking/internal/domain/booking"
	"care-booking/internal/pkg/clock"
	"care-booking/internal/pkg/config"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/usecase/flow"

	"github.com/google/uuid"
)

type memoryEntry struct {
	draft     *booking.Draft
	expiresAt time.Time
}

// MemoryStore mirrors RedisStore's TTL behaviour in process.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]memoryEntry
	clock   clock.Clock
	ttl     time.Duration
}

func NewMemoryStore(clk clock.Clock, cfg config.Config) *MemoryStore {
	return &MemoryStore{
		entries: make(map[uuid.UUID]memoryEntry),
		clock:   clk,
		ttl:     cfg.Booking.DraftTTL,
	}
}

func (s *MemoryStore) Save(_ context.Context, draft *booking.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := -1
	if entry, ok := s.live(draft.ID); ok {
		stored = entry.draft.Revision
	}
	if err := checkRevision(draft, stored); err != nil {
		return err
	}
	draft.Revision++
	s.entries[draft.ID] = memoryEntry{draft: draft.Clone(), expiresAt: s.clock.Now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Load(_ context.Context, id uuid.UUID) (*booking.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.live(id)
	if !ok {
		return nil, errs.Wrapf(flow.ErrDraftNotFound, "draft %s", id)
	}
	return entry.draft.Clone(), nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// live drops an expired entry on access. Callers hold mu.
func (s *MemoryStore) live(id uuid.UUID) (memoryEntry, bool) {
	entry, ok := s.entries[id]
	if ok && !s.clock.Now().Before(entry.expiresAt) {
		delete(s.entries, id)
		return memoryEntry{}, false
	}
	return entry, ok
}
