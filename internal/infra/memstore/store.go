package memstore

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"care-booking/internal/domain/booking"
	"care-booking/internal/domain/quota"
	"care-booking/internal/domain/specialist"
	"care-booking/internal/infra"
	"care-booking/internal/infra/converter"
	"care-booking/internal/usecase/queries"
	"care-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store keeps bookings, specialists and quota accounts in process. Write
// transactions are serialized and applied atomically on success. Staged
// writes are checked against the same live-slot uniqueness rule as the
// database index.
type Store struct {
	writeMu sync.Mutex

	mu          sync.RWMutex
	bookings    map[uuid.UUID]*booking.Booking
	specialists map[uuid.UUID]*specialist.Profile
	quotas      map[uuid.UUID]*quota.Account
}

func NewStore() *Store {
	return &Store{
		bookings:    make(map[uuid.UUID]*booking.Booking),
		specialists: make(map[uuid.UUID]*specialist.Profile),
		quotas:      make(map[uuid.UUID]*quota.Account),
	}
}

func (s *Store) PutSpecialist(p *specialist.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.specialists[p.ID()] = p
}

func (s *Store) PutQuotaAccount(a *quota.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotas[a.RequesterID()] = a
}

// PutBooking stores a booking as-is, bypassing the slot check. Meant for fixtures.
func (s *Store) PutBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(cloneBooking(b))
}

func (s *Store) BookingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}

// Reset drops every record.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.bookings)
	clear(s.specialists)
	clear(s.quotas)
}

// UnitOfWork

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx := &memTx{store: s, pending: make(map[uuid.UUID]*booking.Booking)}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range tx.order {
		s.apply(tx.pending[id])
	}
	return nil
}

// WithinReadOnly gives no snapshot isolation; each read sees the latest commit.
func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	return fn(ctx, &memReads{store: s})
}

func (s *Store) CommandReads() shared.CommandReads {
	return &memReads{store: s}
}

// apply must run under s.mu.
func (s *Store) apply(b *booking.Booking) {
	s.bookings[b.ID()] = b
}

type memTx struct {
	store   *Store
	pending map[uuid.UUID]*booking.Booking
	order   []uuid.UUID
	reads   *memReads
}

func (t *memTx) Bookings() shared.BookingRepository {
	return t
}

func (t *memTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = &memReads{store: t.store, tx: t}
	}
	return t.reads
}

func (t *memTx) Insert(_ context.Context, b *booking.Booking) error {
	if _, exists := t.lookup(b.ID()); exists {
		return infra.WrapRepoErr("booking id already exists", nil, infra.KindDuplicateKey)
	}
	if err := t.claim(b); err != nil {
		return err
	}
	t.stage(b)
	return nil
}

func (t *memTx) UpdateForReschedule(_ context.Context, b *booking.Booking) error {
	current, ok := t.lookup(b.ID())
	if !ok || current.Status() == booking.StatusCancelled || current.Status() == booking.StatusCompleted {
		return infra.WrapRepoErr("booking not found or no longer movable", nil, infra.KindNotFound)
	}
	if err := t.claim(b); err != nil {
		return err
	}
	t.stage(b)
	return nil
}

// claim fails when another live booking already holds b's slot.
func (t *memTx) claim(b *booking.Booking) error {
	if !b.IsActive() {
		return nil
	}
	for _, other := range t.visible() {
		if other.ID() != b.ID() && other.IsActive() && other.Slot() == b.Slot() {
			return infra.WrapRepoErr("slot already held by an active booking", nil, infra.KindDuplicateKey)
		}
	}
	return nil
}

func (t *memTx) stage(b *booking.Booking) {
	if _, seen := t.pending[b.ID()]; !seen {
		t.order = append(t.order, b.ID())
	}
	t.pending[b.ID()] = cloneBooking(b)
}

func (t *memTx) lookup(id uuid.UUID) (*booking.Booking, bool) {
	if b, ok := t.pending[id]; ok {
		return b, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	b, ok := t.store.bookings[id]
	return b, ok
}

// visible merges committed bookings with this transaction's staged writes.
func (t *memTx) visible() []*booking.Booking {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	out := make([]*booking.Booking, 0, len(t.store.bookings)+len(t.pending))
	for id, b := range t.store.bookings {
		if _, staged := t.pending[id]; !staged {
			out = append(out, b)
		}
	}
	for _, b := range t.pending {
		out = append(out, b)
	}
	return out
}

type memReads struct {
	store *Store
	tx    *memTx
}

func (r *memReads) bookingsSnapshot() []*booking.Booking {
	if r.tx != nil {
		return r.tx.visible()
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*booking.Booking, 0, len(r.store.bookings))
	for _, b := range r.store.bookings {
		out = append(out, b)
	}
	return out
}

func (r *memReads) ActiveBookingsAt(_ context.Context, specialistID uuid.UUID, date booking.Date) ([]shared.BookingSnapshot, error) {
	var out []shared.BookingSnapshot
	for _, b := range r.bookingsSnapshot() {
		if b.SpecialistID() != specialistID || b.Date() != date || !b.IsActive() {
			continue
		}
		out = append(out, shared.BookingSnapshot{
			ID:           b.ID(),
			SpecialistID: b.SpecialistID(),
			Date:         b.Date(),
			Start:        b.Start(),
			Status:       b.Status(),
		})
	}
	slices.SortFunc(out, func(a, b shared.BookingSnapshot) int { return cmp.Compare(a.Start, b.Start) })
	return out, nil
}

func (r *memReads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		b  *booking.Booking
		ok bool
	)
	if r.tx != nil {
		b, ok = r.tx.lookup(id)
	} else {
		r.store.mu.RLock()
		b, ok = r.store.bookings[id]
		r.store.mu.RUnlock()
	}
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return cloneBooking(b), nil
}

func (r *memReads) QuotaAccount(_ context.Context, requesterID uuid.UUID) (*quota.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	a, ok := r.store.quotas[requesterID]
	if !ok {
		return nil, infra.WrapRepoErr("quota account not found", nil, infra.KindNotFound)
	}
	return a, nil
}

func (r *memReads) ActiveSpecialists(_ context.Context) ([]*specialist.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*specialist.Profile, 0, len(r.store.specialists))
	for _, p := range r.store.specialists {
		if p.IsActive() {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, specialist.Less)
	return out, nil
}

func (r *memReads) SpecialistByID(_ context.Context, id uuid.UUID) (*specialist.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.specialists[id]
	if !ok {
		return nil, infra.WrapRepoErr("specialist not found", nil, infra.KindNotFound)
	}
	return p, nil
}

// BookingViewRepo

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return s.view(b), nil
}

func (s *Store) FindByRequester(_ context.Context, requesterID uuid.UUID, after *queries.Position, limit int32) ([]*queries.BookingView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var owned []*booking.Booking
	for _, b := range s.bookings {
		if b.RequesterID() == requesterID {
			owned = append(owned, b)
		}
	}
	slices.SortFunc(owned, newestFirst)

	out := make([]*queries.BookingView, 0, min(int(limit), len(owned)))
	for _, b := range owned {
		if after != nil && !isAfter(b, *after) {
			continue
		}
		if len(out) == int(limit) {
			break
		}
		out = append(out, s.view(b))
	}
	return out, nil
}

func (s *Store) view(b *booking.Booking) *queries.BookingView {
	v := converter.BookingToView(b)
	if p, ok := s.specialists[b.SpecialistID()]; ok {
		v.SpecialistName = p.DisplayName()
	}
	return v
}

func newestFirst(a, b *booking.Booking) int {
	if c := b.CreatedAt().Compare(a.CreatedAt()); c != 0 {
		return c
	}
	return cmp.Compare(b.ID().String(), a.ID().String())
}

// isAfter mirrors (created_at, id) < (after.created_at, after.id).
func isAfter(b *booking.Booking, after queries.Position) bool {
	at := b.CreatedAt().Truncate(time.Microsecond)
	if c := at.Compare(after.CreatedAt); c != 0 {
		return c < 0
	}
	return b.ID().String() < after.ID.String()
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:                  b.ID(),
		RequesterID:         b.RequesterID(),
		CompanyID:           b.CompanyID(),
		SpecialistID:        b.SpecialistID(),
		Pillar:              b.Pillar(),
		Topics:              b.Topics(),
		Notes:               b.Notes(),
		Modality:            b.Modality(),
		Date:                b.Date(),
		Start:               b.Start(),
		End:                 b.End(),
		Status:              b.Status(),
		QuotaSource:         b.QuotaSource(),
		AssessmentSessionID: b.AssessmentSessionID(),
		RescheduledFrom:     b.RescheduledFrom(),
		RescheduledAt:       b.RescheduledAt(),
		CreatedAt:           b.CreatedAt(),
		UpdatedAt:           b.UpdatedAt(),
	})
}
