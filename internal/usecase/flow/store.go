package flow

//go:generate mockgen -source=store.go -destination=../../../tests/mock/flow/store_mock.go -package=flow

import (
	"context"

	"care-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// DraftStore keeps in-progress drafts between requests. Load returns
// ErrDraftNotFound for unknown or expired ids.
//
// Save is a compare-and-set on Draft.Revision and bumps it on success. A
// save built from a stale load fails with ErrDraftConflict, and a save of a
// draft that is no longer stored fails with ErrDraftNotFound.
type DraftStore interface {
	Save(ctx context.Context, draft *booking.Draft) error
	Load(ctx context.Context, id uuid.UUID) (*booking.Draft, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
