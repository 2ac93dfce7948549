package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queries

import (
	"context"
	"time"

	"care-booking/internal/domain/user"
	"care-booking/internal/infra"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrForbidden = errs.New("not allowed to view this booking")

// BookingView is the read model of a persisted booking.
type BookingView struct {
	ID                  uuid.UUID  `json:"id"`
	RequesterID         uuid.UUID  `json:"requester_id"`
	CompanyID           *uuid.UUID `json:"company_id,omitempty"`
	SpecialistID        uuid.UUID  `json:"specialist_id"`
	SpecialistName      string     `json:"specialist_name"`
	Pillar              string     `json:"pillar"`
	Topics              []string   `json:"topics"`
	Notes               string     `json:"notes,omitempty"`
	Modality            string     `json:"modality"`
	Date                string     `json:"date"`
	StartTime           string     `json:"start_time"`
	EndTime             string     `json:"end_time"`
	Status              string     `json:"status"`
	QuotaSource         string     `json:"quota_source"`
	AssessmentSessionID *uuid.UUID `json:"assessment_session_id,omitempty"`
	RescheduledFrom     *string    `json:"rescheduled_from,omitempty"`
	RescheduledAt       *time.Time `json:"rescheduled_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Principal, id uuid.UUID) (*BookingView, error)
	ListByRequester(ctx context.Context, actor user.Principal, requesterID uuid.UUID, after *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// FindByRequester lists newest first; after == nil starts at the first page.
	FindByRequester(ctx context.Context, requesterID uuid.UUID, after *Position, limit int32) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Principal, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, commands.ErrBookingNotFound)
		}
		return nil, err
	}
	if !actor.CanView(view.RequesterID, view.SpecialistID) {
		return nil, errs.Wrapf(ErrForbidden, "booking %s", id)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByRequester(ctx context.Context, actor user.Principal, requesterID uuid.UUID, after *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	if !actor.CanActFor(requesterID) {
		return nil, nil, errs.Wrapf(ErrForbidden, "bookings of %s", requesterID)
	}
	limit = ValidateLimit(limit)

	var position *Position
	if after != nil && after.After != "" {
		p, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, err
		}
		position = &p
	}

	// one extra row tells whether another page exists
	rows, err := q.repo.FindByRequester(ctx, requesterID, position, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	if len(rows) <= limit {
		return rows, nil, nil
	}
	rows = rows[:limit]
	last := rows[len(rows)-1]
	return rows, &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}, nil
}
