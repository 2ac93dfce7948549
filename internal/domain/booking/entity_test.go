//go:build unit

package booking_test

import (
	"testing"
	"time"

	"care-booking/internal/domain/booking"
	"care-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.November, 3, 9, 0, 0, 0, time.UTC)

type testCase struct {
	name   string
	mutate func(*booking.Draft)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		draft := builder.NewDraftBuilder().Build()
		draft.Topics = []string{" sleep ", "anxiety", "sleep", ""}
		draft.Notes = "  prefers mornings  "

		actual, err := booking.NewBooking(draft, 60*time.Minute, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, draft.Requester.UserID, actual.RequesterID())
		assert.Equal(t, *draft.SpecialistID, actual.SpecialistID())
		assert.Equal(t, booking.StatusScheduled, actual.Status())
		assert.Equal(t, "10:00", actual.Start().String())
		assert.Equal(t, "11:00", actual.End().String())
		assert.Equal(t, []string{"anxiety", "sleep"}, actual.Topics())
		assert.Equal(t, "prefers mornings", actual.Notes())
		assert.Equal(t, now, actual.CreatedAt())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Nil(t, actual.RescheduledFrom())
		assert.True(t, actual.IsActive())
	})

	t.Run("end time follows the session length", func(t *testing.T) {
		draft := builder.NewDraftBuilder().Build()
		actual, err := booking.NewBooking(draft, 45*time.Minute, now)
		require.NoError(t, err)
		assert.Equal(t, "10:45", actual.End().String())
	})

	t.Run("draft validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing requester",
				mutate: func(d *booking.Draft) { d.Requester.UserID = uuid.Nil },
				errIs:  booking.ErrMissingRequester,
			},
			{
				name:   "missing specialist",
				mutate: func(d *booking.Draft) { d.SpecialistID = nil },
				errIs:  booking.ErrMissingSpecialist,
			},
			{
				name:   "unknown pillar",
				mutate: func(d *booking.Draft) { d.Pillar = "astrology" },
				errIs:  booking.ErrInvalidPillar,
			},
			{
				name:   "missing time",
				mutate: func(d *booking.Draft) { d.StartTime = nil },
				errIs:  booking.ErrInvalidTimeSlot,
			},
			{
				name:   "unknown modality",
				mutate: func(d *booking.Draft) { d.Modality = "carrier-pigeon" },
				errIs:  booking.ErrInvalidModality,
			},
			{
				name:   "unknown quota source",
				mutate: func(d *booking.Draft) { d.QuotaSource = "employer" },
				errIs:  booking.ErrInvalidQuotaSource,
			},
			{
				name: "session runs past midnight",
				mutate: func(d *booking.Draft) {
					late := booking.MustClockTime("23:30")
					d.StartTime = &late
				},
				errIs: booking.ErrInvalidTimeSlot,
			},
			{
				name:   "phone modality",
				mutate: func(d *booking.Draft) { d.Modality = booking.ModalityPhone },
			},
		})
	})

	t.Run("non-positive session length", func(t *testing.T) {
		_, err := booking.NewBooking(builder.NewDraftBuilder().Build(), 0, now)
		require.ErrorIs(t, err, booking.ErrInvalidSessionLength)
	})
}

func TestBookingReschedule(t *testing.T) {
	later := now.Add(time.Hour)

	t.Run("moves the slot and awaits confirmation", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		originalID := b.ID()
		newSpecialist := uuid.New()
		newDate := booking.Date{Year: 2025, Month: time.November, Day: 12}

		err := b.Reschedule(newSpecialist, newDate, booking.MustClockTime("15:00"), 60*time.Minute, later)
		require.NoError(t, err)

		assert.Equal(t, originalID, b.ID())
		assert.Equal(t, newSpecialist, b.SpecialistID())
		assert.Equal(t, newDate, b.Date())
		assert.Equal(t, "16:00", b.End().String())
		assert.Equal(t, booking.StatusPendingConfirmation, b.Status())
		require.NotNil(t, b.RescheduledFrom())
		assert.Equal(t, builder.ReferenceDate, *b.RescheduledFrom())
		require.NotNil(t, b.RescheduledAt())
		assert.Equal(t, later, *b.RescheduledAt())
		assert.Equal(t, later, b.UpdatedAt())
		assert.NotEqual(t, later, b.CreatedAt())
	})

	t.Run("terminal bookings stay put", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusCancelled, booking.StatusCompleted} {
			b := builder.NewBookingBuilder().WithStatus(status).BuildDomain()
			before := b.Slot()

			err := b.Reschedule(uuid.New(), builder.ReferenceDate, booking.MustClockTime("15:00"), time.Hour, later)
			require.ErrorIs(t, err, booking.ErrNotReschedulable, status)
			assert.Equal(t, before, b.Slot())
			assert.Equal(t, status, b.Status())
		}
	})

	t.Run("failed reschedule leaves the booking untouched", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain()
		before := b.Slot()

		err := b.Reschedule(uuid.New(), builder.ReferenceDate, booking.MustClockTime("23:30"), time.Hour, later)
		require.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
		assert.Equal(t, before, b.Slot())
		assert.Nil(t, b.RescheduledFrom())
	})
}

func TestBookingAccessorsCopy(t *testing.T) {
	b := builder.NewBookingBuilder().BuildDomain()
	topics := b.Topics()
	topics[0] = "changed"
	assert.Equal(t, []string{"anxiety"}, b.Topics())
}

func TestStatusHoldsSlot(t *testing.T) {
	assert.True(t, booking.StatusScheduled.HoldsSlot())
	assert.True(t, booking.StatusPendingConfirmation.HoldsSlot())
	assert.True(t, booking.StatusConfirmed.HoldsSlot())
	assert.True(t, booking.StatusCompleted.HoldsSlot())
	assert.False(t, booking.StatusCancelled.HoldsSlot())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			draft := builder.NewDraftBuilder().Build()
			c.mutate(draft)
			actual, err := booking.NewBooking(draft, 60*time.Minute, now)

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
