//go:build unit

package specialist_test

import (
	"slices"
	"testing"

	"care-booking/internal/domain/booking"
	"care-booking/internal/domain/specialist"
	"care-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	t.Run("normalizes tags and slot times", func(t *testing.T) {
		times := []booking.ClockTime{booking.MustClockTime("14:00"), booking.MustClockTime("09:00"), booking.MustClockTime("14:00")}
		p, err := specialist.NewProfile(uuid.New(), "  Ana Duarte ", []string{"mental-health", " sleep", "mental-health"}, times, true)
		require.NoError(t, err)

		assert.Equal(t, "Ana Duarte", p.DisplayName())
		assert.Equal(t, []string{"mental-health", "sleep"}, p.Specialties())
		assert.Equal(t, []booking.ClockTime{booking.MustClockTime("09:00"), booking.MustClockTime("14:00")}, p.SlotTimes())
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := specialist.NewProfile(uuid.New(), "  ", []string{"mental-health"}, nil, true)
		require.ErrorIs(t, err, specialist.ErrEmptyDisplayName)
	})

	t.Run("no specialties", func(t *testing.T) {
		_, err := specialist.NewProfile(uuid.New(), "Ana", []string{" "}, nil, true)
		require.ErrorIs(t, err, specialist.ErrNoSpecialties)
	})
}

func TestServes(t *testing.T) {
	p := builder.NewSpecialistBuilder().Serving(booking.PillarLegalAssistance, booking.PillarFinancialAssistance).BuildDomain()

	assert.True(t, p.Serves(booking.PillarLegalAssistance))
	assert.True(t, p.Serves(booking.PillarFinancialAssistance))
	assert.False(t, p.Serves(booking.PillarMentalHealth))
}

func TestPublishes(t *testing.T) {
	defaults := []booking.ClockTime{booking.MustClockTime("09:00"), booking.MustClockTime("10:00")}

	t.Run("falls back to the default catalog", func(t *testing.T) {
		p := builder.NewSpecialistBuilder().BuildDomain()
		assert.True(t, p.Publishes(booking.MustClockTime("10:00"), defaults))
		assert.False(t, p.Publishes(booking.MustClockTime("10:30"), defaults))
	})

	t.Run("own slot times replace the defaults", func(t *testing.T) {
		p := builder.NewSpecialistBuilder().WithSlotTimes("10:30", "16:00").BuildDomain()
		assert.True(t, p.Publishes(booking.MustClockTime("10:30"), defaults))
		assert.False(t, p.Publishes(booking.MustClockTime("10:00"), defaults))
	})
}

func TestLess(t *testing.T) {
	lowID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	highID := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	bruno := builder.NewSpecialistBuilder().WithName("Bruno Costa").WithID(lowID).BuildDomain()
	anaHigh := builder.NewSpecialistBuilder().WithName("Ana Duarte").WithID(highID).BuildDomain()
	anaLow := builder.NewSpecialistBuilder().WithName("Ana Duarte").WithID(lowID).BuildDomain()

	profiles := []*specialist.Profile{bruno, anaHigh, anaLow}
	slices.SortFunc(profiles, specialist.Less)

	assert.Equal(t, []*specialist.Profile{anaLow, anaHigh, bruno}, profiles)
}
