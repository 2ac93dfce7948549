//go:build unit

package booking_test

import (
	"encoding/json"
	"testing"
	"time"

	"care-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := booking.ParseDate("2025-11-10")
		require.NoError(t, err)
		assert.Equal(t, booking.Date{Year: 2025, Month: time.November, Day: 10}, d)
		assert.Equal(t, "2025-11-10", d.String())
	})

	for _, in := range []string{"", "2025-13-01", "2025-02-30", "10/11/2025", "2025-11-10T10:00:00Z"} {
		t.Run("rejects "+in, func(t *testing.T) {
			_, err := booking.ParseDate(in)
			require.ErrorIs(t, err, booking.ErrInvalidDate)
		})
	}
}

func TestNewDate(t *testing.T) {
	_, err := booking.NewDate(2025, time.February, 29)
	require.ErrorIs(t, err, booking.ErrInvalidDate)

	d, err := booking.NewDate(2024, time.February, 29)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())
}

func TestDateBefore(t *testing.T) {
	base := booking.Date{Year: 2025, Month: time.November, Day: 10}

	assert.True(t, booking.Date{Year: 2024, Month: time.December, Day: 31}.Before(base))
	assert.True(t, booking.Date{Year: 2025, Month: time.October, Day: 30}.Before(base))
	assert.True(t, booking.Date{Year: 2025, Month: time.November, Day: 9}.Before(base))
	assert.False(t, base.Before(base))
	assert.False(t, booking.Date{Year: 2025, Month: time.November, Day: 11}.Before(base))
}

func TestDateAt(t *testing.T) {
	zone := time.FixedZone("GMT+2", 2*60*60)
	d := booking.Date{Year: 2025, Month: time.November, Day: 10}

	at := d.At(booking.MustClockTime("10:30"), zone)
	assert.Equal(t, time.Date(2025, time.November, 10, 8, 30, 0, 0, time.UTC), at.UTC())
	assert.Equal(t, d, booking.DateOf(at))
}

func TestParseClockTime(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"09:05": 9*60 + 5,
		"23:59": 23*60 + 59,
	}
	for in, minutes := range cases {
		ct, err := booking.ParseClockTime(in)
		require.NoError(t, err, in)
		assert.Equal(t, booking.ClockTime(minutes), ct)
		assert.Equal(t, in, ct.String())
	}

	for _, in := range []string{"", "9:00", "24:00", "12:60", "12-00", "12:00:00", "noon!"} {
		_, err := booking.ParseClockTime(in)
		assert.ErrorIs(t, err, booking.ErrInvalidClockTime, in)
	}
}

func TestClockTimeAdd(t *testing.T) {
	end, err := booking.MustClockTime("23:00").Add(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 24*60, int(end))

	_, err = booking.MustClockTime("23:01").Add(time.Hour)
	require.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
}

func TestDateAndClockTimeText(t *testing.T) {
	type payload struct {
		Date  booking.Date      `json:"date"`
		Start booking.ClockTime `json:"start"`
	}
	in := payload{
		Date:  booking.Date{Year: 2025, Month: time.November, Day: 10},
		Start: booking.MustClockTime("14:00"),
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-11-10","start":"14:00"}`, string(raw))

	var bad payload
	err = json.Unmarshal([]byte(`{"date":"2025-11-10","start":"2pm"}`), &bad)
	require.ErrorIs(t, err, booking.ErrInvalidClockTime)
}

func TestNewPillar(t *testing.T) {
	for _, p := range booking.Pillars() {
		got, err := booking.NewPillar(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := booking.NewPillar("Mental-Health")
	require.ErrorIs(t, err, booking.ErrInvalidPillar)
}

func TestNormalizeTopics(t *testing.T) {
	assert.Equal(t, []string{"anxiety", "sleep", "stress"},
		booking.NormalizeTopics([]string{"stress", " anxiety", "sleep", "anxiety ", "  "}))
	assert.Empty(t, booking.NormalizeTopics(nil))
}
