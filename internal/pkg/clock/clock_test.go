//go:build unit

package clock_test

import (
	"testing"
	"time"

	"care-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestZoned(t *testing.T) {
	gmt2 := time.FixedZone("GMT+2", 2*60*60)
	base := clock.NewMockClock(time.Date(2025, time.November, 3, 23, 30, 0, 0, time.UTC))
	z := clock.NewZoned(base, gmt2)

	now := z.Now()
	assert.True(t, now.Equal(base.Now()))
	assert.Equal(t, 4, now.Day())
	assert.Equal(t, 1, now.Hour())
	assert.Same(t, gmt2, z.Location())
}

func TestMockClock(t *testing.T) {
	start := time.Date(2025, time.November, 3, 9, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(start)

	c.Add(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}
