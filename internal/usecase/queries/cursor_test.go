//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"care-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2025, time.November, 3, 9, 0, 0, 123456789, time.UTC)
	id := uuid.New()

	pos, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
	require.NoError(t, err)

	assert.Equal(t, id, pos.ID)
	assert.True(t, at.Truncate(time.Microsecond).Equal(pos.CreatedAt))
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	encode := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	testCases := map[string]string{
		"empty":          "",
		"not base64":     "%%%",
		"wrong version":  encode("v2:1700000000000000-" + uuid.NewString()),
		"no separator":   encode("v1:1700000000000000"),
		"bad timestamp":  encode("v1:yesterday-" + uuid.NewString()),
		"bad identifier": encode("v1:1700000000000000-not-a-uuid"),
	}
	for name, cursor := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := queries.DecodeAfterCursor(cursor)
			require.ErrorIs(t, err, queries.ErrInvalidCursor)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
