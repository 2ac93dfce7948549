//go:build unit

package patch_test

import (
	"strings"
	"testing"

	"care-booking/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	notes := "evening only"
	empty := ""

	assert.Equal(t, "evening only", patch.Coalesce(&notes, "kept"))
	assert.Equal(t, "", patch.Coalesce(&empty, "kept"))
	assert.Equal(t, "kept", patch.Coalesce(nil, "kept"))
}

func TestMap(t *testing.T) {
	upper := func(s []string) []string {
		out := make([]string, len(s))
		for i, v := range s {
			out[i] = strings.ToUpper(v)
		}
		return out
	}
	sent := []string{"sleep"}
	cleared := []string{}

	assert.Equal(t, []string{"SLEEP"}, patch.Map(&sent, []string{"kept"}, upper))
	assert.Equal(t, []string{}, patch.Map(&cleared, []string{"kept"}, upper))
	assert.Equal(t, []string{"kept"}, patch.Map(nil, []string{"kept"}, upper))
}
