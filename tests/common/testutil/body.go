//go:build unit || e2e

// Package testutil shapes JSON request bodies for validation tables.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Edit changes one key of a decoded request body.
type Edit func(body map[string]any)

// Body round-trips v through JSON so tests can break individual fields.
func Body(t *testing.T, v any, edits ...Edit) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, edit := range edits {
		edit(body)
	}
	return body
}

func Set(key string, value any) Edit {
	return func(body map[string]any) { body[key] = value }
}

func Drop(key string) Edit {
	return func(body map[string]any) { delete(body, key) }
}
