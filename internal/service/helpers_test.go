package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// fill emulates the dispatcher decoding a raw body into result.
func fill(t *testing.T, result any, payload any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, result))
}

func getReturning(t *testing.T, payload any) func(context.Context, string, any) error {
	return func(_ context.Context, _ string, result any) error {
		fill(t, result, payload)
		return nil
	}
}

func postReturning(t *testing.T, payload any) func(context.Context, string, any, any) error {
	return func(_ context.Context, _ string, _ any, result any) error {
		fill(t, result, payload)
		return nil
	}
}
