package requestid_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solverkit/allocsolver/internal/requestid"
)

func TestNew_ProducesUniqueIDs(t *testing.T) {
	a := requestid.New()
	b := requestid.New()
	require.NotEmpty(t, a)
	require.NotEqual(t, a, b)
}

func TestWithContext_RoundTrips(t *testing.T) {
	ctx := requestid.WithContext(context.Background(), "req-123")
	require.Equal(t, "req-123", requestid.FromContext(ctx))
}

func TestFromContext_EmptyWhenUnset(t *testing.T) {
	require.Equal(t, "", requestid.FromContext(context.Background()))
}
