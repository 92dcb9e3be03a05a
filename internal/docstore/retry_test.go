package docstore

import (
	"context"
	"errors"
	"testing"

	"web420-api/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestRetryOnConflict(t *testing.T) {
	ctx := context.Background()

	calls := 0
	err := RetryOnConflict(ctx, 3, func() error {
		calls++
		if calls < 2 {
			return domain.ErrConcurrentModification
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, calls)

	calls = 0
	err = RetryOnConflict(ctx, 3, func() error {
		calls++
		return domain.ErrConcurrentModification
	})
	require.ErrorIs(t, err, domain.ErrConcurrentModification)
	require.Equal(t, 3, calls)

	calls = 0
	boom := errors.New("boom")
	err = RetryOnConflict(ctx, 3, func() error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, calls)
}

func TestRetryOnConflict_StopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := RetryOnConflict(ctx, 5, func() error {
		calls++
		cancel()
		return domain.ErrConcurrentModification
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, calls)
}
