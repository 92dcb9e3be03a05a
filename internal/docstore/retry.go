package docstore

import (
	"context"
	"errors"

	"web420-api/internal/domain"
)

// DefaultAttempts bounds read-modify-write retries after a lost version race.
const DefaultAttempts = 3

// RetryOnConflict runs fn until it succeeds, fails with anything other than
// domain.ErrConcurrentModification, ctx ends, or attempts run out. fn must
// re-read the document it modifies on every call.
func RetryOnConflict(ctx context.Context, attempts int, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); !errors.Is(err, domain.ErrConcurrentModification) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return err
}
