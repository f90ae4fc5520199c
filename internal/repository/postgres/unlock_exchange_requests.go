package postgres

import (
	"context"
	"fmt"
	"time"
)

// UnlockExchangeRequests releases the lease on the given requests. Unlocking
// an already-unlocked id changes nothing.
func (r *Repository) UnlockExchangeRequests(ctx context.Context, requestIDs []int64) error {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("unlock_exchange_requests", err, started)
	}()

	const query = `
UPDATE exchange_requests
SET locked = FALSE, lease_expires_at = NULL
WHERE id = ANY($1) AND locked = TRUE`

	if _, err = r.db.ExecContext(ctx, query, ids(requestIDs)); err != nil {
		return fmt.Errorf("unlock exchange requests: %w", err)
	}
	return nil
}
