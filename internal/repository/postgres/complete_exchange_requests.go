package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/minepool-labs/poolledger-backend/internal/model"
)

// CompleteExchangeRequests records the exchanged quantity of each reported
// request and transitions it to the completed status, all in one transaction.
func (r *Repository) CompleteExchangeRequests(ctx context.Context, completed map[int64]int64) error {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("complete_exchange_requests", err, started)
	}()

	if len(completed) == 0 {
		return nil
	}

	err = r.withTx(ctx, func(tx *sql.Tx) error {
		const query = `
UPDATE exchange_requests
SET status = $2, exchanged_quantity = $3
WHERE id = $1`

		for id, quantity := range completed {
			if _, execErr := tx.ExecContext(ctx, query, id, string(model.ExchangeRequestCompleted), quantity); execErr != nil {
				return fmt.Errorf("complete exchange request %d: %w", id, execErr)
			}
		}
		return nil
	})
	return err
}
