package postgres

import (
	"context"
	"fmt"
	"time"
)

// ConfirmTransactions marks the given transactions as confirmed on the
// settlement network. Confirmed only ever transitions false to true, so
// repeating a confirmation is a no-op.
func (r *Repository) ConfirmTransactions(ctx context.Context, txids []string) error {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("confirm_transactions", err, started)
	}()

	if txids == nil {
		txids = []string{}
	}

	const query = `
UPDATE transactions
SET confirmed = TRUE
WHERE txid = ANY($1) AND confirmed = FALSE`

	if _, err = r.db.ExecContext(ctx, query, txids); err != nil {
		return fmt.Errorf("confirm transactions: %w", err)
	}
	return nil
}
