package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// UnlockPayouts releases the lease on the given payout and bonus payout rows
// in one transaction. Transaction links are never touched here.
func (r *Repository) UnlockPayouts(ctx context.Context, payoutIDs, bonusIDs []int64) error {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("unlock_payouts", err, started)
	}()

	err = r.withTx(ctx, func(tx *sql.Tx) error {
		const unlockPayouts = `
UPDATE payouts
SET locked = FALSE, lease_expires_at = NULL
WHERE id = ANY($1) AND locked = TRUE`
		if _, execErr := tx.ExecContext(ctx, unlockPayouts, ids(payoutIDs)); execErr != nil {
			return fmt.Errorf("unlock payouts: %w", execErr)
		}

		const unlockBonusPayouts = `
UPDATE bonus_payouts
SET locked = FALSE, lease_expires_at = NULL
WHERE id = ANY($1) AND locked = TRUE`
		if _, execErr := tx.ExecContext(ctx, unlockBonusPayouts, ids(bonusIDs)); execErr != nil {
			return fmt.Errorf("unlock bonus payouts: %w", execErr)
		}
		return nil
	})
	return err
}
