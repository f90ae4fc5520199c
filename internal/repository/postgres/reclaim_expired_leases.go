package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// leaseTables are every table carrying the locked/lease_expires_at pair.
var leaseTables = []string{"exchange_requests", "payouts", "bonus_payouts"}

// ReclaimExpiredLeases clears the lock on every row whose lease expired
// before cutoff, returning the abandoned items to the claimable pool. Returns
// how many leases were reclaimed.
func (r *Repository) ReclaimExpiredLeases(ctx context.Context, cutoff time.Time) (int64, error) {
	started := time.Now()
	var reclaimed int64
	var err error
	defer func() {
		r.metrics.Observe("reclaim_expired_leases", err, started)
	}()

	err = r.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range leaseTables {
			query := fmt.Sprintf(`
UPDATE %s
SET locked = FALSE, lease_expires_at = NULL
WHERE locked = TRUE AND lease_expires_at IS NOT NULL AND lease_expires_at <= $1`, table)

			res, execErr := tx.ExecContext(ctx, query, cutoff)
			if execErr != nil {
				return fmt.Errorf("reclaim %s leases: %w", table, execErr)
			}
			n, raErr := res.RowsAffected()
			if raErr != nil {
				return fmt.Errorf("%s rows affected: %w", table, raErr)
			}
			reclaimed += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return reclaimed, nil
}
