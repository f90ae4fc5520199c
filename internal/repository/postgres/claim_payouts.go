package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/minepool-labs/poolledger-backend/internal/model"
)

// ClaimPayouts returns every claimable payout: unlinked, unlocked, owned by a
// mature block and carrying the requested merge tag (NULL-safe match). When
// lock is set the rows are leased atomically with the read, with the same
// single-claimant guarantee as exchange requests.
func (r *Repository) ClaimPayouts(ctx context.Context, mergedTag *string, lock bool, leaseUntil time.Time) ([]model.Payout, error) {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("claim_payouts", err, started)
	}()

	var rows *sql.Rows
	if lock {
		const query = `
UPDATE payouts
SET locked = TRUE, lease_expires_at = $1
WHERE id IN (
	SELECT p.id
	FROM payouts p
	JOIN blocks b ON b.id = p.block_id
	WHERE p.transaction_txid IS NULL
		AND p.locked = FALSE
		AND b.mature = TRUE
		AND p.merged_tag IS NOT DISTINCT FROM $2
	FOR UPDATE OF p
)
RETURNING id, user_name, amount, block_id, merged_tag`

		rows, err = r.db.QueryContext(ctx, query, leaseUntil, mergedTag)
	} else {
		const query = `
SELECT p.id, p.user_name, p.amount, p.block_id, p.merged_tag
FROM payouts p
JOIN blocks b ON b.id = p.block_id
WHERE p.transaction_txid IS NULL
	AND p.locked = FALSE
	AND b.mature = TRUE
	AND p.merged_tag IS NOT DISTINCT FROM $1
ORDER BY p.id`

		rows, err = r.db.QueryContext(ctx, query, mergedTag)
	}
	if err != nil {
		return nil, fmt.Errorf("claim payouts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var payouts []model.Payout
	for rows.Next() {
		p := model.Payout{Locked: lock}
		if err = rows.Scan(&p.ID, &p.User, &p.Amount, &p.BlockID, &p.MergedTag); err != nil {
			return nil, fmt.Errorf("scan payout: %w", err)
		}
		if lock {
			lease := leaseUntil
			p.LeaseExpiresAt = &lease
		}
		payouts = append(payouts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payouts: %w", err)
	}
	return payouts, nil
}
