package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/minepool-labs/poolledger-backend/internal/model"
)

// SettlePayouts applies a successful settlement batch in one transaction:
// creates the Transaction keyed by txid, writes per-user summaries and links
// the referenced payout and bonus payout rows. Creation is idempotent by
// txid; if the Transaction already exists the batch was applied by an earlier
// commit and nothing is written. Returns whether this call created it.
func (r *Repository) SettlePayouts(ctx context.Context, txid string, mergedTag *string, payoutIDs, bonusIDs []int64) (bool, error) {
	started := time.Now()
	var created bool
	var err error
	defer func() {
		r.metrics.Observe("settle_payouts", err, started)
	}()

	err = r.withTx(ctx, func(tx *sql.Tx) error {
		const insertTransaction = `
INSERT INTO transactions (txid, merged_tag)
VALUES ($1, $2)
ON CONFLICT (txid) DO NOTHING`

		res, execErr := tx.ExecContext(ctx, insertTransaction, txid, mergedTag)
		if execErr != nil {
			return fmt.Errorf("insert transaction: %w", execErr)
		}
		inserted, raErr := res.RowsAffected()
		if raErr != nil {
			return fmt.Errorf("transaction rows affected: %w", raErr)
		}
		if inserted == 0 {
			return nil
		}
		created = true

		batch, batchErr := settledBatch(ctx, tx, payoutIDs, bonusIDs)
		if batchErr != nil {
			return batchErr
		}

		const insertSummary = `
INSERT INTO transaction_summaries (transaction_txid, user_name, amount, payout_count)
VALUES ($1, $2, $3, $4)`

		for _, s := range model.SummarizePayouts(txid, batch) {
			if _, execErr := tx.ExecContext(ctx, insertSummary, s.TransactionTXID, s.User, s.Amount, s.PayoutCount); execErr != nil {
				return fmt.Errorf("insert transaction summary: %w", execErr)
			}
		}

		const linkPayouts = `
UPDATE payouts
SET transaction_txid = $1
WHERE id = ANY($2) AND transaction_txid IS NULL`
		if _, execErr := tx.ExecContext(ctx, linkPayouts, txid, ids(payoutIDs)); execErr != nil {
			return fmt.Errorf("link payouts: %w", execErr)
		}

		const linkBonusPayouts = `
UPDATE bonus_payouts
SET transaction_txid = $1
WHERE id = ANY($2) AND transaction_txid IS NULL`
		if _, execErr := tx.ExecContext(ctx, linkBonusPayouts, txid, ids(bonusIDs)); execErr != nil {
			return fmt.Errorf("link bonus payouts: %w", execErr)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// settledBatch loads the user and amount of every referenced payout and bonus
// payout for summarization. Rows already linked to an earlier transaction are
// excluded so the summarized set is exactly the set the link updates touch.
func settledBatch(ctx context.Context, tx *sql.Tx, payoutIDs, bonusIDs []int64) ([]model.Payout, error) {
	const query = `
SELECT id, user_name, amount FROM payouts WHERE id = ANY($1) AND transaction_txid IS NULL
UNION ALL
SELECT id, user_name, amount FROM bonus_payouts WHERE id = ANY($2) AND transaction_txid IS NULL`

	rows, err := tx.QueryContext(ctx, query, ids(payoutIDs), ids(bonusIDs))
	if err != nil {
		return nil, fmt.Errorf("load settled batch: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var batch []model.Payout
	for rows.Next() {
		var p model.Payout
		if err := rows.Scan(&p.ID, &p.User, &p.Amount); err != nil {
			return nil, fmt.Errorf("scan settled payout: %w", err)
		}
		batch = append(batch, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate settled batch: %w", err)
	}
	return batch, nil
}
