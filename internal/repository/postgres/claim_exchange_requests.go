package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/minepool-labs/poolledger-backend/internal/model"
)

// ClaimExchangeRequests returns every pending, unlocked exchange request.
// When lock is set the returned rows are leased in the same statement: the
// row locks taken by the subquery serialize concurrent claimants, so each
// request is granted to at most one caller.
func (r *Repository) ClaimExchangeRequests(ctx context.Context, lock bool, leaseUntil time.Time) ([]model.ExchangeRequest, error) {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("claim_exchange_requests", err, started)
	}()

	var rows *sql.Rows
	if lock {
		const query = `
UPDATE exchange_requests
SET locked = TRUE, lease_expires_at = $1
WHERE id IN (
	SELECT id
	FROM exchange_requests
	WHERE status = $2 AND locked = FALSE
	FOR UPDATE
)
RETURNING id, currency, quantity`

		rows, err = r.db.QueryContext(ctx, query, leaseUntil, string(model.ExchangeRequestPending))
	} else {
		const query = `
SELECT id, currency, quantity
FROM exchange_requests
WHERE status = $1 AND locked = FALSE
ORDER BY id`

		rows, err = r.db.QueryContext(ctx, query, string(model.ExchangeRequestPending))
	}
	if err != nil {
		return nil, fmt.Errorf("claim exchange requests: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var requests []model.ExchangeRequest
	for rows.Next() {
		req := model.ExchangeRequest{Status: model.ExchangeRequestPending, Locked: lock}
		if err = rows.Scan(&req.ID, &req.Currency, &req.Quantity); err != nil {
			return nil, fmt.Errorf("scan exchange request: %w", err)
		}
		if lock {
			lease := leaseUntil
			req.LeaseExpiresAt = &lease
		}
		requests = append(requests, req)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exchange requests: %w", err)
	}
	return requests, nil
}
