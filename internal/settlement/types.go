// Package settlement coordinates hand-off of ledger work items to an external
// settlement worker through claim, commit, reset and confirm operations.
package settlement

import (
	"context"
	"time"

	"github.com/minepool-labs/poolledger-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// LedgerRepository is the transactional store behind every operation.
	// Implementations must apply each call atomically; no partial write may
	// survive a failure.
	LedgerRepository interface {
		ClaimExchangeRequests(ctx context.Context, lock bool, leaseUntil time.Time) ([]model.ExchangeRequest, error)
		CompleteExchangeRequests(ctx context.Context, completed map[int64]int64) error
		UnlockExchangeRequests(ctx context.Context, ids []int64) error
		ClaimPayouts(ctx context.Context, mergedTag *string, lock bool, leaseUntil time.Time) ([]model.Payout, error)
		SettlePayouts(ctx context.Context, txid string, mergedTag *string, payoutIDs, bonusIDs []int64) (bool, error)
		UnlockPayouts(ctx context.Context, payoutIDs, bonusIDs []int64) error
		ConfirmTransactions(ctx context.Context, txids []string) error
		ReclaimExpiredLeases(ctx context.Context, cutoff time.Time) (int64, error)
	}

	// LeaseReclaimer is the janitor's view of the store.
	LeaseReclaimer interface {
		ReclaimExpiredLeases(ctx context.Context, cutoff time.Time) (int64, error)
	}

	JanitorMetrics interface {
		ObserveReclaim(err error, reclaimed int64, started time.Time)
	}
)
