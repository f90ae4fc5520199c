package settlement

import (
	"context"
	"errors"
	"time"

	"github.com/minepool-labs/poolledger-backend/internal/model"
	"go.uber.org/zap"
)

// Service implements the claim/commit/reset/confirm protocol over the ledger
// store. It holds no item state between calls; every operation re-reads
// current state inside the store's own transaction scope.
type Service struct {
	logger   *zap.Logger
	repo     LedgerRepository
	leaseTTL time.Duration
	now      func() time.Time
}

// NewService builds a Service. leaseTTL bounds how long a claim lease survives
// before the janitor may reclaim it.
func NewService(repo LedgerRepository, leaseTTL time.Duration, logger *zap.Logger) (*Service, error) {
	if repo == nil {
		return nil, errors.New("ledger repository is required")
	}
	if leaseTTL <= 0 {
		return nil, errors.New("lease ttl must be positive")
	}

	return &Service{
		logger:   logger,
		repo:     repo,
		leaseTTL: leaseTTL,
		now:      time.Now,
	}, nil
}

// ClaimExchangeRequests returns all pending, unlocked exchange requests and,
// when lock is requested, leases them to the caller in the same store
// transaction that produced the read set. Claim is a lease, not a state
// transition: no status changes here.
func (s *Service) ClaimExchangeRequests(ctx context.Context, lock bool) ([]model.ExchangeRequest, bool, error) {
	requests, err := s.repo.ClaimExchangeRequests(ctx, lock, s.now().Add(s.leaseTTL))
	if err != nil {
		return nil, false, err
	}

	if lock && len(requests) > 0 {
		s.logger.Info("locked exchange requests for settlement worker", zap.Int("count", len(requests)))
	}
	return requests, lock, nil
}

// CommitExchangeRequests applies reported sell results: each id receives its
// exchanged quantity and transitions to the completed status, all in one store
// transaction. An empty report is a no-op, not an error; the returned bool
// tells the caller whether anything was applied.
func (s *Service) CommitExchangeRequests(ctx context.Context, completed map[int64]int64) (bool, error) {
	if len(completed) == 0 {
		return false, nil
	}

	if err := s.repo.CompleteExchangeRequests(ctx, completed); err != nil {
		return false, err
	}
	s.logger.Info("completed exchange requests", zap.Int("count", len(completed)))
	return true, nil
}

// ResetExchangeRequests releases the lease on the given requests after a
// failed settlement attempt. Resetting an already-unlocked id is a no-op.
func (s *Service) ResetExchangeRequests(ctx context.Context, ids []int64) (bool, error) {
	if len(ids) == 0 {
		return false, nil
	}

	if err := s.repo.UnlockExchangeRequests(ctx, ids); err != nil {
		return false, err
	}
	s.logger.Info("reset exchange request locks", zap.Int("count", len(ids)))
	return true, nil
}

// ClaimPayouts returns all claimable payouts (no transaction link, unlocked,
// mature owning block, matching merge tag) and optionally leases them, with
// the same single-transaction guarantee as ClaimExchangeRequests.
func (s *Service) ClaimPayouts(ctx context.Context, lock bool, mergedTag *string) ([]model.Payout, bool, error) {
	payouts, err := s.repo.ClaimPayouts(ctx, mergedTag, lock, s.now().Add(s.leaseTTL))
	if err != nil {
		return nil, false, err
	}

	if lock && len(payouts) > 0 {
		s.logger.Info("locked payouts for settlement worker", zap.Int("count", len(payouts)))
	}
	return payouts, lock, nil
}

// SettlePayouts applies a successful payout settlement: one Transaction keyed
// by the proof, per-user summaries, and payout links, atomically. Creation is
// idempotent by proof, so retrying an already-committed batch reports
// created=false and changes nothing.
func (s *Service) SettlePayouts(ctx context.Context, cmd SettlePayoutsCommand) (bool, error) {
	created, err := s.repo.SettlePayouts(ctx, cmd.Proof, cmd.MergedTag, cmd.PayoutIDs, cmd.BonusIDs)
	if err != nil {
		return false, err
	}

	if created {
		s.logger.Info("settled payout batch",
			zap.String("txid", cmd.Proof),
			zap.Int("payouts", len(cmd.PayoutIDs)),
			zap.Int("bonus_payouts", len(cmd.BonusIDs)))
	} else {
		s.logger.Info("payout batch already settled, commit retried", zap.String("txid", cmd.Proof))
	}
	return created, nil
}

// ResetPayouts releases leases on the given payout and bonus payout ids. It
// never touches a transaction link once set.
func (s *Service) ResetPayouts(ctx context.Context, cmd ResetPayoutsCommand) (bool, error) {
	if len(cmd.PayoutIDs) == 0 && len(cmd.BonusIDs) == 0 {
		return false, nil
	}

	if err := s.repo.UnlockPayouts(ctx, cmd.PayoutIDs, cmd.BonusIDs); err != nil {
		return false, err
	}
	s.logger.Info("reset payout locks",
		zap.Int("payouts", len(cmd.PayoutIDs)),
		zap.Int("bonus_payouts", len(cmd.BonusIDs)))
	return true, nil
}

// ConfirmTransactions marks the given transactions as confirmed on the
// settlement network. Confirming an already-confirmed transaction is a no-op.
func (s *Service) ConfirmTransactions(ctx context.Context, txids []string) error {
	if len(txids) == 0 {
		return nil
	}

	if err := s.repo.ConfirmTransactions(ctx, txids); err != nil {
		return err
	}
	s.logger.Info("confirmed transactions", zap.Int("count", len(txids)))
	return nil
}
