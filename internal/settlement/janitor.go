package settlement

import (
	"context"
	"errors"
	"time"

	"github.com/minepool-labs/poolledger-backend/internal/clock"
	"go.uber.org/zap"
)

// Janitor periodically releases leases whose expiry has passed, returning
// work items abandoned by a crashed settlement worker to the claimable pool.
type Janitor struct {
	logger   *zap.Logger
	repo     LeaseReclaimer
	metrics  JanitorMetrics
	interval time.Duration
	sleep    func(context.Context, time.Duration) error
	now      func() time.Time
}

// NewJanitor builds a Janitor that scans every interval.
func NewJanitor(repo LeaseReclaimer, metrics JanitorMetrics, interval time.Duration, logger *zap.Logger) (*Janitor, error) {
	if repo == nil {
		return nil, errors.New("lease reclaimer is required")
	}
	if metrics == nil {
		return nil, errors.New("janitor metrics is required")
	}
	if interval <= 0 {
		return nil, errors.New("janitor interval must be positive")
	}

	return &Janitor{
		logger:   logger,
		repo:     repo,
		metrics:  metrics,
		interval: interval,
		sleep:    clock.SleepWithContext,
		now:      time.Now,
	}, nil
}

// Run reclaims expired leases until the context is canceled. Failures are
// logged and retried on the next interval; the loop never aborts on a store
// error.
func (j *Janitor) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := j.runOnce(ctx); err != nil {
			j.logger.Warn("lease reclaim failed, retrying next interval", zap.Error(err))
		}
		if err := j.sleep(ctx, j.interval); err != nil {
			return err
		}
	}
}

func (j *Janitor) runOnce(ctx context.Context) error {
	started := time.Now()
	reclaimed, err := j.repo.ReclaimExpiredLeases(ctx, j.now())
	j.metrics.ObserveReclaim(err, reclaimed, started)
	if err != nil {
		return err
	}

	if reclaimed > 0 {
		j.logger.Info("reclaimed expired leases", zap.Int64("count", reclaimed))
	}
	return nil
}
