// Package transport exposes the authenticated settlement RPC surface.
package transport

import (
	"context"
	"encoding/json"
	"time"

	"github.com/minepool-labs/poolledger-backend/internal/model"
	"github.com/minepool-labs/poolledger-backend/internal/settlement"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// SettlementService executes the claim/commit/reset/confirm protocol.
	SettlementService interface {
		ClaimExchangeRequests(ctx context.Context, lock bool) ([]model.ExchangeRequest, bool, error)
		CommitExchangeRequests(ctx context.Context, completed map[int64]int64) (bool, error)
		ResetExchangeRequests(ctx context.Context, ids []int64) (bool, error)
		ClaimPayouts(ctx context.Context, lock bool, mergedTag *string) ([]model.Payout, bool, error)
		SettlePayouts(ctx context.Context, cmd settlement.SettlePayoutsCommand) (bool, error)
		ResetPayouts(ctx context.Context, cmd settlement.ResetPayoutsCommand) (bool, error)
		ConfirmTransactions(ctx context.Context, txids []string) error
	}

	// Codec seals and opens the signed request/response envelopes.
	Codec interface {
		Seal(payload any) ([]byte, error)
		Open(token []byte) (json.RawMessage, error)
	}

	// Metrics tracks request outcomes and rejected envelopes.
	Metrics interface {
		ObserveRequest(operation string, code int, started time.Time)
		ObserveAuthFailure(operation, kind string)
	}
)
