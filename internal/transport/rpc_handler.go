package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/minepool-labs/poolledger-backend/internal/envelope"
	"github.com/minepool-labs/poolledger-backend/internal/settlement"
	"github.com/minepool-labs/poolledger-backend/pkg/safe"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// maxBodyBytes bounds a request envelope. Settlement batches are small; a
// larger body is never legitimate.
const maxBodyBytes = 1 << 20

// validationError is a payload the caller must correct and resend. It maps to
// a client error response and is never retried server-side.
type validationError struct {
	reason string
}

func (e *validationError) Error() string {
	return e.reason
}

func invalidf(format string, args ...any) error {
	return &validationError{reason: fmt.Sprintf(format, args...)}
}

// RPCHandler serves the settlement worker protocol. Every request and
// response body is an authenticated envelope; auth failures share one
// response shape regardless of cause.
type RPCHandler struct {
	logger  *zap.Logger
	codec   Codec
	service SettlementService
	metrics Metrics
	limiter ratelimit.Limiter
}

// NewRPCHandler returns an RPCHandler instance.
func NewRPCHandler(logger *zap.Logger, codec Codec, service SettlementService, metrics Metrics, limiter ratelimit.Limiter) (*RPCHandler, error) {
	if codec == nil {
		return nil, errors.New("envelope codec is required")
	}
	if service == nil {
		return nil, errors.New("settlement service is required")
	}
	if metrics == nil {
		return nil, errors.New("rpc metrics is required")
	}
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}

	return &RPCHandler{
		logger:  logger,
		codec:   codec,
		service: service,
		metrics: metrics,
		limiter: limiter,
	}, nil
}

// Register mounts every protocol operation on mux.
func (h *RPCHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /claim-exchange-requests", h.serve("claim_exchange_requests", h.claimExchangeRequests))
	mux.HandleFunc("POST /commit-exchange-requests", h.serve("commit_exchange_requests", h.commitExchangeRequests))
	mux.HandleFunc("POST /reset-exchange-requests", h.serve("reset_exchange_requests", h.resetExchangeRequests))
	mux.HandleFunc("POST /claim-payouts", h.serve("claim_payouts", h.claimPayouts))
	mux.HandleFunc("POST /commit-payouts", h.serve("commit_payouts", h.commitPayouts))
	mux.HandleFunc("POST /confirm-transactions", h.serve("confirm_transactions", h.confirmTransactions))
}

type operationFunc func(ctx context.Context, payload json.RawMessage) (any, error)

func (h *RPCHandler) serve(operation string, op operationFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		code := http.StatusOK
		defer func() {
			h.metrics.ObserveRequest(operation, code, started)
		}()

		h.limiter.Take()

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			code = http.StatusBadRequest
			h.logger.Warn("failed to read request body",
				zap.String("operation", operation), zap.Error(err))
			http.Error(w, "bad request", code)
			return
		}

		payload, err := h.codec.Open(body)
		if err != nil {
			// One response shape for every rejected envelope; only the
			// log and the metric distinguish the cause.
			code = http.StatusUnauthorized
			kind := authFailureKind(err)
			h.metrics.ObserveAuthFailure(operation, kind)
			h.logger.Warn("rejected request envelope",
				zap.String("operation", operation), zap.String("kind", kind))
			http.Error(w, "not authenticated", code)
			return
		}

		resp, err := op(r.Context(), payload)
		var verr *validationError
		if errors.As(err, &verr) {
			code = http.StatusBadRequest
			h.logger.Warn("rejected request payload",
				zap.String("operation", operation), zap.String("reason", verr.reason))
			http.Error(w, "bad request", code)
			return
		}
		if err != nil {
			code = http.StatusInternalServerError
			h.logger.Error("operation failed",
				zap.String("operation", operation), zap.Error(err))
			http.Error(w, "internal error", code)
			return
		}

		sealed, err := h.codec.Seal(resp)
		if err != nil {
			code = http.StatusInternalServerError
			h.logger.Error("failed to seal response",
				zap.String("operation", operation), zap.Error(err))
			http.Error(w, "internal error", code)
			return
		}

		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(sealed)
	}
}

func authFailureKind(err error) string {
	switch {
	case errors.Is(err, envelope.ErrBadSignature):
		return "bad_signature"
	case errors.Is(err, envelope.ErrExpired):
		return "expired"
	default:
		return "malformed"
	}
}

// decodeStrict parses payload into v with numbers kept exact, so identifier
// validation can reject fractional values instead of truncating them.
func decodeStrict(payload json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return invalidf("decode payload: %v", err)
	}
	if dec.More() {
		return invalidf("trailing data after payload")
	}
	return nil
}

func (h *RPCHandler) claimExchangeRequests(ctx context.Context, payload json.RawMessage) (any, error) {
	var req struct {
		Lock bool `json:"lock"`
	}
	if err := decodeStrict(payload, &req); err != nil {
		return nil, err
	}

	requests, lockApplied, err := h.service.ClaimExchangeRequests(ctx, req.Lock)
	if err != nil {
		return nil, err
	}

	items := make([][]any, 0, len(requests))
	for _, r := range requests {
		items = append(items, []any{r.ID, r.Currency, r.Quantity})
	}
	return []any{items, lockApplied}, nil
}

func (h *RPCHandler) commitExchangeRequests(ctx context.Context, payload json.RawMessage) (any, error) {
	var req struct {
		Update    bool                   `json:"update"`
		Completed map[string]json.Number `json:"completed"`
	}
	if err := decodeStrict(payload, &req); err != nil {
		return nil, err
	}

	// Validated before the flag branch: a malformed report is a client error
	// even when the update flag makes it a no-op.
	completed := make(map[int64]int64, len(req.Completed))
	for key, quantity := range req.Completed {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, invalidf("completed key %q is not an id", key)
		}
		q, err := safe.Int64(quantity)
		if err != nil {
			return nil, invalidf("completed quantity for id %d: %v", id, err)
		}
		completed[id] = q
	}
	if !req.Update {
		return true, nil
	}

	applied, err := h.service.CommitExchangeRequests(ctx, completed)
	if err != nil {
		return nil, err
	}
	if !applied {
		return true, nil
	}
	return successResult(fmt.Sprintf("updated %d exchange requests", len(completed))), nil
}

func (h *RPCHandler) resetExchangeRequests(ctx context.Context, payload json.RawMessage) (any, error) {
	var req struct {
		Reset bool          `json:"reset"`
		IDs   []json.Number `json:"ids"`
	}
	if err := decodeStrict(payload, &req); err != nil {
		return nil, err
	}

	ids, err := safe.Int64Slice(req.IDs)
	if err != nil {
		return nil, invalidf("ids: %v", err)
	}
	if !req.Reset {
		return true, nil
	}

	applied, err := h.service.ResetExchangeRequests(ctx, ids)
	if err != nil {
		return nil, err
	}
	if !applied {
		return true, nil
	}
	return successResult(fmt.Sprintf("reset %d exchange requests", len(ids))), nil
}

func (h *RPCHandler) claimPayouts(ctx context.Context, payload json.RawMessage) (any, error) {
	var req struct {
		Lock   bool    `json:"lock"`
		Merged *string `json:"merged"`
	}
	if err := decodeStrict(payload, &req); err != nil {
		return nil, err
	}

	payouts, lockApplied, err := h.service.ClaimPayouts(ctx, req.Lock, req.Merged)
	if err != nil {
		return nil, err
	}

	items := make([][]any, 0, len(payouts))
	for _, p := range payouts {
		items = append(items, []any{p.User, p.Amount, p.ID})
	}
	return []any{items, lockApplied}, nil
}

func (h *RPCHandler) commitPayouts(ctx context.Context, payload json.RawMessage) (any, error) {
	var req struct {
		Proof  *string       `json:"proof"`
		Merged *string       `json:"merged"`
		Reset  bool          `json:"reset"`
		PIDs   []json.Number `json:"pids"`
		BIDs   []json.Number `json:"bids"`
	}
	if err := decodeStrict(payload, &req); err != nil {
		return nil, err
	}

	pids, err := safe.Int64Slice(req.PIDs)
	if err != nil {
		return nil, invalidf("pids: %v", err)
	}
	bids, err := safe.Int64Slice(req.BIDs)
	if err != nil {
		return nil, invalidf("bids: %v", err)
	}

	// A proof selects the settle path even when the reset flag is also set.
	if req.Proof != nil {
		cmd, cmdErr := settlement.NewSettlePayoutsCommand(*req.Proof, req.Merged, pids, bids)
		if cmdErr != nil {
			return nil, invalidf("proof: %v", cmdErr)
		}

		created, settleErr := h.service.SettlePayouts(ctx, cmd)
		if settleErr != nil {
			return nil, settleErr
		}
		if !created {
			return successResult("transaction already recorded"), nil
		}
		return successResult(fmt.Sprintf("settled %d payouts", len(pids)+len(bids))), nil
	}

	if !req.Reset {
		return true, nil
	}

	applied, err := h.service.ResetPayouts(ctx, settlement.ResetPayoutsCommand{PayoutIDs: pids, BonusIDs: bids})
	if err != nil {
		return nil, err
	}
	if !applied {
		return true, nil
	}
	return successResult(fmt.Sprintf("reset %d payouts", len(pids)+len(bids))), nil
}

func (h *RPCHandler) confirmTransactions(ctx context.Context, payload json.RawMessage) (any, error) {
	var req struct {
		TXIDs []string `json:"txids"`
	}
	if err := decodeStrict(payload, &req); err != nil {
		return nil, err
	}

	if err := h.service.ConfirmTransactions(ctx, req.TXIDs); err != nil {
		return nil, err
	}
	return true, nil
}

func successResult(result string) map[string]any {
	return map[string]any{"success": true, "result": result}
}
