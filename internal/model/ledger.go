// Package model defines domain models for settlement coordination.
package model

import "time"

// ExchangeRequestStatus describes the lifecycle state of an exchange request.
type ExchangeRequestStatus string

var (
	// ExchangeRequestPending marks a request waiting to be sold on an exchange.
	ExchangeRequestPending ExchangeRequestStatus = "pending"
	// ExchangeRequestSettling marks a request a settlement worker is acting on.
	ExchangeRequestSettling ExchangeRequestStatus = "settling"
	// ExchangeRequestCompleted marks a request whose sell order filled.
	ExchangeRequestCompleted ExchangeRequestStatus = "completed"
	// ExchangeRequestFailed marks a request abandoned as unsellable.
	ExchangeRequestFailed ExchangeRequestStatus = "failed"
)

// Terminal reports whether the status excludes the request from future claims.
func (s ExchangeRequestStatus) Terminal() bool {
	return s == ExchangeRequestCompleted || s == ExchangeRequestFailed
}

// ExchangeRequest is a pending currency sale awaiting an external settlement worker.
type ExchangeRequest struct {
	ID                int64
	Currency          string
	Quantity          int64
	Status            ExchangeRequestStatus
	Locked            bool
	ExchangedQuantity *int64
	LeaseExpiresAt    *time.Time
}

// Block scopes payout maturity. Payouts under an immature block are never claimable.
type Block struct {
	ID     int64
	Height uint64
	Mature bool
}

// Payout is a pending user payment awaiting an external settlement worker.
// Rows from the bonus payout table share this shape.
type Payout struct {
	ID              int64
	User            string
	Amount          int64
	BlockID         int64
	MergedTag       *string
	TransactionTXID *string
	Locked          bool
	LeaseExpiresAt  *time.Time
}

// Transaction records a broadcast settlement-network payment. Created exactly
// once per successful payout commit; immutable except for Confirmed, which
// transitions false to true only.
type Transaction struct {
	TXID      string
	MergedTag *string
	Confirmed bool
	CreatedAt time.Time
}

// TransactionSummary is the per-user aggregate written alongside a Transaction.
type TransactionSummary struct {
	TransactionTXID string
	User            string
	Amount          int64
	PayoutCount     int64
}
