package settlement

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// proofLength is the exact hex length of a settlement-network transaction id.
const proofLength = chainhash.MaxHashStringSize

// PayoutCommit is the outcome a settlement worker reports for a claimed payout
// batch. Exactly one of the two variants executes per commit call; the variant
// is fixed at parse time, not by key probing during execution.
type PayoutCommit interface {
	payoutCommit()
}

// SettlePayoutsCommand reports successful settlement with a network proof.
type SettlePayoutsCommand struct {
	Proof     string
	MergedTag *string
	PayoutIDs []int64
	BonusIDs  []int64
}

// ResetPayoutsCommand reports failed settlement and releases the lease.
type ResetPayoutsCommand struct {
	PayoutIDs []int64
	BonusIDs  []int64
}

func (SettlePayoutsCommand) payoutCommit() {}
func (ResetPayoutsCommand) payoutCommit()  {}

// NewSettlePayoutsCommand validates the settlement proof and builds the
// success variant. The proof must be a full-length settlement-network
// transaction id; anything else is a caller error.
func NewSettlePayoutsCommand(proof string, mergedTag *string, payoutIDs, bonusIDs []int64) (SettlePayoutsCommand, error) {
	if len(proof) != proofLength {
		return SettlePayoutsCommand{}, fmt.Errorf("proof must be %d characters, got %d", proofLength, len(proof))
	}
	if _, err := chainhash.NewHashFromStr(proof); err != nil {
		return SettlePayoutsCommand{}, fmt.Errorf("parse proof: %w", err)
	}

	return SettlePayoutsCommand{
		Proof:     proof,
		MergedTag: mergedTag,
		PayoutIDs: payoutIDs,
		BonusIDs:  bonusIDs,
	}, nil
}
