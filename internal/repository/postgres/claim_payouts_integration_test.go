package postgres

import (
	"time"
)

func (s *RepositorySuite) TestClaimPayoutsEligibility() {
	mature := s.seedBlock(true)
	immature := s.seedBlock(false)

	eligible := s.seedPayout("payouts", "alice", 500, mature, nil, false)
	s.seedPayout("payouts", "bob", 300, immature, nil, false)
	s.seedPayout("payouts", "carol", 200, mature, nil, true)

	tag := "doge"
	tagged := s.seedPayout("payouts", "dave", 100, mature, &tag, false)

	linkedTX := testTXID('a')
	s.seedTransaction(linkedTX)
	linked := s.seedPayout("payouts", "erin", 400, mature, nil, false)
	_, err := s.repo.db.ExecContext(s.testCtx,
		`UPDATE payouts SET transaction_txid = $1 WHERE id = $2`, linkedTX, linked)
	s.Require().NoError(err)

	claimed, err := s.repo.ClaimPayouts(s.testCtx, nil, false, time.Time{})
	s.Require().NoError(err)
	s.Require().Len(claimed, 1)
	s.Require().Equal(eligible, claimed[0].ID)
	s.Require().Equal("alice", claimed[0].User)
	s.Require().Equal(int64(500), claimed[0].Amount)
	s.Require().Nil(claimed[0].MergedTag)

	claimed, err = s.repo.ClaimPayouts(s.testCtx, &tag, false, time.Time{})
	s.Require().NoError(err)
	s.Require().Len(claimed, 1)
	s.Require().Equal(tagged, claimed[0].ID)
	s.Require().NotNil(claimed[0].MergedTag)
	s.Require().Equal(tag, *claimed[0].MergedTag)
}

func (s *RepositorySuite) TestClaimPayoutsLockIsExclusive() {
	block := s.seedBlock(true)
	id := s.seedPayout("payouts", "alice", 500, block, nil, false)

	leaseUntil := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	claimed, err := s.repo.ClaimPayouts(s.testCtx, nil, true, leaseUntil)
	s.Require().NoError(err)
	s.Require().Len(claimed, 1)
	s.Require().Equal(id, claimed[0].ID)
	s.Require().True(claimed[0].Locked)
	s.Require().NotNil(claimed[0].LeaseExpiresAt)
	s.Require().Equal(leaseUntil, claimed[0].LeaseExpiresAt.UTC())

	again, err := s.repo.ClaimPayouts(s.testCtx, nil, true, leaseUntil)
	s.Require().NoError(err)
	s.Require().Empty(again)
}

func (s *RepositorySuite) TestUnlockPayoutsIsIdempotentAndCommutative() {
	block := s.seedBlock(true)
	first := s.seedPayout("payouts", "alice", 500, block, nil, true)
	second := s.seedPayout("payouts", "bob", 300, block, nil, true)
	third := s.seedPayout("payouts", "carol", 200, block, nil, true)
	bonus := s.seedPayout("bonus_payouts", "alice", 50, block, nil, true)

	// Overlapping unlocks land on the same state as one combined unlock.
	s.Require().NoError(s.repo.UnlockPayouts(s.testCtx, []int64{first, second}, nil))
	s.Require().NoError(s.repo.UnlockPayouts(s.testCtx, []int64{second, third}, []int64{bonus}))
	s.Require().NoError(s.repo.UnlockPayouts(s.testCtx, []int64{first, second, third}, []int64{bonus}))

	for _, id := range []int64{first, second, third} {
		s.Require().False(s.lockedState("payouts", id))
	}
	s.Require().False(s.lockedState("bonus_payouts", bonus))
}
