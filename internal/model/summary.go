package model

import "sort"

// SummarizePayouts groups payouts by user and derives one TransactionSummary per
// user with the summed amount and item count. Output is ordered by user so the
// settle transaction writes rows deterministically.
func SummarizePayouts(txid string, payouts []Payout) []TransactionSummary {
	if len(payouts) == 0 {
		return nil
	}

	byUser := make(map[string]*TransactionSummary, len(payouts))
	for _, p := range payouts {
		s, ok := byUser[p.User]
		if !ok {
			s = &TransactionSummary{TransactionTXID: txid, User: p.User}
			byUser[p.User] = s
		}
		s.Amount += p.Amount
		s.PayoutCount++
	}

	summaries := make([]TransactionSummary, 0, len(byUser))
	for _, s := range byUser {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].User < summaries[j].User
	})
	return summaries
}
