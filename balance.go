package cashbook

import "github.com/shopspring/decimal"

// Balances computes the current balance of every account by folding posted
// vouchers over the opening balances: each line adds (dr - cr) to the balance
// of its account. Drafts never affect the result.
//
// Lines referencing an account that no longer exists are skipped on purpose:
// the delete guard makes them unreachable in normal operation, but an
// imported or restored document can still contain them, and a balance run
// over such a document should degrade rather than fail.
//
// The computation is deterministic, side effect free, and independent of the
// order of vouchers in the ledger.
func (l *Ledger) Balances() map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal, len(l.Accounts))
	for _, a := range l.Accounts {
		balances[a.ID] = a.OpeningBalance
	}
	for _, tx := range l.Transactions {
		if !tx.Posted {
			continue
		}
		for _, line := range tx.Lines {
			b, ok := balances[line.AccountID]
			if !ok {
				continue
			}
			balances[line.AccountID] = b.Add(line.Dr.Sub(line.Cr))
		}
	}
	return balances
}
