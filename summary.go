package cashbook

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Summary provides an at-a-glance overview of the cashbook: headline cash and
// bank totals plus counts of accounts and vouchers.
type Summary struct {
	CashTotal decimal.Decimal
	BankTotal decimal.Decimal
	Accounts  int
	Posted    int
	Drafts    int
}

// Summarize computes the dashboard summary from current balances. An account
// counts toward the cash (or bank) total when its free-text type contains
// "cash" (or "bank"), case-insensitively.
func (l *Ledger) Summarize() Summary {
	s := Summary{Accounts: len(l.Accounts)}
	balances := l.Balances()
	for _, a := range l.Accounts {
		kind := strings.ToLower(a.Type)
		switch {
		case strings.Contains(kind, "cash"):
			s.CashTotal = s.CashTotal.Add(balances[a.ID])
		case strings.Contains(kind, "bank"):
			s.BankTotal = s.BankTotal.Add(balances[a.ID])
		}
	}
	for _, tx := range l.Transactions {
		if tx.Posted {
			s.Posted++
		} else {
			s.Drafts++
		}
	}
	return s
}
