package cashbook

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func contains(s, sub string) bool { return strings.Contains(s, sub) }

// testNow is the fixed commit time used by ledger tests.
var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// newTestLedger creates a ledger with three accounts: Cash (acc_1, opening
// 100), Bank (acc_2) and Expenses (acc_3).
func newTestLedger(t *testing.T) (*Ledger, *SequenceIDs) {
	t.Helper()
	ids := &SequenceIDs{}
	l := NewLedger()
	var err error
	for _, spec := range []AccountSpec{
		{Name: "Cash", Type: "Cash", OpeningBalance: dec("100")},
		{Name: "Bank", Type: "Bank"},
		{Name: "Expenses", Type: "Expense"},
	} {
		l, _, err = l.CreateAccount(spec, ids)
		if err != nil {
			t.Fatalf("CreateAccount(%q) failed: %v", spec.Name, err)
		}
	}
	return l, ids
}

func drLine(accountID, amount string) TransactionLine {
	l := TransactionLine{AccountID: accountID}
	l.SetDr(dec(amount))
	return l
}

func crLine(accountID, amount string) TransactionLine {
	l := TransactionLine{AccountID: accountID}
	l.SetCr(dec(amount))
	return l
}

func voucher(day Date, narration string, posted bool, lines ...TransactionLine) Transaction {
	return Transaction{Date: day, Narration: narration, Posted: posted, Lines: lines}
}

// mustSave commits a voucher and fails the test on rejection.
func mustSave(t *testing.T, l *Ledger, tx Transaction, ids IDGenerator) (*Ledger, Transaction) {
	t.Helper()
	n, saved, err := l.SaveTransaction(tx, ids, testNow)
	if err != nil {
		t.Fatalf("SaveTransaction() failed: %v", err)
	}
	return n, saved
}

// wantBalance asserts one account balance in the computed map.
func wantBalance(t *testing.T, balances map[string]decimal.Decimal, accountID, want string) {
	t.Helper()
	got, ok := balances[accountID]
	if !ok {
		t.Fatalf("Balances() has no entry for %q", accountID)
	}
	if !got.Equal(dec(want)) {
		t.Errorf("Balances()[%q] = %s, want %s", accountID, got, want)
	}
}
