package cashbook

import (
	"errors"
	"testing"
	"time"
)

func TestCreateAccount(t *testing.T) {
	l, _ := newTestLedger(t)

	if len(l.Accounts) != 3 {
		t.Fatalf("len(Accounts) = %d, want 3", len(l.Accounts))
	}
	for i, want := range []struct {
		id     string
		serial int
		name   string
	}{
		{"acc_1", 1, "Cash"},
		{"acc_2", 2, "Bank"},
		{"acc_3", 3, "Expenses"},
	} {
		got := l.Accounts[i]
		if got.ID != want.id || got.Serial != want.serial || got.Name != want.name {
			t.Errorf("Accounts[%d] = {%s %d %s}, want {%s %d %s}",
				i, got.ID, got.Serial, got.Name, want.id, want.serial, want.name)
		}
	}
	if l.Meta.NextAccountSerial != 4 {
		t.Errorf("NextAccountSerial = %d, want 4", l.Meta.NextAccountSerial)
	}
}

func TestCreateAccountRejectsEmptyName(t *testing.T) {
	ids := &SequenceIDs{}
	l := NewLedger()
	for _, name := range []string{"", "   "} {
		_, _, err := l.CreateAccount(AccountSpec{Name: name}, ids)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("CreateAccount(name=%q) error = %v, want ValidationError", name, err)
		}
	}
}

func TestCreateAccountLeavesReceiverUntouched(t *testing.T) {
	ids := &SequenceIDs{}
	l := NewLedger()
	n, _, err := l.CreateAccount(AccountSpec{Name: "Cash"}, ids)
	if err != nil {
		t.Fatalf("CreateAccount() failed: %v", err)
	}
	if len(l.Accounts) != 0 {
		t.Errorf("receiver gained %d accounts, want 0", len(l.Accounts))
	}
	if len(n.Accounts) != 1 {
		t.Errorf("snapshot has %d accounts, want 1", len(n.Accounts))
	}
}

func TestUpdateAccount(t *testing.T) {
	l, _ := newTestLedger(t)

	name := "Petty Cash"
	opening := dec("42")
	n, acc, err := l.UpdateAccount("acc_1", AccountPatch{Name: &name, OpeningBalance: &opening})
	if err != nil {
		t.Fatalf("UpdateAccount() failed: %v", err)
	}
	if acc.Name != "Petty Cash" || !acc.OpeningBalance.Equal(dec("42")) {
		t.Errorf("updated account = {%s %s}, want {Petty Cash 42}", acc.Name, acc.OpeningBalance)
	}
	if acc.Serial != 1 || acc.ID != "acc_1" {
		t.Errorf("id/serial changed to %s/%d, want acc_1/1", acc.ID, acc.Serial)
	}
	// Untouched fields survive.
	if acc.Type != "Cash" {
		t.Errorf("Type = %q, want Cash", acc.Type)
	}
	// Receiver still holds the old name.
	if got := l.Account("acc_1").Name; got != "Cash" {
		t.Errorf("receiver name = %q, want Cash", got)
	}
	if got := n.Account("acc_1").Name; got != "Petty Cash" {
		t.Errorf("snapshot name = %q, want Petty Cash", got)
	}
}

func TestUpdateAccountErrors(t *testing.T) {
	l, _ := newTestLedger(t)

	empty := " "
	_, _, err := l.UpdateAccount("acc_1", AccountPatch{Name: &empty})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("UpdateAccount(empty name) error = %v, want ValidationError", err)
	}

	_, _, err = l.UpdateAccount("acc_99", AccountPatch{})
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Errorf("UpdateAccount(unknown) error = %v, want NotFoundError", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	l, _ := newTestLedger(t)
	n, err := l.DeleteAccount("acc_3")
	if err != nil {
		t.Fatalf("DeleteAccount() failed: %v", err)
	}
	if n.Account("acc_3") != nil {
		t.Error("acc_3 still present after delete")
	}
	if len(l.Accounts) != 3 {
		t.Error("receiver lost an account")
	}
	// Serials are never reused.
	ids := &SequenceIDs{}
	n, acc, err := n.CreateAccount(AccountSpec{Name: "Savings"}, ids)
	if err != nil {
		t.Fatalf("CreateAccount() failed: %v", err)
	}
	if acc.Serial != 4 {
		t.Errorf("new account serial = %d, want 4", acc.Serial)
	}
}

func TestDeleteAccountGuard(t *testing.T) {
	l, ids := newTestLedger(t)

	// A draft referencing the account is enough to block the delete.
	l, _ = mustSave(t, l, voucher(NewDate(2025, time.March, 1), "rent", false,
		drLine("acc_3", "50"), crLine("acc_1", "50")), ids)

	_, err := l.DeleteAccount("acc_3")
	var cerr *ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("DeleteAccount(referenced) error = %v, want ConflictError", err)
	}
	if cerr.AccountID != "acc_3" {
		t.Errorf("ConflictError.AccountID = %q, want acc_3", cerr.AccountID)
	}

	_, err = l.DeleteAccount("acc_99")
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Errorf("DeleteAccount(unknown) error = %v, want NotFoundError", err)
	}
}

func TestSaveTransactionCreate(t *testing.T) {
	l, ids := newTestLedger(t)

	l, tx := mustSave(t, l, voucher(NewDate(2025, time.March, 1), "opening float", true,
		drLine("acc_1", "100"), crLine("acc_2", "100")), ids)

	if tx.ID != "tx_1" {
		t.Errorf("ID = %q, want tx_1", tx.ID)
	}
	if tx.VoucherNo != 1 {
		t.Errorf("VoucherNo = %d, want 1", tx.VoucherNo)
	}
	if tx.Timestamp != testNow.UnixMilli() {
		t.Errorf("Timestamp = %d, want %d", tx.Timestamp, testNow.UnixMilli())
	}
	for i, line := range tx.Lines {
		if line.ID == "" {
			t.Errorf("Lines[%d] has no id", i)
		}
	}
	if l.Meta.NextVoucherNo != 2 {
		t.Errorf("NextVoucherNo = %d, want 2", l.Meta.NextVoucherNo)
	}
}

func TestSaveTransactionVoucherNumbering(t *testing.T) {
	testCases := []struct {
		name        string
		supplied    int
		wantNo      int
		wantCounter int
	}{
		{"auto assign", 0, 1, 2},
		{"explicit at counter", 1, 1, 2},
		{"explicit above counter", 7, 7, 8},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, ids := newTestLedger(t)
			draft := voucher(NewDate(2025, time.March, 1), "", false,
				drLine("acc_1", "10"), crLine("acc_2", "10"))
			draft.VoucherNo = tc.supplied
			l, tx := mustSave(t, l, draft, ids)
			if tx.VoucherNo != tc.wantNo {
				t.Errorf("VoucherNo = %d, want %d", tx.VoucherNo, tc.wantNo)
			}
			if l.Meta.NextVoucherNo != tc.wantCounter {
				t.Errorf("NextVoucherNo = %d, want %d", l.Meta.NextVoucherNo, tc.wantCounter)
			}
		})
	}
}

func TestSaveTransactionBackdatedNumberKeepsCounter(t *testing.T) {
	l, ids := newTestLedger(t)

	// Push the counter to 8.
	draft := voucher(NewDate(2025, time.March, 1), "", false,
		drLine("acc_1", "10"), crLine("acc_2", "10"))
	draft.VoucherNo = 7
	l, _ = mustSave(t, l, draft, ids)

	// A lower explicit number must not reset it.
	draft = voucher(NewDate(2025, time.February, 1), "", false,
		drLine("acc_1", "10"), crLine("acc_2", "10"))
	draft.VoucherNo = 3
	l, tx := mustSave(t, l, draft, ids)
	if tx.VoucherNo != 3 {
		t.Errorf("VoucherNo = %d, want 3", tx.VoucherNo)
	}
	if l.Meta.NextVoucherNo != 8 {
		t.Errorf("NextVoucherNo = %d, want 8", l.Meta.NextVoucherNo)
	}
}

func TestSaveTransactionUpdate(t *testing.T) {
	l, ids := newTestLedger(t)
	l, tx := mustSave(t, l, voucher(NewDate(2025, time.March, 1), "draft", false,
		drLine("acc_1", "10"), crLine("acc_2", "10")), ids)

	tx.Narration = "posted now"
	tx.Posted = true
	counter := l.Meta.NextVoucherNo
	l, updated := mustSave(t, l, tx, ids)

	if len(l.Transactions) != 1 {
		t.Fatalf("len(Transactions) = %d, want 1", len(l.Transactions))
	}
	if !updated.Posted || updated.Narration != "posted now" {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.VoucherNo != tx.VoucherNo {
		t.Errorf("VoucherNo changed to %d", updated.VoucherNo)
	}
	if l.Meta.NextVoucherNo != counter {
		t.Errorf("NextVoucherNo = %d, want %d (unchanged on update)", l.Meta.NextVoucherNo, counter)
	}
}

func TestSaveTransactionUpdateUnknownID(t *testing.T) {
	l, ids := newTestLedger(t)
	draft := voucher(NewDate(2025, time.March, 1), "", false,
		drLine("acc_1", "10"), crLine("acc_2", "10"))
	draft.ID = "tx_99"
	_, _, err := l.SaveTransaction(draft, ids, testNow)
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("SaveTransaction(unknown id) error = %v, want NotFoundError", err)
	}
}

func TestSaveTransactionValidation(t *testing.T) {
	day := NewDate(2025, time.March, 1)
	testCases := []struct {
		name    string
		draft   Transaction
		wantErr string
	}{
		{
			name:    "single line",
			draft:   voucher(day, "", false, drLine("acc_1", "10")),
			wantErr: "at least 2 lines required",
		},
		{
			name: "negative amount",
			draft: voucher(day, "", false,
				TransactionLine{AccountID: "acc_1", Dr: dec("-5")},
				crLine("acc_2", "-5")),
			wantErr: "amounts must not be negative",
		},
		{
			name: "debit and credit on one line",
			draft: voucher(day, "", false,
				TransactionLine{AccountID: "acc_1", Dr: dec("5"), Cr: dec("5")},
				crLine("acc_2", "0")),
			wantErr: "mutually exclusive",
		},
		{
			name: "unknown account",
			draft: voucher(day, "", false,
				drLine("acc_99", "10"), crLine("acc_2", "10")),
			wantErr: `account "acc_99" not found`,
		},
		{
			name: "unbalanced totals",
			draft: voucher(day, "", false,
				drLine("acc_1", "10"), crLine("acc_2", "9.98")),
			wantErr: "totals do not match",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, ids := newTestLedger(t)
			_, _, err := l.SaveTransaction(tc.draft, ids, testNow)
			if err == nil {
				t.Fatal("SaveTransaction() accepted an invalid voucher")
			}
			if got := err.Error(); !contains(got, tc.wantErr) {
				t.Errorf("error = %q, want it to contain %q", got, tc.wantErr)
			}
			if l.Meta.NextVoucherNo != 1 {
				t.Errorf("counter moved to %d on rejected voucher", l.Meta.NextVoucherNo)
			}
		})
	}
}

func TestSaveTransactionTolerance(t *testing.T) {
	day := NewDate(2025, time.March, 1)
	testCases := []struct {
		name   string
		dr, cr string
		wantOK bool
	}{
		{"exact", "10", "10", true},
		{"off by a cent", "10.01", "10", true},
		{"just past the cent", "10.011", "10", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, ids := newTestLedger(t)
			_, _, err := l.SaveTransaction(voucher(day, "", false,
				drLine("acc_1", tc.dr), crLine("acc_2", tc.cr)), ids, testNow)
			if tc.wantOK && err != nil {
				t.Errorf("SaveTransaction() rejected dr=%s cr=%s: %v", tc.dr, tc.cr, err)
			}
			if !tc.wantOK && err == nil {
				t.Errorf("SaveTransaction() accepted dr=%s cr=%s", tc.dr, tc.cr)
			}
		})
	}
}

func TestUnbalancedErrorCarriesTotals(t *testing.T) {
	l, ids := newTestLedger(t)
	_, _, err := l.SaveTransaction(voucher(NewDate(2025, time.March, 1), "", false,
		drLine("acc_1", "10"), crLine("acc_2", "7")), ids, testNow)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if !verr.TotalDr.Equal(dec("10")) || !verr.TotalCr.Equal(dec("7")) {
		t.Errorf("totals = (%s, %s), want (10, 7)", verr.TotalDr, verr.TotalCr)
	}
}

func TestDeleteTransaction(t *testing.T) {
	l, ids := newTestLedger(t)
	l, tx := mustSave(t, l, voucher(NewDate(2025, time.March, 1), "", true,
		drLine("acc_1", "10"), crLine("acc_2", "10")), ids)

	n, err := l.DeleteTransaction(tx.ID)
	if err != nil {
		t.Fatalf("DeleteTransaction() failed: %v", err)
	}
	if len(n.Transactions) != 0 {
		t.Errorf("len(Transactions) = %d, want 0", len(n.Transactions))
	}
	// The number is not reused.
	if n.Meta.NextVoucherNo != 2 {
		t.Errorf("NextVoucherNo = %d, want 2", n.Meta.NextVoucherNo)
	}

	_, err = l.DeleteTransaction("tx_99")
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Errorf("DeleteTransaction(unknown) error = %v, want NotFoundError", err)
	}
}

func TestCheck(t *testing.T) {
	valid, ids := newTestLedger(t)
	valid, _ = mustSave(t, valid, voucher(NewDate(2025, time.March, 1), "", true,
		drLine("acc_1", "10"), crLine("acc_2", "10")), ids)
	if err := valid.Check(); err != nil {
		t.Fatalf("Check() on a valid ledger failed: %v", err)
	}

	testCases := []struct {
		name    string
		mutate  func(*Ledger)
		wantErr string
	}{
		{
			name:    "duplicate account id",
			mutate:  func(l *Ledger) { l.Accounts[1].ID = "acc_1" },
			wantErr: "duplicate account id",
		},
		{
			name:    "duplicate serial",
			mutate:  func(l *Ledger) { l.Accounts[1].Serial = 1 },
			wantErr: "duplicate account serial",
		},
		{
			name:    "invalid serial",
			mutate:  func(l *Ledger) { l.Accounts[0].Serial = 0 },
			wantErr: "invalid serial",
		},
		{
			name:    "invalid voucher number",
			mutate:  func(l *Ledger) { l.Transactions[0].VoucherNo = 0 },
			wantErr: "invalid number",
		},
		{
			name:    "unbalanced voucher",
			mutate:  func(l *Ledger) { l.Transactions[0].Lines[0].Dr = dec("99") },
			wantErr: "totals do not match",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := valid.shallow()
			// The shallow copy shares line slices; deep-copy vouchers first.
			for i := range l.Transactions {
				l.Transactions[i] = l.Transactions[i].clone()
			}
			tc.mutate(l)
			err := l.Check()
			if err == nil {
				t.Fatal("Check() accepted an invalid ledger")
			}
			if !contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}
