package cashbook

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// balanceTolerance is the absolute epsilon within which a voucher's debit and
// credit totals are considered equal (0.01).
var balanceTolerance = decimal.New(1, -2)

// validateTransaction checks a voucher against the double-entry invariants
// before it is committed. It runs before any counter mutation or persistence,
// so a rejected voucher leaves the ledger exactly as it was.
func (l *Ledger) validateTransaction(tx Transaction) error {
	if len(tx.Lines) < minLines {
		return &ValidationError{Msg: "at least 2 lines required"}
	}
	for _, line := range tx.Lines {
		if line.Dr.IsNegative() || line.Cr.IsNegative() {
			return &ValidationError{Msg: fmt.Sprintf("line %s: amounts must not be negative", line.ID)}
		}
		if line.Dr.IsPositive() && line.Cr.IsPositive() {
			return &ValidationError{Msg: fmt.Sprintf("line %s: debit and credit are mutually exclusive", line.ID)}
		}
		if l.Account(line.AccountID) == nil {
			return &NotFoundError{Kind: "account", ID: line.AccountID}
		}
	}
	dr, cr := tx.Totals()
	if dr.Sub(cr).Abs().GreaterThan(balanceTolerance) {
		return &ValidationError{Msg: "totals do not match", TotalDr: dr, TotalCr: cr}
	}
	return nil
}

// Check validates the whole ledger against the structural invariants: unique
// account ids and serials, unique voucher ids, and every voucher valid under
// the same rules SaveTransaction enforces. It is what stands between an
// imported document and the session.
func (l *Ledger) Check() error {
	accIDs := make(map[string]struct{}, len(l.Accounts))
	serials := make(map[int]struct{}, len(l.Accounts))
	for _, a := range l.Accounts {
		if a.ID == "" {
			return &ValidationError{Msg: fmt.Sprintf("account %q has no id", a.Name)}
		}
		if _, dup := accIDs[a.ID]; dup {
			return &ValidationError{Msg: fmt.Sprintf("duplicate account id %q", a.ID)}
		}
		accIDs[a.ID] = struct{}{}
		if a.Serial <= 0 {
			return &ValidationError{Msg: fmt.Sprintf("account %q has invalid serial %d", a.Name, a.Serial)}
		}
		if _, dup := serials[a.Serial]; dup {
			return &ValidationError{Msg: fmt.Sprintf("duplicate account serial %d", a.Serial)}
		}
		serials[a.Serial] = struct{}{}
	}

	txIDs := make(map[string]struct{}, len(l.Transactions))
	for _, tx := range l.Transactions {
		if tx.ID == "" {
			return &ValidationError{Msg: fmt.Sprintf("voucher #%d has no id", tx.VoucherNo)}
		}
		if _, dup := txIDs[tx.ID]; dup {
			return &ValidationError{Msg: fmt.Sprintf("duplicate voucher id %q", tx.ID)}
		}
		txIDs[tx.ID] = struct{}{}
		if tx.VoucherNo <= 0 {
			return &ValidationError{Msg: fmt.Sprintf("voucher %q has invalid number %d", tx.ID, tx.VoucherNo)}
		}
		if err := l.validateTransaction(tx); err != nil {
			return fmt.Errorf("voucher #%d: %w", tx.VoucherNo, err)
		}
	}
	return nil
}
