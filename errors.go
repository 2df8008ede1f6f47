package cashbook

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// This file centralizes the domain errors of the ledger. They are business
// level failures, not system errors: every operation rejects bad input with
// one of these types and leaves the ledger untouched, so the caller can
// correct the input and retry.

// ValidationError reports caller-supplied data that violates a ledger
// invariant (empty account name, unbalanced voucher, too few lines).
// For unbalanced vouchers it carries both computed totals for display.
type ValidationError struct {
	Msg     string
	TotalDr decimal.Decimal
	TotalCr decimal.Decimal
}

func (e *ValidationError) Error() string {
	if !e.TotalDr.IsZero() || !e.TotalCr.IsZero() {
		return fmt.Sprintf("%s (dr %s, cr %s)", e.Msg, e.TotalDr.StringFixed(2), e.TotalCr.StringFixed(2))
	}
	return e.Msg
}

// NotFoundError reports a reference to an account or voucher id that does not
// exist in the current ledger. It usually signals a stale reference upstream.
type NotFoundError struct {
	Kind string // "account" or "voucher"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// ConflictError reports a structural constraint violated by a requested
// deletion, typically an account still referenced by voucher lines.
type ConflictError struct {
	Msg       string
	AccountID string
}

func (e *ConflictError) Error() string { return e.Msg }

// PersistenceError reports a failed store operation. It is non fatal to the
// in-memory session: the mutation that triggered the save is kept, and the
// caller is informed that durability is not guaranteed.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
