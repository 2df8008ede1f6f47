package cashbook

import "github.com/shopspring/decimal"

// Account is one ledger account. Its id is an opaque storage key assigned at
// creation; the serial is the user-visible allocation order, never reused and
// never reassigned on edit.
type Account struct {
	ID             string          `json:"id"`
	Serial         int             `json:"serial"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`      // free-text classification, e.g. "Cash", "Bank"
	Narration      string          `json:"narration"` // optional description
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// AccountSpec carries the caller-supplied fields for a new account. ID and
// serial are assigned by the ledger.
type AccountSpec struct {
	Name           string
	Type           string
	Narration      string
	OpeningBalance decimal.Decimal
}

// AccountPatch is a partial update of an account. Nil fields are left
// untouched; id and serial cannot be altered through this path.
type AccountPatch struct {
	Name           *string
	Type           *string
	Narration      *string
	OpeningBalance *decimal.Decimal
}

// apply merges the patch into a copy of the account.
func (p AccountPatch) apply(a Account) Account {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Narration != nil {
		a.Narration = *p.Narration
	}
	if p.OpeningBalance != nil {
		a.OpeningBalance = *p.OpeningBalance
	}
	return a
}
