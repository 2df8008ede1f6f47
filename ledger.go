package cashbook

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PostedSnapshot records the cash and bank totals observed the last time a
// voucher was posted. It is display metadata, never an input to computation.
type PostedSnapshot struct {
	Timestamp int64           `json:"timestamp"`
	Bank      decimal.Decimal `json:"bank"`
	Cash      decimal.Decimal `json:"cash"`
}

// Meta holds the ledger sequence counters and bookkeeping metadata.
type Meta struct {
	NextAccountSerial  int             `json:"nextAccountSerial"`
	NextVoucherNo      int             `json:"nextVoucherNo"`
	LastPostedSnapshot *PostedSnapshot `json:"lastPostedSnapshot"`
	SaveCount          int             `json:"saveCount"`
}

// Ledger is the aggregate state of the cashbook: accounts, vouchers, and
// counters. It is the single source of truth; the balance engine and the
// report builder take it as input and return newly computed values.
//
// Every mutating operation is copy-on-write: it leaves the receiver untouched
// and returns a fresh snapshot, so a reader always sees either the pre or the
// post mutation state, never an intermediate one.
type Ledger struct {
	Accounts     []Account     `json:"accounts"`
	Transactions []Transaction `json:"transactions"`
	Meta         Meta          `json:"meta"`
}

// NewLedger creates an empty ledger with counters at their initial values.
func NewLedger() *Ledger {
	return &Ledger{
		Accounts:     []Account{},
		Transactions: []Transaction{},
		Meta:         Meta{NextAccountSerial: 1, NextVoucherNo: 1},
	}
}

// Account returns the account with the given id, or nil if unknown.
func (l *Ledger) Account(id string) *Account {
	for i := range l.Accounts {
		if l.Accounts[i].ID == id {
			return &l.Accounts[i]
		}
	}
	return nil
}

// AccountByName returns the first account with the given name, or nil.
func (l *Ledger) AccountByName(name string) *Account {
	for i := range l.Accounts {
		if strings.EqualFold(l.Accounts[i].Name, name) {
			return &l.Accounts[i]
		}
	}
	return nil
}

// Transaction returns the voucher with the given id, or nil if unknown.
func (l *Ledger) Transaction(id string) *Transaction {
	for i := range l.Transactions {
		if l.Transactions[i].ID == id {
			return &l.Transactions[i]
		}
	}
	return nil
}

// shallow returns a copy of the ledger whose slices are owned by the copy.
// Element values are shared until an operation replaces them.
func (l *Ledger) shallow() *Ledger {
	n := &Ledger{
		Accounts:     make([]Account, len(l.Accounts)),
		Transactions: make([]Transaction, len(l.Transactions)),
		Meta:         l.Meta,
	}
	copy(n.Accounts, l.Accounts)
	copy(n.Transactions, l.Transactions)
	return n
}

// CreateAccount validates the spec, assigns an id and the next serial, and
// returns the new snapshot together with the created account.
func (l *Ledger) CreateAccount(spec AccountSpec, ids IDGenerator) (*Ledger, Account, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, Account{}, &ValidationError{Msg: "account name is required"}
	}
	n := l.shallow()
	acc := Account{
		ID:             ids.AccountID(),
		Serial:         n.Meta.NextAccountSerial,
		Name:           spec.Name,
		Type:           spec.Type,
		Narration:      spec.Narration,
		OpeningBalance: spec.OpeningBalance,
	}
	n.Meta.NextAccountSerial++
	n.Accounts = append(n.Accounts, acc)
	return n, acc, nil
}

// UpdateAccount merges the patch into the account with the given id. The id
// and serial are immutable and cannot be altered through this path.
func (l *Ledger) UpdateAccount(id string, patch AccountPatch) (*Ledger, Account, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, Account{}, &ValidationError{Msg: "account name is required"}
	}
	n := l.shallow()
	for i := range n.Accounts {
		if n.Accounts[i].ID == id {
			n.Accounts[i] = patch.apply(n.Accounts[i])
			return n, n.Accounts[i], nil
		}
	}
	return nil, Account{}, &NotFoundError{Kind: "account", ID: id}
}

// DeleteAccount removes the account with the given id. It fails with a
// ConflictError while any voucher line, draft or posted, still references the
// account: this guard is what keeps line references from dangling.
func (l *Ledger) DeleteAccount(id string) (*Ledger, error) {
	if l.Account(id) == nil {
		return nil, &NotFoundError{Kind: "account", ID: id}
	}
	for _, tx := range l.Transactions {
		for _, line := range tx.Lines {
			if line.AccountID == id {
				return nil, &ConflictError{Msg: "account is used in transactions", AccountID: id}
			}
		}
	}
	n := l.shallow()
	for i := range n.Accounts {
		if n.Accounts[i].ID == id {
			n.Accounts = append(n.Accounts[:i], n.Accounts[i+1:]...)
			break
		}
	}
	return n, nil
}

// SaveTransaction commits a voucher in one of two modes. With an id it
// replaces the existing voucher; without one it allocates an id and appends.
// In both modes the voucher is validated before any counter is touched.
//
// On create, a supplied voucher number at or above the counter advances the
// counter to one past it, keeping the sequence monotonic relative to the
// highest number ever used; lower numbers (backdated entries) are accepted
// without resetting the counter.
func (l *Ledger) SaveTransaction(draft Transaction, ids IDGenerator, now time.Time) (*Ledger, Transaction, error) {
	if err := l.validateTransaction(draft); err != nil {
		return nil, Transaction{}, err
	}

	tx := draft.clone()
	tx.Timestamp = now.UnixMilli()
	for i := range tx.Lines {
		if tx.Lines[i].ID == "" {
			tx.Lines[i].ID = ids.LineID()
		}
	}

	n := l.shallow()
	if tx.ID != "" {
		// Update mode.
		for i := range n.Transactions {
			if n.Transactions[i].ID == tx.ID {
				n.Transactions[i] = tx
				return n, tx, nil
			}
		}
		return nil, Transaction{}, &NotFoundError{Kind: "voucher", ID: tx.ID}
	}

	// Create mode.
	tx.ID = ids.TransactionID()
	if tx.VoucherNo == 0 {
		tx.VoucherNo = n.Meta.NextVoucherNo
	}
	if tx.VoucherNo >= n.Meta.NextVoucherNo {
		n.Meta.NextVoucherNo = tx.VoucherNo + 1
	}
	n.Transactions = append(n.Transactions, tx)
	return n, tx, nil
}

// DeleteTransaction removes the voucher with the given id. Posted vouchers
// are removed like drafts; deciding whether that is wise is up to the caller.
func (l *Ledger) DeleteTransaction(id string) (*Ledger, error) {
	if l.Transaction(id) == nil {
		return nil, &NotFoundError{Kind: "voucher", ID: id}
	}
	n := l.shallow()
	for i := range n.Transactions {
		if n.Transactions[i].ID == id {
			n.Transactions = append(n.Transactions[:i], n.Transactions[i+1:]...)
			break
		}
	}
	return n, nil
}
