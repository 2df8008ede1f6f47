package cashbook

import (
	"github.com/shopspring/decimal"
)

// TransactionLine is one debit-or-credit entry within a voucher, attributed
// to exactly one account. At most one of Dr/Cr is non-zero.
type TransactionLine struct {
	ID        string          `json:"id"`
	AccountID string          `json:"accountId"`
	Narration string          `json:"narration"` // falls back to the voucher narration when empty
	Dr        decimal.Decimal `json:"dr"`
	Cr        decimal.Decimal `json:"cr"`
}

// SetDr sets the debit amount. A positive debit forces the credit to zero.
func (l *TransactionLine) SetDr(d decimal.Decimal) {
	l.Dr = d
	if d.IsPositive() {
		l.Cr = decimal.Zero
	}
}

// SetCr sets the credit amount. A positive credit forces the debit to zero.
func (l *TransactionLine) SetCr(c decimal.Decimal) {
	l.Cr = c
	if c.IsPositive() {
		l.Dr = decimal.Zero
	}
}

// Transaction is a voucher: a dated, numbered set of balanced lines. The id
// is the storage key; VoucherNo is the user-facing fiscal number and may be
// supplied by the caller (e.g. for backdated entries) instead of being
// auto-assigned.
type Transaction struct {
	ID        string            `json:"id"`
	VoucherNo int               `json:"voucherNo"`
	Date      Date              `json:"date"`
	Narration string            `json:"narration"`
	Lines     []TransactionLine `json:"lines"`
	Posted    bool              `json:"posted"`    // false = draft, excluded from balances and reports
	Timestamp int64             `json:"timestamp"` // unix milliseconds of last save
}

// minLines is the smallest voucher double-entry allows.
const minLines = 2

// AddLine appends an empty line to the voucher.
func (t *Transaction) AddLine(ids IDGenerator) *TransactionLine {
	t.Lines = append(t.Lines, TransactionLine{ID: ids.LineID()})
	return &t.Lines[len(t.Lines)-1]
}

// RemoveLine removes the line with the given id. It refuses to shrink the
// voucher below the double-entry minimum of two lines.
func (t *Transaction) RemoveLine(lineID string) error {
	if len(t.Lines) <= minLines {
		return &ValidationError{Msg: "at least 2 lines required"}
	}
	for i, l := range t.Lines {
		if l.ID == lineID {
			t.Lines = append(t.Lines[:i], t.Lines[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "line", ID: lineID}
}

// Totals returns the summed debits and credits of the voucher lines.
func (t Transaction) Totals() (dr, cr decimal.Decimal) {
	for _, l := range t.Lines {
		dr = dr.Add(l.Dr)
		cr = cr.Add(l.Cr)
	}
	return dr, cr
}

// clone returns a deep copy of the voucher (its line slice is owned).
func (t Transaction) clone() Transaction {
	lines := make([]TransactionLine, len(t.Lines))
	copy(lines, t.Lines)
	t.Lines = lines
	return t
}
