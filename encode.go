package cashbook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeLedger writes the ledger as an indented JSON document. The format is
// shared by the snapshot store, backups, and the export boundary, so a saved
// file can be re-imported as is.
func EncodeLedger(w io.Writer, l *Ledger) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	return nil
}

// DecodeLedger reads a ledger from a JSON document. Missing collections are
// normalized to empty slices so downstream code never sees nil. No invariant
// checking happens here; callers on the import path run (*Ledger).Check.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var l Ledger
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return nil, fmt.Errorf("could not decode ledger: %w", err)
	}
	if l.Accounts == nil {
		l.Accounts = []Account{}
	}
	if l.Transactions == nil {
		l.Transactions = []Transaction{}
	}
	return &l, nil
}
