package cashbook

import (
	"fmt"
	"io"
)

// this file contains functions to handle the import/export format.
// It is the same JSON document the snapshot store writes, so an exported
// cashbook can be inspected, edited, and imported back.

// Export writes the full ledger state to 'w' in the import/export format.
func Export(w io.Writer, l *Ledger) error {
	return EncodeLedger(w, l)
}

// Import reads a full replacement ledger from 'r' and validates it against
// the structural invariants before accepting it. The original engine trusted
// imported documents as is; validating here closes that gap without changing
// the format.
func Import(r io.Reader) (*Ledger, error) {
	l, err := DecodeLedger(r)
	if err != nil {
		return nil, err
	}
	if err := l.Check(); err != nil {
		return nil, fmt.Errorf("imported document is invalid: %w", err)
	}
	return l, nil
}
