package cashbook

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IDGenerator mints the opaque unique identifiers used as storage keys for
// accounts, vouchers, and lines. It is injected into the session so tests can
// supply a deterministic source.
type IDGenerator interface {
	AccountID() string
	TransactionID() string
	LineID() string
}

// randomIDs is the default generator. Keys are prefixed so a raw snapshot
// stays readable ("acc_", "tx_", "line_").
type randomIDs struct{}

// NewIDGenerator returns the default random id generator.
func NewIDGenerator() IDGenerator { return randomIDs{} }

func (randomIDs) AccountID() string     { return "acc_" + token() }
func (randomIDs) TransactionID() string { return "tx_" + token() }
func (randomIDs) LineID() string        { return "line_" + token() }

func token() string {
	// A short slice of a v4 uuid is plenty for a single-user ledger.
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// SequenceIDs is a deterministic IDGenerator for tests: acc_1, tx_1, line_1...
type SequenceIDs struct {
	accounts, transactions, lines int
}

func (s *SequenceIDs) AccountID() string {
	s.accounts++
	return fmt.Sprintf("acc_%d", s.accounts)
}

func (s *SequenceIDs) TransactionID() string {
	s.transactions++
	return fmt.Sprintf("tx_%d", s.transactions)
}

func (s *SequenceIDs) LineID() string {
	s.lines++
	return fmt.Sprintf("line_%d", s.lines)
}
