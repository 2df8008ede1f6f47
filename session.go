package cashbook

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"sync"
	"time"
)

// autoBackupEvery is the save cadence of automatic backups.
const autoBackupEvery = 10

// Session owns the live ledger for one interactive run. All mutations go
// through it: the pure operation produces a new snapshot, the session swaps
// it in under a mutex, and then persists it synchronously.
//
// Persistence is deliberately soft: when the store fails after an accepted
// mutation, the in-memory ledger keeps the mutation and the error reported to
// the caller is a *PersistenceError. The working session stays usable even
// when the disk does not.
type Session struct {
	mu     sync.Mutex
	ledger *Ledger
	store  Store
	ids    IDGenerator
	now    func() time.Time
}

// Open loads the last saved snapshot from the store, or starts an empty
// cashbook when none exists yet.
func Open(store Store, ids IDGenerator) (*Session, error) {
	ledger, err := store.LoadSnapshot()
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("no saved cashbook found, starting empty")
		ledger, err = NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not load cashbook: %w", err)
	}
	return &Session{ledger: ledger, store: store, ids: ids, now: time.Now}, nil
}

// Ledger returns the current snapshot. Callers must treat it as read-only;
// every mutation replaces the snapshot wholesale.
func (s *Session) Ledger() *Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger
}

// commit swaps in the new snapshot and persists it. The snapshot's save
// counter drives the automatic backup cadence.
func (s *Session) commit(n *Ledger) error {
	n.Meta.SaveCount++
	s.ledger = n
	if err := s.store.SaveSnapshot(n); err != nil {
		return &PersistenceError{Op: "save snapshot", Err: err}
	}
	if n.Meta.SaveCount%autoBackupEvery == 0 {
		if _, err := s.store.CreateBackup(n, AutoBackup); err != nil {
			return &PersistenceError{Op: "auto backup", Err: err}
		}
	}
	return nil
}

// CreateAccount validates and appends a new account.
func (s *Session) CreateAccount(spec AccountSpec) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, acc, err := s.ledger.CreateAccount(spec, s.ids)
	if err != nil {
		return Account{}, err
	}
	return acc, s.commit(n)
}

// UpdateAccount merges the patch into an existing account.
func (s *Session) UpdateAccount(id string, patch AccountPatch) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, acc, err := s.ledger.UpdateAccount(id, patch)
	if err != nil {
		return Account{}, err
	}
	return acc, s.commit(n)
}

// DeleteAccount removes an unused account.
func (s *Session) DeleteAccount(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.ledger.DeleteAccount(id)
	if err != nil {
		return err
	}
	return s.commit(n)
}

// SaveTransaction creates or updates a voucher. Posting a voucher also
// refreshes the last-posted snapshot in the ledger metadata.
func (s *Session) SaveTransaction(draft Transaction) (Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	n, tx, err := s.ledger.SaveTransaction(draft, s.ids, now)
	if err != nil {
		return Transaction{}, err
	}
	if tx.Posted {
		sum := n.Summarize()
		n.Meta.LastPostedSnapshot = &PostedSnapshot{
			Timestamp: now.UnixMilli(),
			Bank:      sum.BankTotal,
			Cash:      sum.CashTotal,
		}
	}
	return tx, s.commit(n)
}

// DeleteTransaction removes a voucher by id.
func (s *Session) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.ledger.DeleteTransaction(id)
	if err != nil {
		return err
	}
	return s.commit(n)
}

// Backup writes a manual backup of the current state.
func (s *Session) Backup() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key, err := s.store.CreateBackup(s.ledger, ManualBackup)
	if err != nil {
		return "", &PersistenceError{Op: "create backup", Err: err}
	}
	return key, nil
}

// Backups lists the retained backups, newest first.
func (s *Session) Backups() ([]BackupInfo, error) {
	infos, err := s.store.ListBackups()
	if err != nil {
		return nil, &PersistenceError{Op: "list backups", Err: err}
	}
	return infos, nil
}

// Restore replaces the live state with a backup. The current state is backed
// up first, so a mistaken restore is itself recoverable.
func (s *Session) Restore(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ledger, err := s.store.RestoreBackup(key)
	if err != nil {
		return &PersistenceError{Op: "restore backup", Err: err}
	}
	if _, err := s.store.CreateBackup(s.ledger, ManualBackup); err != nil {
		return &PersistenceError{Op: "backup before restore", Err: err}
	}
	return s.commit(ledger)
}

// Import replaces the live state with a validated document read from 'r'.
// Like Restore, it backs up the current state before overwriting it.
func (s *Session) Import(r io.Reader) error {
	ledger, err := Import(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.store.CreateBackup(s.ledger, ManualBackup); err != nil {
		return &PersistenceError{Op: "backup before import", Err: err}
	}
	return s.commit(ledger)
}

// Export writes the current state to 'w' in the import/export format.
func (s *Session) Export(w io.Writer) error {
	return Export(w, s.Ledger())
}

// Reset clears all data after backing up the current state.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.store.CreateBackup(s.ledger, ManualBackup); err != nil {
		return &PersistenceError{Op: "backup before reset", Err: err}
	}
	return s.commit(NewLedger())
}
