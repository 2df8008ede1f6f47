package cashbook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	snapshotFile  = "cashbook.json"
	backupPrefix  = "ledger_backup_"
	backupVersion = "2.0"
	maxBackups    = 20
)

// backupTimeFormat is ISO-8601 with millisecond precision in UTC, so the
// lexicographic order of backup keys is their chronological order.
const backupTimeFormat = "2006-01-02T15:04:05.000Z"

// FileStore keeps the snapshot and its backups as JSON documents in a single
// directory. Writes are atomic: the document goes to a temporary file first
// and is renamed over the target, so a crash mid-write never corrupts the
// previous state.
type FileStore struct {
	dir string
	now func() time.Time // injectable for deterministic backup keys in tests
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create store directory %q: %w", dir, err)
	}
	return &FileStore{dir: dir, now: time.Now}, nil
}

// LoadSnapshot reads the current snapshot. A missing file is reported with an
// error wrapping fs.ErrNotExist so the caller can start empty.
func (s *FileStore) LoadSnapshot() (*Ledger, error) {
	f, err := os.Open(filepath.Join(s.dir, snapshotFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeLedger(f)
}

// SaveSnapshot overwrites the durable current-state slot.
func (s *FileStore) SaveSnapshot(l *Ledger) error {
	return s.writeAtomic(snapshotFile, l)
}

// backupDocument is the on-disk shape of a backup: the ledger state plus the
// backup-only metadata fields. Restoring decodes into the same shape and
// returns only the state, so the metadata never leaks into a live ledger.
type backupDocument struct {
	Accounts     []Account     `json:"accounts"`
	Transactions []Transaction `json:"transactions"`
	Meta         Meta          `json:"meta"`
	BackupTime   string        `json:"_backupTime"`
	Version      string        `json:"_version"`
	BackupType   BackupKind    `json:"_backupType"`
}

// CreateBackup writes a timestamped copy of the state and then enforces the
// retention cap, deleting all but the newest maxBackups backups.
func (s *FileStore) CreateBackup(l *Ledger, kind BackupKind) (string, error) {
	stamp := s.now().UTC().Format(backupTimeFormat)
	key := backupPrefix + stamp
	doc := backupDocument{
		Accounts:     l.Accounts,
		Transactions: l.Transactions,
		Meta:         l.Meta,
		BackupTime:   stamp,
		Version:      backupVersion,
		BackupType:   kind,
	}
	if err := s.writeAtomic(key+".json", doc); err != nil {
		return "", err
	}
	if err := s.cleanupOldBackups(); err != nil {
		return "", err
	}
	return key, nil
}

// cleanupOldBackups keeps only the newest maxBackups backups by key order.
func (s *FileStore) cleanupOldBackups() error {
	keys, err := s.backupKeys()
	if err != nil {
		return err
	}
	if len(keys) <= maxBackups {
		return nil
	}
	// keys sort oldest first; everything before the retention window goes.
	for _, key := range keys[:len(keys)-maxBackups] {
		if err := os.Remove(filepath.Join(s.dir, key+".json")); err != nil {
			return fmt.Errorf("could not remove old backup %q: %w", key, err)
		}
	}
	return nil
}

// ListBackups returns the retained backups, newest first.
func (s *FileStore) ListBackups() ([]BackupInfo, error) {
	keys, err := s.backupKeys()
	if err != nil {
		return nil, err
	}
	infos := make([]BackupInfo, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		doc, err := s.readBackup(keys[i])
		if err != nil {
			// A corrupt backup should not hide the healthy ones.
			continue
		}
		kind := doc.BackupType
		if kind == "" {
			kind = ManualBackup
		}
		infos = append(infos, BackupInfo{
			Key:          keys[i],
			Timestamp:    doc.BackupTime,
			Kind:         kind,
			Accounts:     len(doc.Accounts),
			Transactions: len(doc.Transactions),
		})
	}
	return infos, nil
}

// RestoreBackup reads a backup and returns its state with the backup-only
// metadata stripped.
func (s *FileStore) RestoreBackup(key string) (*Ledger, error) {
	doc, err := s.readBackup(key)
	if err != nil {
		return nil, err
	}
	l := &Ledger{Accounts: doc.Accounts, Transactions: doc.Transactions, Meta: doc.Meta}
	if l.Accounts == nil {
		l.Accounts = []Account{}
	}
	if l.Transactions == nil {
		l.Transactions = []Transaction{}
	}
	return l, nil
}

func (s *FileStore) readBackup(key string) (backupDocument, error) {
	var doc backupDocument
	f, err := os.Open(filepath.Join(s.dir, key+".json"))
	if err != nil {
		return doc, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return doc, fmt.Errorf("could not decode backup %q: %w", key, err)
	}
	return doc, nil
}

// backupKeys returns all backup keys sorted ascending (oldest first).
func (s *FileStore) backupKeys() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("could not list store directory: %w", err)
	}
	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(keys)
	return keys, nil
}

// writeAtomic writes v as indented JSON to name via a temp file and rename.
func (s *FileStore) writeAtomic(name string, v any) error {
	target := filepath.Join(s.dir, name)
	tmp := target + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", tmp, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("could not encode %q: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
