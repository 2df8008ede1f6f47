package cashbook

// BackupKind tags a backup with the way it was requested.
type BackupKind string

const (
	// ManualBackup is a backup explicitly requested by the user.
	ManualBackup BackupKind = "manual"
	// AutoBackup is a backup taken by the session on its save cadence.
	AutoBackup BackupKind = "auto"
)

// BackupInfo describes one retained backup, newest first in listings.
type BackupInfo struct {
	Key          string
	Timestamp    string // ISO-8601, identical to the key suffix
	Kind         BackupKind
	Accounts     int
	Transactions int
}

// Store is the persistence gateway consumed by the session: a durable
// snapshot slot plus timestamped backups with bounded retention. LoadSnapshot
// and RestoreBackup report a missing document with an error wrapping
// fs.ErrNotExist, which the session treats as "start empty".
type Store interface {
	LoadSnapshot() (*Ledger, error)
	SaveSnapshot(*Ledger) error
	CreateBackup(l *Ledger, kind BackupKind) (key string, err error)
	ListBackups() ([]BackupInfo, error)
	RestoreBackup(key string) (*Ledger, error)
}
