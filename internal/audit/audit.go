package audit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/walletvault/internal/configs"
	"github.com/google/uuid"
)

// LogFileName is the audit log file inside the vault directory.
const LogFileName = "audit.jsonl"

// TimestampFormat is RFC3339 in UTC with microseconds.
const TimestampFormat = "2006-01-02T15:04:05.000000Z"

// Entry represents a single audit log entry. It never holds passwords,
// keys or plaintext.
type Entry struct {
	ID        string `json:"id"`       // Random UUID per entry.
	Timestamp string `json:"ts"`       // TimestampFormat.
	VaultID   string `json:"vault_id"` // From the user config.
	Operation string `json:"op"`       // Operation name.

	// Optional fields depending on operation.
	Wallets     []string `json:"wallets,omitempty"`      // Records touched.
	Version     int      `json:"version,omitempty"`      // Version written (encrypt/migrate).
	FromVersion int      `json:"from_version,omitempty"` // Version before migrate.
	KDF         string   `json:"kdf,omitempty"`          // KDF of the written records.
	Failed      int      `json:"failed,omitempty"`       // Records that failed (migrate/verify).
	BackupPath  string   `json:"backup_path,omitempty"`  // For migrate.
}

// NewEntry returns an entry for op with the vault ID filled from the user config.
func NewEntry(op string) Entry {
	entry := Entry{Operation: op}

	userConfig, err := configs.LoadUserConfig()
	if err != nil {
		return entry
	}
	entry.VaultID = userConfig.Vault.ID

	return entry
}

// LogPath returns the audit log path for the vault at vaultPath.
func LogPath(vaultPath string) string {
	return filepath.Join(vaultPath, LogFileName)
}

// Log appends entry to the vault's audit log. Failures are ignored:
// an operation never fails because its audit entry could not be written.
func Log(vaultPath string, entry Entry) {
	if vaultPath == "" {
		return
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(TimestampFormat)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	f, err := os.OpenFile(LogPath(vaultPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the vault's audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries(vaultPath string) ([]Entry, error) {
	data, err := os.ReadFile(LogPath(vaultPath))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data), nil
}

// ParseEntries parses JSON Lines into entries. Malformed lines, such as a
// partially written last line, are skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
