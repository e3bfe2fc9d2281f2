package vault

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/PolarWolf314/walletvault/internal/encryption"
	verrors "github.com/PolarWolf314/walletvault/internal/errors"
)

// RecordSuffix is the file suffix of wallet records.
const RecordSuffix = ".wallet.json"

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// Vault is a directory of named encrypted wallet records.
type Vault struct {
	Path string
}

// Record is one wallet record loaded from disk.
type Record struct {
	Name string
	Path string
	Data *encryption.EncryptedData
}

// ValidateName checks that name is usable as a record file name.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) || strings.HasSuffix(name, RecordSuffix) {
		return fmt.Errorf("%w: %q", verrors.ErrInvalidWalletName, name)
	}
	return nil
}

// Open returns the vault at path. It must already exist.
func Open(path string) (*Vault, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, verrors.ErrVaultNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check vault directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s exists but is not a directory", path)
	}
	return &Vault{Path: path}, nil
}

// Init creates the vault directory. It fails if the vault already exists.
func Init(path string) (*Vault, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, verrors.ErrVaultAlreadyInitialized
	}
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, fmt.Errorf("failed to create vault directory: %w", err)
	}
	return &Vault{Path: path}, nil
}

// OpenOrInit opens the vault at path, creating it if needed.
func OpenOrInit(path string) (*Vault, error) {
	v, err := Open(path)
	if errors.Is(err, verrors.ErrVaultNotInitialized) {
		return Init(path)
	}
	return v, err
}

// RecordPath returns the file path for name.
func (v *Vault) RecordPath(name string) string {
	return filepath.Join(v.Path, name+RecordSuffix)
}

// Exists reports whether a record named name is stored.
func (v *Vault) Exists(name string) bool {
	_, err := os.Stat(v.RecordPath(name))
	return err == nil
}

// Save writes data under name. Without overwrite an existing record is an error.
// The write goes through a temp file so a record is never half written.
func (v *Vault) Save(name string, data *encryption.EncryptedData, overwrite bool) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	if !overwrite && v.Exists(name) {
		return "", fmt.Errorf("%w: %s", verrors.ErrWalletExists, name)
	}

	raw, err := data.Marshal()
	if err != nil {
		return "", fmt.Errorf("failed to encode wallet %s: %w", name, err)
	}

	path := v.RecordPath(name)
	if err := writeFileAtomic(path, append(raw, '\n')); err != nil {
		return "", fmt.Errorf("failed to write wallet %s: %w", name, err)
	}
	return path, nil
}

// Load reads the record named name.
func (v *Vault) Load(name string) (*Record, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	path := v.RecordPath(name)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", verrors.ErrWalletNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read wallet %s: %w", name, err)
	}

	data, err := encryption.ParseRecord(raw)
	if err != nil {
		return nil, fmt.Errorf("wallet %s: %w", name, err)
	}

	return &Record{Name: name, Path: path, Data: data}, nil
}

// Remove deletes the record named name.
func (v *Vault) Remove(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := os.Remove(v.RecordPath(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", verrors.ErrWalletNotFound, name)
		}
		return fmt.Errorf("failed to remove wallet %s: %w", name, err)
	}
	return nil
}

// List returns the names of all stored records, sorted.
func (v *Vault) List() ([]string, error) {
	entries, err := os.ReadDir(v.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.HasSuffix(entry.Name(), RecordSuffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), RecordSuffix))
	}
	sort.Strings(names)
	return names, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
