package encryption

import (
	"fmt"

	verrors "github.com/PolarWolf314/walletvault/internal/errors"
)

// Manager encrypts wallet secrets under one config version and opens records
// written under any registered version.
type Manager struct {
	version  int
	provider Provider
}

// SecurityInfo describes a Manager's write parameters for display.
type SecurityInfo struct {
	Version            int
	KDF                KDF
	Iterations         int
	Digest             Digest
	EstimatedCrackTime string
}

// DefaultManager writes CurrentVersion records. It is safe for concurrent use.
var DefaultManager = NewManager()

// NewManager returns a Manager writing CurrentVersion records.
func NewManager() *Manager {
	m, err := NewManagerWithVersion(CurrentVersion)
	if err != nil {
		panic(err)
	}
	return m
}

// NewManagerWithVersion returns a Manager writing records as version.
func NewManagerWithVersion(version int) (*Manager, error) {
	p, err := NewProviderForVersion(version)
	if err != nil {
		return nil, err
	}
	return &Manager{version: version, provider: p}, nil
}

// Version returns the version new records are written with.
func (m *Manager) Version() int {
	return m.version
}

// Encrypt seals plaintext under a key derived from password. Every call uses
// a fresh salt and nonce, so identical inputs never give identical records.
func (m *Manager) Encrypt(plaintext, password string) (*EncryptedData, error) {
	salt, err := m.provider.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", verrors.ErrEncryptFailed, err)
	}

	key, err := m.provider.DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer wipe(key)

	encrypted, nonce, err := m.provider.Encrypt(plaintext, key)
	if err != nil {
		return nil, err
	}

	return newRecord(m.provider.Config(), m.version, encrypted, nonce, salt), nil
}

// Decrypt opens data with the config of the version stored in the record,
// whatever version m writes. A wrong password gives ErrIncorrectPassword.
func (m *Manager) Decrypt(data *EncryptedData, password string) (string, error) {
	if data == nil {
		return "", fmt.Errorf("%w: nil record", verrors.ErrInvalidRecord)
	}

	p, err := NewProviderForVersion(RecordVersion(data))
	if err != nil {
		return "", err
	}

	salt, err := decodeField("salt", data.Salt)
	if err != nil {
		return "", err
	}
	nonce, err := decodeField("nonce", data.Nonce)
	if err != nil {
		return "", err
	}
	encrypted, err := decodeField("encrypted", data.Encrypted)
	if err != nil {
		return "", err
	}

	key, err := p.DeriveKey(password, salt)
	if err != nil {
		return "", err
	}
	defer wipe(key)

	plaintext, ok := p.Decrypt(encrypted, nonce, key)
	if !ok {
		return "", verrors.ErrIncorrectPassword
	}
	return plaintext, nil
}

// VerifyPassword reports whether password opens data. It never returns an error.
func (m *Manager) VerifyPassword(data *EncryptedData, password string) bool {
	_, err := m.Decrypt(data, password)
	return err == nil
}

// NeedsMigration reports whether data was written with a version older than CurrentVersion.
func (m *Manager) NeedsMigration(data *EncryptedData) bool {
	if data == nil {
		return false
	}
	return RecordVersion(data) < CurrentVersion
}

// Migrate re-encrypts data under CurrentVersion. Current records are returned
// as is. The input is never modified; on error no record is returned.
func (m *Manager) Migrate(data *EncryptedData, password string) (*EncryptedData, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: nil record", verrors.ErrInvalidRecord)
	}
	if !m.NeedsMigration(data) {
		return data, nil
	}

	plaintext, err := m.Decrypt(data, password)
	if err != nil {
		return nil, err
	}

	return DefaultManager.Encrypt(plaintext, password)
}

// SecurityInfo describes the parameters m writes new records with.
func (m *Manager) SecurityInfo() SecurityInfo {
	cfg := m.provider.Config()
	return SecurityInfo{
		Version:            m.version,
		KDF:                cfg.KDF,
		Iterations:         cfg.Iterations,
		Digest:             cfg.Digest,
		EstimatedCrackTime: estimateCrackTime(cfg),
	}
}

// estimateCrackTime is a coarse label, not a computation.
func estimateCrackTime(cfg CryptoConfig) string {
	switch cfg.KDF {
	case KDFArgon2:
		return "centuries"
	case KDFScrypt:
		if cfg.Iterations >= 16384 {
			return "centuries"
		}
		return "decades"
	case KDFPBKDF2:
		if cfg.Iterations >= 100000 {
			return "years"
		}
		return "months"
	default:
		return "unknown"
	}
}
