package encryption

import (
	"encoding/json"
	"fmt"

	verrors "github.com/PolarWolf314/walletvault/internal/errors"
	"github.com/btcsuite/btcutil/base58"
)

// EncryptedData is the persisted, self-describing form of an encrypted secret.
// Binary fields are base58 encoded. Version is absent in legacy records.
type EncryptedData struct {
	Encrypted  string `json:"encrypted"`
	Nonce      string `json:"nonce"`
	KDF        KDF    `json:"kdf"`
	Salt       string `json:"salt"`
	Iterations int    `json:"iterations"`
	Digest     Digest `json:"digest"`
	Version    int    `json:"version,omitempty"`
}

// RecordVersion returns the version data was written with, or LegacyVersion if
// unset. A nil record has version 0.
func RecordVersion(data *EncryptedData) int {
	if data == nil {
		return 0
	}
	if data.Version == 0 {
		return LegacyVersion
	}
	return data.Version
}

// ParseRecord decodes a JSON record.
func ParseRecord(raw []byte) (*EncryptedData, error) {
	var data EncryptedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", verrors.ErrInvalidRecord, err)
	}
	return &data, nil
}

// Marshal encodes the record as indented JSON.
func (d *EncryptedData) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

func newRecord(cfg CryptoConfig, version int, encrypted, nonce, salt []byte) *EncryptedData {
	return &EncryptedData{
		Encrypted:  base58.Encode(encrypted),
		Nonce:      base58.Encode(nonce),
		KDF:        cfg.KDF,
		Salt:       base58.Encode(salt),
		Iterations: cfg.Iterations,
		Digest:     cfg.Digest,
		Version:    version,
	}
}

// decodeField decodes a base58 field. base58.Decode returns an empty slice
// for invalid input, so a non-empty field that decodes to nothing is rejected.
func decodeField(name, value string) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: missing %s", verrors.ErrInvalidRecord, name)
	}
	b := base58.Decode(value)
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: %s is not valid base58", verrors.ErrInvalidRecord, name)
	}
	return b, nil
}
