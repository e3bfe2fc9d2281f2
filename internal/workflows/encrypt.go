package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/walletvault/internal/audit"
	"github.com/PolarWolf314/walletvault/internal/encryption"
	verrors "github.com/PolarWolf314/walletvault/internal/errors"
	"github.com/PolarWolf314/walletvault/internal/vault"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// Name is the wallet record name.
	Name string

	// Plaintext is the wallet secret, typically JSON holding a mnemonic and seed.
	Plaintext string

	// Password protects the record.
	Password string

	// Overwrite replaces an existing record with the same name.
	Overwrite bool
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	// Name is the wallet record name.
	Name string

	// Path is the record file that was written.
	Path string

	// Version and KDF describe the parameters the record was written with.
	Version int
	KDF     encryption.KDF

	// Replaced is true when an existing record was overwritten.
	Replaced bool
}

// Encrypt derives a key from the password and writes the sealed wallet secret
// as a named record. The vault is created on first use.
//
// Returns ErrInvalidWalletName if the name cannot be used as a record name.
// Returns ErrPasswordRequired if the password is empty.
// Returns ErrWalletExists if the record exists and Overwrite is false.
// Returns ErrUnsupportedVersion if the configured version is not registered.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	if err := vault.ValidateName(opts.Name); err != nil {
		return nil, err
	}
	if opts.Password == "" {
		return nil, verrors.ErrPasswordRequired
	}

	userConfig, v, err := openVault(true)
	if err != nil {
		return nil, err
	}

	replaced := v.Exists(opts.Name)
	if replaced && !opts.Overwrite {
		return nil, fmt.Errorf("%w: %s", verrors.ErrWalletExists, opts.Name)
	}

	manager, err := userConfig.NewManager()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := manager.Encrypt(opts.Plaintext, opts.Password)
	if err != nil {
		return nil, err
	}

	path, err := v.Save(opts.Name, data, opts.Overwrite)
	if err != nil {
		return nil, err
	}

	entry := audit.NewEntry("encrypt")
	entry.Wallets = []string{opts.Name}
	entry.Version = data.Version
	entry.KDF = string(data.KDF)
	audit.Log(v.Path, entry)

	return &EncryptResult{
		Name:     opts.Name,
		Path:     path,
		Version:  data.Version,
		KDF:      data.KDF,
		Replaced: replaced,
	}, nil
}
