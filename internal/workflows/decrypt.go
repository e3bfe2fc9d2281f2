package workflows

import (
	"context"

	"github.com/PolarWolf314/walletvault/internal/audit"
	"github.com/PolarWolf314/walletvault/internal/encryption"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// Name is the wallet record name, file name or path.
	Name string

	// Password is the record's password.
	Password string
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	Name      string
	Plaintext string

	// Version is the version the record was written with.
	Version int

	// NeedsMigration is true when the record predates the current version.
	NeedsMigration bool
}

// Decrypt opens a wallet record. The plaintext is returned to the caller and
// never logged or written to disk.
//
// Returns ErrVaultNotInitialized if the vault does not exist.
// Returns ErrWalletNotFound if no record matches the name.
// Returns ErrAmbiguousWallet if the name is a glob pattern.
// Returns ErrIncorrectPassword if the password does not open the record.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	_, v, err := openVault(false)
	if err != nil {
		return nil, err
	}

	name, err := v.ResolveOne(opts.Name)
	if err != nil {
		return nil, err
	}

	record, err := v.Load(name)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	manager := encryption.DefaultManager
	plaintext, err := manager.Decrypt(record.Data, opts.Password)
	if err != nil {
		return nil, err
	}

	version := encryption.RecordVersion(record.Data)

	entry := audit.NewEntry("decrypt")
	entry.Wallets = []string{record.Name}
	entry.Version = version
	audit.Log(v.Path, entry)

	return &DecryptResult{
		Name:           record.Name,
		Plaintext:      plaintext,
		Version:        version,
		NeedsMigration: manager.NeedsMigration(record.Data),
	}, nil
}
