package workflows

import (
	"context"

	"github.com/PolarWolf314/walletvault/internal/audit"
	"github.com/PolarWolf314/walletvault/internal/encryption"
)

// VerifyOptions configures the verify workflow.
type VerifyOptions struct {
	// Name is the wallet record name, file name or path.
	Name string

	// Password is the password to check.
	Password string
}

// VerifyResult contains the outcome of a verify operation.
type VerifyResult struct {
	Name    string
	Version int

	// Valid is true when the password opens the record.
	Valid bool
}

// Verify checks whether the password opens a record. A wrong password is a
// result, not an error.
//
// Returns ErrVaultNotInitialized if the vault does not exist.
// Returns ErrWalletNotFound if no record matches the name.
// Returns ErrAmbiguousWallet if the name is a glob pattern.
func Verify(ctx context.Context, opts VerifyOptions) (*VerifyResult, error) {
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

	valid := encryption.DefaultManager.VerifyPassword(record.Data, opts.Password)

	entry := audit.NewEntry("verify")
	entry.Wallets = []string{record.Name}
	if !valid {
		entry.Failed = 1
	}
	audit.Log(v.Path, entry)

	return &VerifyResult{
		Name:    record.Name,
		Version: encryption.RecordVersion(record.Data),
		Valid:   valid,
	}, nil
}
