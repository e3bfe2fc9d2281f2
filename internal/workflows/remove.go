package workflows

import (
	"context"

	"github.com/PolarWolf314/walletvault/internal/audit"
)

// RemoveOptions configures the remove workflow.
type RemoveOptions struct {
	// Name is the wallet record name, file name or path.
	Name string
}

// RemoveResult contains the outcome of a remove operation.
type RemoveResult struct {
	Name string
}

// Remove deletes a wallet record. No password is needed: the record file is
// removed, not opened.
//
// Returns ErrVaultNotInitialized if the vault does not exist.
// Returns ErrWalletNotFound if no record matches the name.
// Returns ErrAmbiguousWallet if the name is a glob pattern.
func Remove(ctx context.Context, opts RemoveOptions) (*RemoveResult, error) {
	_, v, err := openVault(false)
	if err != nil {
		return nil, err
	}

	name, err := v.ResolveOne(opts.Name)
	if err != nil {
		return nil, err
	}

	if err := v.Remove(name); err != nil {
		return nil, err
	}

	entry := audit.NewEntry("remove")
	entry.Wallets = []string{name}
	audit.Log(v.Path, entry)

	return &RemoveResult{Name: name}, nil
}
