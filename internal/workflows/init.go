package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/walletvault/internal/audit"
	"github.com/PolarWolf314/walletvault/internal/configs"
	"github.com/PolarWolf314/walletvault/internal/vault"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// VaultPath overrides the default vault directory. Empty keeps the
	// configured or default path.
	VaultPath string

	// Version sets the config version new records are written with.
	// Zero keeps the configured version.
	Version int
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	VaultID   string
	VaultPath string
	Version   int
}

// Init creates the user config and the vault directory.
//
// Returns ErrVaultAlreadyInitialized if the vault directory exists.
// Returns ErrUnsupportedVersion if Version is not registered.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	userConfig, err := configs.EnsureUserConfig()
	if err != nil {
		return nil, fmt.Errorf("loading user config: %w", err)
	}

	if opts.Version != 0 {
		if err := userConfig.SetWriteVersion(opts.Version); err != nil {
			return nil, err
		}
	}
	if opts.VaultPath != "" {
		userConfig.Vault.Path = opts.VaultPath
	}

	v, err := vault.Init(userConfig.VaultPath())
	if err != nil {
		return nil, err
	}

	if err := configs.SaveUserConfig(userConfig); err != nil {
		return nil, err
	}

	entry := audit.NewEntry("init")
	entry.Version = userConfig.WriteVersion()
	audit.Log(v.Path, entry)

	return &InitResult{
		VaultID:   userConfig.Vault.ID,
		VaultPath: v.Path,
		Version:   userConfig.WriteVersion(),
	}, nil
}
