package workflows

import (
	"fmt"

	"github.com/PolarWolf314/walletvault/internal/configs"
	"github.com/PolarWolf314/walletvault/internal/vault"
)

// openVault loads the user config and opens the configured vault.
// With create set, a missing config and vault directory are created.
func openVault(create bool) (*configs.UserConfig, *vault.Vault, error) {
	var (
		userConfig *configs.UserConfig
		err        error
	)
	if create {
		userConfig, err = configs.EnsureUserConfig()
	} else {
		userConfig, err = configs.LoadUserConfig()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loading user config: %w", err)
	}

	var v *vault.Vault
	if create {
		v, err = vault.OpenOrInit(userConfig.VaultPath())
	} else {
		v, err = vault.Open(userConfig.VaultPath())
	}
	if err != nil {
		return nil, nil, err
	}

	return userConfig, v, nil
}
