// Package configs manages walletvault's user configuration.
//
// Configuration is stored in TOML at $XDG_CONFIG_HOME/walletvault/config.toml:
//
//	[vault]
//	vault_id = "6f1c2a8e-..."
//	path = "/home/me/.local/share/walletvault/vault"
//
//	[crypto]
//	version = 4
//
// The vault ID is generated on first use and tags audit entries. The crypto
// version selects the parameter set new records are written with; records
// already on disk keep the version they were written with.
//
// # Settings
//
// WalletVaultSettings holds the config and data directories. It is set in
// init() and replaced with temp directories in tests.
package configs
