package configs

import (
	"log"
	"os"
	"path/filepath"
)

// Settings holds the directories walletvault reads and writes.
type Settings struct {
	// ConfigPath is the directory containing config.toml.
	ConfigPath string

	// DataPath is the parent of the default vault directory.
	DataPath string
}

// WalletVaultSettings is initialized at startup. Tests replace it with temp directories.
var WalletVaultSettings *Settings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	WalletVaultSettings = &Settings{
		ConfigPath: filepath.Join(configDir, "walletvault"),
		DataPath:   filepath.Join(dataDir, "walletvault"),
	}
}

// ConfigFilePath returns the path of the user config file.
func ConfigFilePath() string {
	return filepath.Join(WalletVaultSettings.ConfigPath, "config.toml")
}

// DefaultVaultPath returns the vault directory used when the config sets none.
func DefaultVaultPath() string {
	return filepath.Join(WalletVaultSettings.DataPath, "vault")
}
