package configs

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/walletvault/internal/encryption"
	verrors "github.com/PolarWolf314/walletvault/internal/errors"
	"github.com/google/uuid"
)

type UserConfig struct {
	Vault  VaultConfig  `toml:"vault"`
	Crypto CryptoConfig `toml:"crypto"`
}

type VaultConfig struct {
	ID   string `toml:"vault_id"`
	Path string `toml:"path,omitempty"`
}

type CryptoConfig struct {
	// Version is the crypto config version new records are written with.
	// Zero means encryption.CurrentVersion.
	Version int `toml:"version,omitempty"`
}

// LoadUserConfig loads config.toml, returning an empty config if it doesn't exist.
func LoadUserConfig() (*UserConfig, error) {
	config := &UserConfig{}

	path := ConfigFilePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	return config, nil
}

// SaveUserConfig writes config.toml.
func SaveUserConfig(config *UserConfig) error {
	if err := SaveTOML(ConfigFilePath(), config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}
	return nil
}

// GenerateVaultID generates a new UUID for the vault.
func GenerateVaultID() string {
	return uuid.New().String()
}

// EnsureUserConfig loads the user config, creating it with a vault ID on first use.
func EnsureUserConfig() (*UserConfig, error) {
	config, err := LoadUserConfig()
	if err != nil {
		return nil, err
	}

	if config.Vault.ID == "" {
		config.Vault.ID = GenerateVaultID()
		if err := SaveUserConfig(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// VaultPath returns the configured vault directory or the default one.
func (c *UserConfig) VaultPath() string {
	if c.Vault.Path != "" {
		return c.Vault.Path
	}
	return DefaultVaultPath()
}

// WriteVersion returns the crypto config version new records are written with.
func (c *UserConfig) WriteVersion() int {
	if c.Crypto.Version == 0 {
		return encryption.CurrentVersion
	}
	return c.Crypto.Version
}

// SetWriteVersion validates version against the registry before storing it.
func (c *UserConfig) SetWriteVersion(version int) error {
	if _, ok := encryption.Config(version); !ok {
		return fmt.Errorf("%w: %d", verrors.ErrUnsupportedVersion, version)
	}
	c.Crypto.Version = version
	return nil
}

// NewManager builds the encryption manager for the configured write version.
func (c *UserConfig) NewManager() (*encryption.Manager, error) {
	return encryption.NewManagerWithVersion(c.WriteVersion())
}
