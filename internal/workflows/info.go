package workflows

import (
	"context"

	"github.com/PolarWolf314/walletvault/internal/configs"
	"github.com/PolarWolf314/walletvault/internal/encryption"
)

// VersionInfo describes one registered config version.
type VersionInfo struct {
	Version int
	Config  encryption.CryptoConfig
	Current bool
}

// InfoOptions configures the info workflow.
type InfoOptions struct{}

// InfoResult contains the outcome of an info operation.
type InfoResult struct {
	// Security describes the configured write parameters.
	Security encryption.SecurityInfo

	// Versions lists the registry in ascending order.
	Versions []VersionInfo

	ConfigPath string
	VaultPath  string
}

// Info describes the configured security parameters and the version registry.
// It does not require the vault to exist.
//
// Returns ErrUnsupportedVersion if the configured version is not registered.
func Info(ctx context.Context, opts InfoOptions) (*InfoResult, error) {
	userConfig, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}

	manager, err := userConfig.NewManager()
	if err != nil {
		return nil, err
	}

	result := &InfoResult{
		Security:   manager.SecurityInfo(),
		ConfigPath: configs.ConfigFilePath(),
		VaultPath:  userConfig.VaultPath(),
	}

	for _, version := range encryption.Versions() {
		cfg, _ := encryption.Config(version)
		result.Versions = append(result.Versions, VersionInfo{
			Version: version,
			Config:  cfg,
			Current: version == encryption.CurrentVersion,
		})
	}

	return result, nil
}
