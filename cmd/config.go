package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/PolarWolf314/walletvault/internal/configs"
	"github.com/PolarWolf314/walletvault/internal/encryption"
	"github.com/PolarWolf314/walletvault/internal/ui"
	"github.com/PolarWolf314/walletvault/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	configInitVaultPath string
	configInitVersion   int
	configShowJSON      bool
)

func init() {
	configInitCmd.Flags().StringVar(&configInitVaultPath, "vault-path", "", "directory to store wallets in")
	configInitCmd.Flags().IntVar(&configInitVersion, "version", 0, "version new wallets are written with (default current)")
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetVersionCmd)
	RootCmd.AddCommand(configCmd)
}

// resetConfigCommandState resets the config commands' global state for testing.
func resetConfigCommandState() {
	configInitVaultPath = ""
	configInitVersion = 0
	configShowJSON = false
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage walletvault configuration",
	Long: `Provides commands for managing the user configuration stored in
config.toml: the vault location and the version new wallets are written with.

Examples:
  walletvault config init
  walletvault config show
  walletvault config set-version 3`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the configuration and the vault directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")
		Logger.Debugf("Flags: vault-path=%q, version=%d", configInitVaultPath, configInitVersion)

		result, err := workflows.Init(cmd.Context(), workflows.InitOptions{
			VaultPath: configInitVaultPath,
			Version:   configInitVersion,
		})
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), formatError(err))
			return displayedError{err}
		}

		fmt.Fprint(cmd.OutOrStdout(), banner())
		fmt.Fprintln(cmd.OutOrStdout(), ui.Lines(
			ui.Done("Vault initialized at "+ui.Path.Sprint(result.VaultPath)),
			"  Vault ID: "+result.VaultID,
			fmt.Sprintf("  New wallets use version %d", result.Version),
			ui.Hint("Run "+ui.Code.Sprint("walletvault encrypt <name>")+" to store a wallet"),
		))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		Logger.Debugf("Loading user config from %s", configs.ConfigFilePath())
		userConfig, err := configs.LoadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load user config: %w", err)
		}

		out := cmd.OutOrStdout()
		if configShowJSON {
			data, err := json.MarshalIndent(map[string]any{
				"config_path": configs.ConfigFilePath(),
				"vault_id":    userConfig.Vault.ID,
				"vault_path":  userConfig.VaultPath(),
				"version":     userConfig.WriteVersion(),
			}, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to marshal config: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "Config:   %s\n", ui.Path.Sprint(configs.ConfigFilePath()))
		vaultID := userConfig.Vault.ID
		if vaultID == "" {
			vaultID = ui.Muted.Sprint("not initialized")
		}
		fmt.Fprintf(out, "Vault ID: %s\n", vaultID)
		fmt.Fprintf(out, "Vault:    %s\n", ui.Path.Sprint(userConfig.VaultPath()))
		fmt.Fprintf(out, "Version:  %d\n", userConfig.WriteVersion())
		return nil
	},
}

var configSetVersionCmd = &cobra.Command{
	Use:   "set-version <version>",
	Short: "Set the version new wallets are written with",
	Long: `Sets the version new wallets are written with. Existing wallets keep their
version until migrated; migration always targets the current version.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config set-version command")

		version, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("version must be a number: %q", args[0])
		}

		userConfig, err := configs.EnsureUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load user config: %w", err)
		}

		if err := userConfig.SetWriteVersion(version); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), formatError(err))
			return displayedError{err}
		}
		if err := configs.SaveUserConfig(userConfig); err != nil {
			return Logger.ErrorfAndReturn("Failed to save user config: %w", err)
		}

		msg := fmt.Sprintf("New wallets will use version %d", version)
		if version < encryption.CurrentVersion {
			Logger.WarnfAlways("Version %d is weaker than the current version %d", version, encryption.CurrentVersion)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Done(msg))
		return nil
	},
}
