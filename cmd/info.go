package cmd

import (
	"fmt"

	"github.com/PolarWolf314/walletvault/internal/encryption"
	"github.com/PolarWolf314/walletvault/internal/ui"
	"github.com/PolarWolf314/walletvault/internal/workflows"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the configured key derivation parameters",
	Long: `Shows the key derivation parameters new wallets are written with, a coarse
crack time estimate, and every supported version.`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting info command")

	result, err := workflows.Info(cmd.Context(), workflows.InfoOptions{})
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), formatError(err))
		return displayedError{err}
	}

	out := cmd.OutOrStdout()
	sec := result.Security
	fmt.Fprintln(out, "Security parameters for new wallets:")
	fmt.Fprintf(out, "  Version:          %d\n", sec.Version)
	fmt.Fprintf(out, "  KDF:              %s\n", sec.KDF)
	fmt.Fprintf(out, "  %-17s %d\n", costLabel(sec.KDF)+":", sec.Iterations)
	if sec.KDF == encryption.KDFPBKDF2 {
		fmt.Fprintf(out, "  Digest:           %s\n", sec.Digest)
	}
	fmt.Fprintf(out, "  Est. crack time:  %s\n", sec.EstimatedCrackTime)

	fmt.Fprintln(out, "\nSupported versions:")
	for _, v := range result.Versions {
		marker := " "
		if v.Current {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s v%d  %-7s %s=%d salt=%dB key=%dB\n",
			marker, v.Version, v.Config.KDF, costLabel(v.Config.KDF), v.Config.Iterations,
			v.Config.SaltLength, v.Config.KeyLength)
	}

	fmt.Fprintf(out, "\nConfig: %s\n", ui.Path.Sprint(result.ConfigPath))
	fmt.Fprintf(out, "Vault:  %s\n", ui.Path.Sprint(result.VaultPath))
	return nil
}

// costLabel names the cost parameter stored in CryptoConfig.Iterations.
func costLabel(kdf encryption.KDF) string {
	switch kdf {
	case encryption.KDFScrypt:
		return "N"
	case encryption.KDFArgon2:
		return "passes"
	default:
		return "iterations"
	}
}
