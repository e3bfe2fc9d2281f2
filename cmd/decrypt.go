package cmd

import (
	"fmt"

	"github.com/PolarWolf314/walletvault/internal/ui"
	"github.com/PolarWolf314/walletvault/internal/workflows"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(decryptCmd)
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt <name>",
	Short: "Decrypt a wallet and print its secret",
	Long: `Decrypts a wallet record and prints the secret to stdout. Status messages
go to stderr, so the output can be piped.

The record's own version decides the key derivation parameters, so records
written by older versions can always be read.

Examples:
  walletvault decrypt hot
  walletvault decrypt hot.wallet.json > wallet.json`,
	Args: cobra.ExactArgs(1),
	RunE: runDecrypt,
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting decrypt command")

	password, err := readPassword(stdin(cmd), false, false)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), formatError(err))
		return displayedError{err}
	}

	s, cleanup := startSpinner(cmd.ErrOrStderr(), "Deriving key and decrypting wallet...")

	result, err := workflows.Decrypt(cmd.Context(), workflows.DecryptOptions{
		Name:     args[0],
		Password: password,
	})
	if err != nil {
		err = fail(s, err)
		cleanup()
		return err
	}

	if result.NeedsMigration {
		s.FinalMSG = ui.Hint(fmt.Sprintf("Wallet %s uses version %d; run %s to upgrade it",
			ui.Highlight.Sprint(result.Name), result.Version, ui.Code.Sprint("walletvault migrate "+result.Name)))
	}
	cleanup()

	fmt.Fprintln(cmd.OutOrStdout(), result.Plaintext)
	return nil
}
