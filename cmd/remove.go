package cmd

import (
	"fmt"

	"github.com/PolarWolf314/walletvault/internal/ui"
	"github.com/PolarWolf314/walletvault/internal/workflows"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a wallet from the vault",
	Long: `Deletes a wallet record from the vault. This cannot be undone unless a
backup of the vault exists.

Examples:
  walletvault remove old-hot`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting remove command")

		result, err := workflows.Remove(cmd.Context(), workflows.RemoveOptions{Name: args[0]})
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), formatError(err))
			return displayedError{err}
		}

		fmt.Fprintln(cmd.ErrOrStderr(), ui.Done("Wallet "+ui.Highlight.Sprint(result.Name)+" removed"))
		return nil
	},
}
