package cmd

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/walletvault/internal/ui"
	"github.com/PolarWolf314/walletvault/internal/workflows"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status [wallets...]",
	Short: "List wallets and the version they are encrypted with",
	Long: `Lists the wallets in the vault with the version and key derivation function
each record was written with, and flags records that should be migrated.
No password is needed.

Examples:
  walletvault status
  walletvault status "ledger-*"`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting status command")

	result, err := workflows.Status(cmd.Context(), workflows.StatusOptions{Patterns: args})
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), formatError(err))
		return displayedError{err}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Vault: %s\n", ui.Path.Sprint(result.VaultPath))
	fmt.Fprintf(out, "New wallets are written with version %d\n\n", result.WriteVersion)

	if result.Summary.Total == 0 {
		fmt.Fprintln(out, "No wallets stored yet.")
		fmt.Fprintln(out, ui.Hint("Run "+ui.Code.Sprint("walletvault encrypt <name>")+" to add one"))
		return nil
	}

	fmt.Fprintf(out, "  %-24s  %-7s  %-7s  %s\n", "WALLET", "VERSION", "KDF", "STATUS")
	for _, rec := range result.Records {
		fmt.Fprintln(out, formatStatusLine(rec))
	}

	var summary []string
	summary = append(summary, fmt.Sprintf("%d wallet(s)", result.Summary.Total))
	if result.Summary.NeedsMigration > 0 {
		summary = append(summary, ui.Warning.Sprintf("%d need migration", result.Summary.NeedsMigration))
	}
	if result.Summary.Unreadable > 0 {
		summary = append(summary, ui.Error.Sprintf("%d unreadable", result.Summary.Unreadable))
	}
	fmt.Fprintf(out, "\n%s\n", strings.Join(summary, ", "))

	if result.Summary.NeedsMigration > 0 {
		fmt.Fprintln(out, ui.Hint("Run "+ui.Code.Sprint("walletvault migrate")+" to upgrade old wallets"))
	}
	return nil
}

func formatStatusLine(rec workflows.RecordStatus) string {
	if rec.Err != nil {
		return fmt.Sprintf("  %-24s  %-7s  %-7s  %s", rec.Name, "-", "-", ui.Error.Sprint("unreadable"))
	}

	status := ui.Success.Sprint("current")
	if rec.NeedsMigration {
		status = ui.Warning.Sprint("needs migration")
	}
	return fmt.Sprintf("  %-24s  %-7d  %-7s  %s", rec.Name, rec.Version, rec.KDF, status)
}
