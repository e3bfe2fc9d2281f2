package cmd

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/walletvault/internal/ui"
	"github.com/PolarWolf314/walletvault/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	migrateDryRun     bool
	migrateSkipBackup bool
)

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "show which wallets would be migrated without writing")
	migrateCmd.Flags().BoolVar(&migrateSkipBackup, "no-backup", false, "skip the vault backup taken before writing")

	RootCmd.AddCommand(migrateCmd)
}

// resetMigrateCommandState resets the migrate command's global state for testing.
func resetMigrateCommandState() {
	migrateDryRun = false
	migrateSkipBackup = false
}

var migrateCmd = &cobra.Command{
	Use:   "migrate [wallets...]",
	Short: "Re-encrypt old wallets with the current key derivation parameters",
	Long: `Re-encrypts wallets written with an older version under the current one.
Each wallet is replaced only once its new record is complete, and the vault
is backed up first. Wallets can be selected by name, path or glob pattern;
without arguments every wallet is considered.

All selected wallets must share the password you enter. Wallets it does not
open are reported and left untouched.

Examples:
  walletvault migrate                  # Migrate every wallet
  walletvault migrate hot cold         # Migrate specific wallets
  walletvault migrate "ledger-*"       # Glob pattern
  walletvault migrate --dry-run        # Preview`,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting migrate command")

	var password string
	if !migrateDryRun {
		var err error
		password, err = readPassword(stdin(cmd), false, false)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), formatError(err))
			return displayedError{err}
		}
	}

	s, cleanup := startSpinner(cmd.ErrOrStderr(), "Migrating wallets...")
	defer cleanup()

	result, err := workflows.Migrate(cmd.Context(), workflows.MigrateOptions{
		Patterns:   args,
		Password:   password,
		DryRun:     migrateDryRun,
		SkipBackup: migrateSkipBackup,
	})
	if err != nil {
		return fail(s, err)
	}

	s.FinalMSG = formatMigrateResult(result)
	if result.Failed() > 0 {
		return displayedError{fmt.Errorf("%d wallet(s) failed to migrate", result.Failed())}
	}
	return nil
}

func formatMigrateResult(result *workflows.MigrateResult) string {
	var lines []string
	for _, rec := range result.Records {
		name := ui.Highlight.Sprint(rec.Name)
		switch rec.Status {
		case workflows.MigrationDone:
			lines = append(lines, ui.Done(fmt.Sprintf("%s v%d → v%d", name, rec.FromVersion, rec.ToVersion)))
		case workflows.MigrationPending:
			lines = append(lines, ui.Hint(fmt.Sprintf("%s v%d → v%d %s", name, rec.FromVersion, rec.ToVersion, ui.Muted.Sprint("dry run"))))
		case workflows.MigrationCurrent:
			lines = append(lines, "  "+name+" "+ui.Muted.Sprintf("already v%d", rec.ToVersion))
		case workflows.MigrationFailed:
			reason := rec.Err.Error()
			if rec.IsIncorrectPassword() {
				reason = "incorrect password"
			}
			lines = append(lines, ui.Failed(name+": "+reason))
		}
	}

	if result.BackupPath != "" {
		lines = append(lines, ui.Hint("Backup written to "+ui.Path.Sprint(result.BackupPath)))
	}

	switch {
	case result.DryRun:
		lines = append(lines, ui.Hint(fmt.Sprintf("%d wallet(s) would be migrated", result.Migrated())))
	case result.Migrated() == 0 && result.Failed() == 0:
		lines = append(lines, ui.Done("All wallets are up to date"))
	}

	return strings.Join(lines, "\n")
}
