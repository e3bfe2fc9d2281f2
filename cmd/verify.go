package cmd

import (
	"fmt"

	"github.com/PolarWolf314/walletvault/internal/ui"
	"github.com/PolarWolf314/walletvault/internal/workflows"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify <name>",
	Short: "Check a password against a wallet without printing the secret",
	Long: `Checks whether a password opens a wallet record. The secret is never
printed. Exits non-zero when the password is wrong.

Examples:
  walletvault verify hot`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting verify command")

	password, err := readPassword(stdin(cmd), false, false)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), formatError(err))
		return displayedError{err}
	}

	s, cleanup := startSpinner(cmd.ErrOrStderr(), "Verifying password...")
	defer cleanup()

	result, err := workflows.Verify(cmd.Context(), workflows.VerifyOptions{
		Name:     args[0],
		Password: password,
	})
	if err != nil {
		return fail(s, err)
	}

	if !result.Valid {
		s.FinalMSG = ui.Failed("Password does not open " + ui.Highlight.Sprint(result.Name))
		return displayedError{fmt.Errorf("password does not open %s", result.Name)}
	}

	s.FinalMSG = ui.Done("Password opens " + ui.Highlight.Sprint(result.Name) + " " + ui.Muted.Sprintf("version %d", result.Version))
	return nil
}
