package cmd

import (
	"fmt"

	"github.com/PolarWolf314/walletvault/internal/encryption"
	"github.com/PolarWolf314/walletvault/internal/ui"
	"github.com/spf13/cobra"
)

var passwordLength int

func init() {
	passwordGenerateCmd.Flags().IntVarP(&passwordLength, "length", "l", encryption.DefaultPasswordLength, "password length")

	passwordCmd.AddCommand(passwordGenerateCmd)
	passwordCmd.AddCommand(passwordStrengthCmd)
	RootCmd.AddCommand(passwordCmd)
}

// resetPasswordCommandState resets the password commands' global state for testing.
func resetPasswordCommandState() {
	passwordLength = encryption.DefaultPasswordLength
}

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Generate passwords and estimate their strength",
}

var passwordGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a random password",
	Long: `Prints a random password drawn from letters, digits and symbols.

Examples:
  walletvault password generate
  walletvault password generate -l 48`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := encryption.GenerateSecurePassword(passwordLength)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), formatError(err))
			return displayedError{err}
		}
		fmt.Fprintln(cmd.OutOrStdout(), password)
		return nil
	},
}

var passwordStrengthCmd = &cobra.Command{
	Use:   "strength [password]",
	Short: "Estimate the strength of a password",
	Long: `Scores a password from 0 to 6 on length and character classes and
suggests improvements. Without an argument the password is prompted for,
which keeps it out of your shell history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string
		if len(args) == 1 {
			password = args[0]
		} else {
			var err error
			password, err = readPassword(stdin(cmd), false, false)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), formatError(err))
				return displayedError{err}
			}
		}

		strength := encryption.EstimatePasswordStrength(password)
		out := cmd.OutOrStdout()

		score := ui.Success
		switch {
		case strength.Score < 3:
			score = ui.Error
		case strength.Score < 5:
			score = ui.Warning
		}
		fmt.Fprintf(out, "Score:            %s\n", score.Sprintf("%d/6", strength.Score))
		fmt.Fprintf(out, "Est. crack time:  %s\n", strength.EstimatedCrackTime)
		for _, f := range strength.Feedback {
			fmt.Fprintln(out, ui.Hint(f))
		}
		return nil
	},
}
