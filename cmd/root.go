package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	logger "github.com/PolarWolf314/walletvault/internal/logging"
	"github.com/PolarWolf314/walletvault/internal/ui"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose       bool
	debug         bool
	passwordStdin bool
	Logger        logger.Logger

	RootCmd = &cobra.Command{
		Use:   "walletvault",
		Short: "walletvault - password-based encryption for wallet secrets",
		Long: `walletvault encrypts wallet secrets such as mnemonics and seeds into
self-describing records, protected by a key derived from your password.

Records remember the key derivation parameters they were written with, so
old records stay readable and can be migrated to stronger parameters.

Usage:
  walletvault <command> [flags]

Run 'walletvault help <command>' for more details on a specific command.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
				Out:     cmd.ErrOrStderr(),
				Err:     cmd.ErrOrStderr(),
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.CommandPath(), verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), banner())
			fmt.Fprintln(cmd.OutOrStdout(), ui.Hint("Run "+ui.Code.Sprint("walletvault --help")+" to see available commands"))
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from the first line of stdin")
}

// displayedError marks an error whose message a command already printed.
type displayedError struct {
	err error
}

func (e displayedError) Error() string { return e.err.Error() }
func (e displayedError) Unwrap() error { return e.err }

// Execute runs the root command and exits non-zero on failure. An interrupt
// cancels the command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		var shown displayedError
		if !errors.As(err, &shown) {
			fmt.Fprintln(os.Stderr, ui.Failed(err.Error()))
		}
		stop()
		os.Exit(1)
	}
}

func banner() string {
	return ui.Success.Sprint(figure.NewFigure("walletvault", "small", true).String()) + "\n"
}

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	passwordStdin = false
	Logger = logger.Logger{}
	resetEncryptCommandState()
	resetMigrateCommandState()
	resetLogCommandState()
	resetPasswordCommandState()
	resetConfigCommandState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the Changed mark on every flag to prevent test pollution.
func resetCobraFlagState(c *cobra.Command) {
	c.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	c.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, sub := range c.Commands() {
		resetCobraFlagState(sub)
	}
}
