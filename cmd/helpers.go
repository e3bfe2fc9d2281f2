package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/PolarWolf314/walletvault/internal/encryption"
	verrors "github.com/PolarWolf314/walletvault/internal/errors"
	"github.com/PolarWolf314/walletvault/internal/ui"
	"github.com/PolarWolf314/walletvault/internal/utils"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// startSpinner creates and starts a spinner on w with the given message when
// not in verbose or debug mode. Returns the spinner and a cleanup function
// that should be deferred.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// calls ui.EnsureNewline() on the final message before printing it to w.
func startSpinner(w io.Writer, message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(w)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(w, finalMsg)
		}
	}

	return s, cleanup
}

// stdin wraps the command's input so a --password-stdin line and a piped
// wallet secret can be read from the same stream.
func stdin(cmd *cobra.Command) *bufio.Reader {
	return bufio.NewReader(cmd.InOrStdin())
}

// readPassword returns the wallet password from the first stdin line with
// --password-stdin, or prompts without echo. confirm asks twice. With
// stdinBusy the prompt goes to the controlling terminal instead of stdin.
func readPassword(in *bufio.Reader, confirm, stdinBusy bool) (string, error) {
	if passwordStdin {
		Logger.Debugf("Reading password from stdin")
		password, err := utils.ReadLine(in)
		if err != nil {
			return "", err
		}
		if password == "" {
			return "", verrors.ErrPasswordRequired
		}
		return password, nil
	}

	read := utils.ReadPassphrase
	if stdinBusy {
		read = utils.ReadPassphraseFromTTY
	}

	if confirm {
		password, err := utils.ReadNewPassphrase(read)
		if err != nil {
			return "", err
		}
		return string(password), nil
	}

	password, err := read("Enter wallet password: ")
	if err != nil {
		return "", err
	}
	if len(password) == 0 {
		return "", verrors.ErrPasswordRequired
	}
	return string(password), nil
}

// warnWeakPassword prints a warning for passwords scoring below 4.
func warnWeakPassword(password string) {
	strength := encryption.EstimatePasswordStrength(password)
	if strength.Score >= 4 {
		return
	}
	Logger.WarnfAlways("Weak password (score %d/6): %s", strength.Score, strings.Join(strength.Feedback, "; "))
}

// formatError turns workflow errors into a user-facing message.
func formatError(err error) string {
	switch {
	case errors.Is(err, verrors.ErrVaultNotInitialized):
		return ui.Lines(
			ui.Failed("The wallet vault has not been initialized"),
			ui.Hint("Run "+ui.Code.Sprint("walletvault config init")+" or encrypt a wallet first"),
		)

	case errors.Is(err, verrors.ErrVaultAlreadyInitialized):
		return ui.Failed("The wallet vault is already initialized")

	case errors.Is(err, verrors.ErrIncorrectPassword):
		return ui.Failed("Incorrect password")

	case errors.Is(err, verrors.ErrWalletNotFound):
		return ui.Lines(
			ui.Failed(err.Error()),
			ui.Hint("Run "+ui.Code.Sprint("walletvault status")+" to list stored wallets"),
		)

	case errors.Is(err, verrors.ErrWalletExists):
		return ui.Lines(
			ui.Failed(err.Error()),
			ui.Hint("Use "+ui.Flag.Sprint("--force")+" to replace it"),
		)

	case errors.Is(err, verrors.ErrInvalidWalletName):
		return ui.Lines(
			ui.Failed(err.Error()),
			ui.Hint("Names start with a letter or digit and contain only letters, digits, '.', '_' and '-'"),
		)

	case errors.Is(err, verrors.ErrAmbiguousWallet):
		return ui.Lines(
			ui.Failed(err.Error()),
			ui.Hint("Glob patterns are only accepted by "+ui.Code.Sprint("walletvault migrate")+" and "+ui.Code.Sprint("walletvault status")),
		)

	case errors.Is(err, verrors.ErrNoWalletsFound):
		return ui.Failed("No wallets found")

	case errors.Is(err, verrors.ErrPasswordRequired),
		errors.Is(err, verrors.ErrPasswordMismatch),
		errors.Is(err, verrors.ErrInvalidPasswordLength),
		errors.Is(err, verrors.ErrInvalidDateFormat):
		return ui.Failed(err.Error())

	case errors.Is(err, verrors.ErrUnsupportedVersion):
		return ui.Lines(
			ui.Failed(err.Error()),
			ui.Hint("Run "+ui.Code.Sprint("walletvault info")+" to list supported versions"),
		)

	case errors.Is(err, verrors.ErrInvalidRecord):
		return ui.Failed("Wallet record is corrupt: " + err.Error())

	default:
		return ui.Failed(err.Error())
	}
}

// fail sets the spinner's final message from err and marks err as displayed.
func fail(s *spinner.Spinner, err error) error {
	Logger.Errorf("%v", err)
	s.FinalMSG = formatError(err)
	return displayedError{err}
}
