package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/PolarWolf314/walletvault/internal/ui"
	"github.com/PolarWolf314/walletvault/internal/utils"
	"github.com/PolarWolf314/walletvault/internal/vault"
	"github.com/PolarWolf314/walletvault/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	encryptFromStdin bool
	encryptForce     bool
)

func init() {
	encryptCmd.Flags().BoolVar(&encryptFromStdin, "stdin", false, "read the wallet secret from stdin")
	encryptCmd.Flags().BoolVarP(&encryptForce, "force", "f", false, "replace an existing wallet with the same name")

	RootCmd.AddCommand(encryptCmd)
}

// resetEncryptCommandState resets the encrypt command's global state for testing.
func resetEncryptCommandState() {
	encryptFromStdin = false
	encryptForce = false
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt <name>",
	Short: "Encrypt a wallet secret into the vault",
	Long: `Encrypts a wallet secret (for example a JSON document holding a mnemonic
and seed) under a key derived from your password, and stores it as a named
record in the vault. The vault is created on first use.

Examples:
  walletvault encrypt hot                       # Prompt for secret and password
  cat wallet.json | walletvault encrypt hot --stdin
  walletvault encrypt hot --stdin --force       # Replace an existing record`,
	Args: cobra.ExactArgs(1),
	RunE: runEncrypt,
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting encrypt command")
	name := args[0]

	if err := vault.ValidateName(name); err != nil {
		if suggestion := utils.SanitizeWalletName(name); suggestion != name {
			Logger.WarnfAlways("Invalid wallet name %q, try %q", name, suggestion)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), formatError(err))
		return displayedError{err}
	}

	in := stdin(cmd)

	password, err := readPassword(in, true, encryptFromStdin)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), formatError(err))
		return displayedError{err}
	}
	warnWeakPassword(password)

	plaintext, err := readSecret(in)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), formatError(err))
		return displayedError{err}
	}

	s, cleanup := startSpinner(cmd.ErrOrStderr(), "Deriving key and encrypting wallet...")
	defer cleanup()

	result, err := workflows.Encrypt(cmd.Context(), workflows.EncryptOptions{
		Name:      name,
		Plaintext: plaintext,
		Password:  password,
		Overwrite: encryptForce,
	})
	if err != nil {
		return fail(s, err)
	}

	Logger.Debugf("Wrote %s with version %d (%s)", result.Path, result.Version, result.KDF)

	verb := "encrypted"
	if result.Replaced {
		verb = "replaced"
	}
	s.FinalMSG = ui.Lines(
		ui.Done("Wallet "+ui.Highlight.Sprint(result.Name)+" "+verb),
		"  "+ui.Path.Sprint(result.Path)+" "+ui.Muted.Sprintf("version %d, %s", result.Version, result.KDF),
	)
	return nil
}

// readSecret reads the wallet secret from stdin with --stdin, or prompts for it.
func readSecret(in io.Reader) (string, error) {
	if encryptFromStdin {
		data, err := utils.ReadAll(in)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}

	secret, err := utils.ReadPassphrase("Enter wallet secret: ")
	if err != nil {
		return "", err
	}
	return string(secret), nil
}
