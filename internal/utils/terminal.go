package utils

import (
	"fmt"
	"os"
	"runtime"

	verrors "github.com/PolarWolf314/walletvault/internal/errors"
	"golang.org/x/term"
)

// ReadPassphrase prompts for a passphrase on stdin without echoing input.
// Returns an error if stdin is not a terminal.
func ReadPassphrase(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("cannot read passphrase: stdin is not a terminal")
	}

	return readHidden(fd, prompt)
}

// ReadPassphraseFromTTY prompts on /dev/tty (or CON on Windows). Use it when
// stdin carries other input, such as a piped wallet secret.
func ReadPassphraseFromTTY(prompt string) ([]byte, error) {
	tty, err := os.Open(ttyPath())
	if err != nil {
		return nil, fmt.Errorf("cannot open %s for passphrase input: %w", ttyPath(), err)
	}
	defer tty.Close()

	fd := int(tty.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s is not a terminal", ttyPath())
	}

	return readHidden(fd, prompt)
}

// ReadNewPassphrase prompts twice and fails with ErrPasswordMismatch if the
// entries differ. read is ReadPassphrase or ReadPassphraseFromTTY.
func ReadNewPassphrase(read func(string) ([]byte, error)) ([]byte, error) {
	first, err := read("Enter wallet password: ")
	if err != nil {
		return nil, err
	}
	if len(first) == 0 {
		return nil, verrors.ErrPasswordRequired
	}

	second, err := read("Confirm wallet password: ")
	if err != nil {
		return nil, err
	}
	if string(first) != string(second) {
		return nil, verrors.ErrPasswordMismatch
	}

	return first, nil
}

func readHidden(fd int, prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	return passphrase, nil
}

func ttyPath() string {
	if runtime.GOOS == "windows" {
		return "CON"
	}
	return "/dev/tty"
}
