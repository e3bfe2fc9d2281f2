// Package errors provides typed error values for walletvault.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Configuration errors: unknown KDF or version (ErrUnsupportedKDF, ErrUnsupportedVersion)
//   - Crypto errors: wrong password or KDF backend failure (ErrIncorrectPassword, ErrKDFFailed)
//   - Vault errors: record store issues (ErrWalletNotFound, ErrVaultNotInitialized)
//   - Input errors: bad user input (ErrPasswordRequired, ErrInvalidPasswordLength)
//
// ErrIncorrectPassword is the only expected, user-recoverable failure of the
// encryption core. ErrKDFFailed always wraps the underlying cause so it can
// be told apart from a wrong password.
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("loading wallet %s: %w", name, errors.ErrWalletNotFound)
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, verrors.ErrIncorrectPassword) {
//	    // Prompt for the password again
//	}
package errors
