// Package workflows provides high-level orchestration for walletvault commands.
//
// Workflows coordinate the configs, vault, encryption and audit packages to
// implement complete user-facing features. Each workflow handles a single
// command's business logic, independent of CLI concerns like flag parsing,
// password prompts, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Reads passwords and wallet secrets from the terminal or stdin
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Loading the user configuration and opening the vault
//   - Building the encryption manager for the configured version
//   - Performing the core operation
//   - Recording audit trail entries
//
// # Available Workflows
//
//   - Init: Creates the user configuration and the vault directory
//   - Encrypt: Encrypts a wallet secret into a named record
//   - Decrypt: Opens a named record
//   - Verify: Checks a password against a record without revealing it
//   - Migrate: Re-encrypts old records under the current version
//   - Remove: Deletes a record
//   - Status: Reports the version of every record
//   - Info: Describes the configured security parameters
//   - Log: Reads and filters the audit log
//
// # Error Handling
//
// Workflows return sentinel errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Use errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, verrors.ErrIncorrectPassword) {
//	    // Ask the user to try again
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Key derivation itself is not interruptible, so bulk workflows check the
// context between records.
package workflows
