// Package utils provides shared helpers for the walletvault CLI.
//
// # Terminal Utilities
//
//   - ReadPassphrase / ReadPassphraseFromTTY: hidden password prompts
//   - ReadNewPassphrase: prompt twice and compare
//
// # I/O Utilities
//
//   - ReadAll: reads a piped wallet secret
//   - ReadLine: reads one line, for --password-stdin
//
// # String Utilities
//
//   - SanitizeWalletName: normalizes free text into a wallet name
package utils
