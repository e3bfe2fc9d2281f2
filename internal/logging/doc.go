// Package logger provides leveled logging for walletvault commands.
//
// # Verbosity Levels
//
//   - --verbose: shows info and warning messages
//   - --debug: shows everything, including errors as they happen
//
// Without flags only WarnfAlways output is shown; command results are
// printed separately by the cmd package.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Migrating %d wallets", count)
//
// Loggers never receive key material: log record names, versions and KDF
// names, not passwords, derived keys or plaintext.
package logger
