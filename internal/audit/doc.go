// Package audit records vault operations in an append-only log.
//
// The log lives next to the records as JSON Lines:
//
//	<vault>/audit.jsonl
//
// Each entry holds an entry UUID, a UTC timestamp, the vault ID, the
// operation name and operation details (wallet names, versions, KDF).
// Secrets are never written to the log.
//
// # Usage
//
//	entry := audit.NewEntry("migrate")
//	entry.Wallets = migrated
//	entry.Version = encryption.CurrentVersion
//	audit.Log(vaultPath, entry)
//
// Logging is best-effort. If the log can't be written the operation still
// succeeds.
package audit
