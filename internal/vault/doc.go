// Package vault stores encrypted wallet records on disk.
//
// A vault is a directory holding one JSON file per wallet:
//
//	<vault>/
//	    hot.wallet.json
//	    cold.wallet.json
//	    audit.jsonl
//
// Each file is an encryption.EncryptedData record. Records are written
// atomically with 0600 permissions. Names may be given as bare names, file
// names, paths or doublestar globs ("hot-*", "{hot,cold}").
//
// Backup copies the vault directory before bulk operations such as migration.
package vault
