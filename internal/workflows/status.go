package workflows

import (
	"context"

	"github.com/PolarWolf314/walletvault/internal/encryption"
)

// RecordStatus describes one record in the vault.
type RecordStatus struct {
	Name    string
	Version int
	KDF     encryption.KDF

	// NeedsMigration is true when the record predates the current version.
	NeedsMigration bool

	// Err is set when the record file could not be read.
	Err error
}

// StatusSummary holds record counts.
type StatusSummary struct {
	Total          int
	NeedsMigration int
	Unreadable     int
}

// StatusOptions configures the status workflow.
type StatusOptions struct {
	// Patterns selects records by name, path or glob. Empty selects all.
	Patterns []string
}

// StatusResult contains the outcome of a status operation.
type StatusResult struct {
	VaultPath string

	// WriteVersion is the version new records are written with.
	WriteVersion int

	Records []RecordStatus
	Summary StatusSummary
}

// Status reports the version and KDF of every record without decrypting.
// An empty vault is not an error.
//
// Returns ErrVaultNotInitialized if the vault does not exist.
func Status(ctx context.Context, opts StatusOptions) (*StatusResult, error) {
	userConfig, v, err := openVault(false)
	if err != nil {
		return nil, err
	}

	result := &StatusResult{
		VaultPath:    v.Path,
		WriteVersion: userConfig.WriteVersion(),
	}

	all, err := v.List()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return result, nil
	}

	names, err := v.Resolve(opts.Patterns)
	if err != nil {
		return nil, err
	}

	manager := encryption.DefaultManager
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		status := RecordStatus{Name: name}
		record, err := v.Load(name)
		if err != nil {
			status.Err = err
			result.Summary.Unreadable++
		} else {
			status.Version = encryption.RecordVersion(record.Data)
			status.KDF = record.Data.KDF
			status.NeedsMigration = manager.NeedsMigration(record.Data)
			if status.NeedsMigration {
				result.Summary.NeedsMigration++
			}
		}

		result.Records = append(result.Records, status)
		result.Summary.Total++
	}

	return result, nil
}
