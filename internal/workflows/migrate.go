package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/walletvault/internal/audit"
	"github.com/PolarWolf314/walletvault/internal/encryption"
	verrors "github.com/PolarWolf314/walletvault/internal/errors"
	"github.com/PolarWolf314/walletvault/internal/vault"
)

// MigrationStatus is the outcome of migrating one record.
type MigrationStatus string

const (
	// MigrationCurrent means the record is already at the current version.
	MigrationCurrent MigrationStatus = "current"
	// MigrationPending means the record would be migrated (dry run).
	MigrationPending MigrationStatus = "pending"
	// MigrationDone means the record was re-encrypted and written.
	MigrationDone MigrationStatus = "migrated"
	// MigrationFailed means the record was left untouched because of Err.
	MigrationFailed MigrationStatus = "failed"
)

// MigrateOptions configures the migrate workflow.
type MigrateOptions struct {
	// Patterns selects records by name, path or glob. Empty selects all.
	Patterns []string

	// Password opens every selected record.
	Password string

	// DryRun reports which records would be migrated without writing.
	DryRun bool

	// SkipBackup disables the vault backup taken before writing.
	SkipBackup bool
}

// RecordMigration describes one record's migration.
type RecordMigration struct {
	Name        string
	FromVersion int
	ToVersion   int
	Status      MigrationStatus
	Err         error
}

// MigrateResult contains the outcome of a migrate operation.
type MigrateResult struct {
	Records []RecordMigration

	// BackupPath is the vault copy taken before writing, if any.
	BackupPath string

	DryRun bool
}

// Migrated returns the number of records that were (or would be) migrated.
func (r *MigrateResult) Migrated() int {
	n := 0
	for _, rec := range r.Records {
		if rec.Status == MigrationDone || rec.Status == MigrationPending {
			n++
		}
	}
	return n
}

// Failed returns the number of records that could not be migrated.
func (r *MigrateResult) Failed() int {
	n := 0
	for _, rec := range r.Records {
		if rec.Status == MigrationFailed {
			n++
		}
	}
	return n
}

// Migrate re-encrypts records written with an older version under
// encryption.CurrentVersion. Each record is replaced only after its new
// version has been fully produced, so a failure leaves the old record in
// place. Failures are reported per record; the remaining records are still
// processed.
//
// Returns ErrVaultNotInitialized if the vault does not exist.
// Returns ErrNoWalletsFound if the patterns match nothing.
// Returns the context error if cancelled between records.
func Migrate(ctx context.Context, opts MigrateOptions) (*MigrateResult, error) {
	if opts.Password == "" && !opts.DryRun {
		return nil, verrors.ErrPasswordRequired
	}

	_, v, err := openVault(false)
	if err != nil {
		return nil, err
	}

	names, err := v.Resolve(opts.Patterns)
	if err != nil {
		return nil, err
	}

	manager := encryption.DefaultManager
	result := &MigrateResult{DryRun: opts.DryRun}

	records := make([]*vault.Record, 0, len(names))
	for _, name := range names {
		record, err := v.Load(name)
		if err != nil {
			result.Records = append(result.Records, RecordMigration{
				Name:   name,
				Status: MigrationFailed,
				Err:    err,
			})
			continue
		}
		records = append(records, record)
	}

	pending := 0
	for _, record := range records {
		if manager.NeedsMigration(record.Data) {
			pending++
		}
	}

	if pending > 0 && !opts.DryRun && !opts.SkipBackup {
		backupPath, err := v.Backup()
		if err != nil {
			return nil, err
		}
		result.BackupPath = backupPath
	}

	fromVersion := 0
	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		rec := migrateRecord(v, manager, record, opts)
		if rec.Status == MigrationDone && (fromVersion == 0 || rec.FromVersion < fromVersion) {
			fromVersion = rec.FromVersion
		}
		result.Records = append(result.Records, rec)
	}

	if !opts.DryRun {
		entry := audit.NewEntry("migrate")
		for _, rec := range result.Records {
			if rec.Status == MigrationDone {
				entry.Wallets = append(entry.Wallets, rec.Name)
			}
		}
		entry.Version = encryption.CurrentVersion
		entry.FromVersion = fromVersion
		entry.Failed = result.Failed()
		entry.BackupPath = result.BackupPath
		if cfg, ok := encryption.Config(encryption.CurrentVersion); ok {
			entry.KDF = string(cfg.KDF)
		}
		audit.Log(v.Path, entry)
	}

	return result, nil
}

func migrateRecord(v *vault.Vault, manager *encryption.Manager, record *vault.Record, opts MigrateOptions) RecordMigration {
	rec := RecordMigration{
		Name:        record.Name,
		FromVersion: encryption.RecordVersion(record.Data),
		ToVersion:   encryption.RecordVersion(record.Data),
		Status:      MigrationCurrent,
	}

	if !manager.NeedsMigration(record.Data) {
		return rec
	}

	if opts.DryRun {
		rec.ToVersion = encryption.CurrentVersion
		rec.Status = MigrationPending
		return rec
	}

	migrated, err := manager.Migrate(record.Data, opts.Password)
	if err != nil {
		rec.Status = MigrationFailed
		rec.Err = err
		return rec
	}

	if _, err := v.Save(record.Name, migrated, true); err != nil {
		rec.Status = MigrationFailed
		rec.Err = fmt.Errorf("writing migrated record: %w", err)
		return rec
	}

	rec.ToVersion = migrated.Version
	rec.Status = MigrationDone
	return rec
}

// IsIncorrectPassword reports whether a record migration failed on the password.
func (r RecordMigration) IsIncorrectPassword() bool {
	return errors.Is(r.Err, verrors.ErrIncorrectPassword)
}
