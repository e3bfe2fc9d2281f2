package workflows

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/walletvault/internal/audit"
	"github.com/PolarWolf314/walletvault/internal/configs"
	"github.com/PolarWolf314/walletvault/internal/encryption"
	verrors "github.com/PolarWolf314/walletvault/internal/errors"
)

const (
	testSecret   = `{"mnemonic":"test mnemonic","seed":"test seed"}`
	testPassword = "secure-password-123!"
)

// setupVault points the settings at a temp dir and initializes a vault that
// writes version 1 records, which keeps key derivation fast.
func setupVault(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	original := configs.WalletVaultSettings
	configs.WalletVaultSettings = &configs.Settings{
		ConfigPath: filepath.Join(tempDir, "config"),
		DataPath:   filepath.Join(tempDir, "data"),
	}
	t.Cleanup(func() {
		configs.WalletVaultSettings = original
	})

	result, err := Init(context.Background(), InitOptions{Version: 1})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return result.VaultPath
}

func encryptWallet(t *testing.T, name string) *EncryptResult {
	t.Helper()
	result, err := Encrypt(context.Background(), EncryptOptions{
		Name:      name,
		Plaintext: testSecret,
		Password:  testPassword,
	})
	if err != nil {
		t.Fatalf("Encrypt(%s) failed: %v", name, err)
	}
	return result
}

func TestInit(t *testing.T) {
	vaultPath := setupVault(t)

	if _, err := os.Stat(vaultPath); err != nil {
		t.Fatalf("Vault directory not created: %v", err)
	}

	userConfig, err := configs.LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig failed: %v", err)
	}
	if userConfig.Vault.ID == "" {
		t.Error("Expected a vault ID in the config")
	}
	if userConfig.WriteVersion() != 1 {
		t.Errorf("Expected write version 1, got %d", userConfig.WriteVersion())
	}

	_, err = Init(context.Background(), InitOptions{})
	if !errors.Is(err, verrors.ErrVaultAlreadyInitialized) {
		t.Errorf("Expected ErrVaultAlreadyInitialized, got %v", err)
	}
}

func TestInit_UnsupportedVersion(t *testing.T) {
	tempDir := t.TempDir()
	original := configs.WalletVaultSettings
	configs.WalletVaultSettings = &configs.Settings{
		ConfigPath: filepath.Join(tempDir, "config"),
		DataPath:   filepath.Join(tempDir, "data"),
	}
	defer func() { configs.WalletVaultSettings = original }()

	_, err := Init(context.Background(), InitOptions{Version: 99})
	if !errors.Is(err, verrors.ErrUnsupportedVersion) {
		t.Errorf("Expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestEncryptDecrypt(t *testing.T) {
	vaultPath := setupVault(t)

	enc := encryptWallet(t, "hot")
	if enc.Version != 1 || enc.KDF != encryption.KDFPBKDF2 {
		t.Errorf("Unexpected parameters: version %d, kdf %s", enc.Version, enc.KDF)
	}
	if enc.Replaced {
		t.Error("First encrypt should not report a replaced record")
	}

	info, err := os.Stat(enc.Path)
	if err != nil {
		t.Fatalf("Record not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected record mode 0600, got %o", perm)
	}

	dec, err := Decrypt(context.Background(), DecryptOptions{Name: "hot", Password: testPassword})
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if dec.Plaintext != testSecret {
		t.Errorf("Plaintext mismatch: got %q", dec.Plaintext)
	}
	if !dec.NeedsMigration {
		t.Error("Version 1 record should need migration")
	}

	_, err = Decrypt(context.Background(), DecryptOptions{Name: "hot", Password: "wrong-password"})
	if !errors.Is(err, verrors.ErrIncorrectPassword) {
		t.Errorf("Expected ErrIncorrectPassword, got %v", err)
	}

	entries, err := audit.ReadEntries(vaultPath)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	ops := make(map[string]int)
	for _, e := range entries {
		ops[e.Operation]++
	}
	if ops["init"] != 1 || ops["encrypt"] != 1 || ops["decrypt"] != 1 {
		t.Errorf("Unexpected audit operations: %v", ops)
	}
}

func TestEncrypt_Errors(t *testing.T) {
	setupVault(t)
	encryptWallet(t, "hot")

	tests := []struct {
		name    string
		opts    EncryptOptions
		wantErr error
	}{
		{"InvalidName", EncryptOptions{Name: "../escape", Plaintext: testSecret, Password: testPassword}, verrors.ErrInvalidWalletName},
		{"EmptyPassword", EncryptOptions{Name: "cold", Plaintext: testSecret}, verrors.ErrPasswordRequired},
		{"Exists", EncryptOptions{Name: "hot", Plaintext: testSecret, Password: testPassword}, verrors.ErrWalletExists},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Encrypt(context.Background(), tc.opts)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestEncrypt_Overwrite(t *testing.T) {
	setupVault(t)
	encryptWallet(t, "hot")

	result, err := Encrypt(context.Background(), EncryptOptions{
		Name:      "hot",
		Plaintext: "replacement",
		Password:  "new-password",
		Overwrite: true,
	})
	if err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}
	if !result.Replaced {
		t.Error("Expected Replaced to be true")
	}

	dec, err := Decrypt(context.Background(), DecryptOptions{Name: "hot", Password: "new-password"})
	if err != nil || dec.Plaintext != "replacement" {
		t.Errorf("Unexpected decrypt result %v, %v", dec, err)
	}
}

func TestDecrypt_NotInitialized(t *testing.T) {
	tempDir := t.TempDir()
	original := configs.WalletVaultSettings
	configs.WalletVaultSettings = &configs.Settings{
		ConfigPath: filepath.Join(tempDir, "config"),
		DataPath:   filepath.Join(tempDir, "data"),
	}
	defer func() { configs.WalletVaultSettings = original }()

	_, err := Decrypt(context.Background(), DecryptOptions{Name: "hot", Password: testPassword})
	if !errors.Is(err, verrors.ErrVaultNotInitialized) {
		t.Errorf("Expected ErrVaultNotInitialized, got %v", err)
	}
}

func TestDecrypt_NotFound(t *testing.T) {
	setupVault(t)

	_, err := Decrypt(context.Background(), DecryptOptions{Name: "missing", Password: testPassword})
	if !errors.Is(err, verrors.ErrWalletNotFound) {
		t.Errorf("Expected ErrWalletNotFound, got %v", err)
	}
}

func TestVerify(t *testing.T) {
	setupVault(t)
	encryptWallet(t, "hot")

	ok, err := Verify(context.Background(), VerifyOptions{Name: "hot", Password: testPassword})
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok.Valid {
		t.Error("Expected correct password to verify")
	}

	bad, err := Verify(context.Background(), VerifyOptions{Name: "hot", Password: "wrong-password"})
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if bad.Valid {
		t.Error("Expected wrong password to fail verification")
	}

	result, err := Log(context.Background(), LogOptions{Operations: "verify"})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if len(result.Entries) != 2 || result.Entries[1].Failed != 1 {
		t.Errorf("Unexpected verify audit entries: %+v", result.Entries)
	}
}

func TestMigrate(t *testing.T) {
	setupVault(t)
	encryptWallet(t, "hot")
	encryptWallet(t, "cold")

	dry, err := Migrate(context.Background(), MigrateOptions{DryRun: true})
	if err != nil {
		t.Fatalf("Dry run failed: %v", err)
	}
	if dry.Migrated() != 2 || dry.BackupPath != "" {
		t.Errorf("Unexpected dry run result: %+v", dry)
	}

	status, err := Status(context.Background(), StatusOptions{})
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if status.Summary.NeedsMigration != 2 {
		t.Fatalf("Dry run must not write, got %+v", status.Summary)
	}

	result, err := Migrate(context.Background(), MigrateOptions{Patterns: []string{"hot"}, Password: testPassword})
	if err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if len(result.Records) != 1 || result.Records[0].Status != MigrationDone {
		t.Fatalf("Unexpected migrate result: %+v", result.Records)
	}
	if result.Records[0].FromVersion != 1 || result.Records[0].ToVersion != encryption.CurrentVersion {
		t.Errorf("Unexpected versions: %+v", result.Records[0])
	}
	if _, err := os.Stat(result.BackupPath); err != nil {
		t.Errorf("Expected backup at %s: %v", result.BackupPath, err)
	}

	dec, err := Decrypt(context.Background(), DecryptOptions{Name: "hot", Password: testPassword})
	if err != nil {
		t.Fatalf("Decrypt after migrate failed: %v", err)
	}
	if dec.Plaintext != testSecret || dec.Version != encryption.CurrentVersion {
		t.Errorf("Unexpected record after migrate: %+v", dec)
	}

	// Already current records are left alone.
	again, err := Migrate(context.Background(), MigrateOptions{Patterns: []string{"hot"}, Password: testPassword})
	if err != nil {
		t.Fatalf("Second migrate failed: %v", err)
	}
	if again.Records[0].Status != MigrationCurrent || again.BackupPath != "" {
		t.Errorf("Expected no-op migration, got %+v", again)
	}
}

func TestMigrate_WrongPasswordLeavesRecord(t *testing.T) {
	vaultPath := setupVault(t)
	encryptWallet(t, "hot")

	before, err := os.ReadFile(filepath.Join(vaultPath, "hot.wallet.json"))
	if err != nil {
		t.Fatal(err)
	}

	result, err := Migrate(context.Background(), MigrateOptions{Password: "wrong-password", SkipBackup: true})
	if err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if result.Failed() != 1 || !result.Records[0].IsIncorrectPassword() {
		t.Errorf("Expected one incorrect password failure, got %+v", result.Records)
	}

	after, err := os.ReadFile(filepath.Join(vaultPath, "hot.wallet.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("Failed migration must not modify the record")
	}
}

func TestMigrate_Cancelled(t *testing.T) {
	setupVault(t)
	encryptWallet(t, "hot")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Migrate(ctx, MigrateOptions{Password: testPassword, SkipBackup: true})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestMigrate_LegacyRecord(t *testing.T) {
	vaultPath := setupVault(t)

	manager, err := encryption.NewManagerWithVersion(1)
	if err != nil {
		t.Fatal(err)
	}
	data, err := manager.Encrypt(testSecret, testPassword)
	if err != nil {
		t.Fatal(err)
	}
	data.Version = 0
	raw, err := data.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(vaultPath, "legacy.wallet.json"), raw, 0600); err != nil {
		t.Fatal(err)
	}

	result, err := Migrate(context.Background(), MigrateOptions{Password: testPassword, SkipBackup: true})
	if err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if result.Records[0].FromVersion != 1 || result.Records[0].Status != MigrationDone {
		t.Errorf("Unexpected result for legacy record: %+v", result.Records[0])
	}
}

func TestStatus_EmptyVault(t *testing.T) {
	setupVault(t)

	result, err := Status(context.Background(), StatusOptions{})
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if result.Summary.Total != 0 || result.WriteVersion != 1 {
		t.Errorf("Unexpected status: %+v", result)
	}
}

func TestStatus_UnreadableRecord(t *testing.T) {
	vaultPath := setupVault(t)
	encryptWallet(t, "hot")

	if err := os.WriteFile(filepath.Join(vaultPath, "broken.wallet.json"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	result, err := Status(context.Background(), StatusOptions{})
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if result.Summary.Total != 2 || result.Summary.Unreadable != 1 {
		t.Errorf("Unexpected summary: %+v", result.Summary)
	}
	if !errors.Is(result.Records[0].Err, verrors.ErrInvalidRecord) {
		t.Errorf("Expected ErrInvalidRecord for broken record, got %v", result.Records[0].Err)
	}
}

func TestInfo(t *testing.T) {
	setupVault(t)

	result, err := Info(context.Background(), InfoOptions{})
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if result.Security.Version != 1 || result.Security.EstimatedCrackTime != "months" {
		t.Errorf("Unexpected security info: %+v", result.Security)
	}
	if len(result.Versions) != 4 || !result.Versions[3].Current {
		t.Errorf("Unexpected registry listing: %+v", result.Versions)
	}
}

func TestLog_Filters(t *testing.T) {
	setupVault(t)
	encryptWallet(t, "hot")
	encryptWallet(t, "cold")

	tests := []struct {
		name string
		opts LogOptions
		want int
	}{
		{"All", LogOptions{}, 3},
		{"Operation", LogOptions{Operations: "encrypt"}, 2},
		{"Wallet", LogOptions{Wallet: "cold"}, 1},
		{"Limit", LogOptions{Limit: 1}, 1},
		{"Since", LogOptions{Since: "2000-01-01"}, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Log(context.Background(), tc.opts)
			if err != nil {
				t.Fatalf("Log failed: %v", err)
			}
			if len(result.Entries) != tc.want {
				t.Errorf("Expected %d entries, got %d", tc.want, len(result.Entries))
			}
		})
	}

	result, err := Log(context.Background(), LogOptions{Limit: 1, Reverse: true})
	if err != nil {
		t.Fatal(err)
	}
	if result.Entries[0].Wallets[0] != "cold" {
		t.Errorf("Expected most recent entry first, got %+v", result.Entries[0])
	}

	_, err = Log(context.Background(), LogOptions{Since: "yesterday"})
	if !errors.Is(err, verrors.ErrInvalidDateFormat) {
		t.Errorf("Expected ErrInvalidDateFormat, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	vaultPath := setupVault(t)
	encryptWallet(t, "hot")

	result, err := Remove(context.Background(), RemoveOptions{Name: "hot.wallet.json"})
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if result.Name != "hot" {
		t.Errorf("Expected hot, got %s", result.Name)
	}
	if _, err := os.Stat(filepath.Join(vaultPath, "hot.wallet.json")); !os.IsNotExist(err) {
		t.Error("Record file should be gone")
	}

	_, err = Remove(context.Background(), RemoveOptions{Name: "hot"})
	if !errors.Is(err, verrors.ErrWalletNotFound) {
		t.Errorf("Expected ErrWalletNotFound, got %v", err)
	}
}

func TestSingleWalletWorkflowsRejectGlobs(t *testing.T) {
	vaultPath := setupVault(t)
	encryptWallet(t, "alpha")
	encryptWallet(t, "beta")

	t.Run("Decrypt", func(t *testing.T) {
		result, err := Decrypt(context.Background(), DecryptOptions{Name: "*", Password: testPassword})
		if !errors.Is(err, verrors.ErrAmbiguousWallet) {
			t.Errorf("Expected ErrAmbiguousWallet, got %+v, %v", result, err)
		}
	})

	t.Run("Verify", func(t *testing.T) {
		result, err := Verify(context.Background(), VerifyOptions{Name: "*", Password: testPassword})
		if !errors.Is(err, verrors.ErrAmbiguousWallet) {
			t.Errorf("Expected ErrAmbiguousWallet, got %+v, %v", result, err)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		_, err := Remove(context.Background(), RemoveOptions{Name: "*"})
		if !errors.Is(err, verrors.ErrAmbiguousWallet) {
			t.Errorf("Expected ErrAmbiguousWallet, got %v", err)
		}
		for _, name := range []string{"alpha", "beta"} {
			if _, err := os.Stat(filepath.Join(vaultPath, name+".wallet.json")); err != nil {
				t.Errorf("Record %s should still exist: %v", name, err)
			}
		}
	})
}
