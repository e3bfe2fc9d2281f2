package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/walletvault/internal/configs"
)

// setupTestEnvironment points the settings at temp directories and resets
// command state. Returns the temp root.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	original := configs.WalletVaultSettings
	configs.WalletVaultSettings = &configs.Settings{
		ConfigPath: filepath.Join(tempDir, "config"),
		DataPath:   filepath.Join(tempDir, "data"),
	}
	ResetGlobalState()

	t.Cleanup(func() {
		configs.WalletVaultSettings = original
		ResetGlobalState()
	})
	return tempDir
}

// runCLI executes the root command with args and stdin, returning stdout and stderr.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	ResetGlobalState()

	var stdout, stderr bytes.Buffer
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	RootCmd.SetArgs(args)

	err := RootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}
