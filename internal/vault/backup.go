package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Backup copies the whole vault directory to a timestamped sibling directory
// and returns its path.
func (v *Vault) Backup() (string, error) {
	backupDir := filepath.Clean(v.Path) + ".backup-" + time.Now().Format("20060102-150405.000000")

	if err := copyDir(v.Path, backupDir); err != nil {
		return "", fmt.Errorf("failed to back up vault: %w", err)
	}
	return backupDir, nil
}

func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.IsDir():
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

func copyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, data, srcInfo.Mode().Perm())
}
