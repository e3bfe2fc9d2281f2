package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SaveTOML writes data to filePath through a temp file and rename, so a
// crash never leaves a half-written config behind.
func SaveTOML(filePath string, data any) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".config-*.toml")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := toml.NewEncoder(tmp).Encode(data); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding TOML: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		return err
	}

	return os.Rename(tmpPath, filePath)
}

// LoadTOML decodes filePath into data. Unknown keys are rejected.
func LoadTOML(filePath string, data any) error {
	md, err := toml.DecodeFile(filePath, data)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return nil
}
