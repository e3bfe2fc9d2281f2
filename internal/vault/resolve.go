package vault

import (
	"fmt"
	"path/filepath"
	"strings"

	verrors "github.com/PolarWolf314/walletvault/internal/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// Resolve turns user-provided names, record paths or globs into record names.
// An empty pattern list resolves to every record in the vault.
func (v *Vault) Resolve(patterns []string) ([]string, error) {
	all, err := v.List()
	if err != nil {
		return nil, err
	}

	if len(patterns) == 0 {
		if len(all) == 0 {
			return nil, verrors.ErrNoWalletsFound
		}
		return all, nil
	}

	var names []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern, all)
		if err != nil {
			return nil, err
		}

		for _, name := range resolved {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	if len(names) == 0 {
		return nil, verrors.ErrNoWalletsFound
	}
	return names, nil
}

// ResolveOne turns a single wallet name, record file name or path into a
// record name. Glob patterns are rejected with ErrAmbiguousWallet.
func (v *Vault) ResolveOne(name string) (string, error) {
	if isGlob(strings.TrimSuffix(filepath.Base(name), RecordSuffix)) {
		return "", fmt.Errorf("%w, got pattern %q", verrors.ErrAmbiguousWallet, name)
	}

	names, err := v.Resolve([]string{name})
	if err != nil {
		return "", err
	}
	if len(names) != 1 {
		return "", fmt.Errorf("%w: %q matches %d wallets", verrors.ErrAmbiguousWallet, name, len(names))
	}
	return names[0], nil
}

func isGlob(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

func resolvePattern(pattern string, all []string) ([]string, error) {
	// Accept record file names and paths as well as bare names.
	base := strings.TrimSuffix(filepath.Base(pattern), RecordSuffix)

	if !isGlob(base) {
		for _, name := range all {
			if name == base {
				return []string{name}, nil
			}
		}
		return nil, fmt.Errorf("%w: %s", verrors.ErrWalletNotFound, pattern)
	}

	if !doublestar.ValidatePattern(base) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}

	var matched []string
	for _, name := range all {
		ok, err := doublestar.Match(base, name)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if ok {
			matched = append(matched, name)
		}
	}
	return matched, nil
}
