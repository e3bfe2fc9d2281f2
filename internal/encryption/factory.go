package encryption

import (
	"fmt"

	verrors "github.com/PolarWolf314/walletvault/internal/errors"
)

// NewProvider returns the provider for cfg.KDF.
func NewProvider(cfg CryptoConfig) (Provider, error) {
	switch cfg.KDF {
	case KDFPBKDF2:
		p, err := NewPBKDF2Provider(cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	case KDFScrypt:
		return NewScryptProvider(cfg), nil
	case KDFArgon2:
		return NewArgon2Provider(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", verrors.ErrUnsupportedKDF, cfg.KDF)
	}
}

// NewProviderForVersion looks up version in the registry and builds its provider.
func NewProviderForVersion(version int) (Provider, error) {
	cfg, ok := Config(version)
	if !ok {
		return nil, fmt.Errorf("%w: %d", verrors.ErrUnsupportedVersion, version)
	}
	return NewProvider(cfg)
}
