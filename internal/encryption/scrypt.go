package encryption

import (
	"fmt"

	verrors "github.com/PolarWolf314/walletvault/internal/errors"
	"golang.org/x/crypto/scrypt"
)

const (
	// ScryptR is the scrypt block size parameter.
	ScryptR = 8

	// ScryptP is the scrypt parallelization parameter.
	ScryptP = 1
)

// ScryptProvider derives keys with scrypt. CryptoConfig.Iterations is used as N.
type ScryptProvider struct {
	box
}

func NewScryptProvider(cfg CryptoConfig) *ScryptProvider {
	return &ScryptProvider{box: box{cfg: cfg}}
}

func (p *ScryptProvider) DeriveKey(password string, salt []byte) ([]byte, error) {
	pw := []byte(password)
	defer wipe(pw)

	key, err := scrypt.Key(pw, salt, p.cfg.Iterations, ScryptR, ScryptP, p.cfg.KeyLength)
	if err != nil {
		return nil, fmt.Errorf("%w: scrypt: %w", verrors.ErrKDFFailed, err)
	}
	return key, nil
}
