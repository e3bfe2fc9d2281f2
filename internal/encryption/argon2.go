package encryption

import (
	"fmt"
	"math"

	verrors "github.com/PolarWolf314/walletvault/internal/errors"
	"golang.org/x/crypto/argon2"
)

const (
	// Argon2Memory is the argon2id memory cost in KiB (64 MiB).
	Argon2Memory = 64 * 1024

	// Argon2Threads is the argon2id parallelism degree.
	Argon2Threads = 1
)

// Argon2Provider derives keys with argon2id. CryptoConfig.Iterations is the pass count.
type Argon2Provider struct {
	box
}

func NewArgon2Provider(cfg CryptoConfig) *Argon2Provider {
	return &Argon2Provider{box: box{cfg: cfg}}
}

// DeriveKey runs argon2id. The argon2 package panics on invalid parameters;
// those panics come back as ErrKDFFailed.
func (p *Argon2Provider) DeriveKey(password string, salt []byte) (key []byte, err error) {
	if p.cfg.Iterations < 1 || p.cfg.Iterations > math.MaxUint32 {
		return nil, fmt.Errorf("%w: argon2: invalid pass count %d", verrors.ErrKDFFailed, p.cfg.Iterations)
	}
	if p.cfg.KeyLength < 1 || p.cfg.KeyLength > math.MaxUint32 {
		return nil, fmt.Errorf("%w: argon2: invalid key length %d", verrors.ErrKDFFailed, p.cfg.KeyLength)
	}

	pw := []byte(password)
	defer wipe(pw)

	defer func() {
		if r := recover(); r != nil {
			key = nil
			err = fmt.Errorf("%w: argon2: %v", verrors.ErrKDFFailed, r)
		}
	}()

	return argon2.IDKey(pw, salt, uint32(p.cfg.Iterations), Argon2Memory, Argon2Threads, uint32(p.cfg.KeyLength)), nil
}
