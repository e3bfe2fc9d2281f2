package encryption

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	verrors "github.com/PolarWolf314/walletvault/internal/errors"
	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2Provider derives keys with PBKDF2-HMAC using the config's digest.
type PBKDF2Provider struct {
	box
	hash func() hash.Hash
}

// NewPBKDF2Provider returns a provider for cfg. Only sha256 and sha512 are accepted.
func NewPBKDF2Provider(cfg CryptoConfig) (*PBKDF2Provider, error) {
	var h func() hash.Hash
	switch cfg.Digest {
	case DigestSHA256:
		h = sha256.New
	case DigestSHA512:
		h = sha512.New
	default:
		return nil, fmt.Errorf("%w: pbkdf2 digest %q", verrors.ErrUnsupportedKDF, cfg.Digest)
	}

	return &PBKDF2Provider{box: box{cfg: cfg}, hash: h}, nil
}

func (p *PBKDF2Provider) DeriveKey(password string, salt []byte) ([]byte, error) {
	pw := []byte(password)
	defer wipe(pw)

	return pbkdf2.Key(pw, salt, p.cfg.Iterations, p.cfg.KeyLength, p.hash), nil
}
