package encryption

import (
	"crypto/rand"
	"fmt"
	"io"

	verrors "github.com/PolarWolf314/walletvault/internal/errors"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	// NonceSize is the secretbox nonce length in bytes.
	NonceSize = 24

	// SecretKeySize is the secretbox key length in bytes.
	SecretKeySize = 32
)

// Provider derives keys for one CryptoConfig and seals data with them.
type Provider interface {
	// DeriveKey turns a password and salt into a KeyLength-byte key.
	// The same password, salt and config always give the same key.
	DeriveKey(password string, salt []byte) ([]byte, error)

	// GenerateSalt returns SaltLength random bytes.
	GenerateSalt() ([]byte, error)

	// GenerateNonce returns a fresh random nonce. Never reuse one with the same key.
	GenerateNonce() ([]byte, error)

	// Encrypt seals plaintext under key with a fresh nonce.
	Encrypt(plaintext string, key []byte) (encrypted, nonce []byte, err error)

	// Decrypt opens a sealed box. ok is false when authentication fails.
	Decrypt(encrypted, nonce, key []byte) (plaintext string, ok bool)

	// Config returns the parameter set the provider is bound to.
	Config() CryptoConfig
}

// box implements everything but DeriveKey; the KDF providers embed it.
type box struct {
	cfg CryptoConfig
}

func (b box) Config() CryptoConfig {
	return b.cfg
}

func (b box) GenerateSalt() ([]byte, error) {
	return randomBytes(b.cfg.SaltLength)
}

func (b box) GenerateNonce() ([]byte, error) {
	return randomBytes(NonceSize)
}

func (b box) Encrypt(plaintext string, key []byte) ([]byte, []byte, error) {
	if len(key) != SecretKeySize {
		return nil, nil, fmt.Errorf("%w: expected %d bytes, got %d bytes", verrors.ErrInvalidKeyLength, SecretKeySize, len(key))
	}

	nonce, err := b.GenerateNonce()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", verrors.ErrEncryptFailed, err)
	}

	var k [SecretKeySize]byte
	var n [NonceSize]byte
	copy(k[:], key)
	copy(n[:], nonce)
	defer wipe(k[:])

	msg := []byte(plaintext)
	defer wipe(msg)

	return secretbox.Seal(nil, msg, &n, &k), nonce, nil
}

func (b box) Decrypt(encrypted, nonce, key []byte) (string, bool) {
	if len(key) != SecretKeySize || len(nonce) != NonceSize {
		return "", false
	}

	var k [SecretKeySize]byte
	var n [NonceSize]byte
	copy(k[:], key)
	copy(n[:], nonce)
	defer wipe(k[:])

	msg, ok := secretbox.Open(nil, encrypted, &n, &k)
	if !ok {
		return "", false
	}
	defer wipe(msg)

	return string(msg), true
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}
