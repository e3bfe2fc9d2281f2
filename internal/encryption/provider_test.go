package encryption

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	verrors "github.com/PolarWolf314/walletvault/internal/errors"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/scrypt"
)

func mustProvider(t *testing.T, cfg CryptoConfig) Provider {
	t.Helper()
	p, err := NewProvider(cfg)
	if err != nil {
		t.Fatalf("NewProvider(%+v) failed: %v", cfg, err)
	}
	return p
}

func TestPBKDF2_KnownVectors(t *testing.T) {
	tests := []struct {
		name       string
		iterations int
		want       string
	}{
		{"OneIteration", 1, "120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b"},
		{"FourThousandIterations", 4096, "c5e478d59288c841aa530db6845c4c8d962893a001ce4e11a4963873aa98134a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustProvider(t, CryptoConfig{
				KDF: KDFPBKDF2, Iterations: tt.iterations, Digest: DigestSHA256, SaltLength: 16, KeyLength: 32,
			})

			key, err := p.DeriveKey("password", []byte("salt"))
			if err != nil {
				t.Fatalf("DeriveKey failed: %v", err)
			}
			if got := hex.EncodeToString(key); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestPBKDF2_DigestChangesKey(t *testing.T) {
	salt := []byte("0123456789abcdef")
	p256 := mustProvider(t, CryptoConfig{KDF: KDFPBKDF2, Iterations: 10, Digest: DigestSHA256, SaltLength: 16, KeyLength: 32})
	p512 := mustProvider(t, CryptoConfig{KDF: KDFPBKDF2, Iterations: 10, Digest: DigestSHA512, SaltLength: 16, KeyLength: 32})

	k1, _ := p256.DeriveKey("password", salt)
	k2, _ := p512.DeriveKey("password", salt)
	if bytes.Equal(k1, k2) {
		t.Fatal("Expected sha256 and sha512 to derive different keys")
	}
	if len(k2) != 32 {
		t.Errorf("Expected 32-byte key, got %d", len(k2))
	}
}

func TestPBKDF2_UnsupportedDigest(t *testing.T) {
	_, err := NewProvider(CryptoConfig{KDF: KDFPBKDF2, Iterations: 1, Digest: "md5", SaltLength: 16, KeyLength: 32})
	if !errors.Is(err, verrors.ErrUnsupportedKDF) {
		t.Fatalf("Expected ErrUnsupportedKDF, got %v", err)
	}
}

func TestScrypt_MatchesReference(t *testing.T) {
	cfg := CryptoConfig{KDF: KDFScrypt, Iterations: 1024, Digest: DigestSHA256, SaltLength: 32, KeyLength: 32}
	p := mustProvider(t, cfg)
	salt := bytes.Repeat([]byte{0x42}, 32)

	got, err := p.DeriveKey("hunter2", salt)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}

	want, err := scrypt.Key([]byte("hunter2"), salt, 1024, 8, 1, 32)
	if err != nil {
		t.Fatalf("scrypt.Key failed: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatal("Scrypt provider does not match scrypt.Key with r=8, p=1")
	}
}

func TestScrypt_InvalidCostFails(t *testing.T) {
	p := mustProvider(t, CryptoConfig{KDF: KDFScrypt, Iterations: 1000, Digest: DigestSHA256, SaltLength: 32, KeyLength: 32})

	_, err := p.DeriveKey("password", make([]byte, 32))
	if !errors.Is(err, verrors.ErrKDFFailed) {
		t.Fatalf("Expected ErrKDFFailed for non power of two N, got %v", err)
	}
	if errors.Is(err, verrors.ErrIncorrectPassword) {
		t.Fatal("KDF failure must not look like a wrong password")
	}
}

func TestArgon2_MatchesReference(t *testing.T) {
	cfg, _ := Config(CurrentVersion)
	p := mustProvider(t, cfg)
	salt := bytes.Repeat([]byte{0x07}, cfg.SaltLength)

	got, err := p.DeriveKey("hunter2", salt)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}

	want := argon2.IDKey([]byte("hunter2"), salt, uint32(cfg.Iterations), 64*1024, 1, uint32(cfg.KeyLength))
	if !bytes.Equal(got, want) {
		t.Fatal("Argon2 provider does not match argon2.IDKey with m=64MiB, p=1")
	}
}

func TestArgon2_InvalidParametersFail(t *testing.T) {
	p := mustProvider(t, CryptoConfig{KDF: KDFArgon2, Iterations: 0, Digest: DigestSHA256, SaltLength: 32, KeyLength: 32})

	key, err := p.DeriveKey("password", make([]byte, 32))
	if !errors.Is(err, verrors.ErrKDFFailed) {
		t.Fatalf("Expected ErrKDFFailed, got %v", err)
	}
	if key != nil {
		t.Error("Expected no key on failure")
	}
}

func TestDeriveKey_DeterministicAndSensitive(t *testing.T) {
	for _, v := range []int{1, 2, 3} {
		cfg, _ := Config(v)
		p := mustProvider(t, cfg)
		salt, err := p.GenerateSalt()
		if err != nil {
			t.Fatalf("GenerateSalt failed: %v", err)
		}

		k1, _ := p.DeriveKey("correct horse", salt)
		k2, _ := p.DeriveKey("correct horse", salt)
		k3, _ := p.DeriveKey("correct horsf", salt)

		if !bytes.Equal(k1, k2) {
			t.Errorf("Version %d: same inputs derived different keys", v)
		}
		if bytes.Equal(k1, k3) {
			t.Errorf("Version %d: different passwords derived the same key", v)
		}
		if len(k1) != cfg.KeyLength {
			t.Errorf("Version %d: expected key length %d, got %d", v, cfg.KeyLength, len(k1))
		}
	}
}

func TestGenerateSaltAndNonce(t *testing.T) {
	cfg, _ := Config(2)
	p := mustProvider(t, cfg)

	s1, _ := p.GenerateSalt()
	s2, _ := p.GenerateSalt()
	if len(s1) != cfg.SaltLength {
		t.Errorf("Expected salt length %d, got %d", cfg.SaltLength, len(s1))
	}
	if bytes.Equal(s1, s2) {
		t.Error("Expected two salts to differ")
	}

	n1, _ := p.GenerateNonce()
	n2, _ := p.GenerateNonce()
	if len(n1) != NonceSize {
		t.Errorf("Expected nonce length %d, got %d", NonceSize, len(n1))
	}
	if bytes.Equal(n1, n2) {
		t.Error("Expected two nonces to differ")
	}
}

func TestProvider_EncryptDecrypt(t *testing.T) {
	cfg, _ := Config(1)
	p := mustProvider(t, cfg)
	key := bytes.Repeat([]byte{0x01}, 32)

	encrypted, nonce, err := p.Encrypt("seed words", key)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	plaintext, ok := p.Decrypt(encrypted, nonce, key)
	if !ok {
		t.Fatal("Expected decrypt to succeed")
	}
	if plaintext != "seed words" {
		t.Errorf("Expected %q, got %q", "seed words", plaintext)
	}

	t.Run("WrongKey", func(t *testing.T) {
		wrong := bytes.Repeat([]byte{0x02}, 32)
		if _, ok := p.Decrypt(encrypted, nonce, wrong); ok {
			t.Fatal("Expected decrypt with wrong key to fail")
		}
	})

	t.Run("TamperedCiphertext", func(t *testing.T) {
		tampered := append([]byte(nil), encrypted...)
		tampered[len(tampered)-1] ^= 0xff
		if _, ok := p.Decrypt(tampered, nonce, key); ok {
			t.Fatal("Expected decrypt of tampered ciphertext to fail")
		}
	})

	t.Run("TamperedNonce", func(t *testing.T) {
		tampered := append([]byte(nil), nonce...)
		tampered[0] ^= 0x01
		if _, ok := p.Decrypt(encrypted, tampered, key); ok {
			t.Fatal("Expected decrypt with tampered nonce to fail")
		}
	})

	t.Run("ShortNonce", func(t *testing.T) {
		if _, ok := p.Decrypt(encrypted, nonce[:10], key); ok {
			t.Fatal("Expected decrypt with short nonce to fail")
		}
	})
}

func TestProvider_EncryptRejectsBadKeyLength(t *testing.T) {
	cfg, _ := Config(1)
	p := mustProvider(t, cfg)

	_, _, err := p.Encrypt("data", make([]byte, 16))
	if !errors.Is(err, verrors.ErrInvalidKeyLength) {
		t.Fatalf("Expected ErrInvalidKeyLength, got %v", err)
	}
}
