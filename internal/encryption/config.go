package encryption

import "sort"

// KDF names a key derivation function.
type KDF string

const (
	KDFPBKDF2 KDF = "pbkdf2"
	KDFScrypt KDF = "scrypt"
	KDFArgon2 KDF = "argon2"
)

// Digest names the HMAC hash used by PBKDF2. Other KDFs ignore it.
type Digest string

const (
	DigestSHA256 Digest = "sha256"
	DigestSHA512 Digest = "sha512"
)

const (
	// CurrentVersion is the config version new records are written with.
	CurrentVersion = 4

	// LegacyVersion is assumed for records written before the version field existed.
	LegacyVersion = 1
)

// CryptoConfig is a named key derivation parameter set.
//
// For scrypt, Iterations is the cost parameter N. For argon2, it is the
// number of passes.
type CryptoConfig struct {
	KDF        KDF
	Iterations int
	Digest     Digest
	SaltLength int
	KeyLength  int
}

// Registered configs. Never mutated at runtime; Config returns copies.
var configs = map[int]CryptoConfig{
	1: {KDF: KDFPBKDF2, Iterations: 10000, Digest: DigestSHA256, SaltLength: 16, KeyLength: 32},
	2: {KDF: KDFPBKDF2, Iterations: 100000, Digest: DigestSHA512, SaltLength: 32, KeyLength: 32},
	3: {KDF: KDFScrypt, Iterations: 16384, Digest: DigestSHA256, SaltLength: 32, KeyLength: 32},
	4: {KDF: KDFArgon2, Iterations: 3, Digest: DigestSHA256, SaltLength: 32, KeyLength: 32},
}

// Config returns the config registered for version.
func Config(version int) (CryptoConfig, bool) {
	cfg, ok := configs[version]
	return cfg, ok
}

// Versions returns all registered versions in ascending order.
func Versions() []int {
	versions := make([]int, 0, len(configs))
	for v := range configs {
		versions = append(versions, v)
	}
	sort.Ints(versions)
	return versions
}
