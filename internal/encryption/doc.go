// Package encryption derives keys from wallet passwords and seals wallet
// secrets with authenticated symmetric encryption.
//
// # Versions
//
// Every encrypted record carries the version of the CryptoConfig it was
// written with. The registry maps versions to parameter sets:
//
//	1  pbkdf2  sha256  10000 iterations
//	2  pbkdf2  sha512  100000 iterations
//	3  scrypt  N=16384 r=8 p=1
//	4  argon2  argon2id t=3 m=64MiB p=1
//
// New records are written with CurrentVersion. Records are always opened with
// the version they carry, so older data stays readable after CurrentVersion
// advances. A record with no version is treated as LegacyVersion.
//
// # Providers
//
// A Provider wraps one CryptoConfig. It derives keys, generates salts and
// nonces, and seals data with NaCl secretbox (XSalsa20-Poly1305). Providers
// hold no mutable state and are safe for concurrent use.
//
// # Manager
//
// Manager is the entry point for application code:
//
//	m := encryption.NewManager()
//	data, err := m.Encrypt(secret, password)
//	...
//	secret, err = m.Decrypt(data, password)
//	if errors.Is(err, verrors.ErrIncorrectPassword) {
//	    // prompt again
//	}
//
// Key derivation for scrypt and argon2 is slow by construction; expect tens of
// milliseconds to seconds per call.
package encryption
