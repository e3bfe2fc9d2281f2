package errors

import "errors"

// Configuration errors indicate an unknown algorithm or parameter set.
// They are programmer errors and are never recovered from automatically.
var (
	// ErrUnsupportedKDF indicates a key derivation function name that has no provider.
	ErrUnsupportedKDF = errors.New("unsupported KDF")

	// ErrUnsupportedVersion indicates a crypto config version missing from the registry.
	ErrUnsupportedVersion = errors.New("unsupported crypto config version")
)

// Cryptographic errors indicate failures during key derivation, encryption or decryption.
var (
	// ErrIncorrectPassword indicates authentication failed while opening a record.
	ErrIncorrectPassword = errors.New("decryption failed: incorrect password")

	// ErrKDFFailed indicates the key derivation backend could not produce a key.
	ErrKDFFailed = errors.New("key derivation failed")

	// ErrEncryptFailed indicates sealing the plaintext failed.
	ErrEncryptFailed = errors.New("encryption failed")

	// ErrInvalidKeyLength indicates a derived key has an unexpected length for the cipher.
	ErrInvalidKeyLength = errors.New("invalid symmetric key length")

	// ErrInvalidRecord indicates an encrypted record is malformed or cannot be decoded.
	ErrInvalidRecord = errors.New("invalid encrypted record")
)

// Vault errors indicate issues with the on-disk record store.
var (
	// ErrVaultNotInitialized indicates the vault directory has not been created.
	ErrVaultNotInitialized = errors.New("vault has not been initialized")

	// ErrVaultAlreadyInitialized indicates the vault directory already exists.
	ErrVaultAlreadyInitialized = errors.New("vault has already been initialized")

	// ErrWalletNotFound indicates no record exists with the requested name.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrAmbiguousWallet indicates a pattern was given where exactly one wallet name is required.
	ErrAmbiguousWallet = errors.New("expected a single wallet name")

	// ErrWalletExists indicates a record with the requested name already exists.
	ErrWalletExists = errors.New("wallet already exists")

	// ErrInvalidWalletName indicates the wallet name contains unsupported characters.
	ErrInvalidWalletName = errors.New("invalid wallet name")

	// ErrNoWalletsFound indicates no records matched the provided patterns.
	ErrNoWalletsFound = errors.New("no matching wallets found")
)

// Input errors indicate issues with user-provided values.
var (
	// ErrPasswordRequired indicates an empty password was supplied.
	ErrPasswordRequired = errors.New("password is required")

	// ErrPasswordMismatch indicates the confirmation password did not match.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidPasswordLength indicates a non-positive generated password length.
	ErrInvalidPasswordLength = errors.New("password length must be positive")

	// ErrEmptyPlaintext indicates there was nothing to encrypt.
	ErrEmptyPlaintext = errors.New("plaintext is empty")

	// ErrInvalidDateFormat indicates a date filter could not be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
