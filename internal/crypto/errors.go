package crypto

import "errors"

// Sentinel errors for caller-contract violations. Provider failures
// (malformed DER, entropy exhaustion) are returned as-is or wrapped.
var (
	// ErrEmptyMessage is returned when hashing a zero-length message.
	ErrEmptyMessage = errors.New("refusing to hash an empty message")

	// ErrZeroLength is returned for a zero-length randomness request.
	ErrZeroLength = errors.New("random byte count must be positive")

	// ErrNoIV is returned when an IV is requested for a scheme without one.
	ErrNoIV = errors.New("encryption scheme has no IV")

	// ErrNoEncryption is returned when Encrypt or Decrypt is called with
	// EncNone, which carries no cipher.
	ErrNoEncryption = errors.New("scheme NONE does not encrypt")

	// ErrUnknownScheme is returned for a SigType or EncType outside the
	// closed enumeration.
	ErrUnknownScheme = errors.New("unknown scheme")

	// ErrKeyAlgorithm is returned when a key's algorithm tag does not match
	// the requested operation.
	ErrKeyAlgorithm = errors.New("key algorithm does not match operation")

	// ErrKeyType is returned when a secret key is passed where an
	// asymmetric key is required, or vice versa.
	ErrKeyType = errors.New("wrong key type for operation")

	// ErrKeySize is returned for an AES key that is not exactly 32 bytes.
	ErrKeySize = errors.New("AES-256 key must be 32 bytes")

	// ErrIVSize is returned for an IV that is not exactly one cipher block.
	ErrIVSize = errors.New("IV must be one cipher block")

	// ErrCiphertext is returned for ciphertext that is empty, unaligned, or
	// carries invalid padding.
	ErrCiphertext = errors.New("malformed ciphertext")

	// ErrIntWidth is returned when decoding an integer byte string longer
	// than 4 bytes.
	ErrIntWidth = errors.New("integer byte string wider than 4 bytes")
)
