package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
)

// SHA256 returns the 32-byte SHA-256 digest of msg. Hashing an empty
// message fails: no protocol operation ever hashes zero bytes, so an empty
// input is always a caller bug upstream.
func SHA256(msg []byte) ([]byte, error) {
	if len(msg) == 0 {
		return nil, ErrEmptyMessage
	}
	sum := sha256.Sum256(msg)
	return sum[:], nil
}

// SHA512 returns the 64-byte SHA-512 digest of msg, with the same
// empty-input guard as SHA256.
func SHA512(msg []byte) ([]byte, error) {
	if len(msg) == 0 {
		return nil, ErrEmptyMessage
	}
	sum := sha512.Sum512(msg)
	return sum[:], nil
}
