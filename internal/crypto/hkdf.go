package crypto

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// HKDFExtract runs the RFC 5869 extract step with SHA-256: HMAC(salt, key).
// The result is a 32-byte pseudorandom key.
func HKDFExtract(key, salt []byte) []byte {
	return hkdf.Extract(sha256.New, key, salt)
}

// HKDF derives exactly one SHA-256 output block (32 bytes) from key, salt
// and info: extract followed by a single expand step. The protocol never
// needs more than one block.
func HKDF(key, salt, info []byte) ([]byte, error) {
	r := hkdf.New(sha256.New, key, salt, info)
	out := make([]byte, sha256.Size)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}
