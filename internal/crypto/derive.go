package crypto

import (
	"crypto/sha256"
	"sync"

	"securemsg/internal/domain"
)

// AESKeySize is the AES-256 key length in bytes, which is also the HKDF
// output block size used throughout this layer.
const AESKeySize = 32

// saltInput is the fixed string the derivation salt is computed from. It is
// part of the wire protocol; changing it changes every derived key.
const saltInput = "SecureMessage"

var salt = sync.OnceValue(func() []byte {
	sum := sha256.Sum256([]byte(saltInput))
	return sum[:]
})

// Salt returns the fixed 32-byte derivation salt, the SHA-256 digest of
// "SecureMessage". Computed once, immutable afterwards; the returned slice
// is a copy.
func Salt() []byte {
	s := make([]byte, len(salt()))
	copy(s, salt())
	return s
}

// DeriveAES256KeyFor derives a purpose-bound 32-byte AES-256 sub-key from
// master: HKDF(master, Salt(), purpose). Deterministic in (master, purpose);
// distinct purposes and distinct masters yield unrelated sub-keys. The
// master may be any length — it is HKDF input, not an AES key.
func DeriveAES256KeyFor(master domain.SecretKey, purpose string) (domain.SecretKey, error) {
	if master.Algorithm() != domain.AES256Key {
		return domain.SecretKey{}, ErrKeyAlgorithm
	}
	okm, err := HKDF(master.Data().Bytes(), salt(), []byte(purpose))
	if err != nil {
		return domain.SecretKey{}, err
	}
	return domain.NewSecretKey(domain.NewByteString(okm), domain.AES256Key), nil
}
