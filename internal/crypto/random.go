package crypto

import (
	"crypto/aes"
	"crypto/rand"

	"securemsg/internal/domain"
)

// SecureRandom returns n uniformly random bytes from the system CSPRNG.
// A failed or short read surfaces as an error; the caller never receives
// predictable bytes in place of entropy. Safe for concurrent use.
func SecureRandom(n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrZeroLength
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// GenerateIV returns a fresh random IV sized for enc. EncNone has no IV
// concept and fails.
func GenerateIV(enc domain.EncType) ([]byte, error) {
	switch enc {
	case domain.AES256CBC:
		return SecureRandom(aes.BlockSize)
	case domain.EncNone:
		return nil, ErrNoIV
	}
	return nil, ErrUnknownScheme
}
