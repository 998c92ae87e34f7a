package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"

	"securemsg/internal/domain"
)

// AES256CBCEncrypt encrypts plaintext with AES-256 in CBC mode under key
// and iv, PKCS#7 padded. The key must be tagged AES256Key and hold exactly
// 32 bytes; the IV must be exactly one cipher block. Output is raw
// ciphertext only — the IV travels separately.
//
// Empty plaintext is valid and produces a single padding block.
func AES256CBCEncrypt(key domain.SecretKey, iv, plaintext []byte) ([]byte, error) {
	block, err := cbcCipher(key, iv)
	if err != nil {
		return nil, err
	}
	padded := pkcs7Pad(plaintext, aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	return out, nil
}

// AES256CBCDecrypt inverts AES256CBCEncrypt. Ciphertext that is empty, not
// block-aligned, or carries invalid padding fails with ErrCiphertext.
func AES256CBCDecrypt(key domain.SecretKey, iv, ciphertext []byte) ([]byte, error) {
	block, err := cbcCipher(key, iv)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrCiphertext
	}
	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)
	return pkcs7Unpad(padded, aes.BlockSize)
}

// Encrypt is the protocol-layer entry point: it dispatches on enc and, for
// AES256CBC, first derives the purpose-bound sub-key from key, so the block
// cipher never sees the raw master secret and the master may be any length.
// EncNone cannot encrypt.
func Encrypt(key domain.SecretKey, enc domain.EncType, iv, plaintext []byte) ([]byte, error) {
	switch enc {
	case domain.AES256CBC:
		sub, err := DeriveAES256KeyFor(key, enc.Purpose())
		if err != nil {
			return nil, err
		}
		return AES256CBCEncrypt(sub, iv, plaintext)
	case domain.EncNone:
		return nil, ErrNoEncryption
	}
	return nil, ErrUnknownScheme
}

// Decrypt inverts Encrypt for the same key, scheme and IV.
func Decrypt(key domain.SecretKey, enc domain.EncType, iv, ciphertext []byte) ([]byte, error) {
	switch enc {
	case domain.AES256CBC:
		sub, err := DeriveAES256KeyFor(key, enc.Purpose())
		if err != nil {
			return nil, err
		}
		return AES256CBCDecrypt(sub, iv, ciphertext)
	case domain.EncNone:
		return nil, ErrNoEncryption
	}
	return nil, ErrUnknownScheme
}

func cbcCipher(key domain.SecretKey, iv []byte) (cipher.Block, error) {
	if key.Algorithm() != domain.AES256Key {
		return nil, ErrKeyAlgorithm
	}
	kb := key.Data().Bytes()
	if len(kb) != AESKeySize {
		return nil, ErrKeySize
	}
	if len(iv) != aes.BlockSize {
		return nil, ErrIVSize
	}
	return aes.NewCipher(kb)
}

func pkcs7Pad(b []byte, size int) []byte {
	n := size - len(b)%size
	out := make([]byte, len(b)+n)
	copy(out, b)
	for i := len(b); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

func pkcs7Unpad(b []byte, size int) ([]byte, error) {
	if len(b) == 0 || len(b)%size != 0 {
		return nil, ErrCiphertext
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size {
		return nil, ErrCiphertext
	}
	// Check every padding byte so a single corrupt byte cannot pass.
	var bad int
	for _, c := range b[len(b)-n:] {
		bad |= subtle.ConstantTimeByteEq(c, byte(n)) ^ 1
	}
	if bad != 0 {
		return nil, ErrCiphertext
	}
	return b[:len(b)-n], nil
}
