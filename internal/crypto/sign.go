package crypto

import (
	stdcrypto "crypto"
	"crypto/ecdsa"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"

	"securemsg/internal/domain"
)

// Sign produces a signature over data with key, dispatched on sig.
//
//   - HMACSHA256 takes a SecretKey of any length, derives the purpose-bound
//     sub-key and HMACs with that — the raw master key never touches the
//     MAC. Output is 32 raw bytes.
//   - ECDSAP256SHA256 takes a PrivateKey tagged ECDSAKey; output is the
//     provider's ASN.1 DER signature over SHA-256(data).
//   - RSA2048SHA256 takes a PrivateKey tagged RSAKey; output is an
//     RSASSA-PKCS1-v1_5 signature over SHA-256(data).
//
// A key whose concrete type or algorithm tag does not match sig is an
// error.
func Sign(sig domain.SigType, key domain.Key, data []byte) ([]byte, error) {
	switch sig {
	case domain.HMACSHA256:
		sk, ok := key.(domain.SecretKey)
		if !ok {
			return nil, ErrKeyType
		}
		return hmacSHA256(sk, data)

	case domain.ECDSAP256SHA256:
		pk, ok := key.(domain.PrivateKey)
		if !ok {
			return nil, ErrKeyType
		}
		ec, err := parseECPrivateKey(pk)
		if err != nil {
			return nil, err
		}
		digest := sha256.Sum256(data)
		return ecdsa.SignASN1(rand.Reader, ec, digest[:])

	case domain.RSA2048SHA256:
		pk, ok := key.(domain.PrivateKey)
		if !ok {
			return nil, ErrKeyType
		}
		r, err := parseRSAPrivateKey(pk)
		if err != nil {
			return nil, err
		}
		digest := sha256.Sum256(data)
		return rsa.SignPKCS1v15(rand.Reader, r, stdcrypto.SHA256, digest[:])
	}
	return nil, ErrUnknownScheme
}

// Verify reports whether signature is valid over data for key under sig.
// It returns true only for the exact key, scheme and data bytes the
// signature was produced with; every mismatch — wrong key, flipped bit,
// wrong scheme, algorithm/tag mismatch, malformed encoding — reports false.
// Verify never panics and never returns an error the caller could confuse
// with success.
func Verify(sig domain.SigType, key domain.Key, signature, data []byte) bool {
	switch sig {
	case domain.HMACSHA256:
		sk, ok := key.(domain.SecretKey)
		if !ok {
			return false
		}
		want, err := hmacSHA256(sk, data)
		if err != nil {
			return false
		}
		return hmac.Equal(want, signature)

	case domain.ECDSAP256SHA256:
		pk, ok := key.(domain.PublicKey)
		if !ok {
			return false
		}
		ec, err := parseECPublicKey(pk)
		if err != nil {
			return false
		}
		digest := sha256.Sum256(data)
		return ecdsa.VerifyASN1(ec, digest[:], signature)

	case domain.RSA2048SHA256:
		pk, ok := key.(domain.PublicKey)
		if !ok {
			return false
		}
		r, err := parseRSAPublicKey(pk)
		if err != nil {
			return false
		}
		digest := sha256.Sum256(data)
		return rsa.VerifyPKCS1v15(r, stdcrypto.SHA256, digest[:], signature) == nil
	}
	return false
}

func hmacSHA256(master domain.SecretKey, data []byte) ([]byte, error) {
	sub, err := DeriveAES256KeyFor(master, domain.HMACSHA256.Purpose())
	if err != nil {
		return nil, err
	}
	mac := hmac.New(sha256.New, sub.Data().Bytes())
	mac.Write(data)
	return mac.Sum(nil), nil
}
