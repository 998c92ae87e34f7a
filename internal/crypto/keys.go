package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"errors"

	"securemsg/internal/domain"
	"securemsg/internal/util/memzero"
)

const (
	// p256CoordSize is the byte width of a P-256 affine coordinate.
	p256CoordSize = 32
	rsaKeyBits    = 2048
)

// GenerateAES256SecretKey returns a fresh random 32-byte AES-256 key.
func GenerateAES256SecretKey() (domain.SecretKey, error) {
	b, err := SecureRandom(AESKeySize)
	if err != nil {
		return domain.SecretKey{}, err
	}
	return domain.NewSecretKey(domain.NewByteString(b), domain.AES256Key), nil
}

// GenerateECP256KeyPair returns a fresh NIST P-256 key pair. The private
// half is PKCS#8 DER, the public half PKIX DER, so either interoperates
// with externally generated keys. Every call draws new randomness; pairs
// are never cached or reused.
func GenerateECP256KeyPair() (*domain.KeyPair, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, err
	}
	return encodeKeyPair(priv, &priv.PublicKey, domain.ECDSAKey)
}

// GenerateRSA2048KeyPair returns a fresh RSA-2048 key pair in the same
// interchange encodings as GenerateECP256KeyPair.
func GenerateRSA2048KeyPair() (*domain.KeyPair, error) {
	priv, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return nil, err
	}
	return encodeKeyPair(priv, &priv.PublicKey, domain.RSAKey)
}

func encodeKeyPair(priv any, pub any, alg domain.KeyAlgorithm) (*domain.KeyPair, error) {
	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, err
	}
	pubDER, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, err
	}
	return &domain.KeyPair{
		Public:  domain.NewPublicKey(domain.NewByteString(pubDER), alg),
		Private: domain.NewPrivateKey(domain.NewByteString(privDER), alg),
	}, nil
}

// ExportECP256Key extracts the affine coordinates of a P-256 public key as
// two fixed-width 32-byte big-endian strings, the canonical form the wire
// protocol embeds in handshake messages.
func ExportECP256Key(pub domain.PublicKey) (x, y []byte, err error) {
	ec, err := parseECPublicKey(pub)
	if err != nil {
		return nil, nil, err
	}
	x = ec.X.FillBytes(make([]byte, p256CoordSize))
	y = ec.Y.FillBytes(make([]byte, p256CoordSize))
	return x, y, nil
}

// KeyAgreementSHA256 runs ECDH over P-256 between a local private key and a
// remote public key and hashes the shared X coordinate with SHA-256 into an
// AES-256 secret key. The operation is symmetric: agreeing (Apriv, Bpub)
// and (Bpriv, Apub) yields identical keys.
func KeyAgreementSHA256(priv domain.PrivateKey, pub domain.PublicKey) (domain.SecretKey, error) {
	ecPriv, err := parseECPrivateKey(priv)
	if err != nil {
		return domain.SecretKey{}, err
	}
	ecPub, err := parseECPublicKey(pub)
	if err != nil {
		return domain.SecretKey{}, err
	}

	dhPriv, err := ecPriv.ECDH()
	if err != nil {
		return domain.SecretKey{}, err
	}
	dhPub, err := ecPub.ECDH()
	if err != nil {
		return domain.SecretKey{}, err
	}

	// crypto/ecdh returns the 32-byte X coordinate for P-256.
	shared, err := dhPriv.ECDH(dhPub)
	if err != nil {
		return domain.SecretKey{}, err
	}
	sum := sha256.Sum256(shared)
	memzero.Zero(shared)

	return domain.NewSecretKey(domain.NewByteString(sum[:]), domain.AES256Key), nil
}

func parseECPrivateKey(key domain.PrivateKey) (*ecdsa.PrivateKey, error) {
	if key.Algorithm() != domain.ECDSAKey {
		return nil, ErrKeyAlgorithm
	}
	der := key.Data().Bytes()
	if k, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		ec, ok := k.(*ecdsa.PrivateKey)
		if !ok {
			return nil, ErrKeyAlgorithm
		}
		return checkP256Priv(ec)
	}
	// Legacy SEC 1 import.
	ec, err := x509.ParseECPrivateKey(der)
	if err != nil {
		return nil, err
	}
	return checkP256Priv(ec)
}

func parseECPublicKey(key domain.PublicKey) (*ecdsa.PublicKey, error) {
	if key.Algorithm() != domain.ECDSAKey {
		return nil, ErrKeyAlgorithm
	}
	k, err := x509.ParsePKIXPublicKey(key.Data().Bytes())
	if err != nil {
		return nil, err
	}
	ec, ok := k.(*ecdsa.PublicKey)
	if !ok {
		return nil, ErrKeyAlgorithm
	}
	if ec.Curve != elliptic.P256() {
		return nil, errors.New("EC key is not on P-256")
	}
	return ec, nil
}

func checkP256Priv(ec *ecdsa.PrivateKey) (*ecdsa.PrivateKey, error) {
	if ec.Curve != elliptic.P256() {
		return nil, errors.New("EC key is not on P-256")
	}
	return ec, nil
}

func parseRSAPrivateKey(key domain.PrivateKey) (*rsa.PrivateKey, error) {
	if key.Algorithm() != domain.RSAKey {
		return nil, ErrKeyAlgorithm
	}
	der := key.Data().Bytes()
	if k, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		r, ok := k.(*rsa.PrivateKey)
		if !ok {
			return nil, ErrKeyAlgorithm
		}
		return r, nil
	}
	// Legacy PKCS#1 import.
	return x509.ParsePKCS1PrivateKey(der)
}

func parseRSAPublicKey(key domain.PublicKey) (*rsa.PublicKey, error) {
	if key.Algorithm() != domain.RSAKey {
		return nil, ErrKeyAlgorithm
	}
	der := key.Data().Bytes()
	if k, err := x509.ParsePKIXPublicKey(der); err == nil {
		r, ok := k.(*rsa.PublicKey)
		if !ok {
			return nil, ErrKeyAlgorithm
		}
		return r, nil
	}
	// Legacy PKCS#1 import.
	return x509.ParsePKCS1PublicKey(der)
}
