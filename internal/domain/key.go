package domain

// KeyAlgorithm tags key material with the algorithm it belongs to. A key
// tagged for one algorithm is never valid input to another.
type KeyAlgorithm int

const (
	// AES256Key tags 32-byte symmetric keys and HKDF master secrets.
	AES256Key KeyAlgorithm = iota + 1
	// ECDSAKey tags DER-encoded NIST P-256 keys.
	ECDSAKey
	// RSAKey tags DER-encoded RSA-2048 keys.
	RSAKey
)

// String returns the tag name.
func (a KeyAlgorithm) String() string {
	switch a {
	case AES256Key:
		return "AES_256_KEY"
	case ECDSAKey:
		return "ECDSA_KEY"
	case RSAKey:
		return "RSA_KEY"
	}
	return "UNKNOWN_KEY"
}

// Key is the common surface of SecretKey, PublicKey and PrivateKey. The
// signature engine dispatches on the concrete type behind it.
type Key interface {
	Data() ByteString
	Algorithm() KeyAlgorithm
}

// SecretKey is symmetric key material. For AES operations the data is the
// raw 32-byte key; as an HKDF master secret it may be any length.
type SecretKey struct {
	data ByteString
	alg  KeyAlgorithm
}

// NewSecretKey imports raw bytes as a secret key tagged with alg.
func NewSecretKey(data ByteString, alg KeyAlgorithm) SecretKey {
	return SecretKey{data: data, alg: alg}
}

// Data returns the key bytes.
func (k SecretKey) Data() ByteString { return k.data }

// Algorithm returns the key's algorithm tag.
func (k SecretKey) Algorithm() KeyAlgorithm { return k.alg }

// PublicKey is the public half of an asymmetric pair, held in standard
// interchange encoding (PKIX/SPKI DER).
type PublicKey struct {
	data ByteString
	alg  KeyAlgorithm
}

// NewPublicKey imports an encoded public key tagged with alg.
func NewPublicKey(data ByteString, alg KeyAlgorithm) PublicKey {
	return PublicKey{data: data, alg: alg}
}

// Data returns the encoded key bytes.
func (k PublicKey) Data() ByteString { return k.data }

// Algorithm returns the key's algorithm tag.
func (k PublicKey) Algorithm() KeyAlgorithm { return k.alg }

// PrivateKey is the private half of an asymmetric pair, held in standard
// interchange encoding (PKCS#8 DER; legacy SEC 1 / PKCS#1 imports are
// accepted by the parsers).
type PrivateKey struct {
	data ByteString
	alg  KeyAlgorithm
}

// NewPrivateKey imports an encoded private key tagged with alg.
func NewPrivateKey(data ByteString, alg KeyAlgorithm) PrivateKey {
	return PrivateKey{data: data, alg: alg}
}

// Data returns the encoded key bytes.
func (k PrivateKey) Data() ByteString { return k.data }

// Algorithm returns the key's algorithm tag.
func (k PrivateKey) Algorithm() KeyAlgorithm { return k.alg }

// KeyPair holds a public and private key generated together. The halves
// belong to each other; splitting a pair and reusing one half with another
// pair is a caller error this layer cannot detect.
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey
}
