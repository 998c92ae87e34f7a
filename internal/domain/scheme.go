package domain

// SigType selects a signature scheme. The purpose numbering follows the
// wire protocol's scheme registry and must never be renumbered: derived
// sub-keys depend on it.
type SigType int

const (
	// HMACSHA256 signs with HMAC-SHA256 under a purpose-bound sub-key.
	HMACSHA256 SigType = iota + 1
	// ECDSAP256SHA256 signs SHA-256 digests with ECDSA over NIST P-256.
	ECDSAP256SHA256
	// RSA2048SHA256 signs SHA-256 digests with RSASSA-PKCS1-v1_5.
	RSA2048SHA256
)

// SigTypes returns every signature scheme, for exhaustive iteration.
func SigTypes() []SigType {
	return []SigType{HMACSHA256, ECDSAP256SHA256, RSA2048SHA256}
}

// Purpose returns the scheme's key-derivation purpose string. No SigType
// purpose may ever equal an EncType purpose; a collision would let a sub-key
// derived for signing be reused for encryption.
func (t SigType) Purpose() string {
	switch t {
	case HMACSHA256:
		return "SIG:1"
	case ECDSAP256SHA256:
		return "SIG:2"
	case RSA2048SHA256:
		return "SIG:3"
	}
	return ""
}

// KeyAlgorithm returns the key tag the scheme operates on.
func (t SigType) KeyAlgorithm() KeyAlgorithm {
	switch t {
	case HMACSHA256:
		return AES256Key
	case ECDSAP256SHA256:
		return ECDSAKey
	case RSA2048SHA256:
		return RSAKey
	}
	return 0
}

// String returns the scheme name.
func (t SigType) String() string {
	switch t {
	case HMACSHA256:
		return "HMAC_SHA256"
	case ECDSAP256SHA256:
		return "ECDSA_P256_SHA256"
	case RSA2048SHA256:
		return "RSA2048_SHA256"
	}
	return "UNKNOWN_SIG"
}

// EncType selects an encryption scheme.
type EncType int

const (
	// EncNone marks plaintext payloads. It still owns a purpose string so
	// the non-collision invariant covers it.
	EncNone EncType = iota + 1
	// AES256CBC encrypts with AES-256 in CBC mode, PKCS#7 padded.
	AES256CBC
)

// EncTypes returns every encryption scheme, for exhaustive iteration.
func EncTypes() []EncType {
	return []EncType{EncNone, AES256CBC}
}

// Purpose returns the scheme's key-derivation purpose string.
func (t EncType) Purpose() string {
	switch t {
	case EncNone:
		return "ENC:1"
	case AES256CBC:
		return "ENC:2"
	}
	return ""
}

// String returns the scheme name.
func (t EncType) String() string {
	switch t {
	case EncNone:
		return "NONE"
	case AES256CBC:
		return "AES_256_CBC"
	}
	return "UNKNOWN_ENC"
}
