// Package domain holds the immutable value types shared by the securemsg
// crypto layer and its callers.
//
// Contents
//
//   - ByteString: an immutable byte container with content equality and a
//     hex rendering for diagnostics
//   - SecretKey, PublicKey, PrivateKey, KeyPair: key material tagged with a
//     closed KeyAlgorithm
//   - SigType, EncType: closed algorithm tags with their derivation purpose
//     strings
//
// # Notes
//
// Everything here is a value type constructed once and never mutated, so any
// value may be shared between goroutines freely. The SigType and EncType
// enumerations are deliberately closed: SigTypes and EncTypes exist so the
// purpose-separation invariant can be checked over the full cross product
// rather than sampled.
package domain
