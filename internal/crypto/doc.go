// Package crypto is the primitives layer of the securemsg protocol: every
// hash, key derivation, signature and symmetric cipher the framing layer
// needs, behind a closed set of algorithm tags.
//
// Contents
//
//   - SHA-256/SHA-512 digests with an empty-input guard (SHA256, SHA512)
//   - RFC 5869 HKDF, extract and single-block expand (HKDFExtract, HKDF)
//   - Purpose-bound sub-key derivation under a fixed protocol salt
//     (Salt, DeriveAES256KeyFor)
//   - Tag-dispatched signing for HMAC-SHA256, ECDSA-P256 and RSA-2048
//     (Sign, Verify)
//   - AES-256-CBC with PKCS#7 padding, raw and purpose-bound
//     (AES256CBCEncrypt, AES256CBCDecrypt, Encrypt, Decrypt)
//   - Key generation, P-256 point export and ECDH agreement
//     (GenerateAES256SecretKey, GenerateECP256KeyPair,
//     GenerateRSA2048KeyPair, ExportECP256Key, KeyAgreementSHA256)
//   - Entropy (SecureRandom, GenerateIV)
//   - The wire framing's fixed-width integer codec (Int32ToBytes,
//     BytesToInt32)
//
// # Notes
//
// All functions are stateless and safe for concurrent use; the only shared
// value is the lazily initialized derivation salt, which is immutable after
// first computation. Failures are explicit errors (Verify reports plain
// false) — callers must treat any failure as "cannot proceed safely" and
// never substitute default material. This package never sequences protocol
// operations and keeps no cross-call state.
package crypto
