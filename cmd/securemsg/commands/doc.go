// Package commands defines the securemsg developer CLI.
//
// Commands
//
//   - keygen       Generate AES-256, EC P-256 or RSA-2048 key material
//   - fingerprint  Print the SHA-256 fingerprint of an encoded public key
//   - agree        Run ECDH key agreement between a private and a peer key
//
// # Implementation
//
// The CLI is tooling around the crypto layer for provisioning and debugging
// pairings; it is not part of the protocol surface. Key material crosses
// the command line as standard base64 over the interchange encodings
// (PKCS#8 / PKIX DER, raw bytes for AES keys).
package commands
