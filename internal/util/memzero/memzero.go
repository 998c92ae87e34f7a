// Package memzero provides best-effort zeroing of sensitive byte slices,
// used to shorten the in-memory lifetime of transient secrets such as raw
// ECDH shared material.
package memzero

import "runtime"

// Zero overwrites b with zero bytes. Best effort: the write is kept out of
// line so the compiler cannot elide it as dead.
//
//go:noinline
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
