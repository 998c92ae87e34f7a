package domain

import (
	"bytes"
	"encoding/hex"
)

// ByteString is an immutable sequence of raw bytes. It is binary data, not
// text: embedded zero bytes are preserved by every constructor.
//
// Construction copies the input and accessors copy the output, so a
// ByteString can never be mutated through a slice the caller still holds.
type ByteString struct {
	data []byte
}

// NewByteString returns a ByteString holding a copy of b. Slicing b first
// covers the length-delimited-range construction.
func NewByteString(b []byte) ByteString {
	return ByteString{data: bytes.Clone(b)}
}

// ByteStringFromString returns a ByteString over the bytes of s, embedded
// NULs included.
func ByteStringFromString(s string) ByteString {
	return ByteString{data: []byte(s)}
}

// Size returns the number of bytes held.
func (b ByteString) Size() int { return len(b.data) }

// Bytes returns a copy of the held bytes.
func (b ByteString) Bytes() []byte { return bytes.Clone(b.data) }

// String returns the held bytes as a Go string.
func (b ByteString) String() string { return string(b.data) }

// Equal reports whether b and other hold exactly the same bytes. It is a
// plain content comparison for value semantics, not a constant-time compare;
// never use it to check secrets against attacker-controlled input.
func (b ByteString) Equal(other ByteString) bool {
	return bytes.Equal(b.data, other.data)
}

// DebugHex renders the content as 0x-prefixed lowercase hex. Diagnostics
// only.
func (b ByteString) DebugHex() string {
	return "0x" + hex.EncodeToString(b.data)
}
