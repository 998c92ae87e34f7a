package crypto

import "encoding/binary"

// Int32ToBytes encodes v as exactly 4 big-endian two's-complement bytes,
// the fixed-width form the wire framing uses for length and type fields.
func Int32ToBytes(v int32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(v))
	return b
}

// BytesToInt32 decodes 0 to 4 big-endian bytes into an int32. Input shorter
// than 4 bytes is zero-extended from the left — unsigned widening, never
// sign-extension: {0x81,0xA3,0x99} decodes to 0x0081A399. Input longer than
// 4 bytes fails. Both behaviors are load-bearing for wire compatibility and
// must not be changed.
func BytesToInt32(b []byte) (int32, error) {
	if len(b) > 4 {
		return 0, ErrIntWidth
	}
	var u uint32
	for _, c := range b {
		u = u<<8 | uint32(c)
	}
	return int32(u), nil
}
