package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"securemsg/internal/crypto"
)

func TestInt32ToBytes(t *testing.T) {
	cases := []struct {
		v    int32
		want []byte
	}{
		{0x05F22300, []byte{0x05, 0xF2, 0x23, 0x00}},
		{0, []byte{0, 0, 0, 0}},
		{0x00009306, []byte{0x00, 0x00, 0x93, 0x06}},
		{-0x20000000, []byte{0xE0, 0x00, 0x00, 0x00}},
		{0x0F81A399, []byte{0x0F, 0x81, 0xA3, 0x99}},
	}
	for _, c := range cases {
		if got := crypto.Int32ToBytes(c.v); !bytes.Equal(got, c.want) {
			t.Fatalf("Int32ToBytes(%#x) = %x, want %x", c.v, got, c.want)
		}
	}
}

func TestBytesToInt32(t *testing.T) {
	cases := []struct {
		in   []byte
		want int32
	}{
		{nil, 0},
		{[]byte{0, 0, 0, 0}, 0},
		{[]byte{0x05, 0xF2, 0x23, 0x00}, 0x05F22300},
		{[]byte{0x00, 0x00, 0x93, 0x06}, 0x00009306},
		{[]byte{0xE0, 0x00, 0x00, 0x00}, -0x20000000},
		{[]byte{0x0F, 0x81, 0xA3, 0x99}, 0x0F81A399},
		// Short input widens unsigned: the high bit of the first byte is
		// data, not a sign.
		{[]byte{0x81, 0xA3, 0x99}, 0x0081A399},
		{[]byte{0xFF}, 0x000000FF},
	}
	for _, c := range cases {
		got, err := crypto.BytesToInt32(c.in)
		if err != nil {
			t.Fatalf("BytesToInt32(%x): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("BytesToInt32(%x) = %#x, want %#x", c.in, got, c.want)
		}
	}

	if _, err := crypto.BytesToInt32([]byte{0, 0, 0x81, 0xA3, 0x99}); !errors.Is(err, crypto.ErrIntWidth) {
		t.Fatalf("BytesToInt32(5 bytes) err = %v, want ErrIntWidth", err)
	}
}

func TestInt32RoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 0x7FFFFFFF, -0x80000000, 0x05F22300, -12345} {
		got, err := crypto.BytesToInt32(crypto.Int32ToBytes(v))
		if err != nil {
			t.Fatalf("round trip %#x: %v", v, err)
		}
		if got != v {
			t.Fatalf("round trip %#x = %#x", v, got)
		}
	}
}
