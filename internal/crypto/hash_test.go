package crypto_test

import (
	"errors"
	"testing"

	"securemsg/internal/crypto"
	"securemsg/internal/domain"
)

func TestSHA256(t *testing.T) {
	if _, err := crypto.SHA256(nil); !errors.Is(err, crypto.ErrEmptyMessage) {
		t.Fatalf("SHA256(empty) err = %v, want ErrEmptyMessage", err)
	}

	// NIST example digests.
	cases := []struct{ in, digest string }{
		{
			"abc",
			"0xba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			"0x248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
		},
	}
	for _, c := range cases {
		sum, err := crypto.SHA256([]byte(c.in))
		if err != nil {
			t.Fatalf("SHA256(%q): %v", c.in, err)
		}
		if len(sum) != 32 {
			t.Fatalf("SHA256(%q) length = %d, want 32", c.in, len(sum))
		}
		if got := domain.NewByteString(sum).DebugHex(); got != c.digest {
			t.Fatalf("SHA256(%q) = %s, want %s", c.in, got, c.digest)
		}
	}
}

func TestSHA512(t *testing.T) {
	if _, err := crypto.SHA512(nil); !errors.Is(err, crypto.ErrEmptyMessage) {
		t.Fatalf("SHA512(empty) err = %v, want ErrEmptyMessage", err)
	}

	cases := []struct{ in, digest string }{
		{
			"abc",
			"0xddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
				"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		},
		{
			"abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmno" +
				"ijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
			"0x8e959b75dae313da8cf4f72814fc143f8f7779c6eb9f7fa17299aeadb6889018" +
				"501d289e4900f7e4331b99dec4b5433ac7d329eeb6dd26545e96e55b874be909",
		},
	}
	for _, c := range cases {
		sum, err := crypto.SHA512([]byte(c.in))
		if err != nil {
			t.Fatalf("SHA512(%q): %v", c.in, err)
		}
		if len(sum) != 64 {
			t.Fatalf("SHA512(%q) length = %d, want 64", c.in, len(sum))
		}
		if got := domain.NewByteString(sum).DebugHex(); got != c.digest {
			t.Fatalf("SHA512(%q) = %s, want %s", c.in, got, c.digest)
		}
	}
}
