package domain_test

import (
	"testing"

	"securemsg/internal/domain"
)

// Every signature purpose must differ from every encryption purpose. This
// iterates the closed enumerations in full; a sampled check would miss a
// renumbering mistake.
func TestNoPurposeConflicts(t *testing.T) {
	for _, sig := range domain.SigTypes() {
		if sig.Purpose() == "" {
			t.Fatalf("%v has no purpose", sig)
		}
		for _, enc := range domain.EncTypes() {
			if enc.Purpose() == "" {
				t.Fatalf("%v has no purpose", enc)
			}
			if sig.Purpose() == enc.Purpose() {
				t.Fatalf("purpose collision: %v and %v both use %q", sig, enc, sig.Purpose())
			}
		}
	}
}

func TestPurposesAreDistinctWithinEachSet(t *testing.T) {
	seen := map[string]string{}
	for _, sig := range domain.SigTypes() {
		if prev, ok := seen[sig.Purpose()]; ok {
			t.Fatalf("purpose %q shared by %s and %v", sig.Purpose(), prev, sig)
		}
		seen[sig.Purpose()] = sig.String()
	}
	for _, enc := range domain.EncTypes() {
		if prev, ok := seen[enc.Purpose()]; ok {
			t.Fatalf("purpose %q shared by %s and %v", enc.Purpose(), prev, enc)
		}
		seen[enc.Purpose()] = enc.String()
	}
}

func TestSigTypeKeyAlgorithm(t *testing.T) {
	want := map[domain.SigType]domain.KeyAlgorithm{
		domain.HMACSHA256:      domain.AES256Key,
		domain.ECDSAP256SHA256: domain.ECDSAKey,
		domain.RSA2048SHA256:   domain.RSAKey,
	}
	for _, sig := range domain.SigTypes() {
		if got := sig.KeyAlgorithm(); got != want[sig] {
			t.Fatalf("%v.KeyAlgorithm() = %v, want %v", sig, got, want[sig])
		}
	}
}
