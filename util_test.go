package ringsig

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
)

// detReader is a deterministic stand-in for crypto/rand. Block i of its
// output is SHA256(seed || uint32be(i)).
type detReader struct {
	seed []byte
	ctr  uint32
	buf  []byte
}

func newDetReader(seed string) *detReader {
	return &detReader{seed: []byte(seed)}
}

func (r *detReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.buf) == 0 {
			var c [4]byte
			binary.BigEndian.PutUint32(c[:], r.ctr)
			r.ctr++
			h := sha256.New()
			h.Write(r.seed)
			h.Write(c[:])
			r.buf = h.Sum(nil)
		}
		k := copy(p[n:], r.buf)
		r.buf = r.buf[k:]
		n += k
	}
	return n, nil
}

// zeroReader only ever yields zero bytes
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// failReader fails every read
type failReader struct{}

func (failReader) Read(p []byte) (int, error) {
	return 0, errFailReader
}

var errFailReader = errors.New("entropy source closed")

// generateRing creates n fresh key pairs and the ring of their public keys
func generateRing(t testing.TB, n int) ([]*Scalar, Ring) {
	t.Helper()
	keys := make([]*Scalar, n)
	ring := make(Ring, n)
	for i := 0; i < n; i++ {
		priv, err := btcec.NewPrivateKey()
		if err != nil {
			t.Fatalf("failed to generate key: %v", err)
		}
		keys[i] = NewScalar(priv.Serialize())
		ring[i] = PointFromPublicKey(priv.PubKey())
	}
	return keys, ring
}

// mustScalarHex parses a hex signing key or fails the test
func mustScalarHex(t testing.TB, s string) *Scalar {
	t.Helper()
	k, err := ParseSigningKeyHex(s)
	if err != nil {
		t.Fatalf("failed to parse key %s: %v", s, err)
	}
	return k
}

// mustRingHex parses a hex ring or fails the test
func mustRingHex(t testing.TB, keys []string) Ring {
	t.Helper()
	ring, err := ParseRingHex(keys)
	if err != nil {
		t.Fatalf("failed to parse ring: %v", err)
	}
	return ring
}
