package ringsig

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/holiman/uint256"
)

// Scalar represents an integer modulo the secp256k1 group order n. Private
// keys, per-step randomness and ring responses are all Scalars.
type Scalar struct {
	n btcec.ModNScalar
}

// NewScalar creates a scalar from a 32-byte big-endian value, reducing it
// modulo the group order
func NewScalar(b32 []byte) *Scalar {
	s := &Scalar{}
	s.setB32(b32)
	return s
}

// setB32 sets the scalar from a big-endian byte slice of at most 32 bytes and
// reports whether the value was reduced
func (r *Scalar) setB32(bin []byte) (overflow bool) {
	return r.n.SetByteSlice(bin)
}

// getB32 writes the scalar as 32 big-endian bytes
func (r *Scalar) getB32(bin []byte) {
	if len(bin) != 32 {
		panic("scalar byte array must be 32 bytes")
	}
	b := r.n.Bytes()
	copy(bin, b[:])
}

// Bytes returns the scalar as 32 big-endian bytes
func (r *Scalar) Bytes() [32]byte {
	return r.n.Bytes()
}

// Int returns the scalar as a 256-bit unsigned integer
func (r *Scalar) Int() *uint256.Int {
	b := r.n.Bytes()
	return new(uint256.Int).SetBytes32(b[:])
}

// String returns the decimal representation of the scalar. This is both the
// wire encoding and the form the scalar takes when it is hashed.
func (r *Scalar) String() string {
	return r.Int().Dec()
}

// IsZero returns true if the scalar is zero
func (r *Scalar) IsZero() bool {
	return r.n.IsZero()
}

// Equal returns true if both scalars hold the same value
func (r *Scalar) Equal(a *Scalar) bool {
	return r.n.Equals(&a.n)
}

// mulSub sets r = u - k*c (mod n), the response that closes the ring
func (r *Scalar) mulSub(u, k, c *Scalar) {
	var t btcec.ModNScalar
	t.Mul2(&k.n, &c.n).Negate()
	t.Add(&u.n)
	r.n = t
}

// clear zeroes the scalar so secret material does not linger
func (r *Scalar) clear() {
	r.n.Zero()
}

// Hash is the raw output of the hash-to-scalar function: a SHA-256 digest
// read as a big-endian unsigned integer. It is deliberately not reduced
// modulo n; the ring challenges travel and compare in this raw form.
type Hash [32]byte

// Int returns the digest as a 256-bit unsigned integer
func (h Hash) Int() *uint256.Int {
	return new(uint256.Int).SetBytes32(h[:])
}

// String returns the decimal representation of the digest
func (h Hash) String() string {
	return h.Int().Dec()
}

// Scalar returns the digest reduced modulo the group order
func (h Hash) Scalar() *Scalar {
	return NewScalar(h[:])
}
