package ringsig

import (
	"hash"

	sha256simd "github.com/minio/sha256-simd"
)

// MaxHashToCurveIterations bounds the try-and-increment loop in MapToCurve.
// Roughly half of all x coordinates are on the curve, so a well formed
// parameter set needs about two candidates.
const MaxHashToCurveIterations = 256

// SHA256 represents a SHA-256 hash context
type SHA256 struct {
	hasher hash.Hash
}

// NewSHA256 creates a new SHA-256 hash context
func NewSHA256() *SHA256 {
	return &SHA256{hasher: sha256simd.New()}
}

// Write writes data to the hash
func (h *SHA256) Write(data []byte) {
	h.hasher.Write(data)
}

// Finalize finalizes the hash and writes the result to out32 (must be 32 bytes)
func (h *SHA256) Finalize(out32 []byte) {
	if len(out32) != 32 {
		panic("output buffer must be 32 bytes")
	}
	copy(out32, h.hasher.Sum(nil))
}

// Clear resets the hash context
func (h *SHA256) Clear() {
	h.hasher.Reset()
}

// Value is a single input to the hash functions. The set of implementations
// is closed: raw bytes, scalars, digests, points and rings. Each has exactly
// one serialization rule.
type Value interface {
	appendTo(b []byte) []byte
}

// RawBytes is hashed unchanged. Messages are hashed as RawBytes.
type RawBytes []byte

func (v RawBytes) appendTo(b []byte) []byte {
	return append(b, v...)
}

// A point is its decimal x followed by its decimal y.
func (p *Point) appendTo(b []byte) []byte {
	b = append(b, p.XString()...)
	return append(b, p.YString()...)
}

// A ring is its members' point serializations in ring order.
func (r Ring) appendTo(b []byte) []byte {
	for _, p := range r {
		b = p.appendTo(b)
	}
	return b
}

// A scalar is its decimal representation.
func (r *Scalar) appendTo(b []byte) []byte {
	return append(b, r.String()...)
}

// A digest is its decimal representation.
func (h Hash) appendTo(b []byte) []byte {
	return append(b, h.String()...)
}

// HashToScalar is H1: it serializes values in order, concatenates them and
// returns the SHA-256 digest as a big-endian integer. The result is not
// reduced modulo the group order.
func HashToScalar(values ...Value) Hash {
	h := NewSHA256()
	var buf []byte
	for _, v := range values {
		buf = v.appendTo(buf[:0])
		h.Write(buf)
	}

	var out Hash
	h.Finalize(out[:])
	return out
}

// HashToCurve is H2: it maps values to a curve point by running MapToCurve on
// their H1 digest.
func HashToCurve(values ...Value) (*Point, error) {
	return MapToCurve(HashToScalar(values...))
}

// MapToCurve maps a digest to a curve point with try-and-increment: starting
// at x = h it recovers the point with x coordinate x (y odd iff x odd),
// incrementing x until a point exists.
func MapToCurve(h Hash) (*Point, error) {
	x := h.Int()
	for i := 0; i < MaxHashToCurveIterations; i++ {
		// Every candidate at or above p is rejected, and so are all after it
		if !x.Lt(fieldPrime) {
			break
		}
		if p, ok := PointFromX(x); ok {
			log.Tracef("Mapped digest to curve after %d candidate(s)", i+1)
			return p, nil
		}
		x.AddUint64(x, 1)
	}
	return nil, ErrHashToCurveExhausted
}
