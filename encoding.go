package ringsig

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/holiman/uint256"
)

// parityMarkerLen is the length of the prefix in front of each hex encoded
// ring member. The prefix is skipped without being read: y is always rebuilt
// from the oddness of x. Signatures already in circulation depend on this,
// so a marker that disagrees with the key is silently overridden.
const parityMarkerLen = 2

// groupOrder is the secp256k1 group order n
var groupOrder = uint256.MustFromBig(btcec.S256().N)

// parseHex256 decodes up to 64 big-endian hex digits without a 0x prefix
func parseHex256(s string) (*uint256.Int, error) {
	if len(s) == 0 || len(s) > 64 {
		return nil, fmt.Errorf("hex value must have 1 to 64 digits, got %d", len(s))
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return new(uint256.Int).SetBytes(b), nil
}

// parseDecimal256 decodes a canonical decimal string into a 256-bit integer.
// Only digits are accepted, with no leading zeros, so each value has exactly
// one wire form.
func parseDecimal256(s string) (*uint256.Int, error) {
	if len(s) == 0 {
		return nil, errors.New("empty decimal value")
	}
	if len(s) > 1 && s[0] == '0' {
		return nil, fmt.Errorf("decimal value %q has leading zeros", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, fmt.Errorf("decimal value %q is not canonical", s)
		}
	}
	return uint256.FromDecimal(s)
}

// ParseSigningKeyHex decodes a big-endian hex private key, reducing it
// modulo the group order. A key that is zero after reduction is rejected.
func ParseSigningKeyHex(s string) (*Scalar, error) {
	v, err := parseHex256(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSigningKey, err)
	}
	b := v.Bytes32()
	k := NewScalar(b[:])
	if k.IsZero() {
		return nil, ErrInvalidSigningKey
	}
	return k, nil
}

// ParsePublicKeyHex decodes a ring member: a two character parity marker,
// which is discarded, followed by the hex x coordinate.
func ParsePublicKeyHex(s string) (*Point, error) {
	if len(s) <= parityMarkerLen {
		return nil, fmt.Errorf("%w: %q is too short", ErrInvalidPublicKey, s)
	}
	x, err := parseHex256(s[parityMarkerLen:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	p, ok := PointFromX(x)
	if !ok {
		return nil, fmt.Errorf("%w: no point with x = %s", ErrInvalidPublicKey,
			s[parityMarkerLen:])
	}
	return p, nil
}

// EncodePublicKeyHex encodes a point as a ring member: the compressed SEC
// marker for its y followed by 64 hex digits of x.
func EncodePublicKeyHex(p *Point) string {
	return hex.EncodeToString(p.PublicKey().SerializeCompressed())
}

// ParseRingHex decodes every member of a hex encoded ring
func ParseRingHex(keys []string) (Ring, error) {
	ring := make(Ring, len(keys))
	for i, k := range keys {
		p, err := ParsePublicKeyHex(k)
		if err != nil {
			return nil, fmt.Errorf("ring member %d: %w", i, err)
		}
		ring[i] = p
	}
	return ring, nil
}

// Strings encodes the signature as decimal strings in wire order:
// [c0, Y.x, Y.y, s_0, ..., s_{n-1}]
func (sig *Signature) Strings() []string {
	out := make([]string, 0, 3+len(sig.S))
	out = append(out, sig.C0.String(), sig.Y.XString(), sig.Y.YString())
	for _, s := range sig.S {
		out = append(out, s.String())
	}
	return out
}

// ParseSignatureStrings decodes the wire form produced by Strings. Responses
// must be below the group order and Y must be on the curve.
func ParseSignatureStrings(ss []string) (*Signature, error) {
	if len(ss) < 5 {
		return nil, fmt.Errorf("%w: %d values is too few", ErrInvalidSignature, len(ss))
	}

	c0, err := parseDecimal256(ss[0])
	if err != nil {
		return nil, fmt.Errorf("%w: c0: %v", ErrInvalidSignature, err)
	}
	x, err := parseDecimal256(ss[1])
	if err != nil {
		return nil, fmt.Errorf("%w: Y.x: %v", ErrInvalidSignature, err)
	}
	y, err := parseDecimal256(ss[2])
	if err != nil {
		return nil, fmt.Errorf("%w: Y.y: %v", ErrInvalidSignature, err)
	}
	if !x.Lt(fieldPrime) || !y.Lt(fieldPrime) {
		return nil, fmt.Errorf("%w: Y coordinate out of range", ErrInvalidSignature)
	}

	Y := &Point{}
	xb, yb := x.Bytes32(), y.Bytes32()
	Y.x.SetBytes(&xb)
	Y.y.SetBytes(&yb)
	Y.x.Normalize()
	Y.y.Normalize()
	if !Y.IsOnCurve() {
		return nil, fmt.Errorf("%w: Y is not on the curve", ErrInvalidSignature)
	}

	sig := &Signature{C0: c0.Bytes32(), Y: Y, S: make([]*Scalar, len(ss)-3)}
	for i, str := range ss[3:] {
		v, err := parseDecimal256(str)
		if err != nil {
			return nil, fmt.Errorf("%w: s_%d: %v", ErrInvalidSignature, i, err)
		}
		if !v.Lt(groupOrder) {
			return nil, fmt.Errorf("%w: s_%d is not below the group order",
				ErrInvalidSignature, i)
		}
		b := v.Bytes32()
		sig.S[i] = NewScalar(b[:])
	}
	return sig, nil
}

// SignHex signs with hex encoded inputs using the default context and
// returns the decimal wire form. See (*Context).SignHex.
func SignHex(signingKey string, keyIdx int, msg string, ring []string) ([]string, error) {
	return defaultContext.SignHex(signingKey, keyIdx, msg, ring)
}

// VerifyHex verifies a decimal wire form signature against a hex encoded
// ring using the default context
func VerifyHex(msg string, ring []string, sig []string) (bool, error) {
	return defaultContext.VerifyHex(msg, ring, sig)
}

// SignHex decodes the signing key and ring, signs msg and returns
// [c0, Y.x, Y.y, s_0, ..., s_{n-1}] as decimal strings. Inputs are checked in
// order: ring size, index, signing key, ring members.
func (ctx *Context) SignHex(signingKey string, keyIdx int, msg string, ring []string) ([]string, error) {
	if len(ring) < 2 {
		return nil, ErrInvalidRingSize
	}
	if keyIdx < 0 || keyIdx >= len(ring) {
		return nil, ErrInvalidIndex
	}
	k, err := ParseSigningKeyHex(signingKey)
	if err != nil {
		return nil, err
	}
	defer k.clear()
	y, err := ParseRingHex(ring)
	if err != nil {
		return nil, err
	}

	sig, err := ctx.Sign(k, keyIdx, []byte(msg), y)
	if err != nil {
		return nil, err
	}
	return sig.Strings(), nil
}

// VerifyHex decodes a hex ring and a decimal wire form signature and
// verifies it. Decoding failures are returned as errors; a well formed
// signature that does not verify returns false.
func (ctx *Context) VerifyHex(msg string, ring []string, sig []string) (bool, error) {
	if len(ring) < 2 {
		return false, ErrInvalidRingSize
	}
	y, err := ParseRingHex(ring)
	if err != nil {
		return false, err
	}
	s, err := ParseSignatureStrings(sig)
	if err != nil {
		return false, err
	}
	if len(s.S) != len(y) {
		return false, fmt.Errorf("%w: %d responses for a ring of %d",
			ErrInvalidSignature, len(s.S), len(y))
	}
	return ctx.Verify([]byte(msg), y, s), nil
}
