package ringsig

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/holiman/uint256"
)

// fieldPrime is the secp256k1 field prime p = 2^256 - 2^32 - 977
var fieldPrime = uint256.MustFromHex("0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

// Point represents a point on the secp256k1 curve in affine coordinates
// (x, y). The point at infinity is never a valid Point in this package; both
// coordinates are always normalized.
type Point struct {
	x, y btcec.FieldVal
}

// Generator returns the secp256k1 base point G
func Generator() *Point {
	var one btcec.ModNScalar
	one.SetInt(1)
	var g btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&one, &g)
	p := &Point{}
	if err := p.setGEJ(&g); err != nil {
		panic(err)
	}
	return p
}

// PointFromX recovers the point with the given x coordinate using the fixed
// parity convention of this package: y is odd iff x is odd. It returns false
// if x is not below the field prime or no point with that x exists.
func PointFromX(x *uint256.Int) (*Point, bool) {
	if !x.Lt(fieldPrime) {
		return nil, false
	}

	b := x.Bytes32()
	var fx, fy btcec.FieldVal
	fx.SetBytes(&b)
	fx.Normalize()

	// Compute y from y^2 = x^3 + 7 choosing the root whose oddness matches x
	if !btcec.DecompressY(&fx, fx.IsOdd(), &fy) {
		return nil, false
	}
	fy.Normalize()

	return &Point{x: fx, y: fy}, true
}

// PointFromPublicKey converts a parsed btcec public key into a Point
func PointFromPublicKey(pk *btcec.PublicKey) *Point {
	var j btcec.JacobianPoint
	pk.AsJacobian(&j)
	p := &Point{x: j.X, y: j.Y}
	p.x.Normalize()
	p.y.Normalize()
	return p
}

// PublicKey returns the point as a btcec public key
func (p *Point) PublicKey() *btcec.PublicKey {
	return btcec.NewPublicKey(&p.x, &p.y)
}

// X returns the affine x coordinate
func (p *Point) X() *uint256.Int {
	return new(uint256.Int).SetBytes32(p.x.Bytes()[:])
}

// Y returns the affine y coordinate
func (p *Point) Y() *uint256.Int {
	return new(uint256.Int).SetBytes32(p.y.Bytes()[:])
}

// XString returns the decimal representation of the x coordinate
func (p *Point) XString() string {
	return p.X().Dec()
}

// YString returns the decimal representation of the y coordinate
func (p *Point) YString() string {
	return p.Y().Dec()
}

// String returns the decimal x coordinate immediately followed by the decimal
// y coordinate. This exact form, with no separator or length prefix, is what
// the hash functions consume.
func (p *Point) String() string {
	return p.XString() + p.YString()
}

// IsOnCurve checks the curve equation y^2 = x^3 + 7
func (p *Point) IsOnCurve() bool {
	var lhs, rhs btcec.FieldVal
	lhs.SquareVal(&p.y).Normalize()
	rhs.SquareVal(&p.x).Mul(&p.x).AddInt(7).Normalize()
	return lhs.Equals(&rhs)
}

// Equal returns true if both points have the same coordinates
func (p *Point) Equal(a *Point) bool {
	return p.x.Equals(&a.x) && p.y.Equals(&a.y)
}

// jacobian sets r to the Jacobian form of p
func (p *Point) jacobian(r *btcec.JacobianPoint) {
	r.X.Set(&p.x)
	r.Y.Set(&p.y)
	r.Z.SetInt(1)
}

// setGEJ sets p from a Jacobian point. It returns ErrPointAtInfinity when the
// point is the identity.
func (p *Point) setGEJ(a *btcec.JacobianPoint) error {
	if isInfinity(a) {
		return ErrPointAtInfinity
	}
	aCopy := *a
	aCopy.ToAffine()
	p.x.Set(&aCopy.X).Normalize()
	p.y.Set(&aCopy.Y).Normalize()
	return nil
}

// isInfinity returns true if the Jacobian point is the identity
func isInfinity(a *btcec.JacobianPoint) bool {
	var z btcec.FieldVal
	z.Set(&a.Z).Normalize()
	if z.IsZero() {
		return true
	}
	var x, y btcec.FieldVal
	x.Set(&a.X).Normalize()
	y.Set(&a.Y).Normalize()
	return x.IsZero() && y.IsZero()
}

// Ring is an ordered set of public keys. Order is significant: the signer
// index and the challenge walk both depend on it.
type Ring []*Point

// Len returns the number of keys in the ring
func (r Ring) Len() int {
	return len(r)
}

// next returns the index following i, wrapping at the end of the ring
func (r Ring) next(i int) int {
	return (i + 1) % len(r)
}

// String returns the concatenated point serializations of every member
func (r Ring) String() string {
	return string(r.appendTo(nil))
}
