package ringsig

import (
	"github.com/btcsuite/btcd/btcec/v2"
)

// EcmultGen performs generator multiplication: r = a*G. It is variable time
// in a, as are EcmultSimple and Ecmult.
func EcmultGen(a *Scalar) (*Point, error) {
	var r btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&a.n, &r)

	p := &Point{}
	if err := p.setGEJ(&r); err != nil {
		return nil, err
	}
	return p, nil
}

// EcmultSimple performs scalar multiplication: r = k*P
func EcmultSimple(k *Scalar, p *Point) (*Point, error) {
	var pj, r btcec.JacobianPoint
	p.jacobian(&pj)
	btcec.ScalarMultNonConst(&k.n, &pj, &r)

	out := &Point{}
	if err := out.setGEJ(&r); err != nil {
		return nil, err
	}
	return out, nil
}

// Ecmult performs r = a*B + b*P. B is the generator when it is nil.
//
// Both ring equations have this shape: z1 = s*G + c*y[i] and
// z2 = s*H + c*Y.
func Ecmult(a *Scalar, base *Point, b *Scalar, p *Point) (*Point, error) {
	var aB, bP, r btcec.JacobianPoint

	// Compute a*B
	if base == nil {
		btcec.ScalarBaseMultNonConst(&a.n, &aB)
	} else {
		var bj btcec.JacobianPoint
		base.jacobian(&bj)
		btcec.ScalarMultNonConst(&a.n, &bj, &aB)
	}

	// Compute b*P
	var pj btcec.JacobianPoint
	p.jacobian(&pj)
	btcec.ScalarMultNonConst(&b.n, &pj, &bP)

	// Add the results: r = aB + bP
	btcec.AddNonConst(&aB, &bP, &r)

	out := &Point{}
	if err := out.setGEJ(&r); err != nil {
		return nil, err
	}
	return out, nil
}
