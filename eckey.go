package ringsig

// PubkeyCreate computes the public key seckey*G
func PubkeyCreate(seckey *Scalar) (*Point, error) {
	if seckey == nil || seckey.IsZero() {
		return nil, ErrInvalidSigningKey
	}
	return EcmultGen(seckey)
}

// SeckeyNegate negates a secret key in place. The matching public key is
// mirrored around the x axis, which flips the oddness of y.
func (r *Scalar) SeckeyNegate() {
	r.n.Negate()
}

// HexCompatible reports whether the oddness of y matches the oddness of x.
// The hex ring encoding keeps only x and rebuilds y under that rule, so only
// such keys survive a round trip through ParsePublicKeyHex.
func (p *Point) HexCompatible() bool {
	return p.x.IsOdd() == p.y.IsOdd()
}
