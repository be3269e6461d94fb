// Package ringsig implements linkable ring signatures over secp256k1. A
// signature proves that one member of a ring of public keys signed a message
// without revealing which one, and carries a link tag that is the same for
// every signature the member makes under that ring.
package ringsig

// Signature is a linkable ring signature: the challenge at position 0, one
// response per ring member, and the signer's link tag.
type Signature struct {
	C0 Hash
	S  []*Scalar
	Y  *Point
}

// Sign creates a linkable ring signature over msg with the default context.
// See (*Context).Sign.
func Sign(signingKey *Scalar, keyIdx int, msg []byte, ring Ring) (*Signature, error) {
	return defaultContext.Sign(signingKey, keyIdx, msg, ring)
}

// LinkTag returns the link tag signingKey would produce under ring with the
// default context
func LinkTag(signingKey *Scalar, ring Ring) (*Point, error) {
	return defaultContext.LinkTag(signingKey, ring)
}

// checkRing validates the ring size and members
func checkRing(ring Ring) error {
	if len(ring) < 2 {
		return ErrInvalidRingSize
	}
	for _, p := range ring {
		if p == nil || !p.IsOnCurve() {
			return ErrInvalidPublicKey
		}
	}
	return nil
}

// LinkTag returns Y = H2(ring)*signingKey. The tag is the same for every
// signature the key makes under the same ring.
func (ctx *Context) LinkTag(signingKey *Scalar, ring Ring) (*Point, error) {
	if err := checkRing(ring); err != nil {
		return nil, err
	}
	if signingKey == nil || signingKey.IsZero() {
		return nil, ErrInvalidSigningKey
	}
	H, err := HashToCurve(ring)
	if err != nil {
		return nil, err
	}
	return EcmultSimple(signingKey, H)
}

// Sign creates a linkable ring signature over msg proving knowledge of the
// private key of one member of ring, keyIdx, without revealing which.
//
// The caller must pass the key matching ring[keyIdx]. Unless the context was
// created with ContextStrict this is not checked, and a mismatched key
// produces a signature that will not verify.
//
// The multiplications by the signing key and by the commitment u run through
// btcec's variable time routines, so Sign is not constant time. Do not sign
// where an attacker can measure signing time with fine resolution.
func (ctx *Context) Sign(signingKey *Scalar, keyIdx int, msg []byte, ring Ring) (*Signature, error) {
	if !ctx.canSign() {
		return nil, ErrContextCapability
	}
	if err := checkRing(ring); err != nil {
		return nil, err
	}
	nkeys := len(ring)
	if keyIdx < 0 || keyIdx >= nkeys {
		return nil, ErrInvalidIndex
	}
	if signingKey == nil || signingKey.IsZero() {
		return nil, ErrInvalidSigningKey
	}
	if ctx.isStrict() {
		pub, err := PubkeyCreate(signingKey)
		if err != nil {
			return nil, err
		}
		if !pub.Equal(ring[keyIdx]) {
			return nil, ErrKeyRingMismatch
		}
	}

	log.Debugf("Signing %d byte message with ring of %d keys", len(msg), nkeys)

	// Per-ring base point H and link tag Y = H*x
	H, err := HashToCurve(ring)
	if err != nil {
		return nil, err
	}
	Y, err := EcmultSimple(signingKey, H)
	if err != nil {
		return nil, err
	}

	c := make([]Hash, nkeys)
	s := make([]*Scalar, nkeys)
	m := RawBytes(msg)

	// Commit to u at the position after the signer
	u, err := ctx.randomScalar()
	if err != nil {
		return nil, err
	}
	defer u.clear()

	uG, err := EcmultGen(u)
	if err != nil {
		return nil, err
	}
	uH, err := EcmultSimple(u, H)
	if err != nil {
		return nil, err
	}
	start := ring.next(keyIdx)
	c[start] = HashToScalar(ring, Y, m, uG, uH)

	// Walk the rest of the ring choosing each response first and deriving the
	// challenge it implies for the next member
	for i := start; i != keyIdx; i = ring.next(i) {
		si, err := ctx.randomScalar()
		if err != nil {
			return nil, err
		}
		ci := c[i].Scalar()

		z1, err := Ecmult(si, nil, ci, ring[i])
		if err != nil {
			return nil, err
		}
		z2, err := Ecmult(si, H, ci, Y)
		if err != nil {
			return nil, err
		}

		s[i] = si
		c[ring.next(i)] = HashToScalar(ring, Y, m, z1, z2)
	}

	// Close the ring: s = u - x*c (mod n)
	s[keyIdx] = &Scalar{}
	s[keyIdx].mulSub(u, signingKey, c[keyIdx].Scalar())

	return &Signature{C0: c[0], S: s, Y: Y}, nil
}
