package ringsig

// Verify checks sig over msg and ring with the default context. See
// (*Context).Verify.
func Verify(msg []byte, ring Ring, sig *Signature) bool {
	return defaultContext.Verify(msg, ring, sig)
}

// Linked reports whether two signatures carry the same link tag. Under the
// same ring this means both were made with the same private key.
func Linked(a, b *Signature) bool {
	if a == nil || b == nil || a.Y == nil || b.Y == nil {
		return false
	}
	return a.Y.Equal(b.Y)
}

// Verify walks the whole ring starting from sig.C0:
//
//	z1 = s[i]*G + c[i]*y[i]
//	z2 = s[i]*H + c[i]*Y
//	c[i+1] = H1(y, Y, M, z1, z2)
//
// and accepts iff the walk returns exactly to C0. Malformed signatures are
// rejected rather than reported as errors.
func (ctx *Context) Verify(msg []byte, ring Ring, sig *Signature) bool {
	if !ctx.canVerify() {
		log.Debugf("Verify called on a context without ContextVerify")
		return false
	}
	if !sig.wellFormed(len(ring)) {
		return false
	}
	if checkRing(ring) != nil {
		return false
	}

	H, err := HashToCurve(ring)
	if err != nil {
		log.Errorf("Unable to derive ring base point: %v", err)
		return false
	}

	m := RawBytes(msg)
	c := sig.C0
	for i := range ring {
		ci := c.Scalar()
		z1, err := Ecmult(sig.S[i], nil, ci, ring[i])
		if err != nil {
			return false
		}
		z2, err := Ecmult(sig.S[i], H, ci, sig.Y)
		if err != nil {
			return false
		}
		c = HashToScalar(ring, sig.Y, m, z1, z2)
	}

	ok := c == sig.C0
	log.Debugf("Verified signature over ring of %d keys: %v", len(ring), ok)
	return ok
}

// wellFormed checks the signature shape against a ring of nkeys members
func (sig *Signature) wellFormed(nkeys int) bool {
	if sig == nil || sig.Y == nil || len(sig.S) != nkeys {
		return false
	}
	if !sig.Y.IsOnCurve() {
		return false
	}
	for _, s := range sig.S {
		if s == nil {
			return false
		}
	}
	return true
}
