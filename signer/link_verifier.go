package signer

import (
	"sync"

	"ringsig.mleku.dev"
)

var _ Verifier = (*LinkVerifier)(nil)

// LinkVerifier implements Verifier and remembers the link tags of the
// signatures it has accepted. It is safe for concurrent use.
type LinkVerifier struct {
	ctx  *ringsig.Context
	ring ringsig.Ring

	mu   sync.Mutex
	seen map[[64]byte]struct{}
}

// NewLinkVerifier creates a verifier for ring. A nil ctx uses a fresh
// verifying context.
func NewLinkVerifier(ctx *ringsig.Context, ring ringsig.Ring) *LinkVerifier {
	if ctx == nil {
		ctx = ringsig.ContextCreate(ringsig.ContextVerify)
	}
	r := make(ringsig.Ring, len(ring))
	copy(r, ring)
	return &LinkVerifier{
		ctx:  ctx,
		ring: r,
		seen: make(map[[64]byte]struct{}),
	}
}

// Verify reports whether sig is a valid signature over msg. It does not
// record anything.
func (v *LinkVerifier) Verify(msg []byte, sig *ringsig.Signature) bool {
	return v.ctx.Verify(msg, v.ring, sig)
}

// Accept verifies sig and records its link tag. A second valid signature
// from the same key is refused with ErrDoubleSign.
func (v *LinkVerifier) Accept(msg []byte, sig *ringsig.Signature) error {
	if !v.Verify(msg, sig) {
		return ErrBadSignature
	}

	tag := linkKey(sig.Y)

	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.seen[tag]; ok {
		log.Debugf("Refusing repeat link tag %s", sig.Y.XString())
		return ErrDoubleSign
	}
	v.seen[tag] = struct{}{}
	return nil
}

// Seen reports whether a signature carrying sig's link tag was accepted
func (v *LinkVerifier) Seen(sig *ringsig.Signature) bool {
	if sig == nil || sig.Y == nil {
		return false
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	_, ok := v.seen[linkKey(sig.Y)]
	return ok
}

// Len returns the number of distinct link tags accepted so far
func (v *LinkVerifier) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.seen)
}

// linkKey identifies a link tag by its fixed width x and y coordinates
func linkKey(p *ringsig.Point) [64]byte {
	var k [64]byte
	x, y := p.X().Bytes32(), p.Y().Bytes32()
	copy(k[:32], x[:])
	copy(k[32:], y[:])
	return k
}
