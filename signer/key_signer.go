package signer

import (
	"ringsig.mleku.dev"
)

var _ RingSigner = (*KeySigner)(nil)

// KeySigner implements RingSigner for a private key held in memory
type KeySigner struct {
	ctx   *ringsig.Context
	ring  ringsig.Ring
	key   *ringsig.Scalar
	idx   int
	tag   *ringsig.Point
	valid bool // Whether the secret key is still held
}

// NewKeySigner binds key to ring. The key's position is found by matching its
// public key against the ring members. A nil ctx uses a fresh signing and
// verifying context.
func NewKeySigner(ctx *ringsig.Context, ring ringsig.Ring, key *ringsig.Scalar) (*KeySigner, error) {
	if ctx == nil {
		ctx = ringsig.ContextCreate(ringsig.ContextSign | ringsig.ContextVerify)
	}

	pub, err := ringsig.PubkeyCreate(key)
	if err != nil {
		return nil, err
	}
	idx, err := IndexOf(ring, pub)
	if err != nil {
		return nil, err
	}
	tag, err := ctx.LinkTag(key, ring)
	if err != nil {
		return nil, err
	}

	// Keep our own copies so the caller can wipe theirs
	k := *key
	r := make(ringsig.Ring, len(ring))
	copy(r, ring)

	log.Debugf("Signer bound to index %d of a ring of %d keys", idx, len(r))

	return &KeySigner{
		ctx:   ctx,
		ring:  r,
		key:   &k,
		idx:   idx,
		tag:   tag,
		valid: true,
	}, nil
}

// Sign creates a linkable ring signature over msg
func (s *KeySigner) Sign(msg []byte) (*ringsig.Signature, error) {
	if !s.valid {
		return nil, ErrNoSecret
	}
	return s.ctx.Sign(s.key, s.idx, msg, s.ring)
}

// LinkTag returns the link tag of every signature this signer makes
func (s *KeySigner) LinkTag() *ringsig.Point {
	return s.tag
}

// Ring returns the ring the signer signs under
func (s *KeySigner) Ring() ringsig.Ring {
	return s.ring
}

// Index returns the signer's position in the ring
func (s *KeySigner) Index() int {
	return s.idx
}

// Zero wipes the secret key. The signer can no longer sign afterwards.
func (s *KeySigner) Zero() {
	if s.key != nil {
		*s.key = ringsig.Scalar{}
		s.key = nil
	}
	s.valid = false
}
