// Package signer wraps the ring signature primitives in stateful helpers: a
// RingSigner bound to one member's key and ring, and a Verifier that tracks
// link tags so repeat signers can be refused.
package signer

import (
	"errors"

	"ringsig.mleku.dev"
)

var (
	// ErrNotInRing is returned when the signing key's public key is not a
	// member of the ring
	ErrNotInRing = errors.New("public key is not a ring member")

	// ErrNoSecret is returned when signing with a signer that was zeroed
	ErrNoSecret = errors.New("no secret key available for signing")

	// ErrDoubleSign is returned by Accept when a valid signature carries a
	// link tag that was already accepted
	ErrDoubleSign = errors.New("link tag already seen")

	// ErrBadSignature is returned by Accept for signatures that do not verify
	ErrBadSignature = errors.New("signature does not verify")
)

// RingSigner signs messages as one fixed member of a fixed ring
type RingSigner interface {
	// Sign creates a linkable ring signature over msg
	Sign(msg []byte) (*ringsig.Signature, error)
	// LinkTag returns the tag every signature from this signer carries
	LinkTag() *ringsig.Point
	// Ring returns the ring the signer signs under
	Ring() ringsig.Ring
	// Index returns the signer's position in the ring
	Index() int
	// Zero wipes the secret key
	Zero()
}

// Verifier checks signatures against a fixed ring
type Verifier interface {
	// Verify reports whether sig is a valid signature over msg
	Verify(msg []byte, sig *ringsig.Signature) bool
	// Accept verifies sig and records its link tag, refusing a tag it has
	// already recorded
	Accept(msg []byte, sig *ringsig.Signature) error
	// Seen reports whether sig's link tag was already accepted
	Seen(sig *ringsig.Signature) bool
}

// IndexOf returns the position of pub in ring
func IndexOf(ring ringsig.Ring, pub *ringsig.Point) (int, error) {
	for i, p := range ring {
		if p != nil && p.Equal(pub) {
			return i, nil
		}
	}
	return -1, ErrNotInRing
}
