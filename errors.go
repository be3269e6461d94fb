package ringsig

import "errors"

var (
	ErrInvalidPublicKey      = errors.New("public key is not a point on the curve")
	ErrInvalidRingSize       = errors.New("ring must contain at least two public keys")
	ErrInvalidIndex          = errors.New("signer index is outside the ring")
	ErrInvalidSigningKey     = errors.New("invalid signing key")
	ErrKeyRingMismatch       = errors.New("signing key does not match the public key at the signer index")
	ErrRandomnessUnavailable = errors.New("secure randomness unavailable")
	ErrHashToCurveExhausted  = errors.New("hash-to-curve iteration limit exceeded")
	ErrPointAtInfinity       = errors.New("point at infinity")
	ErrInvalidSignature      = errors.New("malformed signature")
	ErrContextCapability     = errors.New("context was not created for this operation")
)
