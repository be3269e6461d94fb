package ringsig

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Context flags
const (
	ContextSign   = 1 << 0
	ContextVerify = 1 << 1
	// ContextStrict makes Sign check that the signing key matches the ring
	// member at the signer index. Without it a mismatched key yields a well
	// formed signature that fails verification.
	ContextStrict = 1 << 2
	ContextNone   = 0
)

// maxRandomDraws bounds how many zero scalars a random source may produce in
// a row before it is treated as broken
const maxRandomDraws = 64

// Context holds the configuration used by the signing and verification
// operations. It is not modified by them, so one context may be shared by
// many goroutines as long as its random source is safe for concurrent use.
type Context struct {
	flags uint
	rand  io.Reader
}

// defaultContext backs the package level Sign and Verify functions
var defaultContext = ContextCreate(ContextSign | ContextVerify)

// ContextCreate creates a new context with the given flags. Randomness is
// drawn from crypto/rand until SetRandom is called.
func ContextCreate(flags uint) *Context {
	return &Context{
		flags: flags,
		rand:  rand.Reader,
	}
}

// ContextDestroy clears a context. A destroyed context can neither sign nor
// verify.
func ContextDestroy(ctx *Context) {
	if ctx == nil {
		return
	}
	ctx.flags = ContextNone
	ctx.rand = nil
}

// SetRandom replaces the source of signing randomness. Passing nil restores
// crypto/rand. Only tests should install a deterministic source.
func (ctx *Context) SetRandom(r io.Reader) {
	if r == nil {
		r = rand.Reader
	}
	ctx.rand = r
}

// Flags returns the flags the context was created with
func (ctx *Context) Flags() uint {
	return ctx.flags
}

func (ctx *Context) canSign() bool {
	return ctx != nil && ctx.flags&ContextSign != 0
}

func (ctx *Context) canVerify() bool {
	return ctx != nil && ctx.flags&ContextVerify != 0
}

func (ctx *Context) isStrict() bool {
	return ctx.flags&ContextStrict != 0
}

// randomScalar draws a fresh non-zero scalar from 32 bytes of the context's
// random source
func (ctx *Context) randomScalar() (*Scalar, error) {
	if ctx.rand == nil {
		return nil, ErrRandomnessUnavailable
	}

	var b [32]byte
	for i := 0; i < maxRandomDraws; i++ {
		if _, err := io.ReadFull(ctx.rand, b[:]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
		}
		s := NewScalar(b[:])
		if !s.IsZero() {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: source produced only zero scalars",
		ErrRandomnessUnavailable)
}
