package ringsig

import (
	"errors"
	"fmt"
	"testing"
)

// Three ring members whose y oddness matches their x oddness, so the hex
// encoding reproduces the real public keys. The markers are deliberately
// inconsistent: they are never read.
var (
	vectorKeysHex = []string{
		"8706c93de90c60b30079dd729a00ab04d9d21e748e837e9def3340531afedf8d",
		"222f3c022c1ceb32167e62837d55eb7e79bc37d3e413db655452a71fc1bcd63f",
		"20e0d1322752b2d3addec278cbef5e74b518f92689ebd631b726fca659f2cd2d",
	}
	vectorRingHex = []string{
		"02ee27a6e0d677ab2aaef06ccb62b8e248ab505afc7225b85e3e89d62c2fcfad85",
		"034bae82005144fbd2b8d2556664e5d75b0156588a87954763b57de89edd18471b",
		"02449c62dfbd82870b17a35f0f625c4bb97133491f39ed98784586fe5a0a50c1fe",
	}
	vectorSeed = "ringsig test vector"

	// Signature by vectorKeysHex[1] at index 1 over "test" with randomness
	// from newDetReader(vectorSeed)
	vectorSignature = []string{
		"83470434363676100584085597722261993554253932700280238129134857796933870047344",
		"68137504856733841335726683688569669457892377677017431958092087173031466733563",
		"28656948355586951557140284617787894766109283018308789475453063516517181074254",
		"39274639288398861655400528643821362760234655678916019868472568617381819132916",
		"26882945249848394035162236868010398639162133122586763003466255986783977051490",
		"18948923823442938749652846397514299974871043861800984072482133408152924641609",
	}
)

func newTestContext(seed string) *Context {
	ctx := ContextCreate(ContextSign | ContextVerify)
	ctx.SetRandom(newDetReader(seed))
	return ctx
}

func TestSignVector(t *testing.T) {
	ring := mustRingHex(t, vectorRingHex)
	key := mustScalarHex(t, vectorKeysHex[1])

	ctx := newTestContext(vectorSeed)
	sig, err := ctx.Sign(key, 1, []byte("test"), ring)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	got := sig.Strings()
	if len(got) != len(vectorSignature) {
		t.Fatalf("expected %d values, got %d", len(vectorSignature), len(got))
	}
	for i := range got {
		if got[i] != vectorSignature[i] {
			t.Errorf("value %d mismatch.\nExpected: %s\nGot:      %s", i, vectorSignature[i], got[i])
		}
	}

	if !ctx.Verify([]byte("test"), ring, sig) {
		t.Error("vector signature should verify")
	}
}

func TestSignRingClosure(t *testing.T) {
	for _, size := range []int{2, 3, 5, 8} {
		keys, ring := generateRing(t, size)
		for idx := 0; idx < size; idx++ {
			t.Run(fmt.Sprintf("size_%d_index_%d", size, idx), func(t *testing.T) {
				msg := []byte(fmt.Sprintf("message for %d/%d", idx, size))
				sig, err := Sign(keys[idx], idx, msg, ring)
				if err != nil {
					t.Fatalf("Sign failed: %v", err)
				}
				if len(sig.S) != size {
					t.Fatalf("expected %d responses, got %d", size, len(sig.S))
				}
				if !Verify(msg, ring, sig) {
					t.Error("signature should verify")
				}
			})
		}
	}
}

func TestSignLinkTagStable(t *testing.T) {
	keys, ring := generateRing(t, 4)

	a, err := Sign(keys[2], 2, []byte("first"), ring)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	b, err := Sign(keys[2], 2, []byte("second"), ring)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if !Linked(a, b) {
		t.Error("same key under the same ring should produce the same link tag")
	}
	if a.C0 == b.C0 {
		t.Error("fresh randomness should give a different c0")
	}

	tag, err := LinkTag(keys[2], ring)
	if err != nil {
		t.Fatalf("LinkTag failed: %v", err)
	}
	if !tag.Equal(a.Y) {
		t.Error("LinkTag should match the signature's link tag")
	}
}

func TestSignLinkTagDistinct(t *testing.T) {
	keys, ring := generateRing(t, 3)

	a, err := Sign(keys[0], 0, []byte("msg"), ring)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	b, err := Sign(keys[1], 1, []byte("msg"), ring)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if Linked(a, b) {
		t.Error("different keys should produce different link tags")
	}

	// The same key in a different ring gets a different tag
	_, other := generateRing(t, 2)
	other = append(other, ring[0])
	c, err := Sign(keys[0], 2, []byte("msg"), other)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if Linked(a, c) {
		t.Error("link tags should be ring specific")
	}
}

func TestSignDeterministicWithFixedRandomness(t *testing.T) {
	keys, ring := generateRing(t, 3)

	a, err := newTestContext("fixed").Sign(keys[0], 0, []byte("m"), ring)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	b, err := newTestContext("fixed").Sign(keys[0], 0, []byte("m"), ring)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	as, bs := a.Strings(), b.Strings()
	for i := range as {
		if as[i] != bs[i] {
			t.Fatalf("value %d differs with identical randomness", i)
		}
	}
}

func TestSignErrors(t *testing.T) {
	keys, ring := generateRing(t, 3)
	msg := []byte("msg")

	testCases := []struct {
		name  string
		key   *Scalar
		idx   int
		ring  Ring
		error error
	}{
		{"empty_ring", keys[0], 0, Ring{}, ErrInvalidRingSize},
		{"single_key", keys[0], 0, ring[:1], ErrInvalidRingSize},
		{"nil_member", keys[0], 0, Ring{ring[0], nil}, ErrInvalidPublicKey},
		{"off_curve_member", keys[0], 0, Ring{ring[0], &Point{}}, ErrInvalidPublicKey},
		{"negative_index", keys[0], -1, ring, ErrInvalidIndex},
		{"index_past_end", keys[0], 3, ring, ErrInvalidIndex},
		{"nil_key", nil, 0, ring, ErrInvalidSigningKey},
		{"zero_key", &Scalar{}, 0, ring, ErrInvalidSigningKey},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sig, err := Sign(tc.key, tc.idx, msg, tc.ring)
			if !errors.Is(err, tc.error) {
				t.Errorf("expected %v, got %v", tc.error, err)
			}
			if sig != nil {
				t.Error("no signature should be returned on error")
			}
		})
	}
}

func TestSignMismatchedKey(t *testing.T) {
	keys, ring := generateRing(t, 3)
	msg := []byte("msg")

	// The default context does not notice; the signature just fails
	sig, err := Sign(keys[0], 1, msg, ring)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if Verify(msg, ring, sig) {
		t.Error("signature with a mismatched key should not verify")
	}

	// A strict context refuses to sign
	strict := ContextCreate(ContextSign | ContextVerify | ContextStrict)
	if _, err := strict.Sign(keys[0], 1, msg, ring); !errors.Is(err, ErrKeyRingMismatch) {
		t.Errorf("expected ErrKeyRingMismatch, got %v", err)
	}
	sig, err = strict.Sign(keys[1], 1, msg, ring)
	if err != nil {
		t.Fatalf("strict Sign with the right key failed: %v", err)
	}
	if !strict.Verify(msg, ring, sig) {
		t.Error("strict signature should verify")
	}
}

func TestSignRandomnessFailure(t *testing.T) {
	keys, ring := generateRing(t, 2)

	ctx := ContextCreate(ContextSign)
	ctx.SetRandom(failReader{})
	_, err := ctx.Sign(keys[0], 0, []byte("msg"), ring)
	if !errors.Is(err, ErrRandomnessUnavailable) {
		t.Errorf("expected ErrRandomnessUnavailable, got %v", err)
	}

	ctx.SetRandom(zeroReader{})
	_, err = ctx.Sign(keys[0], 0, []byte("msg"), ring)
	if !errors.Is(err, ErrRandomnessUnavailable) {
		t.Errorf("expected ErrRandomnessUnavailable for a zero source, got %v", err)
	}
}

func TestSignDoesNotMutateInputs(t *testing.T) {
	keys, ring := generateRing(t, 3)
	before := ring.String()
	keyBefore := keys[1].String()

	if _, err := Sign(keys[1], 1, []byte("msg"), ring); err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if ring.String() != before {
		t.Error("Sign should not modify the ring")
	}
	if keys[1].String() != keyBefore {
		t.Error("Sign should not modify the signing key")
	}
}
