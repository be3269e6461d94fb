package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	jsoniter "github.com/json-iterator/go"

	"ringsig.mleku.dev"
	"ringsig.mleku.dev/signer"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// request is the JSON body every command reads
type request struct {
	SigningKey string       `json:"signing_key,omitempty"`
	KeyIdx     *int         `json:"key_idx,omitempty"`
	Message    string       `json:"message"`
	Ring       []string     `json:"ring"`
	Signature  []string     `json:"signature,omitempty"`
	Batch      []batchEntry `json:"batch,omitempty"`
}

// batchEntry is one message and signature of a verify batch
type batchEntry struct {
	Message   string   `json:"message"`
	Signature []string `json:"signature"`
}

type signResponse struct {
	KeyIdx    int      `json:"key_idx"`
	Signature []string `json:"signature"`
}

type verifyResponse struct {
	Valid   bool          `json:"valid"`
	LinkTag []string      `json:"link_tag,omitempty"`
	Batch   []batchResult `json:"batch,omitempty"`
}

// batchResult reports one batch entry. Duplicate is set for a valid
// signature whose signer already signed an earlier entry.
type batchResult struct {
	Valid     bool `json:"valid"`
	Duplicate bool `json:"duplicate"`
}

type keygenResponse struct {
	SigningKey string `json:"signing_key"`
	PublicKey  string `json:"public_key"`
}

type command struct {
	needsInput bool
	run        func(cfg *config, req *request) (interface{}, error)
}

var commands = map[string]command{
	"sign":   {needsInput: true, run: signCmd},
	"verify": {needsInput: true, run: verifyCmd},
	"keygen": {needsInput: false, run: keygenCmd},
}

func newContext(cfg *config) *ringsig.Context {
	flags := uint(ringsig.ContextSign | ringsig.ContextVerify)
	if cfg.Strict {
		flags |= ringsig.ContextStrict
	}
	return ringsig.ContextCreate(flags)
}

// signCmd signs the message. Without a key_idx the signer's position is
// found by matching its public key against the ring.
func signCmd(cfg *config, req *request) (interface{}, error) {
	ctx := newContext(cfg)

	if req.KeyIdx != nil {
		sig, err := ctx.SignHex(req.SigningKey, *req.KeyIdx, req.Message, req.Ring)
		if err != nil {
			return nil, err
		}
		return &signResponse{KeyIdx: *req.KeyIdx, Signature: sig}, nil
	}

	ring, err := ringsig.ParseRingHex(req.Ring)
	if err != nil {
		return nil, err
	}
	key, err := ringsig.ParseSigningKeyHex(req.SigningKey)
	if err != nil {
		return nil, err
	}
	s, err := signer.NewKeySigner(ctx, ring, key)
	if err != nil {
		return nil, err
	}
	defer s.Zero()

	sig, err := s.Sign([]byte(req.Message))
	if err != nil {
		return nil, err
	}
	return &signResponse{KeyIdx: s.Index(), Signature: sig.Strings()}, nil
}

// verifyCmd verifies either the single signature or every batch entry
func verifyCmd(cfg *config, req *request) (interface{}, error) {
	ctx := newContext(cfg)

	if len(req.Batch) == 0 {
		if len(req.Signature) == 0 {
			return nil, errors.New("request has neither signature nor batch")
		}
		ok, err := ctx.VerifyHex(req.Message, req.Ring, req.Signature)
		if err != nil {
			return nil, err
		}
		resp := &verifyResponse{Valid: ok}
		if ok {
			sig, err := ringsig.ParseSignatureStrings(req.Signature)
			if err != nil {
				return nil, err
			}
			resp.LinkTag = []string{sig.Y.XString(), sig.Y.YString()}
		}
		return resp, nil
	}

	ring, err := ringsig.ParseRingHex(req.Ring)
	if err != nil {
		return nil, err
	}
	v := signer.NewLinkVerifier(ctx, ring)

	resp := &verifyResponse{Valid: true, Batch: make([]batchResult, len(req.Batch))}
	for i, entry := range req.Batch {
		sig, err := ringsig.ParseSignatureStrings(entry.Signature)
		if err != nil {
			return nil, fmt.Errorf("batch entry %d: %w", i, err)
		}
		switch err := v.Accept([]byte(entry.Message), sig); {
		case err == nil:
			resp.Batch[i].Valid = true
		case errors.Is(err, signer.ErrDoubleSign):
			resp.Batch[i].Valid = true
			resp.Batch[i].Duplicate = true
		default:
			resp.Valid = false
		}
	}
	mainLog.Infof("Verified %d signatures from %d distinct signers",
		len(req.Batch), v.Len())
	return resp, nil
}

// keygenCmd creates a key pair whose public key survives the hex ring
// encoding, negating the key when needed
func keygenCmd(_ *config, _ *request) (interface{}, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	key := ringsig.NewScalar(priv.Serialize())
	priv.Zero()

	pub, err := ringsig.PubkeyCreate(key)
	if err != nil {
		return nil, err
	}
	if !pub.HexCompatible() {
		key.SeckeyNegate()
		if pub, err = ringsig.PubkeyCreate(key); err != nil {
			return nil, err
		}
	}

	b := key.Bytes()
	return &keygenResponse{
		SigningKey: hex.EncodeToString(b[:]),
		PublicKey:  ringsig.EncodePublicKeyHex(pub),
	}, nil
}
