// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package rawed448 implements the raw (non-Decaf) RFC 8032 Ed448 and Ed448ph signature
// constructions directly on the Ed448-Goldilocks curve, as a byte-compatible companion
// to eddsa448's Schnorr-over-Decaf448 scheme: same curve and point arithmetic
// (internal/decaf448/d448), but the RFC 8032 wire codec, clamping, and dom4-prefixed
// SHAKE256 construction instead of the Decaf-native encoding eddsa448 uses.
package rawed448

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/bytemare/decaf448/hash"
	"github.com/bytemare/decaf448/internal/decaf448/d448"
	"github.com/bytemare/decaf448/internal/scalar448"
)

const (
	// SeedLength is the byte size of an Ed448 private key seed, per RFC 8032 section 5.2.5.
	SeedLength = 57

	// PublicKeyLength is the byte size of an encoded Ed448 public key.
	PublicKeyLength = d448.RawEncodedLength

	// SignatureLength is the byte size of an encoded Ed448 signature (R || S, each padded
	// to PublicKeyLength so both halves share the point encoding's width).
	SignatureLength = 2 * PublicKeyLength

	// scalarLength is the width scalarMulEncoded/scalar448 operate on, one byte short of
	// SeedLength/PublicKeyLength since the scalar ring's modulus fits in 56 bytes.
	scalarLength = scalar448.ByteLength

	// maxContextLength is RFC 8032 section 5.2's bound on the context string.
	maxContextLength = 255

	// prehashOutputLength is the SHAKE256 output size PH(M) uses for Ed448ph, per RFC 8032
	// section 5.2.3.
	prehashOutputLength = 64

	// expansionLength is the SHAKE256 output size used for both key expansion and the
	// per-signature nonce/challenge derivations, per RFC 8032 section 5.2.5.
	expansionLength = 114

	dom4Prefix = "SigEd448"
)

var (
	// ErrContextTooLong indicates a context string longer than maxContextLength.
	ErrContextTooLong = errors.New("rawed448: context string longer than 255 bytes")

	// ErrInvalidSignatureLength indicates a signature that isn't exactly SignatureLength bytes.
	ErrInvalidSignatureLength = errors.New("rawed448: invalid signature length")

	// ErrInvalidSignature indicates a signature that failed verification.
	ErrInvalidSignature = errors.New("rawed448: signature verification failed")

	// ErrInvalidPublicKey indicates a public key that failed to decode.
	ErrInvalidPublicKey = errors.New("rawed448: invalid public key encoding")

	// ErrNonCanonicalS indicates a signature whose S component is >= the group order, or
	// whose padding byte is nonzero.
	ErrNonCanonicalS = errors.New("rawed448: non-canonical S component")
)

// PrivateKey holds a clamped Ed448 scalar and the nonce-derivation prefix RFC 8032
// section 5.2.5 derives from a seed, plus the cached public key.
type PrivateKey struct {
	clamped [SeedLength]byte
	prefix  [SeedLength]byte
	pub     *PublicKey
}

// PublicKey holds the raw encoding of an Ed448 public key point.
type PublicKey struct {
	enc [PublicKeyLength]byte
}

// GenerateKey derives a fresh PrivateKey from a random crypto/rand seed.
func GenerateKey() (*PrivateKey, error) {
	seed := make([]byte, SeedLength)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("rawed448: generating seed: %w", err)
	}

	return DerivePrivateKey(seed), nil
}

// DerivePrivateKey deterministically derives a PrivateKey from a 57-byte seed, following
// RFC 8032 section 5.2.5: h = SHAKE256(seed, 114); the low 57 bytes are clamped into the
// scalar, the high 57 bytes become the nonce-derivation prefix.
func DerivePrivateKey(seed []byte) *PrivateKey {
	h := hash.SHAKE256.Get().Hash(expansionLength, seed)

	priv := &PrivateKey{}
	copy(priv.clamped[:], clamp(h[:SeedLength]))
	copy(priv.prefix[:], h[SeedLength:])

	return priv
}

// clamp applies RFC 8032's Ed448 scalar pruning: clear the low two bits of the first
// octet, set the high bit of the second-to-last octet, and zero the last octet.
func clamp(h []byte) []byte {
	s := make([]byte, SeedLength)
	copy(s, h)

	s[0] &^= 0x03
	s[SeedLength-2] |= 0x80
	s[SeedLength-1] = 0

	return s
}

// Public returns the PublicKey matching priv, computing and caching it on first use.
func (priv *PrivateKey) Public() *PublicKey {
	if priv.pub == nil {
		pub := &PublicKey{}
		copy(pub.enc[:], d448.RawBaseScalarMul(priv.clamped[:scalarLength]))
		priv.pub = pub
	}

	return priv.pub
}

// Encode returns the raw encoding of pub.
func (pub *PublicKey) Encode() []byte {
	out := make([]byte, PublicKeyLength)
	copy(out, pub.enc[:])

	return out
}

// DecodePublicKey decodes a raw Ed448 public key encoding.
func DecodePublicKey(data []byte) (*PublicKey, error) {
	if len(data) != PublicKeyLength {
		return nil, ErrInvalidPublicKey
	}

	if err := d448.RawValidateEncoding(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	pub := &PublicKey{}
	copy(pub.enc[:], data)

	return pub, nil
}

func dom4(phflag byte, ctx []byte) []byte {
	out := make([]byte, 0, len(dom4Prefix)+2+len(ctx))
	out = append(out, dom4Prefix...)
	out = append(out, phflag, byte(len(ctx)))
	out = append(out, ctx...)

	return out
}

func prehash(message []byte, phflag byte) []byte {
	if phflag == 0 {
		return message
	}

	return hash.SHAKE256.Get().Hash(prehashOutputLength, message)
}

// sign implements both Ed448 (phflag=0) and Ed448ph (phflag=1), following RFC 8032
// section 5.2.6.
func (priv *PrivateKey) sign(message, ctx []byte, phflag byte) ([]byte, error) {
	if len(ctx) > maxContextLength {
		return nil, ErrContextTooLong
	}

	d4 := dom4(phflag, ctx)
	pm := prehash(message, phflag)
	pub := priv.Public().Encode()

	rDigest := hash.SHAKE256.Get().Hash(expansionLength, d4, priv.prefix[:], pm)
	r := scalar448.DecodeLong(rDigest)
	rEnc := d448.RawBaseScalarMul(r.Encode())

	kDigest := hash.SHAKE256.Get().Hash(expansionLength, d4, rEnc, pub, pm)
	k := scalar448.DecodeLong(kDigest)

	s := scalar448.DecodeLong(priv.clamped[:])

	bigS := new(scalar448.Scalar).Mul(k, s)
	bigS.Add(bigS, r)

	sig := make([]byte, 0, SignatureLength)
	sig = append(sig, rEnc...)
	sig = append(sig, bigS.Encode()...)
	sig = append(sig, 0) // pad S to PublicKeyLength bytes, matching R's width

	return sig, nil
}

// Sign computes a pure Ed448 signature (phflag=0) over message under context ctx.
func (priv *PrivateKey) Sign(message, ctx []byte) ([]byte, error) {
	return priv.sign(message, ctx, 0)
}

// SignPrehashed computes an Ed448ph signature (phflag=1) over message under context ctx;
// message is hashed with SHAKE256 to 64 bytes before signing, per RFC 8032 section 5.2.3.
func (priv *PrivateKey) SignPrehashed(message, ctx []byte) ([]byte, error) {
	return priv.sign(message, ctx, 1)
}

func verify(pub *PublicKey, message, ctx, sig []byte, phflag byte) error {
	if len(ctx) > maxContextLength {
		return ErrContextTooLong
	}

	if len(sig) != SignatureLength {
		return ErrInvalidSignatureLength
	}

	rEnc := sig[:PublicKeyLength]
	sEncPadded := sig[PublicKeyLength:]

	if sEncPadded[scalarLength] != 0 {
		return ErrNonCanonicalS
	}

	sScalar, err := scalar448.Decode(sEncPadded[:scalarLength])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNonCanonicalS, err)
	}

	d4 := dom4(phflag, ctx)
	pm := prehash(message, phflag)

	kDigest := hash.SHAKE256.Get().Hash(expansionLength, d4, rEnc, pub.Encode(), pm)
	k := scalar448.DecodeLong(kDigest)

	ok, err := d448.RawVerifyEquation(sScalar.Encode(), rEnc, k.Encode(), pub.Encode())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	if !ok {
		return ErrInvalidSignature
	}

	return nil
}

// Verify reports whether sig is a valid pure Ed448 signature (phflag=0) by pub over
// message under context ctx.
func Verify(pub *PublicKey, message, ctx, sig []byte) error {
	return verify(pub, message, ctx, sig, 0)
}

// VerifyPrehashed reports whether sig is a valid Ed448ph signature (phflag=1) by pub over
// message under context ctx.
func VerifyPrehashed(pub *PublicKey, message, ctx, sig []byte) error {
	return verify(pub, message, ctx, sig, 1)
}
