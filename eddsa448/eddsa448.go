// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package eddsa448 provides Schnorr signatures and Diffie-Hellman key exchange over the
// Decaf448 prime-order group, following the derive_private_key / sign / verify /
// shared_secret contracts of an EdDSA-style external collaborator, but built on the
// Decaf448 group's own canonical encoding rather than raw RFC 8032 Ed448 wire format.
package eddsa448

import (
	cryptorand "crypto/rand"
	"errors"
	"fmt"

	decaf448 "github.com/bytemare/decaf448"
	"github.com/bytemare/decaf448/hash"
)

const (
	// group is the prime-order group every operation in this package is defined over.
	group = decaf448.Decaf448Shake256

	// symLength is the byte size of a private key's symmetric nonce-derivation secret,
	// matching Ed448's "symmetric key" half of decaf_crypto.c's derive_private_key.
	symLength = 57

	// maxContextLength is RFC 8032 §5.2's bound on the EdDSA context string.
	maxContextLength = 255

	domSeed      = "decaf448 derive_private_key seed"
	domSym       = "decaf448 derive_private_key sym"
	domNonce     = "decaf448 sign nonce"
	domChallenge = "decaf448 sign challenge"
	domShared    = "decaf448 ecdh shared secret"
)

var (
	// ErrContextTooLong indicates a context string longer than maxContextLength.
	ErrContextTooLong = errors.New("eddsa448: context string longer than 255 bytes")

	// ErrInvalidSignatureLength indicates a signature that isn't exactly point||scalar.
	ErrInvalidSignatureLength = errors.New("eddsa448: invalid signature length")

	// ErrInvalidSignature indicates a signature that failed verification.
	ErrInvalidSignature = errors.New("eddsa448: signature verification failed")

	// ErrInvalidPublicKey indicates a public key that failed to decode.
	ErrInvalidPublicKey = errors.New("eddsa448: invalid public key encoding")
)

// PrivateKey holds a Decaf448 secret scalar plus the separate symmetric secret used to
// derive per-signature nonces, mirroring decaf_crypto.c's two-part key derivation so a
// nonce-derivation bug can never leak the scalar directly.
type PrivateKey struct {
	Scalar *decaf448.Scalar
	Sym    [symLength]byte

	pub *PublicKey
}

// PublicKey holds the Decaf448 group element corresponding to a PrivateKey.
type PublicKey struct {
	Element *decaf448.Element
}

// GenerateKey derives a fresh PrivateKey from crypto/rand.
func GenerateKey() (*PrivateKey, error) {
	seed := make([]byte, group.ScalarLength())
	if _, err := cryptorand.Read(seed); err != nil {
		return nil, fmt.Errorf("eddsa448: generating seed: %w", err)
	}

	return DerivePrivateKey(seed), nil
}

// DerivePrivateKey deterministically derives a PrivateKey from an arbitrary-length seed,
// via two domain-separated hash-to-scalar/hash-to-bytes expansions of the same seed.
func DerivePrivateKey(seed []byte) *PrivateKey {
	priv := &PrivateKey{
		Scalar: group.HashToScalar(seed, []byte(domSeed)),
	}

	sym := hash.SHAKE256.Get().Hash(symLength, []byte(domSym), seed)
	copy(priv.Sym[:], sym)

	return priv
}

// Public returns the PublicKey matching priv, computing and caching it on first use.
func (priv *PrivateKey) Public() *PublicKey {
	if priv.pub == nil {
		priv.pub = &PublicKey{Element: group.Base().Multiply(priv.Scalar)}
	}

	return priv.pub
}

// Sign computes a Schnorr signature over message under context ctx, and returns the
// encoded signature R||s. Per RFC 8032 §5.2, ctx must not exceed 255 bytes.
func (priv *PrivateKey) Sign(message, ctx []byte) ([]byte, error) {
	if len(ctx) > maxContextLength {
		return nil, ErrContextTooLong
	}

	pub := priv.Public().Element.Encode()

	r := group.HashToScalar(concat(priv.Sym[:], ctx, message), []byte(domNonce))
	bigR := group.Base().Multiply(r)

	c := group.HashToScalar(concat(pub, bigR.Encode(), ctx, message), []byte(domChallenge))

	// s = r - c*a
	s := c.Copy().Multiply(priv.Scalar)
	s = r.Copy().Subtract(s)

	sig := make([]byte, 0, group.ElementLength()+group.ScalarLength())
	sig = append(sig, bigR.Encode()...)
	sig = append(sig, s.Encode()...)

	return sig, nil
}

// Verify reports whether sig is a valid Schnorr signature by pub over message under
// context ctx.
func Verify(pub *PublicKey, message, ctx, sig []byte) error {
	if len(ctx) > maxContextLength {
		return ErrContextTooLong
	}

	elementLen := group.ElementLength()
	scalarLen := group.ScalarLength()

	if len(sig) != elementLen+scalarLen {
		return ErrInvalidSignatureLength
	}

	bigR := group.NewElement()
	if err := bigR.Decode(sig[:elementLen]); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	s := group.NewScalar()
	if err := s.Decode(sig[elementLen:]); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	c := group.HashToScalar(concat(pub.Element.Encode(), bigR.Encode(), ctx, message), []byte(domChallenge))

	// check s*G + c*A == R
	rhs := group.Base().Multiply(s).Add(pub.Element.Copy().Multiply(c))

	if rhs.Equal(bigR) != 1 {
		return ErrInvalidSignature
	}

	return nil
}

// Encode returns the compressed byte encoding of pub.
func (pub *PublicKey) Encode() []byte {
	return pub.Element.Encode()
}

// DecodePublicKey decodes the compressed byte encoding of a Decaf448 public key.
func DecodePublicKey(data []byte) (*PublicKey, error) {
	e := group.NewElement()
	if err := e.Decode(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	return &PublicKey{Element: e}, nil
}

func concat(parts ...[]byte) []byte {
	length := 0
	for _, p := range parts {
		length += len(p)
	}

	buf := make([]byte, 0, length)
	for _, p := range parts {
		buf = append(buf, p...)
	}

	return buf
}
