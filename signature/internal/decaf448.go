// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"crypto"
	"fmt"
	"io"

	"github.com/bytemare/decaf448/eddsa448"
)

// Decaf448 implements the Signature interface, wrapping the Schnorr-over-Decaf448
// scheme in eddsa448.
type Decaf448 struct {
	priv *eddsa448.PrivateKey
}

// NewDecaf448 returns an empty Decaf448 structure.
func NewDecaf448() *Decaf448 {
	return &Decaf448{}
}

// SetPrivateKey loads the given seed and derives the private and public key accordingly.
func (d *Decaf448) SetPrivateKey(privateKey []byte) {
	d.priv = eddsa448.DerivePrivateKey(privateKey)
}

// GenerateKey generates a fresh private/public key pair and stores it in d.
func (d *Decaf448) GenerateKey() error {
	priv, err := eddsa448.GenerateKey()
	if err != nil {
		return fmt.Errorf("decaf448 GenerateKey: %w", err)
	}

	d.priv = priv

	return nil
}

// GetPrivateKey returns the encoded secret scalar.
func (d *Decaf448) GetPrivateKey() []byte {
	return d.priv.Scalar.Encode()
}

// GetPublicKey returns the encoded public key.
func (d *Decaf448) GetPublicKey() []byte {
	return d.priv.Public().Encode()
}

// Public implements the Signer.Public() function.
func (d *Decaf448) Public() crypto.PublicKey {
	return crypto.PublicKey(d.priv.Public().Encode())
}

// SignMessage signs the concatenation of message under an empty context.
func (d *Decaf448) SignMessage(message ...[]byte) []byte {
	var buf []byte
	for _, m := range message {
		buf = append(buf, m...)
	}

	sig, err := d.priv.Sign(buf, nil)
	if err != nil {
		panic(fmt.Errorf("decaf448 SignMessage: %w", err))
	}

	return sig
}

// Sign implements the Signer.Sign() function.
func (d *Decaf448) Sign(_ io.Reader, digest []byte, _ crypto.SignerOpts) ([]byte, error) {
	return d.priv.Sign(digest, nil)
}

// Verify checks whether signature of the message is valid given the public key.
func (d *Decaf448) Verify(publicKey, message, signature []byte) bool {
	pub, err := eddsa448.DecodePublicKey(publicKey)
	if err != nil {
		return false
	}

	return eddsa448.Verify(pub, message, nil, signature) == nil
}
