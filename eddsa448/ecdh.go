// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package eddsa448

import (
	"bytes"
	"fmt"

	decaf448 "github.com/bytemare/decaf448"
	"github.com/bytemare/decaf448/hash"
)

func hashSharedSecret(first, second, dh []byte) []byte {
	return hash.SHAKE256.Get().Hash(sharedSecretLength, []byte(domShared), first, second, dh)
}

// sharedSecretLength is the output size of the derived shared secret.
const sharedSecretLength = 64

// SharedSecret decodes peerPublic and computes the Diffie-Hellman shared secret with
// priv, then derives a fixed-length key from the raw point via a domain-separated hash
// of both parties' encoded public keys taken in lexicographic order (so both sides
// derive byte-identical output regardless of which one calls in as "priv").
func SharedSecret(priv *PrivateKey, peerPublic []byte) ([]byte, error) {
	peer, err := DecodePublicKey(peerPublic)
	if err != nil {
		return invalidSharedSecret(priv, peerPublic), fmt.Errorf("eddsa448: ECDH failure: %w", err)
	}

	return sharedSecretFromElement(priv, peer.Element), nil
}

// sharedSecretFromElement is the fast path used when the peer element is already a
// decoded, validated group element (e.g. chained from a prior Decode), avoiding a
// redundant decode of the peer's encoding.
func sharedSecretFromElement(priv *PrivateKey, peerElement *decaf448.Element) []byte {
	x := peerElement.Copy().Multiply(priv.Scalar)

	own := priv.Public().Element.Encode()
	their := peerElement.Encode()

	return deriveSharedKey(own, their, x.Encode())
}

func deriveSharedKey(own, their, dh []byte) []byte {
	first, second := own, their
	if bytes.Compare(own, their) > 0 {
		first, second = their, own
	}

	return hashSharedSecret(first, second, dh)
}

// invalidSharedSecret returns a deterministic, constant-length substitute so that a
// caller who forgets to check the returned error still gets a fixed-shape output instead
// of a nil slice whose length would betray the failure.
func invalidSharedSecret(priv *PrivateKey, peerPublic []byte) []byte {
	own := priv.Public().Element.Encode()
	return hashSharedSecret(own, peerPublic, priv.Sym[:])
}
