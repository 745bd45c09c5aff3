// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package d448

import (
	"github.com/bytemare/hash2curve"

	"github.com/bytemare/decaf448/internal"
	"github.com/bytemare/decaf448/internal/scalar448"
)

// Group represents the Decaf448 group. It exposes a prime-order group API with
// hash-to-curve operations, mirroring the internal/ristretto wiring pattern but backed
// by the Ed448-Goldilocks Decaf quotient implemented in this package.
type Group struct{}

// New returns a new instantiation of the Decaf448 Group.
func New() internal.Group {
	return Group{}
}

// NewScalar returns a new scalar set to 0.
func (g Group) NewScalar() internal.Scalar {
	return &Scalar{v: *scalar448.Zero()}
}

// NewElement returns the identity element (point at infinity).
func (g Group) NewElement() internal.Element {
	return &Element{p: identity()}
}

// Base returns the group's base point a.k.a. canonical generator.
func (g Group) Base() internal.Element {
	return &Element{p: basePoint()}
}

// HashToScalar returns a safe mapping of the arbitrary input to a Scalar.
func (g Group) HashToScalar(input, dst []byte) internal.Scalar {
	uniform := hash2curve.ExpandXOF(hashing, input, dst, secLength)
	return &Scalar{v: *scalar448.DecodeLong(uniform)}
}

// HashToGroup returns a safe (uniform) mapping of the arbitrary input to an Element,
// via point_from_hash_uniform: two Elligator maps combined by a point addition.
func (g Group) HashToGroup(input, dst []byte) internal.Element {
	uniform := hash2curve.ExpandXOF(hashing, input, dst, 2*elementLength)

	p, err := fromHashUniform(uniform)
	if err != nil {
		panic(err)
	}

	return &Element{p: p}
}

// EncodeToGroup returns a non-uniform mapping of the arbitrary input to an Element,
// via point_from_hash_nonuniform.
func (g Group) EncodeToGroup(input, dst []byte) internal.Element {
	uniform := hash2curve.ExpandXOF(hashing, input, dst, elementLength)

	p, err := fromHashNonUniform(uniform)
	if err != nil {
		panic(err)
	}

	return &Element{p: p}
}

// Ciphersuite returns the hash-to-curve ciphersuite identifier.
func (g Group) Ciphersuite() string {
	return H2CDecaf448
}

// ScalarLength returns the byte size of an encoded scalar.
func (g Group) ScalarLength() int {
	return scalarLength
}

// ElementLength returns the byte size of an encoded element.
func (g Group) ElementLength() int {
	return elementLength
}

// Order returns the order of the canonical group of scalars.
func (g Group) Order() string {
	return groupOrder
}
