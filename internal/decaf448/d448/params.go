// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package d448 implements the Decaf448 prime-order group: the quotient of the
// cofactor-4 twisted Edwards curve Ed448-Goldilocks by its 2-torsion subgroup.
package d448

import (
	"math/big"

	"github.com/bytemare/hash"

	"github.com/bytemare/decaf448/internal/field448"
	"github.com/bytemare/decaf448/internal/scalar448"
)

const (
	// H2CDecaf448 represents the hash-to-curve string identifier for Decaf448.
	H2CDecaf448 = "decaf448_XOF:SHAKE256_D448MAP_RO_"

	// E2CDecaf448 represents the encode-to-curve string identifier for Decaf448.
	E2CDecaf448 = "decaf448_XOF:SHAKE256_D448MAP_NU_"

	hashing = hash.SHAKE256

	// secLength is the target security length (bytes) for hash-to-field expansion.
	secLength = 84

	scalarLength  = scalar448.ByteLength
	elementLength = field448.ByteLength

	// cofactor of Ed448-Goldilocks; the curve's 2-torsion subgroup quotiented by Decaf.
	cofactor = 4

	// windowBits is the window width W used by the constant-time variable-base scalar
	// multiplication (point_scalarmul).
	windowBits = 5

	// wnafBits is the window width B used by the variable-time double-scalarmul path.
	wnafBits = 5
)

// edwardsD is the Edwards curve parameter d = -39081 reduced mod p.
var edwardsD = field448.FromInt64(-39081)

// twistedD is EDWARDS_D - 1 = -39082, the d of the twisted curve -x^2+y^2 = 1+d*x^2*y^2
// on which points are held. pt_to_pniels builds the Niels c coefficient (2*TWISTED_D*t)
// from it, isValid checks the curve equation with it, and the unified point_add/point_sub
// formulas in arithmetic.go use its magnitude (effD = 39082).
var twistedD = field448.FromInt64(-39082)

// negEdwardsD and oneMinusD are the -EDWARDS_D and 1-EDWARDS_D constants used by
// deisogenize in codec.go.
var (
	negEdwardsD = field448.FromInt64(39081)
	oneMinusD   = field448.FromInt64(39082)
)

// oneMinus2D is 1 - 2*d, used by both the Elligator map and its inversion.
var oneMinus2D = field448.FromInt64(78163)

// groupOrder is the prime order q of the Decaf448 group (also Ed448's L).
var groupOrder = scalar448.Q.String()

// baseX, baseY are the affine coordinates of the canonical Decaf448 base point.
var (
	baseX = mustFieldHex("800000000000000000000000000000000000000000000000000000007fffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	baseY = mustFieldHex("7af721eb0fbd792b72f93ecf8735dbf7fad9bc8fafb38b3c6c2adbd2afbad8ebebe7e7bb28c0b71ae664f3e1c54b8f5e379f864b2022b59b")
)

func mustFieldHex(h string) *field448.Elt {
	i, ok := new(big.Int).SetString(h, 16)
	if !ok {
		panic("d448: invalid hex constant " + h)
	}

	return field448.FromBigInt(i)
}
