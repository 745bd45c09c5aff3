// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package d448

import "github.com/bytemare/decaf448/internal/field448"

// fromHashNonUniform maps a single field-element-sized hash block onto the curve via the
// Elligator 2 variant used by Decaf, following point_from_hash_nonuniform. Ed448-Goldilocks
// has p = 3 mod 4 (not 5 mod 8), so r is taken as -a rather than as a multiple of sqrt(-1).
func fromHashNonUniform(data []byte) (*point, error) {
	r0, err := field448.Deserialize(canonicalize(data))
	if err != nil {
		return nil, err
	}

	a := new(field448.Elt).Square(r0)
	r := new(field448.Elt).Neg(a)

	c := new(field448.Elt).Mul(r, edwardsD)

	// D := (dr+1-d)(dr-r-d), with the curve's a=-1 folded in as +1.
	numA := new(field448.Elt).Sub(c, edwardsD)
	numA.Add(numA, field448.One())
	specialIdentity := numA.IsZero()

	numB := new(field448.Elt).Sub(c, r)
	numB.Sub(numB, edwardsD)
	dVal := new(field448.Elt).Mul(numA, numB)

	rPlus1 := new(field448.Elt).Add(r, field448.One())
	nVal := new(field448.Elt).Mul(rPlus1, oneMinus2D)

	rN := new(field448.Elt).Mul(r, nVal)
	rND := new(field448.Elt).Mul(rN, dVal)

	e, isResidue := field448.IsqrtChk(rND, 0)
	square := orCond(orCond(isResidue, r.IsZero()), specialIdentity)
	notSquare := notCond(square)

	rOrR0 := field448.CondSelect(square, r, r0)

	step1 := new(field448.Elt).Mul(rOrR0, oneMinus2D)
	step2 := new(field448.Elt).Mul(step1, oneMinus2D) // r? * (1-2d)^2
	rMinus1 := new(field448.Elt).Sub(r, field448.One())
	tNum := new(field448.Elt).Mul(step2, rMinus1) // r? * (r-1) * (1-2d)^2
	tVal := new(field448.Elt).Mul(tNum, e)
	tVal.CondNegate(notSquare)

	oneOrR0 := field448.CondSelect(square, field448.One(), r0)
	invSHelper := new(field448.Elt).Mul(e, oneOrR0)
	invS := new(field448.Elt).Mul(invSHelper, dVal) // 1/s up to sign
	tVal.Sub(tVal, invS)

	rNFromR0 := new(field448.Elt).Mul(nVal, r0)
	rNFinal := field448.CondSelect(square, rN, rNFromR0)

	sHelper := new(field448.Elt).Mul(rNFinal, e)
	sVal := new(field448.Elt).Mul(sHelper, tVal)

	negS := xorCond(sHelper.IsNegative(), notSquare)
	sHelper.CondNegate(negS)
	s := sHelper

	tVal.Set(field448.CondSelect(sVal.IsZero(), field448.One(), sVal))

	p := &point{}
	s2 := new(field448.Elt).Square(s)
	twoS := new(field448.Elt).Add(s, s)
	onePlusS2 := new(field448.Elt).Add(s2, field448.One())
	oneMinusS2 := new(field448.Elt).Sub(field448.One(), s2)

	p.t = new(field448.Elt).Mul(twoS, onePlusS2)
	p.x = new(field448.Elt).Mul(twoS, tVal)
	p.y = new(field448.Elt).Mul(onePlusS2, oneMinusS2)
	p.z = new(field448.Elt).Mul(oneMinusS2, tVal)

	return p, nil
}

// fromHashUniform maps a double-length hash (two field-element-sized blocks) onto the
// curve by combining two non-uniform Elligator maps with a point addition, per
// point_from_hash_uniform.
func fromHashUniform(data []byte) (*point, error) {
	if len(data) != 2*field448.ByteLength {
		return nil, ErrInvalidEncoding
	}

	p1, err := fromHashNonUniform(data[:field448.ByteLength])
	if err != nil {
		return nil, err
	}

	p2, err := fromHashNonUniform(data[field448.ByteLength:])
	if err != nil {
		return nil, err
	}

	return pointAdd(p1, p2), nil
}

// invertElligatorNonUniform attempts to recover a preimage of p under fromHashNonUniform
// for the given hint (bit 0: sgn_s, bit 1: sgn_t_over_s, bit 2: sgn_r0), following
// invert_elligator_nonuniform. Bit 3 is not read, so hints h and h|8 give the same
// result. It reports false when no preimage exists for this hint.
func invertElligatorNonUniform(p *point, hint uint8) ([]byte, bool) {
	sgnS := hint&1 != 0
	sgnTOverS := hint&2 != 0
	sgnR0 := hint&4 != 0

	s, minusTOverS := deisogenize(p, sgnS, sgnTOverS)

	tPlus1 := new(field448.Elt).Mul(minusTOverS, s)
	tPlus1.Sub(field448.One(), tPlus1)
	s2 := new(field448.Elt).Square(s)

	isIdentity := p.t.IsZero() == 1
	if isIdentity && sgnTOverS {
		s2.Set(field448.One())
	}

	if isIdentity && !sgnTOverS && !sgnS {
		tPlus1.Set(field448.Zero())
	}

	twoDMinus1 := new(field448.Elt).Neg(oneMinus2D)
	dVal := new(field448.Elt).Mul(s2, twoDMinus1) // (2d-1)*s^2, curve's a=-1 folded in

	numer := new(field448.Elt).Add(tPlus1, dVal)
	denom := new(field448.Elt).Sub(dVal, tPlus1)
	prod := new(field448.Elt).Mul(numer, denom)

	if !sgnS {
		numer.Set(denom)
	}

	negProd := new(field448.Elt).Neg(prod)

	root, ok := field448.IsqrtChk(negProd, 1)
	if ok != 1 {
		return nil, false
	}

	r0 := new(field448.Elt).Mul(numer, root)
	r0.CondNegate(boolToCond(sgnR0) ^ r0.IsNegative())

	if r0.IsZero() == 1 && sgnR0 {
		return nil, false
	}

	return r0.Serialize(), true
}

// boolToCond converts a public bool hint bit into the 0/1 int convention used by the
// Cond* primitives.
func boolToCond(b bool) int {
	if b {
		return 1
	}

	return 0
}

// canonicalize left-pads data to the field element width expected by field448.Deserialize,
// matching gf_deser's implicit SER_BYTES framing.
func canonicalize(data []byte) []byte {
	if len(data) == field448.ByteLength {
		return data
	}

	out := make([]byte, field448.ByteLength)
	copy(out, data)

	return out
}
