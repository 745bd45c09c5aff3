// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package d448

import "github.com/bytemare/decaf448/internal/field448"

// EncodedLength is the canonical encoded size of a Decaf448 element.
const EncodedLength = field448.ByteLength

// deisogenize maps a curve point to its canonical Decaf coset representative s, and
// the companion value -t/s, per decaf_fast.c's deisogenize (COFACTOR==4, non-imaginary
// twist branch: a=-1, TWISTED_D=EDWARDS_D-1). toggleHibitS and toggleHibitTOverS flip
// the canonical sign choices, used by the Elligator inversion hint recovery.
func deisogenize(p *point, toggleHibitS, toggleHibitTOverS bool) (s, minusTOverS *field448.Elt) {
	a := new(field448.Elt).Mul(p.y, oneMinusD)
	c := new(field448.Elt).Mul(a, p.t)
	a.Mul(p.x, p.z)
	d := new(field448.Elt).Sub(c, a)
	a.Add(p.z, p.y)
	b := new(field448.Elt).Sub(p.z, p.y)
	c.Mul(b, a)
	b.Mul(c, negEdwardsD)

	r, _ := field448.IsqrtChk(b, 1)
	a.Set(r)
	b.Mul(a, negEdwardsD)
	c.Mul(b, a)
	a.Mul(c, d)
	d.Add(b, b)
	c.Mul(d, p.z)

	toggle := xorCond(boolToCond(toggleHibitTOverS), notCond(c.IsNegative()))
	b.CondNegate(toggle)
	c.CondNegate(toggle)
	d.Mul(b, p.y)
	a.Add(a, d)

	a.CondNegate(xorCond(boolToCond(toggleHibitS), a.IsNegative()))

	return a, c
}

// Encode returns the canonical Decaf448 encoding of p.
func Encode(p *point) []byte {
	s, _ := deisogenize(p, false, false)
	return s.Serialize()
}

// Decode decodes a canonical Decaf448 encoding into a point, following point_decode:
// rejects non-canonical field encodings, negative-sign s, and s encoding the identity
// when allowIdentity is false.
func Decode(data []byte, allowIdentity bool) (*point, error) {
	s, err := field448.Deserialize(data)
	if err != nil {
		return nil, ErrInvalidEncoding
	}

	zero := s.IsZero() == 1
	if zero && !allowIdentity {
		return nil, ErrInvalidEncoding
	}

	if s.IsNegative() == 1 {
		return nil, ErrInvalidEncoding
	}

	a := new(field448.Elt).Square(s)

	f := new(field448.Elt).Add(field448.One(), a) // f = 1 + s^2 (a = -1 branch)
	if f.IsZero() == 1 {
		return nil, ErrInvalidEncoding
	}

	b := new(field448.Elt).Square(f)
	c := new(field448.Elt).MulSmall(a, 156324) // -4*EDWARDS_D, EDWARDS_D = -39081
	c.Add(c, b)                                // t^2

	d := new(field448.Elt).Mul(f, s) // s(1-as^2), a=-1
	e := new(field448.Elt).Square(d)
	b.Mul(c, e)

	einv, ok := field448.IsqrtChk(b, 1)
	if ok != 1 {
		return nil, ErrInvalidEncoding
	}

	e.Set(einv)
	b.Mul(e, d) // 1/t
	d.Mul(e, c) // t / (s(1-as^2))
	e.Mul(d, f) // t/s

	negTOverS := e.IsNegative()
	b.CondNegate(negTOverS)
	d.CondNegate(negTOverS)

	p := &point{}
	p.z = new(field448.Elt).Sub(field448.One(), a) // Z = 1 - a = 1 - s^2

	yAux := new(field448.Elt).Mul(f, b) // y = (1-as^2)/t
	p.y = new(field448.Elt).Mul(p.z, yAux)
	p.x = new(field448.Elt).Add(s, s)
	p.t = new(field448.Elt).Mul(p.x, yAux)

	// For s = 0 the formulas above give Y = 0; adding the zero flag to Y turns the
	// all-zero encoding into the identity (0:1:1:0).
	p.y.Add(p.y, field448.FromInt64(int64(s.IsZero())))

	if !p.isValid() {
		return nil, ErrInvalidEncoding
	}

	return p, nil
}
