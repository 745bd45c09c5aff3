// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package d448

import "github.com/bytemare/decaf448/internal/field448"

// point is a coset of Ed448-Goldilocks' 2-torsion, held in extended twisted Edwards
// coordinates (X:Y:Z:T) with X*Y = Z*T, on the twisted curve -x^2+y^2 = 1+d*x^2*y^2
// (a=-1, d=TWISTED_D=-39082).
type point struct {
	x, y, z, t *field448.Elt
}

// identity returns the canonical identity point (0:1:1:0).
func identity() *point {
	return &point{
		x: field448.Zero(),
		y: field448.One(),
		z: field448.One(),
		t: field448.Zero(),
	}
}

// basePoint returns the canonical Decaf448 generator in affine-derived extended coordinates.
func basePoint() *point {
	p := &point{
		x: baseX.Copy(),
		y: baseY.Copy(),
		z: field448.One(),
		t: new(field448.Elt).Mul(baseX, baseY),
	}

	return p
}

func (p *point) copy() *point {
	return &point{
		x: p.x.Copy(),
		y: p.y.Copy(),
		z: p.z.Copy(),
		t: p.t.Copy(),
	}
}

func (p *point) set(q *point) *point {
	p.x.Set(q.x)
	p.y.Set(q.y)
	p.z.Set(q.z)
	p.t.Set(q.t)

	return p
}

// isValid checks point_valid(P): X*Y = Z*T and Y^2 - X^2 = Z^2 + d*T^2 and Z != 0, with
// d = TWISTED_D.
func (p *point) isValid() bool {
	if p.z.IsZero() == 1 {
		return false
	}

	a := new(field448.Elt).Mul(p.x, p.y)
	b := new(field448.Elt).Mul(p.z, p.t)

	if !a.IsEqual(b) {
		return false
	}

	xx := new(field448.Elt).Square(p.x)
	yy := new(field448.Elt).Square(p.y)
	lhs := new(field448.Elt).Sub(yy, xx)

	zz := new(field448.Elt).Square(p.z)
	tt := new(field448.Elt).Square(p.t)
	dtt := new(field448.Elt).Mul(twistedD, tt)
	rhs := new(field448.Elt).Add(zz, dtt)

	return lhs.IsEqual(rhs)
}

// niels is the compact precomputed affine form (y-x, y+x, 2d*t) with implicit z=1.
type niels struct {
	a, b, c *field448.Elt
}

// toNiels normalizes an affine-z point (z=1, which precomputed tables always hold) into
// Niels form: (a,b,c) = (y-x, y+x, 2*TWISTED_D*t), matching pt_to_pniels's
// gf_mulw_sgn(c, t, 2*TWISTED_D).
func (p *point) toNiels() *niels {
	n := &niels{
		a: new(field448.Elt).Sub(p.y, p.x),
		b: new(field448.Elt).Add(p.y, p.x),
	}
	n.c = new(field448.Elt).MulSmall(p.t, 2)
	n.c.Mul(n.c, twistedD)

	return n
}

func (n *niels) copy() *niels {
	return &niels{a: n.a.Copy(), b: n.b.Copy(), c: n.c.Copy()}
}

// condNegate negates the Niels point in place (swap a/b, negate c) when cond == 1.
func (n *niels) condNegate(cond int) {
	na, nb := n.b.Copy(), n.a.Copy()
	n.a.Set(field448.CondSelect(cond, na, n.a))
	n.b.Set(field448.CondSelect(cond, nb, n.b))

	negC := new(field448.Elt).Neg(n.c)
	n.c.Set(field448.CondSelect(cond, negC, n.c))
}

// pNiels is a Niels point plus a z coordinate, used for non-affine precomputed tables
// (the odd-multiples table built at scalarmul time, before batch normalization).
type pNiels struct {
	n *niels
	z *field448.Elt
}

func (p *point) toPNiels() *pNiels {
	return &pNiels{n: p.toNiels(), z: p.z.Copy()}
}
