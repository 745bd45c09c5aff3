// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package d448

import "github.com/bytemare/decaf448/internal/field448"

// effD is |d-1|, the twisted curve constant used by the unified addition/subtraction
// formulas below; negD records that d-1 is negative for Ed448-Goldilocks, which flips
// which of the two addition/subtraction sub-branches applies.
const (
	effD = 39082
	negD = true
)

// pointAdd computes q+r using the unified, branch-free extended twisted Edwards formulas.
func pointAdd(q, r *point) *point {
	b0 := new(field448.Elt).Sub(q.y, q.x)
	c0 := new(field448.Elt).Sub(r.y, r.x)
	d0 := new(field448.Elt).Add(r.y, r.x)
	a0 := new(field448.Elt).Mul(c0, b0)
	b1 := new(field448.Elt).Add(q.y, q.x)
	yAcc := new(field448.Elt).Mul(d0, b1)
	bT := new(field448.Elt).Mul(r.t, q.t)
	xAcc := new(field448.Elt).MulSmall(bT, 2*effD)
	bSum := new(field448.Elt).Add(a0, yAcc)
	cDiff := new(field448.Elt).Sub(yAcc, a0)
	az := new(field448.Elt).Mul(q.z, r.z)
	az2 := new(field448.Elt).MulSmall(az, 2)

	var yFinal, aFinal *field448.Elt
	if negD {
		yFinal = new(field448.Elt).Add(az2, xAcc)
		aFinal = new(field448.Elt).Sub(az2, xAcc)
	} else {
		yFinal = new(field448.Elt).Sub(az2, xAcc)
		aFinal = new(field448.Elt).Add(az2, xAcc)
	}

	return &point{
		z: new(field448.Elt).Mul(aFinal, yFinal),
		x: new(field448.Elt).Mul(yFinal, cDiff),
		y: new(field448.Elt).Mul(aFinal, bSum),
		t: new(field448.Elt).Mul(bSum, cDiff),
	}
}

// pointSub computes q-r using the unified subtraction formulas (the mirror of pointAdd
// with r's role negated).
func pointSub(q, r *point) *point {
	b0 := new(field448.Elt).Sub(q.y, q.x)
	d0 := new(field448.Elt).Sub(r.y, r.x)
	c0 := new(field448.Elt).Add(r.y, r.x)
	a0 := new(field448.Elt).Mul(c0, b0)
	b1 := new(field448.Elt).Add(q.y, q.x)
	yAcc := new(field448.Elt).Mul(d0, b1)
	bT := new(field448.Elt).Mul(r.t, q.t)
	xAcc := new(field448.Elt).MulSmall(bT, 2*effD)
	bSum := new(field448.Elt).Add(a0, yAcc)
	cDiff := new(field448.Elt).Sub(yAcc, a0)
	az := new(field448.Elt).Mul(q.z, r.z)
	az2 := new(field448.Elt).MulSmall(az, 2)

	var yFinal, aFinal *field448.Elt
	if negD {
		yFinal = new(field448.Elt).Sub(az2, xAcc)
		aFinal = new(field448.Elt).Add(az2, xAcc)
	} else {
		yFinal = new(field448.Elt).Add(az2, xAcc)
		aFinal = new(field448.Elt).Sub(az2, xAcc)
	}

	return &point{
		z: new(field448.Elt).Mul(aFinal, yFinal),
		x: new(field448.Elt).Mul(yFinal, cDiff),
		y: new(field448.Elt).Mul(aFinal, bSum),
		t: new(field448.Elt).Mul(bSum, cDiff),
	}
}

// pointDoubleInternal doubles q. When beforeDouble is true, the output T coordinate is
// left at zero (unused): a correctness-preserving optimization for ladders where the
// next step is another doubling or a Niels addition that does not consume T.
func pointDoubleInternal(q *point, beforeDouble bool) *point {
	c0 := new(field448.Elt).Square(q.x)
	a0 := new(field448.Elt).Square(q.y)
	d0 := new(field448.Elt).Add(c0, a0)
	sum := new(field448.Elt).Add(q.y, q.x)
	b0 := new(field448.Elt).Square(sum)
	b0.Sub(b0, d0)
	tTmp := new(field448.Elt).Sub(a0, c0)
	zsq := new(field448.Elt).Square(q.z)
	zsq2 := new(field448.Elt).MulSmall(zsq, 2)
	aFinal := new(field448.Elt).Sub(zsq2, tTmp)

	out := &point{
		x: new(field448.Elt).Mul(aFinal, b0),
		z: new(field448.Elt).Mul(tTmp, aFinal),
		y: new(field448.Elt).Mul(tTmp, d0),
		t: field448.Zero(),
	}

	if !beforeDouble {
		out.t.Mul(b0, d0)
	}

	return out
}

// pointDouble doubles q, always computing T.
func pointDouble(q *point) *point {
	return pointDoubleInternal(q, false)
}

// pointNegate returns -p: (-X,Y,Z,-T).
func pointNegate(p *point) *point {
	return &point{
		x: new(field448.Elt).Neg(p.x),
		y: p.y.Copy(),
		z: p.z.Copy(),
		t: new(field448.Elt).Neg(p.t),
	}
}

// pointEqual checks coset equality modulo the 2-torsion subgroup: X_P*Y_Q == X_Q*Y_P.
func pointEqual(p, q *point) bool {
	a := new(field448.Elt).Mul(p.y, q.x)
	b := new(field448.Elt).Mul(q.y, p.x)

	return a.IsEqual(b)
}

// addNiels adds a Niels point n (implicit z=1) into p, with the option to elide T as in
// pointDoubleInternal.
func addNiels(p *point, n *niels, beforeDouble bool) *point {
	b1 := new(field448.Elt).Sub(p.y, p.x)
	a1 := new(field448.Elt).Mul(n.a, b1)
	b2 := new(field448.Elt).Add(p.x, p.y)
	yNew := new(field448.Elt).Mul(n.b, b2)
	xNew := new(field448.Elt).Mul(n.c, p.t)
	c1 := new(field448.Elt).Add(a1, yNew)
	b3 := new(field448.Elt).Sub(yNew, a1)
	yTmp := new(field448.Elt).Sub(p.z, xNew)
	aTmp := new(field448.Elt).Add(xNew, p.z)

	out := &point{
		z: new(field448.Elt).Mul(aTmp, yTmp),
		x: new(field448.Elt).Mul(yTmp, b3),
		y: new(field448.Elt).Mul(aTmp, c1),
		t: field448.Zero(),
	}

	if !beforeDouble {
		out.t.Mul(b3, c1)
	}

	return out
}

// addPNiels adds a projective-Niels point (Niels plus z) into p: p's z is first scaled
// by pn's z so the subsequent Niels addition operates in a consistent projective frame.
func addPNiels(p *point, pn *pNiels, beforeDouble bool) *point {
	scaled := p.copy()
	scaled.z.Mul(scaled.z, pn.z)

	return addNiels(scaled, pn.n, beforeDouble)
}
