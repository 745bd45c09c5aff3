// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package field448 implements arithmetic in the base field of Ed448-Goldilocks,
// F_p with p = 2^448 - 2^224 - 1.
package field448

import (
	"crypto/subtle"
	"errors"
	"math/big"
)

// ByteLength is the canonical little-endian encoded size of a field element.
const ByteLength = 56

// ErrInvalidEncoding is returned by Deserialize when the input encodes a value >= p.
var ErrInvalidEncoding = errors.New("field448: value is not canonically reduced")

// P is the field modulus 2^448 - 2^224 - 1.
var P = mustInt("726838724295606890549323807888004534353641360687318060281490199180612328166730772686396383698676545930088884461843637361053498018365439", 10)

// pMinus3Div4 = (p-3)/4, the exponent used by the isqrt addition chain.
var pMinus3Div4 = mustInt("181709681073901722637330951972001133588410340171829515070372549795153082041682693171599095924669136482522221115460909340263374504591359", 10)

func mustInt(s string, base int) *big.Int {
	i, ok := new(big.Int).SetString(s, base)
	if !ok {
		panic("field448: invalid constant " + s)
	}

	return i
}

// Elt is an element of F_p, held canonically reduced to [0, p).
//
// Arithmetic is implemented on top of math/big for correctness; control flow
// never branches on the *value* of an Elt (conditional operations go through
// CondSwap/CondSelect/CondNegate, which always touch both operands), but the
// underlying big.Int operations are not guaranteed to run in time independent
// of operand magnitude the way a fixed-limb-count implementation would be.
// See DESIGN.md for the rationale of this tradeoff.
type Elt struct {
	v big.Int
}

// Zero returns the additive identity.
func Zero() *Elt {
	return new(Elt)
}

// One returns the multiplicative identity.
func One() *Elt {
	e := new(Elt)
	e.v.SetInt64(1)

	return e
}

// FromInt64 builds a field element from a small signed integer.
func FromInt64(w int64) *Elt {
	e := new(Elt)
	e.v.Mod(big.NewInt(w), P)

	return e
}

// FromBigInt reduces an arbitrary big.Int into the field.
func FromBigInt(i *big.Int) *Elt {
	e := new(Elt)
	e.v.Mod(i, P)

	return e
}

// Copy returns a copy of e.
func (e *Elt) Copy() *Elt {
	n := new(Elt)
	n.v.Set(&e.v)

	return n
}

// Set sets e to a, and returns e.
func (e *Elt) Set(a *Elt) *Elt {
	e.v.Set(&a.v)
	return e
}

// Add sets e = a + b mod p, and returns e.
func (e *Elt) Add(a, b *Elt) *Elt {
	e.v.Add(&a.v, &b.v)
	e.v.Mod(&e.v, P)

	return e
}

// Sub sets e = a - b mod p, and returns e.
func (e *Elt) Sub(a, b *Elt) *Elt {
	e.v.Sub(&a.v, &b.v)
	e.v.Mod(&e.v, P)

	return e
}

// Mul sets e = a * b mod p, and returns e.
func (e *Elt) Mul(a, b *Elt) *Elt {
	e.v.Mul(&a.v, &b.v)
	e.v.Mod(&e.v, P)

	return e
}

// Square sets e = a * a mod p, and returns e.
func (e *Elt) Square(a *Elt) *Elt {
	return e.Mul(a, a)
}

// MulSmall sets e = a * w mod p for a small signed integer w, and returns e.
func (e *Elt) MulSmall(a *Elt, w int64) *Elt {
	e.v.Mul(&a.v, big.NewInt(w))
	e.v.Mod(&e.v, P)

	return e
}

// Neg sets e = -a mod p, and returns e.
func (e *Elt) Neg(a *Elt) *Elt {
	e.v.Neg(&a.v)
	e.v.Mod(&e.v, P)

	return e
}

// IsZero returns 1 if e == 0, and 0 otherwise, via subtle.ConstantTimeEq rather than a
// branch, so callers composing it into further conditions never need to test it with
// an "if" to use the result.
func (e *Elt) IsZero() int {
	return subtle.ConstantTimeEq(int32(e.v.Sign()), 0)
}

// IsEqual reports whether e == a.
func (e *Elt) IsEqual(a *Elt) bool {
	return subtle.ConstantTimeCompare(e.Serialize(), a.Serialize()) == 1
}

// LowBit returns the least significant bit of the canonical representative.
func (e *Elt) LowBit() int {
	return int(e.v.Bit(0))
}

// IsNegative returns the "sign" of the element, defined as the low bit of 2*e mod p
// (hibit(x) = low_bit(2x mod p), per the Decaf codec convention), as 0 or 1.
func (e *Elt) IsNegative() int {
	var twice big.Int
	twice.Lsh(&e.v, 1)
	twice.Mod(&twice, P)

	return int(twice.Bit(0))
}

// CondSwap swaps the values of a and b when cond == 1, and leaves them unchanged when
// cond == 0 (cond must be exactly 0 or 1); both operands are read and written in either
// case, via a bitwise blend rather than a branch on cond.
func CondSwap(cond int, a, b *Elt) {
	m := mask8(cond)
	sa, sb := a.Serialize(), b.Serialize()

	for i := range sa {
		t := m & (sa[i] ^ sb[i])
		sa[i] ^= t
		sb[i] ^= t
	}

	a.v.SetBytes(reverseBytes(sa))
	b.v.SetBytes(reverseBytes(sb))
}

// CondNegate negates e in place when cond == 1, and leaves it unchanged when cond == 0.
func (e *Elt) CondNegate(cond int) *Elt {
	neg := new(Elt).Neg(e)
	e.Set(condSelect(cond, neg, e))

	return e
}

// CondSelect returns a when cond == 1, and b when cond == 0 (cond must be exactly 0 or
// 1). Both arguments are always read in full and the choice is made by a bitwise blend,
// never by branching on cond.
func CondSelect(cond int, a, b *Elt) *Elt {
	return condSelect(cond, a, b)
}

// condSelect blends the fixed-width canonical encodings of a and b with a mask derived
// from cond, following the same convention as crypto/internal/edwards25519/field's
// Element.Select/mask64Bits: cond is turned into an all-ones or all-zeros mask by pure
// arithmetic (never a conditional jump on cond), and every output byte is built from
// both inputs through that mask.
func condSelect(cond int, a, b *Elt) *Elt {
	m := mask8(cond)
	sa, sb := a.Serialize(), b.Serialize()
	out := make([]byte, ByteLength)

	for i := range out {
		out[i] = (sa[i] & m) | (sb[i] &^ m)
	}

	e := new(Elt)
	e.v.SetBytes(reverseBytes(out))

	return e
}

// mask8 returns 0xff when cond == 1, and 0x00 when cond == 0, by arithmetic on the
// integer value of cond rather than by testing it.
func mask8(cond int) byte {
	return byte(^(uint64(cond) - 1))
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}

	return out
}

// Serialize returns the canonical little-endian encoding of e, fixed at ByteLength bytes.
func (e *Elt) Serialize() []byte {
	reduced := new(big.Int).Mod(&e.v, P)
	be := reduced.Bytes()

	out := make([]byte, ByteLength)
	copy(out[ByteLength-len(be):], be)

	return reverseBytes(out)
}

// Deserialize decodes a little-endian field element, rejecting values >= p.
func Deserialize(data []byte) (*Elt, error) {
	if len(data) != ByteLength {
		return nil, ErrInvalidEncoding
	}

	be := reverseBytes(data)

	v := new(big.Int).SetBytes(be)
	if v.Cmp(P) >= 0 {
		return nil, ErrInvalidEncoding
	}

	e := new(Elt)
	e.v.Set(v)

	return e, nil
}

// Invert sets e = 1/a mod p (0 if a == 0), and returns e.
//
// There is no explicit zero check: big.Int's Exp computes 0^(p-2) mod p = 0 by the same
// fixed exponentiation it runs for any other base, so the zero case costs exactly as much
// as every other input instead of being special-cased and returned early.
func (e *Elt) Invert(a *Elt) *Elt {
	pMinus2 := new(big.Int).Sub(P, big.NewInt(2))
	e.v.Exp(&a.v, pMinus2, P)

	return e
}

// IsqrtChk computes y such that y^2 * x = +-1 mod p, and reports (as 0 or 1) whether the
// sign was +1 (i.e. whether x is a quadratic residue). If x == 0 and allowZero == 1, it
// returns (0, 1); if allowZero == 0 and x == 0, it returns (0, 0). allowZero must be
// exactly 0 or 1; the result composes directly into further branchless conditions
// without ever needing to be tested by an "if".
//
// Since p = 2^448 - 2^224 - 1 is 3 mod 4, the addition chain is the direct exponentiation
// x^((p-3)/4): (x^((p-3)/4))^2 * x = x^((p-1)/2), which is the Legendre symbol of x by
// Euler's criterion. The exponentiation always runs, even when x == 0 (see Invert above),
// and the (zero, residue) cases are combined with subtle.ConstantTimeSelect rather than
// an early return, so neither case skips work the other performs.
func IsqrtChk(x *Elt, allowZero int) (*Elt, int) {
	y := new(Elt)
	y.v.Exp(&x.v, pMinus3Div4, P)

	check := new(Elt).Square(y)
	check.Mul(check, x)

	isResidue := subtle.ConstantTimeEq(int32(check.v.Cmp(big.NewInt(1))), 0)
	isZero := subtle.ConstantTimeEq(int32(x.v.Sign()), 0)

	ok := subtle.ConstantTimeSelect(isZero, allowZero, isResidue)

	return y, ok
}
