// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package d448

import "github.com/bytemare/decaf448/internal/field448"

// RawEncodedLength is the length of a raw (non-Decaf) Ed448 point encoding: one byte
// beyond the field width, since p = 2^448-2^224-1 fills all 56 y-coordinate bytes and
// leaves no spare high bit to carry the sign of x (unlike Ed25519's 255-bit field inside
// 32 bytes). This is the point encoding width RFC 8032 section 5.2.2 specifies for Ed448.
const RawEncodedLength = field448.ByteLength + 1

// rawAffine returns the affine (x, y) coordinates of p.
func rawAffine(p *point) (x, y *field448.Elt) {
	zInv := new(field448.Elt).Invert(p.z)
	x = new(field448.Elt).Mul(p.x, zInv)
	y = new(field448.Elt).Mul(p.y, zInv)

	return x, y
}

// rawEncode encodes p on the raw curve x^2+y^2 = 1+d*x^2*y^2 (a=1): y little-endian over
// the first 56 bytes, followed by one byte holding the low bit of the canonical x in bit
// 7 (the most significant bit) and zero elsewhere, per RFC 8032 section 5.2.2's Ed448
// point encoding.
func rawEncode(p *point) []byte {
	x, y := rawAffine(p)

	out := make([]byte, RawEncodedLength)
	copy(out, y.Serialize())
	out[field448.ByteLength] = byte(x.LowBit()) << 7

	return out
}

// rawDecode recovers a point from its raw Ed448 encoding, solving the curve equation for
// x (x^2 = (1-y^2)/(1-d*y^2)) and selecting the root matching the encoded sign bit, the
// same derivation codec.go's Decode runs for the Decaf-encoded s value.
func rawDecode(data []byte) (*point, error) {
	if len(data) != RawEncodedLength {
		return nil, ErrInvalidEncoding
	}

	signByte := data[field448.ByteLength]
	if signByte&0x7F != 0 {
		return nil, ErrInvalidEncoding
	}

	y, err := field448.Deserialize(data[:field448.ByteLength])
	if err != nil {
		return nil, ErrInvalidEncoding
	}

	y2 := new(field448.Elt).Square(y)
	num := new(field448.Elt).Sub(field448.One(), y2)

	den := new(field448.Elt).Mul(edwardsD, y2)
	den.Sub(field448.One(), den)

	if den.IsZero() == 1 {
		return nil, ErrInvalidEncoding
	}

	x2 := new(field448.Elt).Mul(num, new(field448.Elt).Invert(den))

	root, ok := field448.IsqrtChk(x2, 1)
	if ok != 1 {
		return nil, ErrInvalidEncoding
	}

	x := new(field448.Elt).Mul(x2, root)

	wantSign := int(signByte >> 7)
	if x.IsZero() == 1 {
		if wantSign != 0 {
			return nil, ErrInvalidEncoding
		}
	} else if x.LowBit() != wantSign {
		x.Neg(x)
	}

	p := &point{
		x: x,
		y: y,
		z: field448.One(),
		t: new(field448.Elt).Mul(x, y),
	}

	if !p.isValid() {
		return nil, ErrInvalidEncoding
	}

	return p, nil
}

// RawValidateEncoding reports whether data is a well-formed raw Ed448 point encoding,
// without exposing the decoded point (which callers outside this package have no type
// to hold).
func RawValidateEncoding(data []byte) error {
	_, err := rawDecode(data)
	return err
}

// RawBaseScalarMul returns the raw encoding of scalarLE*B, where B is this package's
// canonical base point. Decaf448's generator already must generate the curve's
// order-q subgroup for the Decaf448 group's own scalar arithmetic to be well defined, so
// it is reused directly as the raw construction's generator rather than introducing a
// second one.
func RawBaseScalarMul(scalarLE []byte) []byte {
	return rawEncode(scalarMulEncoded(basePoint(), scalarLE))
}

// RawVerifyEquation reports whether sEnc*B == rEnc + kEnc*aEnc on the raw curve, with
// both sides scaled by the curve's cofactor (here, two doublings), following RFC 8032's
// cofactored verification equation that tolerates a small-order component in R or A.
func RawVerifyEquation(sEnc, rEnc, kEnc, aEnc []byte) (bool, error) {
	r, err := rawDecode(rEnc)
	if err != nil {
		return false, err
	}

	a, err := rawDecode(aEnc)
	if err != nil {
		return false, err
	}

	sb := scalarMulEncoded(basePoint(), sEnc)
	ka := scalarMulEncoded(a, kEnc)
	rhs := pointAdd(r, ka)

	scaleByCofactor := func(p *point) *point {
		for i := 0; i < 2; i++ {
			p = pointDouble(p)
		}

		return p
	}

	return pointEqual(scaleByCofactor(sb), scaleByCofactor(rhs)), nil
}
