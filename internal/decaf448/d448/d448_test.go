// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package d448

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytemare/decaf448/internal/field448"
	"github.com/bytemare/decaf448/internal/scalar448"
)

func randomHashInput(t *testing.T) []byte {
	t.Helper()

	buf := make([]byte, field448.ByteLength)
	_, err := rand.Read(buf)
	require.NoError(t, err)

	// Clear the top byte so canonicalize/Deserialize never rejects the sample.
	buf[field448.ByteLength-1] = 0

	return buf
}

func randomPoint(t *testing.T) *point {
	t.Helper()

	p, err := fromHashNonUniform(randomHashInput(t))
	require.NoError(t, err)
	require.True(t, p.isValid())

	return p
}

func randomScalarBytes(t *testing.T) []byte {
	t.Helper()

	buf := make([]byte, scalarLength*2)
	_, err := rand.Read(buf)
	require.NoError(t, err)

	return scalar448.DecodeLong(buf).Encode()
}

func TestGroupAxioms(t *testing.T) {
	const trials = 50

	for i := 0; i < trials; i++ {
		p := randomPoint(t)
		q := randomPoint(t)
		r := randomPoint(t)

		require.True(t, pointEqual(pointAdd(p, q), pointAdd(q, p)))

		left := pointAdd(pointAdd(p, q), r)
		right := pointAdd(p, pointAdd(q, r))
		require.True(t, pointEqual(left, right))

		require.True(t, pointEqual(pointAdd(pointSub(p, q), q), p))

		require.True(t, pointEqual(pointDouble(p), pointAdd(p, p)))
	}
}

func TestIdentityIsNeutral(t *testing.T) {
	id := identity()

	for i := 0; i < 20; i++ {
		p := randomPoint(t)
		require.True(t, pointEqual(pointAdd(p, id), p))
	}
}

func TestCodecRoundTrip(t *testing.T) {
	const trials = 50

	id := identity()
	enc := Encode(id)
	require.Len(t, enc, field448.ByteLength)

	for _, b := range enc {
		require.Equal(t, byte(0), b)
	}

	dec, err := Decode(enc, true)
	require.NoError(t, err)
	require.True(t, pointEqual(dec, id))

	_, err = Decode(enc, false)
	require.Error(t, err)

	base := basePoint()
	baseDec, err := Decode(Encode(base), false)
	require.NoError(t, err)
	require.True(t, pointEqual(baseDec, base))

	for i := 0; i < trials; i++ {
		p := randomPoint(t)

		e1 := Encode(p)
		require.Len(t, e1, field448.ByteLength)

		dec, err := Decode(e1, false)
		require.NoError(t, err)
		require.True(t, pointEqual(dec, p))

		// Two coset-equal representations (p and p+p-p, forcing a different internal
		// projective factor) encode bit-identically.
		rescaled := pointAdd(pointSub(p, p), p)
		require.Equal(t, e1, Encode(rescaled))
	}
}

func TestScalarMulDistributesOverAddition(t *testing.T) {
	p := randomPoint(t)
	q := randomPoint(t)
	xBytes := randomScalarBytes(t)

	lhs := scalarMulEncoded(pointAdd(p, q), xBytes)
	rhs := pointAdd(scalarMulEncoded(p, xBytes), scalarMulEncoded(q, xBytes))

	require.True(t, pointEqual(lhs, rhs))
}

func TestScalarMulAssociates(t *testing.T) {
	p := randomPoint(t)
	xBytes := randomScalarBytes(t)
	yBytes := randomScalarBytes(t)

	x, err := scalar448.Decode(xBytes)
	require.NoError(t, err)

	y, err := scalar448.Decode(yBytes)
	require.NoError(t, err)

	xy := new(scalar448.Scalar).Mul(x, y)

	lhs := scalarMulEncoded(p, xy.Encode())
	rhs := scalarMulEncoded(scalarMulEncoded(p, xBytes), yBytes)

	require.True(t, pointEqual(lhs, rhs))
}

func TestDoubleScalarMulMatchesTwoMulsAndAdd(t *testing.T) {
	p := randomPoint(t)
	q := randomPoint(t)
	xBytes := randomScalarBytes(t)
	yBytes := randomScalarBytes(t)

	got := doubleScalarMulEncoded(p, xBytes, q, yBytes)
	want := pointAdd(scalarMulEncoded(p, xBytes), scalarMulEncoded(q, yBytes))

	require.True(t, pointEqual(got, want))
}

func TestElligatorHintInversionCoverage(t *testing.T) {
	const trials = 30

	for i := 0; i < trials; i++ {
		input := randomHashInput(t)

		p, err := fromHashNonUniform(input)
		require.NoError(t, err)

		foundSuccess := false

		for hint := uint8(0); hint < 8; hint++ {
			preimage, ok := invertElligatorNonUniform(p, hint)
			if !ok {
				continue
			}

			foundSuccess = true

			roundTripped, err := fromHashNonUniform(preimage)
			require.NoError(t, err)
			require.True(t, pointEqual(roundTripped, p))
		}

		require.True(t, foundSuccess, "expected at least one hint to invert")
	}
}

func TestRawCodecRoundTrip(t *testing.T) {
	const trials = 30

	base := basePoint()
	enc := rawEncode(base)
	require.Len(t, enc, RawEncodedLength)

	dec, err := rawDecode(enc)
	require.NoError(t, err)
	require.True(t, pointEqual(dec, base))

	for i := 0; i < trials; i++ {
		scalarBytes := randomScalarBytes(t)

		p := scalarMulEncoded(base, scalarBytes)

		e := rawEncode(p)
		require.Len(t, e, RawEncodedLength)

		d, err := rawDecode(e)
		require.NoError(t, err)
		require.True(t, pointEqual(d, p))
	}

	_, err = rawDecode(make([]byte, RawEncodedLength-1))
	require.Error(t, err)
}

func TestRawVerifyEquationAcceptsHonestSignature(t *testing.T) {
	const trials = 20

	for i := 0; i < trials; i++ {
		sBytes := randomScalarBytes(t)
		rBytes := randomScalarBytes(t)
		kBytes := randomScalarBytes(t)

		// S := r + k*s mod q, so that S*B == R + k*A with A = s*B, R = r*B.
		s, err := scalar448.Decode(sBytes)
		require.NoError(t, err)

		r, err := scalar448.Decode(rBytes)
		require.NoError(t, err)

		k, err := scalar448.Decode(kBytes)
		require.NoError(t, err)

		bigS := new(scalar448.Scalar).Mul(k, s)
		bigS.Add(bigS, r)

		aEnc := RawBaseScalarMul(sBytes)
		rEnc := RawBaseScalarMul(rBytes)

		ok, err := RawVerifyEquation(bigS.Encode(), rEnc, kBytes, aEnc)
		require.NoError(t, err)
		require.True(t, ok)

		// Tampering with S must make the equation fail.
		tampered := new(scalar448.Scalar).Add(bigS, scalar448.One())
		ok, err = RawVerifyEquation(tampered.Encode(), rEnc, kBytes, aEnc)
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestFromHashUniformIsSumOfNonUniform(t *testing.T) {
	a := randomHashInput(t)
	b := randomHashInput(t)

	combined := append(append([]byte{}, a...), b...)

	uniform, err := fromHashUniform(combined)
	require.NoError(t, err)

	p1, err := fromHashNonUniform(a)
	require.NoError(t, err)

	p2, err := fromHashNonUniform(b)
	require.NoError(t, err)

	require.True(t, pointEqual(uniform, pointAdd(p1, p2)))
}
