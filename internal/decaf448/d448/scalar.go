// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package d448

import (
	"encoding/base64"
	"fmt"
	"math/big"

	"github.com/bytemare/decaf448/internal"
	"github.com/bytemare/decaf448/internal/scalar448"
)

// Scalar implements the Scalar interface for Decaf448 group scalars.
type Scalar struct {
	v scalar448.Scalar
}

func assertScalar(scalar internal.Scalar) *Scalar {
	sc, ok := scalar.(*Scalar)
	if !ok {
		panic(internal.ErrCastScalar)
	}

	return sc
}

// Zero sets the scalar to 0, and returns it.
func (s *Scalar) Zero() internal.Scalar {
	s.v = *scalar448.Zero()
	return s
}

// One sets the scalar to 1, and returns it.
func (s *Scalar) One() internal.Scalar {
	s.v = *scalar448.One()
	return s
}

// Random sets the current scalar to a new random scalar and returns it. The random
// source is crypto/rand, and this function is guaranteed to return a non-zero scalar.
func (s *Scalar) Random() internal.Scalar {
	for {
		random := internal.RandomBytes(scalarLength)
		s.v = *scalar448.DecodeLong(random)

		if !s.IsZero() {
			return s
		}
	}
}

// Add sets the receiver to the sum of the input and the receiver, and returns the receiver.
func (s *Scalar) Add(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s
	}

	sc := assertScalar(scalar)
	s.v.Add(&s.v, &sc.v)

	return s
}

// Subtract subtracts the input from the receiver, and returns the receiver.
func (s *Scalar) Subtract(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s
	}

	sc := assertScalar(scalar)
	s.v.Sub(&s.v, &sc.v)

	return s
}

// Multiply multiplies the receiver with the input, and returns the receiver.
func (s *Scalar) Multiply(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s.Zero()
	}

	sc := assertScalar(scalar)
	s.v.Mul(&s.v, &sc.v)

	return s
}

// Pow sets s to s**scalar modulo the group order, and returns s. If scalar is nil, it
// returns 1.
func (s *Scalar) Pow(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s.One()
	}

	sc := assertScalar(scalar)
	s.v.Pow(&s.v, &sc.v)

	return s
}

// Invert sets the receiver to the scalar's modular inverse ( 1 / scalar ), and returns it.
func (s *Scalar) Invert() internal.Scalar {
	s.v.Invert(&s.v)
	return s
}

// Equal returns 1 if the scalars are equal, and 0 otherwise.
func (s *Scalar) Equal(scalar internal.Scalar) int {
	if scalar == nil {
		return 0
	}

	sc := assertScalar(scalar)

	if s.v.IsEqual(&sc.v) {
		return 1
	}

	return 0
}

// LessOrEqual returns 1 if s <= scalar, and 0 otherwise.
func (s *Scalar) LessOrEqual(scalar internal.Scalar) int {
	sc := assertScalar(scalar)

	if s.v.LessOrEqual(&sc.v) {
		return 1
	}

	return 0
}

// IsZero returns whether the scalar is 0.
func (s *Scalar) IsZero() bool {
	return s.v.IsZero()
}

func (s *Scalar) set(scalar *Scalar) *Scalar {
	*s = *scalar
	return s
}

// Set sets the receiver to the value of the argument scalar, and returns the receiver.
func (s *Scalar) Set(scalar internal.Scalar) internal.Scalar {
	if scalar == nil {
		return s.set(nil)
	}

	sc := assertScalar(scalar)

	return s.set(sc)
}

// SetInt sets s to i modulo the group order, and returns an error if one occurs.
func (s *Scalar) SetInt(i *big.Int) error {
	s.v.SetInt(i)
	return nil
}

// Copy returns a copy of the receiver.
func (s *Scalar) Copy() internal.Scalar {
	return &Scalar{v: *s.v.Copy()}
}

// Encode returns the compressed byte encoding of the scalar.
func (s *Scalar) Encode() []byte {
	return s.v.Encode()
}

// Decode sets the receiver to a decoding of the input data, and returns an error on failure.
func (s *Scalar) Decode(data []byte) error {
	if len(data) == 0 {
		return internal.ErrParamNilScalar
	}

	if len(data) != scalarLength {
		return internal.ErrParamScalarLength
	}

	dec, err := scalar448.Decode(data)
	if err != nil {
		return fmt.Errorf("d448 scalar Decode: %w", err)
	}

	s.v = *dec

	return nil
}

// MarshalBinary returns the compressed byte encoding of the scalar.
func (s *Scalar) MarshalBinary() ([]byte, error) {
	return s.Encode(), nil
}

// UnmarshalBinary sets s to the decoding of the byte encoded scalar.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	return s.Decode(data)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (s *Scalar) MarshalText() ([]byte, error) {
	return []byte(base64.StdEncoding.EncodeToString(s.Encode())), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (s *Scalar) UnmarshalText(text []byte) error {
	sb, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("d448 scalar UnmarshalText: %w", err)
	}

	return s.Decode(sb)
}
