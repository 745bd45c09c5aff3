// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package d448

import (
	"fmt"

	"github.com/bytemare/decaf448/internal"
)

// Element implements the Element interface for the Decaf448 group element.
type Element struct {
	p *point
}

func checkElement(element internal.Element) *Element {
	if element == nil {
		panic(internal.ErrParamNilPoint)
	}

	ec, ok := element.(*Element)
	if !ok {
		panic(internal.ErrCastElement)
	}

	return ec
}

// Base sets the element to the group's base point a.k.a. canonical generator.
func (e *Element) Base() internal.Element {
	e.p = basePoint()
	return e
}

// Identity sets the element to the point at infinity of the Group's underlying curve.
func (e *Element) Identity() internal.Element {
	e.p = identity()
	return e
}

// Add sets the receiver to the sum of the input and the receiver, and returns the receiver.
func (e *Element) Add(element internal.Element) internal.Element {
	ec := checkElement(element)
	e.p = pointAdd(e.p, ec.p)

	return e
}

// Double sets the receiver to its double, and returns it.
func (e *Element) Double() internal.Element {
	e.p = pointDouble(e.p)
	return e
}

// Negate sets the receiver to its negation, and returns it.
func (e *Element) Negate() internal.Element {
	e.p = pointNegate(e.p)
	return e
}

// Subtract subtracts the input from the receiver, and returns the receiver.
func (e *Element) Subtract(element internal.Element) internal.Element {
	ec := checkElement(element)
	e.p = pointSub(e.p, ec.p)

	return e
}

// Multiply sets the receiver to the scalar multiplication of the receiver with the
// given Scalar, and returns it.
func (e *Element) Multiply(scalar internal.Scalar) internal.Element {
	if scalar == nil {
		e.p = identity()
		return e
	}

	sc := assertScalar(scalar)
	e.p = scalarMulEncoded(e.p, sc.v.Encode())

	return e
}

// Equal returns 1 if the elements are equivalent, and 0 otherwise.
func (e *Element) Equal(element internal.Element) int {
	ec := checkElement(element)

	if pointEqual(e.p, ec.p) {
		return 1
	}

	return 0
}

// IsIdentity returns whether the Element is the point at infinity of the Group's
// underlying curve.
func (e *Element) IsIdentity() bool {
	return pointEqual(e.p, identity())
}

func (e *Element) set(element *Element) *Element {
	*e = *element
	return e
}

// Set sets the receiver to the value of the argument, and returns the receiver.
func (e *Element) Set(element internal.Element) internal.Element {
	if element == nil {
		return e.set(nil)
	}

	ec, ok := element.(*Element)
	if !ok {
		panic(internal.ErrCastElement)
	}

	return e.set(ec)
}

// Copy returns a copy of the receiver.
func (e *Element) Copy() internal.Element {
	return &Element{p: e.p.copy()}
}

// Encode returns the compressed byte encoding of the element.
func (e *Element) Encode() []byte {
	return Encode(e.p)
}

// XCoordinate returns the encoded x coordinate of the element, which is the same as
// Encode() for a Decaf element (there is no separate affine x-only encoding).
func (e *Element) XCoordinate() []byte {
	return e.Encode()
}

// Decode sets the receiver to a decoding of the input data, and returns an error on failure.
func (e *Element) Decode(data []byte) error {
	if len(data) == 0 {
		return internal.ErrParamInvalidPointEncoding
	}

	p, err := Decode(data, false)
	if err != nil {
		return fmt.Errorf("d448 element Decode: %w", err)
	}

	e.p = p

	return nil
}

// MarshalBinary returns the compressed byte encoding of the element.
func (e *Element) MarshalBinary() ([]byte, error) {
	return e.Encode(), nil
}

// UnmarshalBinary sets e to the decoding of the byte encoded element.
func (e *Element) UnmarshalBinary(data []byte) error {
	return e.Decode(data)
}
