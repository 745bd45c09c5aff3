// SPDX-License-Identifier: MIT
//
// Copyright (C)2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package group_test

import (
	"testing"

	"github.com/bytemare/decaf448"
)

func testAll(t *testing.T, f func(*testing.T, *testGroup)) {
	for _, test := range testTable {
		t.Run(test.name, func(t *testing.T) {
			f(t, test)
		})
	}
}

// a testGroup references some parameters of a Group.
type testGroup struct {
	name          string
	h2c           string
	e2c           string
	basePoint     string
	identity      string
	elementLength int
	scalarLength  int
	group         crypto.Group
}

var testTable = []*testGroup{
	{
		"Ristretto255",
		"ristretto255_XMD:SHA-512_R255MAP_RO_",
		"ristretto255_XMD:SHA-512_R255MAP_RO_",
		ristrettoBasePoint,
		"0000000000000000000000000000000000000000000000000000000000000000",
		32,
		32,
		1,
	},
	{
		"Edwards25519",
		"edwards25519_XMD:SHA-512_ELL2_RO_",
		"edwards25519_XMD:SHA-512_ELL2_NU_",
		"5866666666666666666666666666666666666666666666666666666666666666",
		"0100000000000000000000000000000000000000000000000000000000000000",
		32,
		32,
		2,
	},
}
