// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package d448

// This file provides boolean algebra over the 0/1 ints returned by field448.Elt.IsZero
// and IsNegative, so that conditions derived from secret field elements can be combined
// without ever being tested by an "if". Each operation is plain integer arithmetic on
// values already constrained to {0, 1}.

// notCond returns 1-cond.
func notCond(cond int) int {
	return cond ^ 1
}

// orCond returns 1 if either cond is 1.
func orCond(a, b int) int {
	return a | b
}

// xorCond returns 1 if exactly one of a, b is 1.
func xorCond(a, b int) int {
	return a ^ b
}
