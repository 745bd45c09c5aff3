// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package d448

import "errors"

// ErrInvalidEncoding is returned by Decode when the input is not the canonical
// Decaf448 encoding of a valid coset representative.
var ErrInvalidEncoding = errors.New("d448: invalid element encoding")
