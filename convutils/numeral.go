/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

// Package convutils bridges baseconv numerals and math/big.
// It gives an independent reference for the digit-array arithmetic in
// baseconv and a way to build numerals from big values.
package convutils

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/capitalone/baseconv"
)

func checkRadix(radix int) error {
	if radix < baseconv.MinBase || radix > baseconv.MaxBase {
		return errors.Wrapf(baseconv.ErrInvalidBase, "radix %d not in [%d..%d]", radix, baseconv.MinBase, baseconv.MaxBase)
	}
	return nil
}

// Num evaluates digits, most significant first, as a number in radix.
// A digit greater than radix-1 is reported with its position.
func Num(digits []uint16, radix int) (big.Int, error) {
	var acc, step, d big.Int
	if err := checkRadix(radix); err != nil {
		return acc, err
	}

	step.SetInt64(int64(radix))
	for pos, v := range digits {
		if int(v) >= radix {
			return acc, errors.Wrapf(baseconv.ErrInvalidDigit, "digit %d at position %d is not below radix %d", v, pos, radix)
		}
		acc.Mul(&acc, &step)
		acc.Add(&acc, d.SetUint64(uint64(v)))
	}
	return acc, nil
}

// NumOf returns the value of n as a big.Int. The zero Numeral has no base
// and fails with baseconv.ErrInvalidBase.
func NumOf(n baseconv.Numeral) (big.Int, error) {
	return Num(n.Digits(), n.Base())
}

// Str fills dst with the digits of x in radix, most significant first,
// padding the front with zeros. It fails with baseconv.ErrCapacityExceeded
// when x needs more than len(dst) digits, leaving the low digits in dst.
func Str(x *big.Int, dst []uint16, radix int) ([]uint16, error) {
	var step, rem, q big.Int
	if err := checkRadix(radix); err != nil {
		return dst, err
	}
	if x.Sign() < 0 {
		return dst, errors.Errorf("negative value %s has no digits", x)
	}

	q.Set(x)
	step.SetInt64(int64(radix))
	for i := len(dst) - 1; i >= 0; i-- {
		q.DivMod(&q, &step, &rem)
		dst[i] = uint16(rem.Uint64())
	}
	if q.Sign() != 0 {
		return dst, errors.Wrapf(baseconv.ErrCapacityExceeded, "%d digits cannot hold the value, %s remains", len(dst), &q)
	}
	return dst, nil
}

// NumeralOf returns x in the given radix with no leading zeros.
// Zero is the single digit 0.
func NumeralOf(x *big.Int, radix int) (baseconv.Numeral, error) {
	if err := checkRadix(radix); err != nil {
		return baseconv.Numeral{}, err
	}
	if x.Sign() < 0 {
		return baseconv.Numeral{}, errors.Errorf("negative value %s has no digits", x)
	}

	n := 1
	if x.Sign() > 0 {
		// exact up to big.MaxBase, an overestimate above it
		n = len(x.Text(radixText(radix)))
	}
	r, err := Str(x, make([]uint16, n), radix)
	if err != nil {
		return baseconv.Numeral{}, err
	}
	return baseconv.NewNumeral(trimLeadingZeros(r), radix)
}

// radixText returns a radix accepted by big.Int.Text whose digit count
// for any value is at least that of radix.
func radixText(radix int) int {
	if radix > big.MaxBase {
		return big.MaxBase
	}
	return radix
}

func trimLeadingZeros(r []uint16) []uint16 {
	i := 0
	for i < len(r)-1 && r[i] == 0 {
		i++
	}
	return r[i:]
}
