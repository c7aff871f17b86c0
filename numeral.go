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

package baseconv

import (
	"strconv"

	"github.com/pkg/errors"
)

// Numeral is a non-negative integer held as a sequence of digits in a
// given base. The digits are arranged with the most significant digit in
// element 0, down to the least significant digit in element Len()-1.
//
// A Numeral owns its digit buffer and never changes after construction.
// Leading zeros are kept as supplied, so equality is structural (see Equal).
// The zero value is not a valid Numeral and is rejected by Convert.
type Numeral struct {
	digits []uint16
	base   int
}

// NewNumeral builds a Numeral from a copy of digits.
// It is an error for base to be outside [MinBase, MaxBase], for digits to be
// empty, or for any digit to be greater than base-1.
func NewNumeral(digits []uint16, base int) (Numeral, error) {
	var ret Numeral
	if err := checkBase(base); err != nil {
		return ret, err
	}
	if len(digits) == 0 {
		return ret, errors.Wrap(ErrInvalidDigit, "numeral must have at least one digit")
	}

	maxv := uint16(base - 1)
	for i, v := range digits {
		if v > maxv {
			return ret, errors.Wrapf(ErrInvalidDigit, "value at %d out of range: got %d - expected 0..%d", i, v, maxv)
		}
	}

	ret.digits = make([]uint16, len(digits))
	copy(ret.digits, digits)
	ret.base = base
	return ret, nil
}

// MustNumeral is like NewNumeral but panics on error. It is intended for
// literals in tests and examples.
func MustNumeral(digits []uint16, base int) Numeral {
	n, err := NewNumeral(digits, base)
	if err != nil {
		panic(err)
	}
	return n
}

// FromUint64 returns the digits of v in the given base, without leading zeros.
// Zero is represented by the single digit 0.
func FromUint64(v uint64, base int) (Numeral, error) {
	if err := checkBase(base); err != nil {
		return Numeral{}, err
	}

	b := uint64(base)
	var buf [64]uint16
	i := len(buf)
	for {
		i--
		buf[i] = uint16(v % b)
		v /= b
		if v == 0 {
			break
		}
	}
	return Numeral{digits: append([]uint16(nil), buf[i:]...), base: base}, nil
}

// Base returns the radix of n.
func (n Numeral) Base() int {
	return n.base
}

// Len returns the number of digits in n, including leading zeros.
func (n Numeral) Len() int {
	return len(n.digits)
}

// Digit returns the digit at position i, counted from the most significant end.
func (n Numeral) Digit(i int) uint16 {
	return n.digits[i]
}

// Digits returns a copy of the digits of n.
func (n Numeral) Digits() []uint16 {
	ret := make([]uint16, len(n.digits))
	copy(ret, n.digits)
	return ret
}

// IsZero reports whether every digit of n is 0.
func (n Numeral) IsZero() bool {
	for _, v := range n.digits {
		if v != 0 {
			return false
		}
	}
	return true
}

func (n Numeral) valid() bool {
	return checkBase(n.base) == nil && len(n.digits) > 0
}

// String formats n as its encoded digits followed by the base, e.g. "4D2_16".
func (n Numeral) String() string {
	s, err := Encode(n)
	if err != nil {
		return "<invalid numeral>"
	}
	return s + "_" + strconv.Itoa(n.base)
}
