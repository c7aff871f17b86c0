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
	"github.com/pkg/errors"
)

const (
	// MinBase is the smallest supported radix.
	MinBase = 2

	// MaxBase is the largest supported radix. Every digit of a base 64
	// numeral has a printable character in the base64 alphabet.
	MaxBase = 64
)

var (
	// ErrInvalidBase is returned when a base outside [MinBase, MaxBase] is
	// supplied to construction or conversion.
	ErrInvalidBase = errors.New("invalid base")

	// ErrInvalidDigit is returned when a digit does not satisfy 0 <= digit < base.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrUnsupportedEncoding is returned by Encode for bases that have no alphabet.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrCapacityExceeded is returned when a fixed-size destination cannot
	// hold every digit of a converted value.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return errors.Wrapf(ErrInvalidBase, "base %d not in [%d..%d]", base, MinBase, MaxBase)
	}
	return nil
}
