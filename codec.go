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
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	hexChars = "0123456789ABCDEF"

	// RFC 1421 characters, used as a positional digit map without padding.
	base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	maxHexBase = 16
)

// alphabet holds the character for each digit value and the reverse lookup.
type alphabet struct {
	index map[rune]uint16
	chars []rune
}

var (
	hexAlphabet    = newAlphabet(hexChars)
	base64Alphabet = newAlphabet(base64Chars)
)

func newAlphabet(s string) *alphabet {
	ret := &alphabet{
		index: make(map[rune]uint16, utf8.RuneCountInString(s)),
		chars: make([]rune, 0, utf8.RuneCountInString(s)),
	}
	for _, rv := range s {
		ret.index[rv] = uint16(len(ret.chars))
		ret.chars = append(ret.chars, rv)
	}
	return ret
}

// alphabetFor selects the hex alphabet for bases up to 16 and the base64
// alphabet above that.
func alphabetFor(base int) (*alphabet, error) {
	switch {
	case base > MaxBase:
		return nil, errors.Wrapf(ErrUnsupportedEncoding, "cannot encode bases larger than %d: got %d", MaxBase, base)
	case base < MinBase:
		return nil, errors.Wrapf(ErrInvalidBase, "base %d not in [%d..%d]", base, MinBase, MaxBase)
	case base <= maxHexBase:
		return hexAlphabet, nil
	default:
		return base64Alphabet, nil
	}
}

// Encode renders n as one character per digit, most significant first.
// Bases up to 16 use "0123456789ABCDEF"; bases 17 to 64 use the base64
// alphabet "A..Za..z0..9+/" as a plain digit-to-character map.
// There is no padding, sign or leading-zero suppression, so the result
// always has n.Len() characters.
func Encode(n Numeral) (string, error) {
	a, err := alphabetFor(n.base)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(n.digits))
	for i, v := range n.digits {
		if int(v) >= len(a.chars) {
			return "", errors.Wrapf(ErrInvalidDigit, "numeral at position %d out of range: %d not in [0..%d]", i, v, len(a.chars)-1)
		}
		sb.WriteRune(a.chars[v])
	}
	return sb.String(), nil
}

// Decode parses s, written in the alphabet Encode uses for base, into a Numeral.
// It is an error for s to be empty or to contain characters that are not
// digits of base.
func Decode(s string, base int) (Numeral, error) {
	var ret Numeral
	if err := checkBase(base); err != nil {
		return ret, err
	}
	a, err := alphabetFor(base)
	if err != nil {
		return ret, err
	}
	if s == "" {
		return ret, errors.Wrap(ErrInvalidDigit, "numeral must have at least one digit")
	}

	digits := make([]uint16, 0, utf8.RuneCountInString(s))
	for _, rv := range s {
		v, ok := a.index[rv]
		if !ok || int(v) >= base {
			return ret, errors.Wrapf(ErrInvalidDigit, "character %q at position %d is not a base %d digit", rv, len(digits), base)
		}
		digits = append(digits, v)
	}
	ret.digits = digits
	ret.base = base
	return ret, nil
}

// Equal reports whether a and b have the same base and the same digits.
// The comparison is structural: numerals that differ only by leading zeros
// are not equal.
func Equal(a, b Numeral) bool {
	if a.base != b.base || len(a.digits) != len(b.digits) {
		return false
	}
	for i := range a.digits {
		if a.digits[i] != b.digits[i] {
			return false
		}
	}
	return true
}
