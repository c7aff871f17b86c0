/*

Package baseconv converts arbitrary-precision non-negative integers between
positional bases 2 through 64.

A Numeral holds the digits of a value together with its base. Convert
re-expresses a Numeral in another base by long division directly on the
digit array, so values far larger than any machine integer are handled
without math/big. Encode and Decode map digits to and from printable
characters, and Equal compares two numerals digit by digit.

	n, _ := baseconv.NewNumeral([]uint16{1, 2, 3, 4}, 10)
	h, _ := baseconv.Convert(n, 16)
	s, _ := baseconv.Encode(h) // "4D2"

The convutils sub-package bridges numerals and math/big, and the roundtrip
sub-package checks base X to base Y to base X conversions over a range of
values.
*/
package baseconv
