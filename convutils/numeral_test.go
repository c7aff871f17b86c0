package convutils

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitalone/baseconv"
)

func TestNumStr(t *testing.T) {
	testSpec := []struct {
		radix   int
		intv    *big.Int
		numeral []uint16
	}{
		{
			10,
			big.NewInt(100),
			[]uint16{1, 0, 0},
		},
		{
			64,
			big.NewInt(0).Exp(big.NewInt(64), big.NewInt(7), nil),
			[]uint16{1, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			2,
			big.NewInt(1234),
			[]uint16{1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0},
		},
		{
			16,
			big.NewInt(1234),
			[]uint16{0, 0, 4, 13, 2},
		},
	}

	for idx, spec := range testSpec {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			v, err := Num(spec.numeral, spec.radix)
			require.NoError(t, err)
			assert.Equal(t, 0, v.Cmp(spec.intv), "expected %v got %v", spec.intv, &v)

			r := make([]uint16, len(spec.numeral))
			_, err = Str(&v, r, spec.radix)
			require.NoError(t, err)
			assert.Equal(t, spec.numeral, r)
		})
	}
}

func TestNumError(t *testing.T) {
	testSpec := []struct {
		radix   int
		numeral []uint16
		err     error
	}{
		{10, []uint16{10, 0, 0}, baseconv.ErrInvalidDigit},
		{65, []uint16{1, 0, 0}, baseconv.ErrInvalidBase},
		{1, []uint16{0}, baseconv.ErrInvalidBase},
	}

	for idx, spec := range testSpec {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			_, err := Num(spec.numeral, spec.radix)
			assert.True(t, errors.Is(err, spec.err), "expected %v, got %v", spec.err, err)
		})
	}
}

func TestStrError(t *testing.T) {
	testSpec := []struct {
		radix int
		intv  *big.Int
		size  int
		err   error
	}{
		{10, big.NewInt(100), 2, baseconv.ErrCapacityExceeded},
		{2, big.NewInt(1234), 10, baseconv.ErrCapacityExceeded},
		{65, big.NewInt(1), 2, baseconv.ErrInvalidBase},
	}

	for idx, spec := range testSpec {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			_, err := Str(spec.intv, make([]uint16, spec.size), spec.radix)
			assert.True(t, errors.Is(err, spec.err), "expected %v, got %v", spec.err, err)
		})
	}

	_, err := Str(big.NewInt(-1), make([]uint16, 2), 10)
	assert.Error(t, err)
}

func TestNumeralOf(t *testing.T) {
	large, ok := new(big.Int).SetString("123456789123456789123456789", 10)
	require.True(t, ok)

	testSpec := []struct {
		x     *big.Int
		radix int
	}{
		{big.NewInt(0), 10},
		{big.NewInt(1234), 16},
		{big.NewInt(0).Exp(big.NewInt(64), big.NewInt(7), nil), 64},
		{large, 2},
		{large, 63},
		{large, 64},
	}

	for idx, spec := range testSpec {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			n, err := NumeralOf(spec.x, spec.radix)
			require.NoError(t, err)
			assert.Equal(t, spec.radix, n.Base())
			if spec.x.Sign() > 0 {
				assert.NotEqual(t, uint16(0), n.Digit(0), "leading zero")
			}

			got, err := NumOf(n)
			require.NoError(t, err)
			assert.Equal(t, 0, got.Cmp(spec.x))

			dec, err := baseconv.Convert(n, 10)
			require.NoError(t, err)
			want, err := NumeralOf(spec.x, 10)
			require.NoError(t, err)
			assert.True(t, baseconv.Equal(want, dec))
		})
	}

	_, err := NumeralOf(big.NewInt(-5), 10)
	assert.Error(t, err)
}

func TestNumOfZeroNumeral(t *testing.T) {
	_, err := NumOf(baseconv.Numeral{})
	assert.True(t, errors.Is(err, baseconv.ErrInvalidBase), "got %v", err)

	x, err := NumOf(baseconv.MustNumeral([]uint16{0}, 2))
	require.NoError(t, err)
	assert.Equal(t, 0, x.Sign())
}
