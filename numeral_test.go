package baseconv

import (
	"fmt"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumeral(t *testing.T) {
	testSpec := []struct {
		digits []uint16
		base   int
		err    error
	}{
		{[]uint16{1, 2, 3, 4}, 10, nil},
		{[]uint16{0}, 2, nil},
		{[]uint16{63, 0, 63}, 64, nil},
		{[]uint16{0, 0, 1}, 2, nil},
		{[]uint16{10, 0, 0}, 10, ErrInvalidDigit},
		{[]uint16{1, 2}, 1, ErrInvalidBase},
		{[]uint16{1, 2}, 65, ErrInvalidBase},
		{[]uint16{}, 10, ErrInvalidDigit},
		{nil, 10, ErrInvalidDigit},
		{[]uint16{64}, 64, ErrInvalidDigit},
	}

	for idx, spec := range testSpec {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			n, err := NewNumeral(spec.digits, spec.base)
			if spec.err != nil {
				assert.True(t, errors.Is(err, spec.err), "expected %v, got %v", spec.err, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, spec.base, n.Base())
			assert.Equal(t, len(spec.digits), n.Len())
			assert.Equal(t, spec.digits, n.Digits())
		})
	}
}

func TestNumeralOwnsDigits(t *testing.T) {
	digits := []uint16{1, 2, 3}
	n, err := NewNumeral(digits, 10)
	require.NoError(t, err)

	digits[0] = 9
	assert.Equal(t, uint16(1), n.Digit(0))

	out := n.Digits()
	out[1] = 9
	assert.Equal(t, uint16(2), n.Digit(1))
}

func TestMustNumeralPanics(t *testing.T) {
	assert.Panics(t, func() { MustNumeral([]uint16{2}, 2) })
	assert.NotPanics(t, func() { MustNumeral([]uint16{1}, 2) })
}

func TestFromUint64(t *testing.T) {
	testSpec := []struct {
		v      uint64
		base   int
		digits []uint16
	}{
		{0, 10, []uint16{0}},
		{7, 2, []uint16{1, 1, 1}},
		{1234, 10, []uint16{1, 2, 3, 4}},
		{1234, 16, []uint16{4, 13, 2}},
		{4095, 64, []uint16{63, 63}},
		{64, 64, []uint16{1, 0}},
	}

	for idx, spec := range testSpec {
		t.Run(fmt.Sprintf("Sample%d", idx+1), func(t *testing.T) {
			n, err := FromUint64(spec.v, spec.base)
			require.NoError(t, err)
			assert.Equal(t, spec.base, n.Base())
			assert.Equal(t, spec.digits, n.Digits())
		})
	}

	n, err := FromUint64(math.MaxUint64, 2)
	require.NoError(t, err)
	assert.Equal(t, 64, n.Len())

	_, err = FromUint64(1, 0)
	assert.True(t, errors.Is(err, ErrInvalidBase))
}

func TestNumeralString(t *testing.T) {
	assert.Equal(t, "4D2_16", MustNumeral([]uint16{4, 13, 2}, 16).String())
	assert.Equal(t, "ABC/_64", MustNumeral([]uint16{0, 1, 2, 63}, 64).String())
	assert.Equal(t, "<invalid numeral>", Numeral{}.String())
}

func TestIsZero(t *testing.T) {
	assert.True(t, MustNumeral([]uint16{0}, 7).IsZero())
	assert.True(t, MustNumeral([]uint16{0, 0, 0}, 7).IsZero())
	assert.False(t, MustNumeral([]uint16{0, 0, 1}, 7).IsZero())
}

func TestEstimateLen(t *testing.T) {
	assert.Equal(t, 14, estimateLen(4, 10, 2))
	assert.Equal(t, 4, estimateLen(4, 10, 16))
	assert.Equal(t, 4, estimateLen(4, 10, 10))
	assert.Equal(t, 1, estimateLen(1, 2, 64))
}
