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
	"context"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Convert returns a Numeral in base holding the same value as src.
//
// The value is never formed as a machine integer. Instead the digits of src
// are repeatedly divided by base using long division in src's base, and
// each pass yields the next least significant digit of the result. The
// result has no leading zeros, except that zero converts to the single
// digit 0. src is not modified.
func Convert(src Numeral, base int) (Numeral, error) {
	var ret Numeral
	if err := checkBase(base); err != nil {
		return ret, err
	}
	if !src.valid() {
		return ret, errors.Wrap(ErrInvalidBase, "source numeral is not initialized")
	}

	from := src.base
	scratch := src.Digits()

	// capacity hint only; out grows if the estimate falls short
	out := make([]uint16, 0, estimateLen(len(scratch), from, base))

	// scratch[:lead] is known to be zero
	lead := 0
	for {
		accum := 0
		for i := lead; i < len(scratch); i++ {
			accum = accum*from + int(scratch[i])
			d := accum / base
			scratch[i] = uint16(d)
			accum -= d * base
		}
		out = append(out, uint16(accum))

		for lead < len(scratch) && scratch[lead] == 0 {
			lead++
		}
		if lead == len(scratch) {
			break
		}
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	ret.digits = out
	ret.base = base
	return ret, nil
}

// estimateLen returns ceil(n / (log(to) / log(from))), the expected number
// of base-to digits needed for n base-from digits.
func estimateLen(n, from, to int) int {
	est := int(math.Ceil(float64(n) / (math.Log(float64(to)) / math.Log(float64(from)))))
	if est < 1 {
		est = 1
	}
	return est
}

// ConvertAll converts every numeral in srcs to base, running up to workers
// conversions at a time. A workers value below 1 means no limit.
// Results are returned in the order of srcs. The first failure cancels the
// remaining conversions and is returned with the index of the failed input.
func ConvertAll(ctx context.Context, srcs []Numeral, base, workers int) ([]Numeral, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}

	ret := make([]Numeral, len(srcs))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i := range srcs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := Convert(srcs[i], base)
			if err != nil {
				return errors.Wrapf(err, "convert numeral %d", i)
			}
			ret[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}
