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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/capitalone/baseconv"
)

// demoBases is the order in which converted forms are printed.
var demoBases = []int{2, 8, 64, 16}

func newDemoCommand(a *app) *cobra.Command {
	var lengths []int
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "print sample numbers of the form 123456789123... in several bases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), a.logger, lengths)
		},
	}
	cmd.Flags().IntSliceVarP(&lengths, "digits", "n", []int{9, 27}, "number of decimal digits in each sample")
	return cmd
}

// sampleNumeral returns the decimal numeral whose i-th digit is 1 + i%9.
func sampleNumeral(length int) (baseconv.Numeral, error) {
	digits := make([]uint16, length)
	for i := range digits {
		digits[i] = uint16(1 + i%9)
	}
	return baseconv.NewNumeral(digits, 10)
}

func runDemo(w io.Writer, logger *zap.Logger, lengths []int) error {
	for _, length := range lengths {
		dec, err := sampleNumeral(length)
		if err != nil {
			return err
		}
		lines := []string{formatNumeral(dec)}
		for _, b := range demoBases {
			n, err := baseconv.Convert(dec, b)
			if err != nil {
				return err
			}
			lines = append(lines, formatNumeral(n))
		}
		logger.Debug("sample converted", zap.Int("digits", length), zap.Ints("bases", demoBases))

		pad := strings.Repeat(" ", len(lines[0])+1)
		if _, err := fmt.Fprintf(w, "%s = %s\n", lines[0], lines[1]); err != nil {
			return err
		}
		for _, l := range lines[2:] {
			if _, err := fmt.Fprintf(w, "%s= %s\n", pad, l); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func formatNumeral(n baseconv.Numeral) string {
	s, err := baseconv.Encode(n)
	if err != nil {
		return "(?)"
	}
	return fmt.Sprintf("(%s)_%d", s, n.Base())
}
